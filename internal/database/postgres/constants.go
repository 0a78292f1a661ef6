package postgres

// PostgreSQL error codes
const (
	pgErrUniqueViolation = "23505"
)
