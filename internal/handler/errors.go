package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Operation error messages
	ErrMsgRegisterFailed       = "Failed to register"
	ErrMsgPlaceBetFailed       = "Failed to place bet"
	ErrMsgListBetsFailed       = "Failed to list bets"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
)

// Success messages for API responses
const (
	MsgRegisteredSuccess = "Registered for this year's game"
)
