package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GambaBot_Go/internal/domain"
)

// PlayerRepository implements the player repository for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// GetPlayer retrieves a player by Discord ID and season year.
// Returns nil without error when no player is registered.
func (r *PlayerRepository) GetPlayer(ctx context.Context, discordID string, year int) (*domain.Player, error) {
	query := `
		SELECT id, discord_id, year, registered_at
		FROM players
		WHERE discord_id = $1 AND year = $2
	`

	var p domain.Player
	err := r.db.QueryRow(ctx, query, discordID, year).Scan(&p.ID, &p.DiscordID, &p.Year, &p.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &p, nil
}

// RegisterPlayer inserts a player record for the season. The unique
// constraint on (discord_id, year) enforces one registration per year.
func (r *PlayerRepository) RegisterPlayer(ctx context.Context, discordID string, year int) (*domain.Player, error) {
	query := `
		INSERT INTO players (discord_id, year)
		VALUES ($1, $2)
		RETURNING id, discord_id, year, registered_at
	`

	var p domain.Player
	err := r.db.QueryRow(ctx, query, discordID, year).Scan(&p.ID, &p.DiscordID, &p.Year, &p.RegisteredAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to register player: %w", err)
	}
	return &p, nil
}
