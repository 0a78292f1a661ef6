package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GambaBot_Go/internal/domain"
	"github.com/osse101/GambaBot_Go/internal/repository"
)

// BetRepository implements the bet repository for PostgreSQL
type BetRepository struct {
	*PlayerRepository
	db *pgxpool.Pool
}

// NewBetRepository creates a new BetRepository
func NewBetRepository(db *pgxpool.Pool) *BetRepository {
	return &BetRepository{
		PlayerRepository: NewPlayerRepository(db),
		db:               db,
	}
}

const betColumns = `
	id, player_id, platform, market_id, market_title, position,
	price_cents, stake_cents, placed_at, placed_year, placed_month,
	resolved_at, outcome, payout_cents
`

// CountBetsInMonth counts bets placed by the player in the given quota bucket
func (r *BetRepository) CountBetsInMonth(ctx context.Context, playerID int64, year, month int) (int, error) {
	query := `
		SELECT COUNT(*) FROM bets
		WHERE player_id = $1 AND placed_year = $2 AND placed_month = $3
	`

	var count int
	if err := r.db.QueryRow(ctx, query, playerID, year, month).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count bets: %w", err)
	}
	return count, nil
}

// CreateBet checks the monthly quota and inserts the bet in one transaction.
// The player's season row is locked FOR UPDATE first, so placements for the
// same player serialize and two requests racing on the last remaining bet
// cannot both commit.
func (r *BetRepository) CreateBet(ctx context.Context, bet repository.NewBet, maxBets int, now time.Time) (*domain.Bet, error) {
	stakeCents := domain.BetStakeCents(int(now.Month()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin bet transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("Failed to rollback bet transaction", "error", err)
		}
	}()

	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM players WHERE id = $1 FOR UPDATE`, bet.PlayerID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to lock player: %w", err)
	}

	countQuery := `
		SELECT COUNT(*) FROM bets
		WHERE player_id = $1 AND placed_year = $2 AND placed_month = $3
	`
	var used int
	if err := tx.QueryRow(ctx, countQuery, bet.PlayerID, now.Year(), int(now.Month())).Scan(&used); err != nil {
		return nil, fmt.Errorf("failed to count bets: %w", err)
	}
	if used >= maxBets {
		return nil, domain.ErrNoBetsRemaining
	}

	insertQuery := `
		INSERT INTO bets
			(player_id, platform, market_id, market_title, position,
			 price_cents, stake_cents, placed_at, placed_year, placed_month)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + betColumns

	row := tx.QueryRow(ctx, insertQuery,
		bet.PlayerID,
		bet.Platform,
		bet.MarketID,
		bet.MarketTitle,
		string(bet.Position),
		bet.PriceCents,
		stakeCents,
		now,
		now.Year(),
		int(now.Month()),
	)

	committed, err := scanBet(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
			return nil, domain.ErrDuplicateBet
		}
		return nil, fmt.Errorf("failed to create bet: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit bet: %w", err)
	}
	return committed, nil
}

// HasBetOnMarket reports whether the player already bet on this market
func (r *BetRepository) HasBetOnMarket(ctx context.Context, playerID int64, marketID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bets WHERE player_id = $1 AND market_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, playerID, marketID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check bet existence: %w", err)
	}
	return exists, nil
}

// ResolveBet commits the terminal outcome of an unresolved bet. The
// outcome IS NULL guard makes re-resolving a settled bet a no-op.
func (r *BetRepository) ResolveBet(ctx context.Context, betID int64, outcome domain.Outcome, payoutCents int, resolvedAt time.Time) error {
	query := `
		UPDATE bets
		SET outcome = $2, payout_cents = $3, resolved_at = $4
		WHERE id = $1 AND outcome IS NULL
	`

	if _, err := r.db.Exec(ctx, query, betID, string(outcome), payoutCents, resolvedAt); err != nil {
		return fmt.Errorf("failed to resolve bet: %w", err)
	}
	return nil
}

// GetBetsForPlayer returns all bets for a player, newest first
func (r *BetRepository) GetBetsForPlayer(ctx context.Context, playerID int64) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE player_id = $1 ORDER BY placed_at DESC`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}
	defer rows.Close()

	return scanBets(rows)
}

// GetUnresolvedBets returns every unresolved bet system-wide
func (r *BetRepository) GetUnresolvedBets(ctx context.Context) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE outcome IS NULL ORDER BY placed_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get unresolved bets: %w", err)
	}
	defer rows.Close()

	return scanBets(rows)
}

// GetUnresolvedBetsForPlayer returns the player's unresolved bets
func (r *BetRepository) GetUnresolvedBetsForPlayer(ctx context.Context, playerID int64) ([]domain.Bet, error) {
	query := `SELECT ` + betColumns + ` FROM bets WHERE player_id = $1 AND outcome IS NULL ORDER BY placed_at`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get unresolved bets: %w", err)
	}
	defer rows.Close()

	return scanBets(rows)
}

func scanBet(row pgx.Row) (*domain.Bet, error) {
	var (
		b           domain.Bet
		resolvedAt  *time.Time
		outcome     *string
		payoutCents *int
	)

	err := row.Scan(
		&b.ID, &b.PlayerID, &b.Platform, &b.MarketID, &b.MarketTitle, &b.Position,
		&b.PriceCents, &b.StakeCents, &b.PlacedAt, &b.PlacedYear, &b.PlacedMonth,
		&resolvedAt, &outcome, &payoutCents,
	)
	if err != nil {
		return nil, err
	}

	b.ResolvedAt = resolvedAt
	b.PayoutCents = payoutCents
	if outcome != nil {
		o := domain.Outcome(*outcome)
		b.Outcome = &o
	}
	return &b, nil
}

func scanBets(rows pgx.Rows) ([]domain.Bet, error) {
	var bets []domain.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bets: %w", err)
	}
	return bets, nil
}
