package postgres

import (
	"context"
	"fmt"

	"github.com/osse101/GambaBot_Go/internal/repository"
)

// GetLeaderboard computes per-player aggregates for a season in one pass.
// Pending potential uses the same stake-scaled payout formula as settlement
// so "max return" matches what the bets can actually pay out.
func (r *BetRepository) GetLeaderboard(ctx context.Context, year, currentMonth int) ([]repository.LeaderboardRow, error) {
	query := `
		SELECT
			p.id,
			p.discord_id,
			COALESCE(SUM(CASE WHEN b.outcome = 'win' THEN b.payout_cents ELSE 0 END), 0) AS total_cents,
			COALESCE(MAX(CASE WHEN b.outcome = 'win' THEN b.payout_cents ELSE 0 END), 0) AS biggest_win_cents,
			COUNT(CASE WHEN b.outcome IS NULL THEN 1 END) AS pending_count,
			COALESCE(SUM(CASE WHEN b.outcome IS NULL THEN b.stake_cents * 100 / b.price_cents ELSE 0 END), 0) AS pending_potential_cents,
			COUNT(CASE WHEN b.placed_year = $2 AND b.placed_month = $3 THEN 1 END) AS bets_this_month
		FROM players p
		LEFT JOIN bets b ON p.id = b.player_id
		WHERE p.year = $1
		GROUP BY p.id, p.discord_id
		ORDER BY total_cents DESC, biggest_win_cents DESC
	`

	rows, err := r.db.Query(ctx, query, year, year, currentMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var result []repository.LeaderboardRow
	for rows.Next() {
		var row repository.LeaderboardRow
		err := rows.Scan(
			&row.PlayerID,
			&row.DiscordID,
			&row.TotalCents,
			&row.BiggestWinCents,
			&row.PendingCount,
			&row.PendingPotentialCents,
			&row.BetsThisMonth,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return result, nil
}
