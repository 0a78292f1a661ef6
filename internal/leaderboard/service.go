package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GambaBot_Go/internal/domain"
	"github.com/osse101/GambaBot_Go/internal/logger"
	"github.com/osse101/GambaBot_Go/internal/repository"
)

// TopN is how many entries the leaderboard exposes to the front end.
const TopN = 20

// SettlementService defines the settlement interface used to refresh
// standings before reading them
type SettlementService interface {
	SettleAll(ctx context.Context) (int, error)
}

// Repository defines the data access required by the leaderboard service
type Repository interface {
	GetLeaderboard(ctx context.Context, year, currentMonth int) ([]repository.LeaderboardRow, error)
}

// Leaderboard is the ranked standings for one season
type Leaderboard struct {
	Year         int                       `json:"year"`
	Entries      []domain.LeaderboardEntry `json:"entries"`
	TotalPlayers int                       `json:"total_players"`
}

// Service defines the interface for leaderboard operations
type Service interface {
	// Build settles all open bets, then returns the season standings
	// ordered by total winnings descending with biggest single win as the
	// tie-break. At most TopN entries are returned; TotalPlayers carries
	// the full count.
	Build(ctx context.Context, now time.Time) (*Leaderboard, error)
}

type service struct {
	repo          Repository
	settlementSvc SettlementService
}

// NewService creates a new leaderboard service
func NewService(repo Repository, settlementSvc SettlementService) Service {
	return &service{repo: repo, settlementSvc: settlementSvc}
}

func (s *service) Build(ctx context.Context, now time.Time) (*Leaderboard, error) {
	log := logger.FromContext(ctx)
	year := now.Year()
	month := int(now.Month())

	// Standings must reflect every resolution the provider knows about.
	// A failed sweep degrades to slightly stale standings, not an error.
	if settled, err := s.settlementSvc.SettleAll(ctx); err != nil {
		log.Warn("Failed to settle before building leaderboard", "error", err)
	} else if settled > 0 {
		log.Info("Settled bets before leaderboard", "count", settled)
	}

	rows, err := s.repo.GetLeaderboard(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	board := &Leaderboard{
		Year:         year,
		TotalPlayers: len(rows),
	}
	for _, row := range rows {
		if len(board.Entries) == TopN {
			break
		}
		board.Entries = append(board.Entries, domain.LeaderboardEntry{
			DiscordID:       row.DiscordID,
			TotalCents:      row.TotalCents,
			BiggestWinCents: row.BiggestWinCents,
			PendingCount:    row.PendingCount,
			MaxReturnCents:  row.TotalCents + row.PendingPotentialCents,
			RemainingBets:   domain.RemainingBets(month, row.BetsThisMonth),
		})
	}

	return board, nil
}
