package repository

import (
	"context"
	"time"

	"github.com/osse101/GambaBot_Go/internal/domain"
)

// NewBet describes a bet to be committed by CreateBet. Stake, placement
// timestamp and quota bucket are filled in by the repository so the insert
// and the quota check observe the same clock.
type NewBet struct {
	PlayerID    int64
	Platform    string
	MarketID    string
	MarketTitle string
	Position    domain.Position
	PriceCents  int
}

// LeaderboardRow is the per-player aggregate computed in a single pass over
// the bets table.
type LeaderboardRow struct {
	PlayerID              int64
	DiscordID             string
	TotalCents            int
	BiggestWinCents       int
	PendingCount          int
	PendingPotentialCents int
	BetsThisMonth         int
}

// Bet defines the data access interface required by the wager, settlement and
// leaderboard services. Pure data access: business rules live in the services.
type Bet interface {
	Player

	// CountBetsInMonth counts bets the player placed in the given quota
	// bucket (placement month, not settlement month).
	CountBetsInMonth(ctx context.Context, playerID int64, year, month int) (int, error)

	// CreateBet checks the player's monthly quota and inserts the bet in
	// one transaction under a player row lock, closing the check-then-act
	// race between concurrent placements. Returns
	// domain.ErrNoBetsRemaining when the player already has maxBets bets
	// in the placement month, and domain.ErrDuplicateBet when the player
	// already holds a bet on this market.
	CreateBet(ctx context.Context, bet NewBet, maxBets int, now time.Time) (*domain.Bet, error)

	// HasBetOnMarket reports whether the player already holds a bet on the
	// given market.
	HasBetOnMarket(ctx context.Context, playerID int64, marketID string) (bool, error)

	// ResolveBet commits the terminal outcome of an unresolved bet. This is
	// the single allowed mutation of a bet; resolving an already resolved
	// bet is a no-op.
	ResolveBet(ctx context.Context, betID int64, outcome domain.Outcome, payoutCents int, resolvedAt time.Time) error

	// GetBetsForPlayer returns all of the player's bets, newest first.
	GetBetsForPlayer(ctx context.Context, playerID int64) ([]domain.Bet, error)

	// GetUnresolvedBets returns every unresolved bet system-wide.
	GetUnresolvedBets(ctx context.Context) ([]domain.Bet, error)

	// GetUnresolvedBetsForPlayer returns the player's unresolved bets.
	GetUnresolvedBetsForPlayer(ctx context.Context, playerID int64) ([]domain.Bet, error)

	// GetLeaderboard returns per-player aggregates for the season, ordered
	// by total winnings then biggest win, both descending.
	GetLeaderboard(ctx context.Context, year, currentMonth int) ([]LeaderboardRow, error)
}
