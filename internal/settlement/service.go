package settlement

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/GambaBot_Go/internal/domain"
	"github.com/osse101/GambaBot_Go/internal/logger"
	"github.com/osse101/GambaBot_Go/internal/metrics"
	"github.com/osse101/GambaBot_Go/internal/repository"
)

// resolutionCacheSize bounds the memo of final market resolutions.
const resolutionCacheSize = 1024

// MarketResolver defines the provider resolution check used for settlement
type MarketResolver interface {
	CheckResolution(ctx context.Context, marketID string) (domain.Resolution, error)
}

// Service defines the interface for settlement operations
type Service interface {
	// SettleBet attempts to settle one bet. Returns false when the bet is
	// already resolved, on an unsupported platform, or still unresolved
	// upstream. Settlement is idempotent; re-running it is always safe.
	SettleBet(ctx context.Context, bet *domain.Bet) (bool, error)

	// SettlePlayer settles all of one player's open bets. Per-bet failures
	// are logged and skipped; the count of newly settled bets is returned.
	SettlePlayer(ctx context.Context, playerID int64) (int, error)

	// SettleAll settles every open bet system-wide.
	SettleAll(ctx context.Context) (int, error)
}

type service struct {
	repo     repository.Bet
	resolver MarketResolver

	// finalRes memoizes terminal resolutions only. A market that has
	// resolved never un-resolves, so the cache can't serve stale outcomes;
	// live prices and unresolved statuses are never cached.
	finalRes *lru.Cache[string, domain.Resolution]
}

// NewService creates a new settlement service
func NewService(repo repository.Bet, resolver MarketResolver) Service {
	cache, _ := lru.New[string, domain.Resolution](resolutionCacheSize)
	return &service{
		repo:     repo,
		resolver: resolver,
		finalRes: cache,
	}
}

func (s *service) SettleBet(ctx context.Context, bet *domain.Bet) (bool, error) {
	if bet.Resolved() {
		return false, nil
	}
	if bet.Platform != domain.PlatformPolymarket {
		return false, nil
	}

	resolution, err := s.checkResolution(ctx, bet.MarketID)
	if err != nil {
		return false, err
	}
	if !resolution.Terminal() {
		return false, nil
	}

	outcome := domain.OutcomeLoss
	payoutCents := 0
	// A void resolution pays nothing, same as a loss; only a matching side
	// wins, with the payout scaled to the stake locked in at placement.
	if resolution != domain.ResolutionVoid && domain.Position(resolution) == bet.Position {
		outcome = domain.OutcomeWin
		payoutCents = bet.PotentialPayoutCents()
	}

	if err := s.repo.ResolveBet(ctx, bet.ID, outcome, payoutCents, time.Now()); err != nil {
		return false, fmt.Errorf("failed to commit settlement: %w", err)
	}

	metrics.BetsSettled.WithLabelValues(string(outcome)).Inc()
	logger.FromContext(ctx).Info("Bet settled",
		"bet_id", bet.ID,
		"market_id", bet.MarketID,
		"resolution", resolution,
		"outcome", outcome,
		"payout_cents", payoutCents)
	return true, nil
}

func (s *service) SettlePlayer(ctx context.Context, playerID int64) (int, error) {
	bets, err := s.repo.GetUnresolvedBetsForPlayer(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get unresolved bets: %w", err)
	}
	return s.settleBatch(ctx, bets), nil
}

func (s *service) SettleAll(ctx context.Context) (int, error) {
	bets, err := s.repo.GetUnresolvedBets(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get unresolved bets: %w", err)
	}
	return s.settleBatch(ctx, bets), nil
}

// settleBatch settles bets independently: one failing bet never aborts the
// rest, it just stays unresolved until the next pass.
func (s *service) settleBatch(ctx context.Context, bets []domain.Bet) int {
	log := logger.FromContext(ctx)

	settled := 0
	for i := range bets {
		ok, err := s.SettleBet(ctx, &bets[i])
		if err != nil {
			log.Warn("Failed to settle bet", "error", err, "bet_id", bets[i].ID)
			continue
		}
		if ok {
			settled++
		}
	}
	return settled
}

// checkResolution returns the market's resolution, consulting the memo of
// final resolutions first so a batch over a shared market queries it once.
func (s *service) checkResolution(ctx context.Context, marketID string) (domain.Resolution, error) {
	if resolution, ok := s.finalRes.Get(marketID); ok {
		return resolution, nil
	}

	metrics.ResolutionChecks.Inc()
	resolution, err := s.resolver.CheckResolution(ctx, marketID)
	if err != nil {
		return domain.ResolutionUnresolved, fmt.Errorf("failed to check resolution: %w", err)
	}

	if resolution.Terminal() {
		s.finalRes.Add(marketID, resolution)
	}
	return resolution, nil
}
