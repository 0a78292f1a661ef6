package wager

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GambaBot_Go/internal/domain"
	"github.com/osse101/GambaBot_Go/internal/logger"
	"github.com/osse101/GambaBot_Go/internal/metrics"
	"github.com/osse101/GambaBot_Go/internal/repository"
)

// MarketService defines the market lookup interface required for admission
type MarketService interface {
	ResolveMarket(ctx context.Context, reference string) (*domain.MarketInfo, error)
}

// SettlementService defines the settlement interface used before listing bets
type SettlementService interface {
	SettlePlayer(ctx context.Context, playerID int64) (int, error)
}

// PlaceBetResult is the outcome of a committed bet
type PlaceBetResult struct {
	Bet                  *domain.Bet `json:"bet"`
	RemainingBets        int         `json:"remaining_bets"`
	PotentialPayoutCents int         `json:"potential_payout_cents"`
}

// BetList is a player's bets together with derived season totals
type BetList struct {
	Bets                  []domain.Bet `json:"bets"`
	RemainingBets         int          `json:"remaining_bets"`
	TotalCents            int          `json:"total_cents"`
	BiggestWinCents       int          `json:"biggest_win_cents"`
	PendingPotentialCents int          `json:"pending_potential_cents"`
}

// MaxReturnCents is the season total plus what pending bets could still pay.
func (l *BetList) MaxReturnCents() int {
	return l.TotalCents + l.PendingPotentialCents
}

// Service defines the interface for wager operations
type Service interface {
	// PlaceBet validates a bet request against registration, quota and
	// market state, then commits it. All rejections are sentinel errors
	// from the domain package.
	PlaceBet(ctx context.Context, discordID, reference string, position domain.Position, now time.Time) (*PlaceBetResult, error)

	// ListBets settles the player's open bets against the latest market
	// resolutions, then returns all bets with season totals.
	ListBets(ctx context.Context, discordID string, now time.Time) (*BetList, error)
}

type service struct {
	repo          repository.Bet
	marketSvc     MarketService
	settlementSvc SettlementService
}

// NewService creates a new wager service
func NewService(repo repository.Bet, marketSvc MarketService, settlementSvc SettlementService) Service {
	return &service{
		repo:          repo,
		marketSvc:     marketSvc,
		settlementSvc: settlementSvc,
	}
}

// PlaceBet runs the admission checks in order, short-circuiting on the first
// failure: registered, quota, market exists, no duplicate, market open,
// price valid. The final quota enforcement happens inside the atomic insert,
// so two requests racing on the last remaining bet cannot both commit.
func (s *service) PlaceBet(ctx context.Context, discordID, reference string, position domain.Position, now time.Time) (*PlaceBetResult, error) {
	log := logger.FromContext(ctx)

	if !position.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPosition, position)
	}

	player, err := s.repo.GetPlayer(ctx, discordID, now.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	if player == nil {
		return nil, domain.ErrNotRegistered
	}

	month := int(now.Month())
	used, err := s.repo.CountBetsInMonth(ctx, player.ID, now.Year(), month)
	if err != nil {
		return nil, fmt.Errorf("failed to count bets: %w", err)
	}
	if domain.RemainingBets(month, used) <= 0 {
		return nil, domain.ErrNoBetsRemaining
	}

	market, err := s.marketSvc.ResolveMarket(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve market: %w", err)
	}
	if market == nil {
		metrics.MarketLookupFailures.Inc()
		return nil, domain.ErrMarketNotFound
	}

	duplicate, err := s.repo.HasBetOnMarket(ctx, player.ID, market.MarketID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate bet: %w", err)
	}
	if duplicate {
		return nil, domain.ErrDuplicateBet
	}

	if market.Resolved {
		return nil, domain.ErrMarketClosed
	}

	// A side priced at 0 or 100 cents is a foregone conclusion, not a bet
	priceCents := market.PriceFor(position)
	if priceCents <= 0 || priceCents >= 100 {
		return nil, domain.ErrInvalidPrice
	}

	bet, err := s.repo.CreateBet(ctx, repository.NewBet{
		PlayerID:    player.ID,
		Platform:    market.Platform,
		MarketID:    market.MarketID,
		MarketTitle: truncateTitle(market.Title),
		Position:    position,
		PriceCents:  priceCents,
	}, domain.MonthlyAllowance(month), now)
	if err != nil {
		return nil, err
	}

	metrics.BetsPlaced.Inc()
	log.Info("Bet placed",
		"discord_id", discordID,
		"market_id", bet.MarketID,
		"position", bet.Position,
		"price_cents", bet.PriceCents,
		"stake_cents", bet.StakeCents)

	return &PlaceBetResult{
		Bet:                  bet,
		RemainingBets:        domain.RemainingBets(month, used+1),
		PotentialPayoutCents: bet.PotentialPayoutCents(),
	}, nil
}

func (s *service) ListBets(ctx context.Context, discordID string, now time.Time) (*BetList, error) {
	log := logger.FromContext(ctx)

	player, err := s.repo.GetPlayer(ctx, discordID, now.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	if player == nil {
		return nil, domain.ErrNotRegistered
	}

	// Catch up open bets before reporting, so the list reflects the latest
	// known resolutions.
	if _, err := s.settlementSvc.SettlePlayer(ctx, player.ID); err != nil {
		log.Warn("Failed to settle bets before listing", "error", err, "player_id", player.ID)
	}

	bets, err := s.repo.GetBetsForPlayer(ctx, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}

	month := int(now.Month())
	used, err := s.repo.CountBetsInMonth(ctx, player.ID, now.Year(), month)
	if err != nil {
		return nil, fmt.Errorf("failed to count bets: %w", err)
	}

	list := &BetList{
		Bets:          bets,
		RemainingBets: domain.RemainingBets(month, used),
	}
	for i := range bets {
		b := &bets[i]
		switch {
		case !b.Resolved():
			list.PendingPotentialCents += b.PotentialPayoutCents()
		case *b.Outcome == domain.OutcomeWin && b.PayoutCents != nil:
			list.TotalCents += *b.PayoutCents
			if *b.PayoutCents > list.BiggestWinCents {
				list.BiggestWinCents = *b.PayoutCents
			}
		}
	}

	return list, nil
}

// truncateTitle bounds the stored market title without splitting a rune.
func truncateTitle(title string) string {
	runes := []rune(title)
	if len(runes) <= domain.MaxMarketTitleLen {
		return title
	}
	return string(runes[:domain.MaxMarketTitleLen])
}
