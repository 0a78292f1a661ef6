package wager

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GambaBot_Go/internal/domain"
	"github.com/osse101/GambaBot_Go/internal/repository"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetPlayer(ctx context.Context, discordID string, year int) (*domain.Player, error) {
	args := m.Called(ctx, discordID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) RegisterPlayer(ctx context.Context, discordID string, year int) (*domain.Player, error) {
	args := m.Called(ctx, discordID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockRepository) CountBetsInMonth(ctx context.Context, playerID int64, year, month int) (int, error) {
	args := m.Called(ctx, playerID, year, month)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) CreateBet(ctx context.Context, bet repository.NewBet, maxBets int, now time.Time) (*domain.Bet, error) {
	args := m.Called(ctx, bet, maxBets, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bet), args.Error(1)
}

func (m *MockRepository) HasBetOnMarket(ctx context.Context, playerID int64, marketID string) (bool, error) {
	args := m.Called(ctx, playerID, marketID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) ResolveBet(ctx context.Context, betID int64, outcome domain.Outcome, payoutCents int, resolvedAt time.Time) error {
	args := m.Called(ctx, betID, outcome, payoutCents, resolvedAt)
	return args.Error(0)
}

func (m *MockRepository) GetBetsForPlayer(ctx context.Context, playerID int64) ([]domain.Bet, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

func (m *MockRepository) GetUnresolvedBets(ctx context.Context) ([]domain.Bet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

func (m *MockRepository) GetUnresolvedBetsForPlayer(ctx context.Context, playerID int64) ([]domain.Bet, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bet), args.Error(1)
}

func (m *MockRepository) GetLeaderboard(ctx context.Context, year, currentMonth int) ([]repository.LeaderboardRow, error) {
	args := m.Called(ctx, year, currentMonth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.LeaderboardRow), args.Error(1)
}

// MockMarketService
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) ResolveMarket(ctx context.Context, reference string) (*domain.MarketInfo, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketInfo), args.Error(1)
}

// MockSettlement
type MockSettlement struct {
	mock.Mock
}

func (m *MockSettlement) SettlePlayer(ctx context.Context, playerID int64) (int, error) {
	args := m.Called(ctx, playerID)
	return args.Int(0), args.Error(1)
}

const marketURL = "https://polymarket.com/event/test-event/test-market"

var (
	january  = time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	february = time.Date(2025, time.February, 15, 12, 0, 0, 0, time.UTC)

	testPlayer = &domain.Player{ID: 1, DiscordID: "u1", Year: 2025}
)

func openMarket() *domain.MarketInfo {
	return &domain.MarketInfo{
		Platform: domain.PlatformPolymarket,
		MarketID: "m1",
		Title:    "Will it happen?",
		YesCents: 8,
		NoCents:  93,
	}
}

func newTestService() (*MockRepository, *MockMarketService, *MockSettlement, Service) {
	repo := new(MockRepository)
	market := new(MockMarketService)
	settlement := new(MockSettlement)
	return repo, market, settlement, NewService(repo, market, settlement)
}

func TestPlaceBet(t *testing.T) {
	repo, market, _, svc := newTestService()

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(3, nil)
	market.On("ResolveMarket", mock.Anything, marketURL).Return(openMarket(), nil)
	repo.On("HasBetOnMarket", mock.Anything, int64(1), "m1").Return(false, nil)

	committed := &domain.Bet{
		ID:         42,
		PlayerID:   1,
		Platform:   domain.PlatformPolymarket,
		MarketID:   "m1",
		Position:   domain.PositionYes,
		PriceCents: 8,
		StakeCents: 100,
	}
	repo.On("CreateBet", mock.Anything, mock.MatchedBy(func(b repository.NewBet) bool {
		return b.PlayerID == 1 && b.MarketID == "m1" && b.Position == domain.PositionYes && b.PriceCents == 8
	}), 16, january).Return(committed, nil)

	result, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionYes, january)
	require.NoError(t, err)

	assert.Equal(t, committed, result.Bet)
	assert.Equal(t, 12, result.RemainingBets)
	// $1 stake at 8c pays $12.50
	assert.Equal(t, 1250, result.PotentialPayoutCents)
	repo.AssertExpectations(t)
}

func TestPlaceBetNotRegistered(t *testing.T) {
	repo, _, _, svc := newTestService()

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(nil, nil)

	_, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionYes, january)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}

func TestPlaceBetQuotaExhausted(t *testing.T) {
	repo, market, _, svc := newTestService()

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	// All 16 January bets used
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(16, nil)

	_, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionYes, january)
	assert.ErrorIs(t, err, domain.ErrNoBetsRemaining)
	market.AssertNotCalled(t, "ResolveMarket")
}

func TestPlaceBetQuotaResetsInFebruary(t *testing.T) {
	repo, market, _, svc := newTestService()

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	// 16 bets in January don't count against February's single bet
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 2).Return(0, nil)
	market.On("ResolveMarket", mock.Anything, marketURL).Return(openMarket(), nil)
	repo.On("HasBetOnMarket", mock.Anything, int64(1), "m1").Return(false, nil)
	repo.On("CreateBet", mock.Anything, mock.Anything, 1, february).Return(&domain.Bet{ID: 50, PriceCents: 8, StakeCents: 100}, nil)

	result, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionYes, february)
	require.NoError(t, err)
	assert.Equal(t, 0, result.RemainingBets)
}

func TestPlaceBetMarketNotFound(t *testing.T) {
	repo, market, _, svc := newTestService()

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(0, nil)
	market.On("ResolveMarket", mock.Anything, "https://polymarket.com/market/unknown").Return(nil, nil)

	_, err := svc.PlaceBet(context.Background(), "u1", "https://polymarket.com/market/unknown", domain.PositionYes, january)
	assert.ErrorIs(t, err, domain.ErrMarketNotFound)
}

func TestPlaceBetDuplicateMarket(t *testing.T) {
	repo, market, _, svc := newTestService()

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(0, nil)
	market.On("ResolveMarket", mock.Anything, marketURL).Return(openMarket(), nil)
	repo.On("HasBetOnMarket", mock.Anything, int64(1), "m1").Return(true, nil)

	// Rejected regardless of the side chosen
	for _, position := range []domain.Position{domain.PositionYes, domain.PositionNo} {
		_, err := svc.PlaceBet(context.Background(), "u1", marketURL, position, january)
		assert.ErrorIs(t, err, domain.ErrDuplicateBet)
	}
	repo.AssertNotCalled(t, "CreateBet")
}

func TestPlaceBetMarketClosed(t *testing.T) {
	repo, market, _, svc := newTestService()

	closed := openMarket()
	closed.Resolved = true

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(0, nil)
	market.On("ResolveMarket", mock.Anything, marketURL).Return(closed, nil)
	repo.On("HasBetOnMarket", mock.Anything, int64(1), "m1").Return(false, nil)

	_, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionYes, january)
	assert.ErrorIs(t, err, domain.ErrMarketClosed)
}

func TestPlaceBetInvalidPrice(t *testing.T) {
	repo, market, _, svc := newTestService()

	bad := openMarket()
	bad.NoCents = 0

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(0, nil)
	market.On("ResolveMarket", mock.Anything, marketURL).Return(bad, nil)
	repo.On("HasBetOnMarket", mock.Anything, int64(1), "m1").Return(false, nil)

	_, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionNo, january)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestPlaceBetRejectsCertainty(t *testing.T) {
	repo, market, _, svc := newTestService()

	// An open market trading at probability 1.0 rounds to 100 cents, which
	// the bets table will not accept; it must be rejected at admission.
	sure := openMarket()
	sure.YesCents = 100
	sure.NoCents = 1

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(0, nil)
	market.On("ResolveMarket", mock.Anything, marketURL).Return(sure, nil)
	repo.On("HasBetOnMarket", mock.Anything, int64(1), "m1").Return(false, nil)

	_, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionYes, january)
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
	repo.AssertNotCalled(t, "CreateBet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPlaceBetInvalidPosition(t *testing.T) {
	_, _, _, svc := newTestService()

	_, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.Position("maybe"), january)
	assert.ErrorIs(t, err, domain.ErrInvalidPosition)
}

func TestPlaceBetLosesCommitRace(t *testing.T) {
	repo, market, _, svc := newTestService()

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	// Pre-check sees one bet remaining, but a concurrent request takes it
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(15, nil)
	market.On("ResolveMarket", mock.Anything, marketURL).Return(openMarket(), nil)
	repo.On("HasBetOnMarket", mock.Anything, int64(1), "m1").Return(false, nil)
	repo.On("CreateBet", mock.Anything, mock.Anything, 16, january).Return(nil, domain.ErrNoBetsRemaining)

	_, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionYes, january)
	assert.ErrorIs(t, err, domain.ErrNoBetsRemaining)
}

func TestPlaceBetTruncatesTitle(t *testing.T) {
	repo, market, _, svc := newTestService()

	long := openMarket()
	long.Title = strings.Repeat("x", 500)

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 1).Return(0, nil)
	market.On("ResolveMarket", mock.Anything, marketURL).Return(long, nil)
	repo.On("HasBetOnMarket", mock.Anything, int64(1), "m1").Return(false, nil)
	repo.On("CreateBet", mock.Anything, mock.MatchedBy(func(b repository.NewBet) bool {
		return len([]rune(b.MarketTitle)) == domain.MaxMarketTitleLen
	}), 16, january).Return(&domain.Bet{ID: 60, PriceCents: 8, StakeCents: 100}, nil)

	_, err := svc.PlaceBet(context.Background(), "u1", marketURL, domain.PositionYes, january)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListBets(t *testing.T) {
	repo, _, settlement, svc := newTestService()

	win := domain.OutcomeWin
	loss := domain.OutcomeLoss
	payout1 := 400
	payout2 := 250
	zero := 0
	bets := []domain.Bet{
		{ID: 1, Position: domain.PositionYes, PriceCents: 50, StakeCents: 100},
		{ID: 2, Outcome: &win, PayoutCents: &payout1, PriceCents: 25, StakeCents: 100},
		{ID: 3, Outcome: &win, PayoutCents: &payout2, PriceCents: 40, StakeCents: 100},
		{ID: 4, Outcome: &loss, PayoutCents: &zero, PriceCents: 60, StakeCents: 100},
	}

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(testPlayer, nil)
	settlement.On("SettlePlayer", mock.Anything, int64(1)).Return(1, nil)
	repo.On("GetBetsForPlayer", mock.Anything, int64(1)).Return(bets, nil)
	repo.On("CountBetsInMonth", mock.Anything, int64(1), 2025, 2).Return(1, nil)

	list, err := svc.ListBets(context.Background(), "u1", february)
	require.NoError(t, err)

	assert.Len(t, list.Bets, 4)
	assert.Equal(t, 650, list.TotalCents)
	assert.Equal(t, 400, list.BiggestWinCents)
	// Pending $1 at 50c could still pay $2
	assert.Equal(t, 200, list.PendingPotentialCents)
	assert.Equal(t, 850, list.MaxReturnCents())
	assert.Equal(t, 0, list.RemainingBets)
	settlement.AssertCalled(t, "SettlePlayer", mock.Anything, int64(1))
}

func TestListBetsNotRegistered(t *testing.T) {
	repo, _, _, svc := newTestService()

	repo.On("GetPlayer", mock.Anything, "u9", 2025).Return(nil, nil)

	_, err := svc.ListBets(context.Background(), "u9", february)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}
