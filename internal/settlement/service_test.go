package settlement

import (
	"context"
	"errors"
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

// MockResolver
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) CheckResolution(ctx context.Context, marketID string) (domain.Resolution, error) {
	args := m.Called(ctx, marketID)
	return args.Get(0).(domain.Resolution), args.Error(1)
}

func openBet(id int64, marketID string, position domain.Position) domain.Bet {
	return domain.Bet{
		ID:         id,
		PlayerID:   1,
		Platform:   domain.PlatformPolymarket,
		MarketID:   marketID,
		Position:   position,
		PriceCents: 25,
		StakeCents: 100,
	}
}

func TestSettleBetWin(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	svc := NewService(repo, resolver)

	bet := openBet(1, "m1", domain.PositionYes)
	resolver.On("CheckResolution", mock.Anything, "m1").Return(domain.ResolutionYes, nil)
	// $1 at 25c pays $4
	repo.On("ResolveBet", mock.Anything, int64(1), domain.OutcomeWin, 400, mock.Anything).Return(nil)

	settled, err := svc.SettleBet(context.Background(), &bet)
	require.NoError(t, err)
	assert.True(t, settled)
	repo.AssertExpectations(t)
}

func TestSettleBetLoss(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	svc := NewService(repo, resolver)

	bet := openBet(2, "m2", domain.PositionNo)
	resolver.On("CheckResolution", mock.Anything, "m2").Return(domain.ResolutionYes, nil)
	repo.On("ResolveBet", mock.Anything, int64(2), domain.OutcomeLoss, 0, mock.Anything).Return(nil)

	settled, err := svc.SettleBet(context.Background(), &bet)
	require.NoError(t, err)
	assert.True(t, settled)
	repo.AssertExpectations(t)
}

func TestSettleBetVoidPaysNothing(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	svc := NewService(repo, resolver)

	resolver.On("CheckResolution", mock.Anything, "mv").Return(domain.ResolutionVoid, nil)

	// Both sides of a voided market lose
	for i, position := range []domain.Position{domain.PositionYes, domain.PositionNo} {
		bet := openBet(int64(10+i), "mv", position)
		repo.On("ResolveBet", mock.Anything, bet.ID, domain.OutcomeLoss, 0, mock.Anything).Return(nil)

		settled, err := svc.SettleBet(context.Background(), &bet)
		require.NoError(t, err)
		assert.True(t, settled)
	}
}

func TestSettleBetUnresolvedIsNoOp(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	svc := NewService(repo, resolver)

	bet := openBet(3, "m3", domain.PositionYes)
	resolver.On("CheckResolution", mock.Anything, "m3").Return(domain.ResolutionUnresolved, nil).Twice()

	// Still-unresolved markets return false on every attempt
	for range 2 {
		settled, err := svc.SettleBet(context.Background(), &bet)
		require.NoError(t, err)
		assert.False(t, settled)
	}
	repo.AssertNotCalled(t, "ResolveBet")
}

func TestSettleBetAlreadyResolvedIsNoOp(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	svc := NewService(repo, resolver)

	outcome := domain.OutcomeWin
	payout := 400
	bet := openBet(4, "m4", domain.PositionYes)
	bet.Outcome = &outcome
	bet.PayoutCents = &payout

	settled, err := svc.SettleBet(context.Background(), &bet)
	require.NoError(t, err)
	assert.False(t, settled)
	resolver.AssertNotCalled(t, "CheckResolution")
	repo.AssertNotCalled(t, "ResolveBet")
}

func TestSettleBetUnsupportedPlatform(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	svc := NewService(repo, resolver)

	bet := openBet(5, "m5", domain.PositionYes)
	bet.Platform = "kalshi"

	settled, err := svc.SettleBet(context.Background(), &bet)
	require.NoError(t, err)
	assert.False(t, settled)
	resolver.AssertNotCalled(t, "CheckResolution")
}

func TestSettleAllSharedMarketQueriesOnce(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	svc := NewService(repo, resolver)

	bets := []domain.Bet{
		openBet(20, "shared", domain.PositionYes),
		openBet(21, "shared", domain.PositionNo),
		openBet(22, "other", domain.PositionYes),
	}
	repo.On("GetUnresolvedBets", mock.Anything).Return(bets, nil)
	// The shared market resolves once; the memo serves the second bet
	resolver.On("CheckResolution", mock.Anything, "shared").Return(domain.ResolutionYes, nil).Once()
	resolver.On("CheckResolution", mock.Anything, "other").Return(domain.ResolutionUnresolved, nil).Once()
	repo.On("ResolveBet", mock.Anything, int64(20), domain.OutcomeWin, 400, mock.Anything).Return(nil)
	repo.On("ResolveBet", mock.Anything, int64(21), domain.OutcomeLoss, 0, mock.Anything).Return(nil)

	count, err := svc.SettleAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	resolver.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestSettlePlayerContinuesPastFailures(t *testing.T) {
	repo := new(MockRepository)
	resolver := new(MockResolver)
	svc := NewService(repo, resolver)

	bets := []domain.Bet{
		openBet(30, "bad", domain.PositionYes),
		openBet(31, "good", domain.PositionYes),
	}
	repo.On("GetUnresolvedBetsForPlayer", mock.Anything, int64(1)).Return(bets, nil)
	resolver.On("CheckResolution", mock.Anything, "bad").Return(domain.ResolutionYes, nil)
	repo.On("ResolveBet", mock.Anything, int64(30), domain.OutcomeWin, 400, mock.Anything).Return(errors.New("write failed"))
	resolver.On("CheckResolution", mock.Anything, "good").Return(domain.ResolutionYes, nil)
	repo.On("ResolveBet", mock.Anything, int64(31), domain.OutcomeWin, 400, mock.Anything).Return(nil)

	count, err := svc.SettlePlayer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
