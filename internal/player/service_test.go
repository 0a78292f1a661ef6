package player

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GambaBot_Go/internal/domain"
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

var january = time.Date(2025, time.January, 5, 12, 0, 0, 0, time.UTC)

func TestRegister(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	expected := &domain.Player{ID: 1, DiscordID: "u1", Year: 2025}
	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(nil, nil)
	repo.On("RegisterPlayer", mock.Anything, "u1", 2025).Return(expected, nil)

	p, err := svc.Register(context.Background(), "u1", january)
	require.NoError(t, err)
	assert.Equal(t, expected, p)
	repo.AssertExpectations(t)
}

func TestRegisterOutsideJanuary(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), "u1", time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrRegistrationClosed)
	repo.AssertNotCalled(t, "RegisterPlayer")
}

func TestRegisterTwice(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	existing := &domain.Player{ID: 1, DiscordID: "u1", Year: 2025}
	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(existing, nil)

	_, err := svc.Register(context.Background(), "u1", january)
	assert.ErrorIs(t, err, domain.ErrAlreadyRegistered)
	repo.AssertNotCalled(t, "RegisterPlayer")
}

func TestRegisterRepositoryError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetPlayer", mock.Anything, "u1", 2025).Return(nil, errors.New("connection refused"))

	_, err := svc.Register(context.Background(), "u1", january)
	assert.Error(t, err)
}

func TestGetPlayer(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	expected := &domain.Player{ID: 7, DiscordID: "u2", Year: 2025}
	repo.On("GetPlayer", mock.Anything, "u2", 2025).Return(expected, nil)

	p, err := svc.GetPlayer(context.Background(), "u2", january)
	require.NoError(t, err)
	assert.Equal(t, expected, p)
}

func TestGetPlayerNotRegistered(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("GetPlayer", mock.Anything, "u3", 2025).Return(nil, nil)

	_, err := svc.GetPlayer(context.Background(), "u3", january)
	assert.ErrorIs(t, err, domain.ErrNotRegistered)
}
