package player

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GambaBot_Go/internal/domain"
	"github.com/osse101/GambaBot_Go/internal/logger"
	"github.com/osse101/GambaBot_Go/internal/repository"
)

// Service defines the interface for player registration operations
type Service interface {
	// Register enrolls the Discord user into the season of now's year.
	// Registration is only open during January.
	Register(ctx context.Context, discordID string, now time.Time) (*domain.Player, error)

	// GetPlayer returns the player registered for now's year, or
	// domain.ErrNotRegistered.
	GetPlayer(ctx context.Context, discordID string, now time.Time) (*domain.Player, error)
}

type service struct {
	repo repository.Player
}

// NewService creates a new player service
func NewService(repo repository.Player) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, discordID string, now time.Time) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	year := now.Year()

	if now.Month() != time.January {
		return nil, domain.ErrRegistrationClosed
	}

	existing, err := s.repo.GetPlayer(ctx, discordID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrAlreadyRegistered, year)
	}

	p, err := s.repo.RegisterPlayer(ctx, discordID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	log.Info("Player registered", "discord_id", discordID, "year", year)
	return p, nil
}

func (s *service) GetPlayer(ctx context.Context, discordID string, now time.Time) (*domain.Player, error) {
	p, err := s.repo.GetPlayer(ctx, discordID, now.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to look up player: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotRegistered
	}
	return p, nil
}
