package repository

import (
	"context"

	"github.com/osse101/GambaBot_Go/internal/domain"
)

// Player defines the data access interface required by the registration service
type Player interface {
	// GetPlayer returns the player registered for the given year, or nil if
	// none exists.
	GetPlayer(ctx context.Context, discordID string, year int) (*domain.Player, error)

	// RegisterPlayer creates a player record for the given year. Returns
	// domain.ErrAlreadyRegistered if one already exists.
	RegisterPlayer(ctx context.Context, discordID string, year int) (*domain.Player, error)
}
