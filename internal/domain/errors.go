package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Registration errors
	ErrMsgPlayerNotFound     = "player not found"
	ErrMsgNotRegistered      = "player is not registered for this year"
	ErrMsgAlreadyRegistered  = "player is already registered for this year"
	ErrMsgRegistrationClosed = "registration is only open in January"

	// Bet placement errors
	ErrMsgNoBetsRemaining = "no bets remaining this month"
	ErrMsgMarketNotFound  = "market not found"
	ErrMsgDuplicateBet    = "a bet is already placed on this market"
	ErrMsgMarketClosed    = "market has already resolved"
	ErrMsgInvalidPrice    = "invalid market price"

	// Input errors
	ErrMsgInvalidPosition = "position must be yes or no"
	ErrMsgInvalidInput    = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Registration errors
	ErrPlayerNotFound     = errors.New(ErrMsgPlayerNotFound)
	ErrNotRegistered      = errors.New(ErrMsgNotRegistered)
	ErrAlreadyRegistered  = errors.New(ErrMsgAlreadyRegistered)
	ErrRegistrationClosed = errors.New(ErrMsgRegistrationClosed)

	// Bet placement errors, checked in admission order
	ErrNoBetsRemaining = errors.New(ErrMsgNoBetsRemaining)
	ErrMarketNotFound  = errors.New(ErrMsgMarketNotFound)
	ErrDuplicateBet    = errors.New(ErrMsgDuplicateBet)
	ErrMarketClosed    = errors.New(ErrMsgMarketClosed)
	ErrInvalidPrice    = errors.New(ErrMsgInvalidPrice)

	// Input errors
	ErrInvalidPosition = errors.New(ErrMsgInvalidPosition)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
)
