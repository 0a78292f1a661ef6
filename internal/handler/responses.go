package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/GambaBot_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. Reason is a stable machine
// code so the Discord bot can branch on it without parsing prose.
type ErrorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode to the buffer first; headers are already sent, so an encode
	// failure can only be logged.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message, reason string) {
	respondJSON(w, status, ErrorResponse{Error: message, Reason: reason})
}

// Stable reason codes returned alongside error messages
const (
	ReasonNotRegistered      = "not_registered"
	ReasonAlreadyRegistered  = "already_registered"
	ReasonRegistrationClosed = "registration_closed"
	ReasonQuotaExhausted     = "quota_exhausted"
	ReasonMarketNotFound     = "market_not_found"
	ReasonDuplicateMarket    = "duplicate_market"
	ReasonMarketClosed       = "market_closed"
	ReasonInvalidPrice       = "invalid_price"
	ReasonInvalidPosition    = "invalid_position"
	ReasonInternal           = "internal_error"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgNotRegisteredError      = "You are not registered for this year's game. Use /register in January."
	ErrMsgAlreadyRegisteredError  = "You are already registered for this year"
	ErrMsgRegistrationClosedError = "Registration is only open during January"
	ErrMsgQuotaExhaustedError     = "No bets remaining this month. Your allowance resets on the 1st."
	ErrMsgMarketNotFoundError     = "Could not find that market on Polymarket"
	ErrMsgDuplicateMarketError    = "You already have a bet on this market"
	ErrMsgMarketClosedError       = "That market has already resolved"
	ErrMsgInvalidPriceError       = "That market's prices don't allow a bet right now"
	ErrMsgInvalidPositionError    = "Position must be yes or no"
)

// mapServiceError converts domain errors to an HTTP status, user message
// and machine reason code.
func mapServiceError(err error) (int, string, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError, ReasonInternal
	}

	switch {
	case errors.Is(err, domain.ErrNotRegistered), errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusForbidden, ErrMsgNotRegisteredError, ReasonNotRegistered
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return http.StatusConflict, ErrMsgAlreadyRegisteredError, ReasonAlreadyRegistered
	case errors.Is(err, domain.ErrRegistrationClosed):
		return http.StatusForbidden, ErrMsgRegistrationClosedError, ReasonRegistrationClosed
	case errors.Is(err, domain.ErrNoBetsRemaining):
		return http.StatusTooManyRequests, ErrMsgQuotaExhaustedError, ReasonQuotaExhausted
	case errors.Is(err, domain.ErrMarketNotFound):
		return http.StatusNotFound, ErrMsgMarketNotFoundError, ReasonMarketNotFound
	case errors.Is(err, domain.ErrDuplicateBet):
		return http.StatusConflict, ErrMsgDuplicateMarketError, ReasonDuplicateMarket
	case errors.Is(err, domain.ErrMarketClosed):
		return http.StatusConflict, ErrMsgMarketClosedError, ReasonMarketClosed
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, ErrMsgInvalidPriceError, ReasonInvalidPrice
	case errors.Is(err, domain.ErrInvalidPosition):
		return http.StatusBadRequest, ErrMsgInvalidPositionError, ReasonInvalidPosition
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError, ReasonInternal
}
