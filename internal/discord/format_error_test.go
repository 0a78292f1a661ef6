package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Quota Exhausted Reason",
			err:      &APIError{StatusCode: 429, Message: "No bets remaining", Reason: "quota_exhausted"},
			expected: MsgQuotaExhausted,
		},
		{
			name:     "Not Registered Reason",
			err:      &APIError{StatusCode: 403, Message: "not registered", Reason: "not_registered"},
			expected: MsgNotRegistered,
		},
		{
			name:     "Duplicate Market Reason",
			err:      &APIError{StatusCode: 409, Message: "already placed", Reason: "duplicate_market"},
			expected: MsgDuplicateMarket,
		},
		{
			name:     "Unknown Reason Falls Back To Message",
			err:      &APIError{StatusCode: 400, Message: "strange failure", Reason: "mystery"},
			expected: "❌ strange failure",
		},
		{
			name:     "Wrapped API Error Still Mapped",
			err:      fmt.Errorf("placing bet: %w", &APIError{StatusCode: 409, Message: "closed", Reason: "market_closed"}),
			expected: MsgMarketClosed,
		},
		{
			name:     "Plain Error Decorated",
			err:      errors.New("connection refused"),
			expected: "❌ connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.err))
		})
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", formatCents(0))
	assert.Equal(t, "$1.00", formatCents(100))
	assert.Equal(t, "$12.50", formatCents(1250))
	assert.Equal(t, "$0.07", formatCents(7))
	assert.Equal(t, "-$4.00", formatCents(-400))
}
