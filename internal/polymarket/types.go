package polymarket

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Raw DTOs for the Gamma API. Only used inside this package; conversion to
// domain entities happens in markets.go.

// stringList is a JSON field Gamma encodes either as an array of strings or
// as a string containing a JSON array (e.g. `"[\"Yes\", \"No\"]"`). This is
// the single decode point for that union; callers never inspect raw types.
//
// Anything else decodes to an empty list rather than an error: a malformed
// field must not fail the whole market decode, because a resolved market
// with unusable prices has to reach the void branch instead of being
// retried forever.
type stringList []string

func (s *stringList) UnmarshalJSON(data []byte) error {
	// Array form
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	// String-wrapped form
	var wrapped string
	if err := json.Unmarshal(data, &wrapped); err != nil {
		*s = nil
		return nil
	}
	if err := json.Unmarshal([]byte(wrapped), &list); err != nil {
		*s = nil
		return nil
	}
	*s = list
	return nil
}

// prices interprets the list as a [yes, no] probability pair.
func (s stringList) prices() (yes, no float64, err error) {
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("prices: expected 2 outcomes, got %d", len(s))
	}
	yes, err = strconv.ParseFloat(s[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("prices: %w", err)
	}
	no, err = strconv.ParseFloat(s[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("prices: %w", err)
	}
	return yes, no, nil
}

// binary reports whether the outcome set is exactly Yes/No.
func (s stringList) binary() bool {
	return len(s) == 2 && s[0] == "Yes" && s[1] == "No"
}

// gammaMarket is a market as returned by GET /markets.
type gammaMarket struct {
	ID                  string     `json:"id"`
	Slug                string     `json:"slug"`
	Question            string     `json:"question"`
	Title               string     `json:"title"`
	Outcomes            stringList `json:"outcomes"`
	OutcomePrices       stringList `json:"outcomePrices"`
	Closed              bool       `json:"closed"`
	UMAResolutionStatus string     `json:"umaResolutionStatus"`
}

// gammaEvent is an event as returned by GET /events. An event groups one or
// more markets under a shared slug.
type gammaEvent struct {
	ID      string        `json:"id"`
	Slug    string        `json:"slug"`
	Title   string        `json:"title"`
	Markets []gammaMarket `json:"markets"`
}
