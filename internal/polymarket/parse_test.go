package polymarket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		eventSlug  string
		marketSlug string
	}{
		{
			name:       "event and market",
			url:        "https://polymarket.com/event/us-election/will-x-win",
			marketSlug: "will-x-win",
		},
		{
			name:      "event only",
			url:       "https://polymarket.com/event/fed-decision-march",
			eventSlug: "fed-decision-march",
		},
		{
			name:       "direct market",
			url:        "https://polymarket.com/market/will-it-rain-tomorrow",
			marketSlug: "will-it-rain-tomorrow",
		},
		{
			name:       "query string stripped",
			url:        "https://polymarket.com/event/us-election/will-x-win?tid=123",
			marketSlug: "will-x-win",
		},
		{
			name:       "fragment stripped",
			url:        "polymarket.com/market/some-market#comments",
			marketSlug: "some-market",
		},
		{
			name: "not a polymarket url",
			url:  "https://example.com/event/foo/bar",
		},
		{
			name: "garbage",
			url:  "not a url at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eventSlug, marketSlug := ParseReference(tt.url)
			assert.Equal(t, tt.eventSlug, eventSlug)
			assert.Equal(t, tt.marketSlug, marketSlug)
		})
	}
}

func TestStringListDecode(t *testing.T) {
	var s stringList
	assert.NoError(t, s.UnmarshalJSON([]byte(`["Yes", "No"]`)))
	assert.Equal(t, stringList{"Yes", "No"}, s)

	// Gamma often string-wraps the array
	assert.NoError(t, s.UnmarshalJSON([]byte(`"[\"0.081\", \"0.919\"]"`)))
	assert.Equal(t, stringList{"0.081", "0.919"}, s)

	// Unsupported encodings decode to empty, never an error, so a bad
	// field can't sink the surrounding market object
	assert.NoError(t, s.UnmarshalJSON([]byte(`42`)))
	assert.Empty(t, s)
	assert.NoError(t, s.UnmarshalJSON([]byte(`"not json"`)))
	assert.Empty(t, s)
}

func TestStringListPrices(t *testing.T) {
	yes, no, err := stringList{"0.25", "0.75"}.prices()
	assert.NoError(t, err)
	assert.Equal(t, 0.25, yes)
	assert.Equal(t, 0.75, no)

	_, _, err = stringList{"0.25"}.prices()
	assert.Error(t, err)

	_, _, err = stringList{"abc", "0.75"}.prices()
	assert.Error(t, err)
}

func TestStringListBinary(t *testing.T) {
	assert.True(t, stringList{"Yes", "No"}.binary())
	assert.False(t, stringList{"No", "Yes"}.binary())
	assert.False(t, stringList{"Yes", "No", "Maybe"}.binary())
	assert.False(t, stringList{"Trump", "Biden"}.binary())
	assert.False(t, stringList(nil).binary())
}
