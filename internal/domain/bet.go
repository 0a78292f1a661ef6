package domain

import "time"

// Position is the side of a binary market a bet backs.
type Position string

const (
	PositionYes Position = "yes"
	PositionNo  Position = "no"
)

// Valid reports whether p is one of the two supported positions.
func (p Position) Valid() bool {
	return p == PositionYes || p == PositionNo
}

// Outcome is the terminal state of a settled bet.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
)

// Resolution is the final state reported by the market provider.
type Resolution string

const (
	ResolutionYes        Resolution = "yes"
	ResolutionNo         Resolution = "no"
	ResolutionVoid       Resolution = "void"
	ResolutionUnresolved Resolution = "unresolved"
)

// Terminal reports whether the resolution is final. Terminal resolutions
// never change on a later provider query.
func (r Resolution) Terminal() bool {
	return r == ResolutionYes || r == ResolutionNo || r == ResolutionVoid
}

// Supported platforms.
const (
	PlatformPolymarket = "polymarket"
)

// MaxMarketTitleLen bounds the stored market title.
const MaxMarketTitleLen = 200

// Bet is a single wager on a binary prediction market. A bet is created
// unresolved and mutated exactly once, when the settlement engine commits
// its outcome; after that it is immutable.
type Bet struct {
	ID          int64    `json:"id"`
	PlayerID    int64    `json:"player_id"`
	Platform    string   `json:"platform"`
	MarketID    string   `json:"market_id"`
	MarketTitle string   `json:"market_title"`
	Position    Position `json:"position"`
	PriceCents  int      `json:"price_cents"`
	StakeCents  int      `json:"stake_cents"`

	PlacedAt    time.Time `json:"placed_at"`
	PlacedYear  int       `json:"placed_year"`
	PlacedMonth int       `json:"placed_month"`

	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
	Outcome     *Outcome   `json:"outcome,omitempty"`
	PayoutCents *int       `json:"payout_cents,omitempty"`
}

// Resolved reports whether the bet has reached its terminal state.
func (b *Bet) Resolved() bool {
	return b.Outcome != nil
}

// PotentialPayoutCents is the payout this bet would earn on a win:
// the stake scaled by the inverse of the entry price, floored to whole cents.
func (b *Bet) PotentialPayoutCents() int {
	return PayoutCents(b.StakeCents, b.PriceCents)
}

// PayoutCents computes the win payout for a stake bought at priceCents.
// At a 50c price the payout is exactly twice the stake.
func PayoutCents(stakeCents, priceCents int) int {
	if priceCents <= 0 {
		return 0
	}
	return stakeCents * 100 / priceCents
}

// MarketInfo is a point-in-time snapshot of a market from the provider.
// It is produced fresh on every lookup and never persisted or cached.
type MarketInfo struct {
	Platform   string     `json:"platform"`
	MarketID   string     `json:"market_id"`
	Title      string     `json:"title"`
	YesCents   int        `json:"yes_cents"`
	NoCents    int        `json:"no_cents"`
	Resolved   bool       `json:"resolved"`
	Resolution Resolution `json:"resolution,omitempty"`
}

// PriceFor returns the snapshot price in cents for the given position.
func (m *MarketInfo) PriceFor(p Position) int {
	if p == PositionYes {
		return m.YesCents
	}
	return m.NoCents
}

// LeaderboardEntry is one player's derived standing for a season.
type LeaderboardEntry struct {
	DiscordID       string `json:"discord_id"`
	TotalCents      int    `json:"total_cents"`
	BiggestWinCents int    `json:"biggest_win_cents"`
	PendingCount    int    `json:"pending_count"`
	MaxReturnCents  int    `json:"max_return_cents"`
	RemainingBets   int    `json:"remaining_bets"`
}
