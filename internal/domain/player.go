package domain

import "time"

// Player represents a participant registered for one yearly season.
// A Discord user registers once per year; quotas and the leaderboard are
// scoped to the (player, year) pair.
type Player struct {
	ID           int64     `json:"id"`
	DiscordID    string    `json:"discord_id"`
	Year         int       `json:"year"`
	RegisteredAt time.Time `json:"registered_at"`
}
