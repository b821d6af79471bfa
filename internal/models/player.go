// internal/models/player.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Player is one connected member of a room. The ID is ephemeral and scoped to
// the websocket connection; it carries no identity beyond the connection's
// lifetime.
type Player struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	IsArtist bool      `json:"isArtist"`
	Score    int       `json:"score"`

	// Streak counts consecutive rounds in which the player scored. It is not
	// part of the public roster payload.
	Streak int `json:"-"`

	// MutedUntil is zero unless a report-triggered chat mute is in effect.
	MutedUntil time.Time `json:"-"`
}

// Muted reports whether the player's chat mute is still in effect at now.
func (p *Player) Muted(now time.Time) bool {
	return !p.MutedUntil.IsZero() && now.Before(p.MutedUntil)
}
