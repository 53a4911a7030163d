package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShoutCooldown is the minimum time a user must wait between shouts.
const ShoutCooldown = 15 * time.Minute

// User represents a single registered player.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	UserName     string    // The unique display name chosen at registration.
	PasswordHash string    // Salted hash of the user's password; never exposed outward.
	Location     GeoPoint  // The last location reported by the user, updated on every shout/listen action.
	LastShoutAt  time.Time // When the user last originated or forwarded a shout.
	Points       int       // Accumulated victory points, never negative.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanShout reports whether the cooldown period since the user's last shout
// has fully elapsed at the given moment.
func (u *User) CanShout(now time.Time, cooldown time.Duration) bool {
	return now.After(u.LastShoutAt.Add(cooldown))
}
