package entity

import (
	"time"

	"github.com/google/uuid"
)

// LoginKey is a persisted authorization credential issued at login. Expired
// keys are purged by the maintenance scheduler.
type LoginKey struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	KeyHash   string // Hash of the opaque key handed to the client; the plaintext is never stored.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the key is no longer valid at the given moment.
func (k *LoginKey) Expired(now time.Time) bool {
	return now.After(k.ExpiresAt)
}
