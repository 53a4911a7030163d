package entity

import (
	"time"

	"github.com/google/uuid"
)

// Template is the persistent record of one shout chain's goal: who started
// it, where it must end, and how long it can still be extended.
type Template struct {
	ID            uuid.UUID
	SenderID      uuid.UUID
	ReceiverID    *uuid.UUID // Target user; nil when the chain targets a bare end location.
	StartLocation GeoPoint
	EndLocation   GeoPoint
	LastShoutAt   time.Time // Refreshed whenever a shout extends this template's chain; never decreases.
	Completed     bool      // Transitions false->true exactly once, via the victory ledger.
	CreatedAt     time.Time
}

// CanBeShouted reports whether the template's chain can still be extended.
// The boundary is inclusive: at exactly LastShoutAt+ReshoutWindow the
// template may still be shouted.
func (t *Template) CanBeShouted(now time.Time) bool {
	return !now.After(t.LastShoutAt.Add(ReshoutWindow))
}

// EligibleForCleanup reports whether the template should be garbage
// collected: it never completed and its reshout window has elapsed.
func (t *Template) EligibleForCleanup(now time.Time) bool {
	return !t.Completed && !t.CanBeShouted(now)
}
