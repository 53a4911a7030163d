package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

const (
	// HeardWindow is how long a shout can be heard after it was shouted.
	HeardWindow = 15 * time.Minute

	// ReshoutWindow is how long a shout can be shouted forward after it was
	// shouted last. The same window gates template extension.
	ReshoutWindow = 45 * time.Minute
)

// Shout is one immutable step in a propagating chain. Once created it is
// never updated; a reshout creates a new Shout referencing the same template.
type Shout struct {
	ID             uuid.UUID
	TemplateID     uuid.UUID
	ParticipantIDs []uuid.UUID // Ordered, append-only list of everyone who carried the chain this far.
	Origin         GeoPoint    // Where this step of the chain was shouted from.
	CreatedAt      time.Time
}

// CanBeHeard reports whether the shout is still audible at the given moment.
// The boundary is inclusive: a shout exactly HeardWindow old is still heard.
func (s *Shout) CanBeHeard(now time.Time) bool {
	return !now.After(s.CreatedAt.Add(HeardWindow))
}

// CanBeReshouted reports whether the shout can still be shouted forward.
func (s *Shout) CanBeReshouted(now time.Time) bool {
	return !now.After(s.CreatedAt.Add(ReshoutWindow))
}

// CanBeHeardBy reports whether the given user can hear this shout: it must
// still be audible and the user must not already be part of the chain.
func (s *Shout) CanBeHeardBy(userID uuid.UUID, now time.Time) bool {
	if !s.CanBeHeard(now) {
		return false
	}

	return !s.HasParticipant(userID)
}

// HasParticipant reports whether the user already carried this chain.
func (s *Shout) HasParticipant(userID uuid.UUID) bool {
	return slices.Contains(s.ParticipantIDs, userID)
}

// Reaches reports whether the shout is audible at the given location, i.e.
// the location lies strictly within the shout's reach from its origin.
func (s *Shout) Reaches(location GeoPoint, reach float64) bool {
	return s.Origin.DistanceTo(location) < reach
}
