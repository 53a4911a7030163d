package service

import (
	"relay/internal/domain/entity"
)

// DefaultReachMeters is how far a shout carries when no per-shout reach
// applies. The distance check is strict: a listener exactly at the reach
// boundary does not hear the shout.
const DefaultReachMeters = 1000.0

// DefaultBasePoints scales victory rewards with chain length.
const DefaultBasePoints = 10

// ReachPolicy decides how far a given shout carries in meters.
type ReachPolicy interface {
	ReachOf(shout *entity.Shout) float64
}

// PointsPolicy decides how many points a completed chain is worth.
type PointsPolicy interface {
	PointsFor(template *entity.Template, receiverIDs int) int
}

// FixedReachPolicy gives every shout the same reach.
type FixedReachPolicy struct {
	meters float64
}

// NewFixedReachPolicy returns a reach policy with the given radius; a
// non-positive radius falls back to the default.
func NewFixedReachPolicy(meters float64) *FixedReachPolicy {
	if meters <= 0 {
		meters = DefaultReachMeters
	}

	return &FixedReachPolicy{meters: meters}
}

// ReachOf implements ReachPolicy.
func (p *FixedReachPolicy) ReachOf(_ *entity.Shout) float64 {
	return p.meters
}

// ParticipantPointsPolicy awards base points per chain participant, so longer
// relays are worth more.
type ParticipantPointsPolicy struct {
	basePoints int
}

// NewParticipantPointsPolicy returns a points policy with the given base; a
// non-positive base falls back to the default.
func NewParticipantPointsPolicy(basePoints int) *ParticipantPointsPolicy {
	if basePoints <= 0 {
		basePoints = DefaultBasePoints
	}

	return &ParticipantPointsPolicy{basePoints: basePoints}
}

// PointsFor implements PointsPolicy.
func (p *ParticipantPointsPolicy) PointsFor(_ *entity.Template, receiverIDs int) int {
	if receiverIDs < 1 {
		receiverIDs = 1
	}

	return p.basePoints * receiverIDs
}
