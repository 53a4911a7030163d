package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// VictoryRetention is how long a victory stays on the server before the
// maintenance scheduler removes it together with its template.
const VictoryRetention = 7 * 24 * time.Hour

// Victory is the terminal scoring record of a completed chain. It is created
// at most once per template.
type Victory struct {
	ID            uuid.UUID
	TemplateID    uuid.UUID
	ReceiverIDs   []uuid.UUID // The full participant set of the winning chain at completion.
	PointsAwarded int
	CreatedAt     time.Time
}

// HasCollaborated reports whether the user received points from this victory.
func (v *Victory) HasCollaborated(userID uuid.UUID) bool {
	return slices.Contains(v.ReceiverIDs, userID)
}

// ShouldBeRemoved reports whether the victory is old enough to be deleted.
func (v *Victory) ShouldBeRemoved(now time.Time, retention time.Duration) bool {
	return now.After(v.CreatedAt.Add(retention))
}
