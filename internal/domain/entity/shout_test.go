package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestShout_CanBeHeard_Boundaries(t *testing.T) {
	created := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	shout := &Shout{ID: uuid.New(), CreatedAt: created}

	assert.True(t, shout.CanBeHeard(created))
	assert.True(t, shout.CanBeHeard(created.Add(14*time.Minute+59*time.Second)))
	assert.True(t, shout.CanBeHeard(created.Add(HeardWindow)), "boundary is inclusive")
	assert.False(t, shout.CanBeHeard(created.Add(HeardWindow+time.Second)))
}

func TestShout_CanBeReshouted_Boundaries(t *testing.T) {
	created := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	shout := &Shout{ID: uuid.New(), CreatedAt: created}

	assert.True(t, shout.CanBeReshouted(created.Add(ReshoutWindow)))
	assert.False(t, shout.CanBeReshouted(created.Add(ReshoutWindow+time.Second)))
}

func TestShout_CanBeHeardBy(t *testing.T) {
	created := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	participant := uuid.New()
	stranger := uuid.New()
	shout := &Shout{
		ID:             uuid.New(),
		ParticipantIDs: []uuid.UUID{participant},
		CreatedAt:      created,
	}

	now := created.Add(5 * time.Minute)
	assert.True(t, shout.CanBeHeardBy(stranger, now))
	assert.False(t, shout.CanBeHeardBy(participant, now), "participants do not hear their own chain")
	assert.False(t, shout.CanBeHeardBy(stranger, created.Add(HeardWindow+time.Minute)))
}

func TestShout_Reaches(t *testing.T) {
	origin := NewGeoPoint(60.45, 22.28)
	shout := &Shout{ID: uuid.New(), Origin: origin}

	near := NewGeoPoint(60.451, 22.28) // ~111 m north
	far := NewGeoPoint(60.47, 22.28)   // ~2.2 km north

	assert.True(t, shout.Reaches(near, 1000))
	assert.False(t, shout.Reaches(far, 1000))
	// The reach boundary is exclusive.
	assert.False(t, shout.Reaches(near, origin.DistanceTo(near)))
}
