package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTemplate_CanBeShouted_Boundaries(t *testing.T) {
	lastShout := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	template := &Template{ID: uuid.New(), LastShoutAt: lastShout}

	assert.True(t, template.CanBeShouted(lastShout))
	assert.True(t, template.CanBeShouted(lastShout.Add(ReshoutWindow)), "boundary is inclusive")
	assert.False(t, template.CanBeShouted(lastShout.Add(ReshoutWindow+time.Second)))
}

func TestTemplate_EligibleForCleanup(t *testing.T) {
	lastShout := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	expired := lastShout.Add(ReshoutWindow + time.Minute)

	open := &Template{ID: uuid.New(), LastShoutAt: lastShout}
	assert.False(t, open.EligibleForCleanup(lastShout.Add(time.Minute)), "live templates stay")
	assert.True(t, open.EligibleForCleanup(expired))

	completed := &Template{ID: uuid.New(), LastShoutAt: lastShout, Completed: true}
	assert.False(t, completed.EligibleForCleanup(expired), "completed templates are removed with their victory")
}
