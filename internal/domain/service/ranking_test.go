package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"relay/internal/domain/entity"
)

func TestRecencyComparator(t *testing.T) {
	c := NewRecencyComparator()
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	newer := &entity.Shout{ID: uuid.New(), CreatedAt: now}
	older := &entity.Shout{ID: uuid.New(), CreatedAt: now.Add(-time.Minute)}

	assert.True(t, c.Less(newer, older))
	assert.False(t, c.Less(older, newer))
}

func TestRecencyComparator_TieBreak(t *testing.T) {
	c := NewRecencyComparator()
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)

	a := &entity.Shout{ID: uuid.New(), CreatedAt: now}
	b := &entity.Shout{ID: uuid.New(), CreatedAt: now}

	// Neither direction wins on equal timestamps, so a bounded insert
	// keeps tied shouts in the order it first saw them.
	assert.False(t, c.Less(a, b))
	assert.False(t, c.Less(b, a))
}
