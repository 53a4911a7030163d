package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestVictory_HasCollaborated(t *testing.T) {
	receiver := uuid.New()
	victory := &Victory{ID: uuid.New(), ReceiverIDs: []uuid.UUID{receiver, uuid.New()}}

	assert.True(t, victory.HasCollaborated(receiver))
	assert.False(t, victory.HasCollaborated(uuid.New()))
}

func TestVictory_ShouldBeRemoved(t *testing.T) {
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	victory := &Victory{ID: uuid.New(), CreatedAt: created}

	assert.False(t, victory.ShouldBeRemoved(created.Add(VictoryRetention), VictoryRetention))
	assert.True(t, victory.ShouldBeRemoved(created.Add(VictoryRetention+time.Second), VictoryRetention))
}
