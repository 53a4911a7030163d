package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_CanShout(t *testing.T) {
	lastShout := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	user := &User{ID: uuid.New(), LastShoutAt: lastShout}

	assert.False(t, user.CanShout(lastShout.Add(ShoutCooldown), ShoutCooldown), "boundary is exclusive")
	assert.True(t, user.CanShout(lastShout.Add(ShoutCooldown+time.Second), ShoutCooldown))
	assert.False(t, user.CanShout(lastShout.Add(time.Minute), ShoutCooldown))
}

func TestUser_CanShout_NeverShouted(t *testing.T) {
	user := &User{ID: uuid.New()}
	assert.True(t, user.CanShout(time.Now(), ShoutCooldown))
}
