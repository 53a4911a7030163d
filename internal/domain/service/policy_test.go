package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"relay/internal/domain/entity"
)

func TestFixedReachPolicy(t *testing.T) {
	assert.Equal(t, 500.0, NewFixedReachPolicy(500).ReachOf(&entity.Shout{}))
	assert.Equal(t, DefaultReachMeters, NewFixedReachPolicy(0).ReachOf(&entity.Shout{}))
}

func TestParticipantPointsPolicy(t *testing.T) {
	p := NewParticipantPointsPolicy(10)

	assert.Equal(t, 30, p.PointsFor(&entity.Template{}, 3))
	assert.Equal(t, 10, p.PointsFor(&entity.Template{}, 0), "empty chains still score the base")

	fallback := NewParticipantPointsPolicy(0)
	assert.Equal(t, DefaultBasePoints, fallback.PointsFor(&entity.Template{}, 1))
}
