package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "relay/internal/domain/errors"
	"relay/internal/errors"
)

func TestParseGeoPoint(t *testing.T) {
	p, err := ParseGeoPoint("60.45;22.28")
	require.NoError(t, err)
	assert.InDelta(t, 60.45, p.Lat(), 1e-9)
	assert.InDelta(t, 22.28, p.Lon(), 1e-9)
}

func TestParseGeoPoint_IgnoresExtraFields(t *testing.T) {
	p, err := ParseGeoPoint("60.45;22.28;12.5")
	require.NoError(t, err)
	assert.InDelta(t, 60.45, p.Lat(), 1e-9)
	assert.InDelta(t, 22.28, p.Lon(), 1e-9)
}

func TestParseGeoPoint_Malformed(t *testing.T) {
	for _, input := range []string{"", "60.45", "60.45,22.28", "north;east"} {
		_, err := ParseGeoPoint(input)
		assert.Error(t, err, "input %q", input)
		assert.True(t, errors.Is(err, domainerrors.ErrMalformedLocation), "input %q", input)
	}
}

func TestGeoPoint_StringRoundTrip(t *testing.T) {
	p := NewGeoPoint(60.45, 22.28)
	parsed, err := ParseGeoPoint(p.String())
	require.NoError(t, err)
	assert.InDelta(t, p.Lat(), parsed.Lat(), 1e-9)
	assert.InDelta(t, p.Lon(), parsed.Lon(), 1e-9)
}

func TestGeoPoint_DistanceTo(t *testing.T) {
	// Turku cathedral to Turku castle. The expected value is the haversine
	// distance on a 6 371 000 m sphere, computed independently.
	cathedral := NewGeoPoint(60.4518, 22.2780)
	castle := NewGeoPoint(60.4353, 22.2285)

	d := cathedral.DistanceTo(castle)
	assert.InDelta(t, 3276.87, d, 1)

	// Symmetry and identity.
	assert.InDelta(t, d, castle.DistanceTo(cathedral), 1e-6)
	assert.Zero(t, cathedral.DistanceTo(cathedral))
}

func TestGeoPoint_DistanceTo_ShortRange(t *testing.T) {
	// 0.009 degrees of latitude due north, haversine on the same sphere.
	origin := NewGeoPoint(60.45, 22.28)
	north := NewGeoPoint(60.459, 22.28)

	assert.InDelta(t, 1000.75, origin.DistanceTo(north), 1)
}

func TestGeoPoint_BearingTo(t *testing.T) {
	origin := NewGeoPoint(60.45, 22.28)

	north := NewGeoPoint(60.46, 22.28)
	assert.InDelta(t, 90, origin.BearingTo(north), 0.5)

	east := NewGeoPoint(60.45, 22.29)
	assert.InDelta(t, 0, origin.BearingTo(east), 0.5)

	south := NewGeoPoint(60.44, 22.28)
	assert.InDelta(t, 270, origin.BearingTo(south), 0.5)
}
