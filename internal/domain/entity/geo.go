package entity

import (
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	domainerrors "relay/internal/domain/errors"
	"relay/internal/errors"
)

const earthRadiusMeters = 6371000.0

// GeoPoint is a WGS84 coordinate pair. It wraps orb.Point, which stores
// longitude first, so the accessors below keep the lat/lon order the rest of
// the codebase expects.
type GeoPoint struct {
	point orb.Point
}

// NewGeoPoint builds a point from latitude and longitude in degrees.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{point: orb.Point{lon, lat}}
}

// ParseGeoPoint parses the textual wire form "lat;lon". Any fields after the
// second (such as a reported accuracy) are ignored.
func ParseGeoPoint(s string) (GeoPoint, error) {
	parts := strings.Split(s, ";")
	if len(parts) < 2 {
		return GeoPoint{}, errors.Wrapf(domainerrors.ErrMalformedLocation, "parse location %q", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return GeoPoint{}, errors.Wrapf(domainerrors.ErrMalformedLocation, "parse latitude %q", parts[0])
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return GeoPoint{}, errors.Wrapf(domainerrors.ErrMalformedLocation, "parse longitude %q", parts[1])
	}

	return NewGeoPoint(lat, lon), nil
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.point.Lat()
}

// Lon returns the longitude in degrees.
func (p GeoPoint) Lon() float64 {
	return p.point.Lon()
}

// Point returns the underlying orb point.
func (p GeoPoint) Point() orb.Point {
	return p.point
}

// String renders the point back into its "lat;lon" wire form.
func (p GeoPoint) String() string {
	return strconv.FormatFloat(p.Lat(), 'f', -1, 64) + ";" + strconv.FormatFloat(p.Lon(), 'f', -1, 64)
}

// DistanceTo returns the great-circle distance to other in meters, using the
// haversine formula on a spherical earth.
func (p GeoPoint) DistanceTo(other GeoPoint) float64 {
	lat1 := p.Lat() * math.Pi / 180
	lat2 := other.Lat() * math.Pi / 180
	dLat := (other.Lat() - p.Lat()) * math.Pi / 180
	dLon := (other.Lon() - p.Lon()) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// BearingTo returns the direction from p toward other in degrees, measured
// counterclockwise from due east and normalized into [0, 360).
func (p GeoPoint) BearingTo(other GeoPoint) float64 {
	lat1 := p.Lat() * math.Pi / 180
	lat2 := other.Lat() * math.Pi / 180
	dLon := (other.Lon() - p.Lon()) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	// Forward azimuth is clockwise from north; convert to math convention.
	azimuth := math.Atan2(y, x) * 180 / math.Pi
	bearing := math.Mod(90-azimuth+360, 360)

	return bearing
}
