package kernel

import (
	"fmt"

	"fleettrip/internal/pkg/errs"
	"fleettrip/internal/pkg/guard"
)

// Latitude/longitude bounds in degrees.
const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using a GeoPoint that was not
// created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError("GeoPoint must be created via NewGeoPoint")

// GeoPoint is a value object representing geographic coordinates.
// It locates a mill on the map; trip logic never computes with it,
// the coordinates are reference data surfaced to callers.
type GeoPoint struct {
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Latitude must be within [-90, 90] and longitude within [-180, 180].
func NewGeoPoint(lat, lng float64) (GeoPoint, error) {
	if lat < minLatitude || lat > maxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", lat, minLatitude, maxLatitude)
	}
	if lng < minLongitude || lng > maxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", lng, minLongitude, maxLongitude)
	}

	return GeoPoint{lat: lat, lng: lng, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.lat, p.lng)
}
