package geo

import (
	"errors"
	"math"
)

// Earth radius constants for the supported distance units.
// One radius is chosen per ranking call so all distances in a result set
// share a unit.
const (
	earthRadiusMiles      = 3959.0
	earthRadiusKilometers = 6371.0
)

// ErrInvalidCoordinate is returned when a latitude or longitude is NaN or
// outside its valid range. Callers must treat this as "distance unknown",
// never as zero distance.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrInvalidUnit is returned when a distance unit string is not recognized.
var ErrInvalidUnit = errors.New("invalid distance unit")

// Unit selects the distance unit (and therefore the Earth radius) used by
// Distance.
type Unit string

// Supported distance units.
const (
	Miles      Unit = "mi"
	Kilometers Unit = "km"
)

// ParseUnit parses a configuration string into a Unit.
// Returns ErrInvalidUnit for anything other than "mi" or "km".
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case Miles:
		return Miles, nil
	case Kilometers:
		return Kilometers, nil
	default:
		return "", ErrInvalidUnit
	}
}

// radius returns the Earth radius for the unit, or ErrInvalidUnit for any
// unit that ParseUnit would reject.
func (u Unit) radius() (float64, error) {
	switch u {
	case Miles:
		return earthRadiusMiles, nil
	case Kilometers:
		return earthRadiusKilometers, nil
	default:
		return 0, ErrInvalidUnit
	}
}

// Distance computes the great-circle distance between two points using the
// Haversine formula.
//
// Parameters:
//   - lat1, lon1: first point in decimal degrees
//   - lat2, lon2: second point in decimal degrees
//   - unit: distance unit (Miles or Kilometers)
//
// Returns the distance in the requested unit, rounded to one decimal place.
// Any NaN or out-of-range input returns ErrInvalidCoordinate so callers can
// distinguish "far away" from "unknown distance". An unrecognized unit
// returns ErrInvalidUnit rather than silently assuming miles.
func Distance(lat1, lon1, lat2, lon2 float64, unit Unit) (float64, error) {
	radius, err := unit.radius()
	if err != nil {
		return 0, err
	}
	if !validLatitude(lat1) || !validLatitude(lat2) ||
		!validLongitude(lon1) || !validLongitude(lon2) {
		return 0, ErrInvalidCoordinate
	}

	lat1Rad := degreesToRadians(lat1)
	lat2Rad := degreesToRadians(lat2)
	deltaLat := degreesToRadians(lat2 - lat1)
	deltaLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	// Round to one decimal to avoid false precision in displayed distances.
	return math.Round(radius*c*10) / 10, nil
}

// validLatitude reports whether lat is a real number in [-90, 90].
func validLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

// validLongitude reports whether lon is a real number in [-180, 180].
func validLongitude(lon float64) bool {
	return !math.IsNaN(lon) && lon >= -180 && lon <= 180
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
