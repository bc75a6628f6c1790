// Package geo provides great-circle distance calculations between
// geographic coordinates.
package geo

import (
	"math"

	"github.com/medmarket/bot/pkg/errors"
)

// EarthRadiusKm is the mean Earth radius used by the Haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm computes the Haversine great-circle distance in kilometers
// between two points given in degrees. Coordinates must be finite and within
// the valid geographic range (|lat| <= 90, |lon| <= 180); out-of-range input
// fails fast with an invalid argument error.
func DistanceKm(lat1, lon1, lat2, lon2 float64) (float64, error) {
	if err := validateCoordinates(lat1, lon1); err != nil {
		return 0, err
	}
	if err := validateCoordinates(lat2, lon2); err != nil {
		return 0, err
	}

	lat1Rad := radians(lat1)
	lat2Rad := radians(lat2)
	deltaLat := radians(lat2 - lat1)
	deltaLon := radians(lon2 - lon1)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// ValidateCoordinates reports whether a latitude/longitude pair is a usable
// geographic coordinate.
func ValidateCoordinates(lat, lon float64) error {
	return validateCoordinates(lat, lon)
}

func validateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lon) || math.IsInf(lon, 0) {
		return errors.NewInvalidArgumentError("coordinates must be finite numbers")
	}
	if lat < -90 || lat > 90 {
		return errors.NewInvalidArgumentError("latitude must be within [-90, 90]")
	}
	if lon < -180 || lon > 180 {
		return errors.NewInvalidArgumentError("longitude must be within [-180, 180]")
	}
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
