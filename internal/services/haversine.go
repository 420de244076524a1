package services

import (
	"fmt"
	"geo-calc-service/internal/domain"
	"math"
)

const distancePrecision = 3

// HaversineDistance returns the great-circle distance between two points on
// a spherical earth, in the requested unit, rounded to 3 decimals.
//
// Coordinates are trusted to be within bounds; only the unit is checked.
func HaversineDistance(start, end domain.GeoPoint, unit domain.DistanceUnit) (domain.DistanceResult, error) {
	radius, err := unit.EarthRadius()
	if err != nil {
		return domain.DistanceResult{}, fmt.Errorf("haversine distance: %w", err)
	}

	lat1 := toRadians(start.Lat)
	lat2 := toRadians(end.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(end.Lon) - toRadians(start.Lon)

	a := (1 - math.Cos(dLat) + math.Cos(lat1)*math.Cos(lat2)*(1-math.Cos(dLon))) / 2
	// Cancellation near zero (or pi) distance can push a just outside [0, 1].
	a = math.Min(1, math.Max(0, a))

	d := 2 * radius * math.Asin(math.Sqrt(a))

	return domain.DistanceResult{
		Value: roundHalfEven(d, distancePrecision),
		Unit:  unit,
	}, nil
}
