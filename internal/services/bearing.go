package services

import (
	"geo-calc-service/internal/domain"
	"math"
)

const azimuthPrecision = 1

// InitialBearing returns the forward azimuth from start toward end in degrees,
// rounded to 1 decimal.
//
// The sign test for normalization runs on the rounded value. Raw results lie in
// (-180, 180]; with normalize set, negative results are shifted into [0, 360).
func InitialBearing(start, end domain.GeoPoint, normalize bool) domain.AzimuthResult {
	lat1 := toRadians(start.Lat)
	lat2 := toRadians(end.Lat)
	dLon := toRadians(end.Lon) - toRadians(start.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	// atan2(0, 0) is 0 for coincident points.
	azimuth := roundHalfEven(toDegrees(math.Atan2(y, x)), azimuthPrecision)

	// Due south across the antimeridian can round to -180.0.
	if azimuth <= -180 {
		azimuth = 180
	}

	if normalize && azimuth < 0 {
		azimuth = roundHalfEven(azimuth+360, azimuthPrecision)
	}

	return domain.AzimuthResult{
		Degrees:    azimuth,
		Normalized: normalize,
	}
}
