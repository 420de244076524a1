package domain

import "time"

type Operation string

const (
	OperationHaversineDistance Operation = "haversine_distance"
	OperationAzimuthAngle      Operation = "azimuth_angle"
)

// Great-circle distance rounded to 3 decimals, tagged with its unit.
type DistanceResult struct {
	Value float64
	Unit  DistanceUnit
}

// Initial bearing in degrees rounded to 1 decimal.
// Normalized results lie in [0, 360), raw ones in (-180, 180].
type AzimuthResult struct {
	Degrees    float64
	Normalized bool
}

// Represents one computed result as written to the calculation journal.
// Records are write-only: nothing in the service reads them back.
type CalculationRecord struct {
	RequestID    string
	Operation    Operation
	Start        GeoPoint
	End          GeoPoint
	Unit         DistanceUnit
	Normalized   bool
	Result       float64
	CalculatedAt time.Time
}
