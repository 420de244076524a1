package dto

// Coordinate query parameters shared by both calculation endpoints.
// Struct tags drive bounds validation; the query tag names the parameter.
type CoordinatesQuery struct {
	StartLat  float64 `query:"start_lat"  validate:"gte=-90,lte=90"`
	StartLong float64 `query:"start_long" validate:"gte=-180,lte=180"`
	EndLat    float64 `query:"end_lat"    validate:"gte=-90,lte=90"`
	EndLong   float64 `query:"end_long"   validate:"gte=-180,lte=180"`
}

type DistanceQuery struct {
	CoordinatesQuery
	UnitMeasure string `query:"unit_measure"`
}

type AzimuthQuery struct {
	CoordinatesQuery
	ConvertNegativeAngle bool `query:"convert_negative_angle"`
}

type DistanceResponse struct {
	Distance float64 `json:"distance"`
}

type AzimuthResponse struct {
	AzimuthAngle float64 `json:"azimuth_angle"`
}
