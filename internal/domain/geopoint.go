package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCoordinate = errors.New("invalid coordinate")

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Immutable geographic point in degrees (latitude, longitude).
type GeoPoint struct {
	Lat float64
	Lon float64
}

func NewGeoPoint(lat, lon float64) (GeoPoint, error) {
	p := GeoPoint{Lat: lat, Lon: lon}
	if err := p.Validate(); err != nil {
		return GeoPoint{}, err
	}
	return p, nil
}

// Validate reports whether the point lies within latitude/longitude bounds.
// NaN fails both comparisons and is rejected.
func (p GeoPoint) Validate() error {
	if !(p.Lat >= MinLatitude && p.Lat <= MaxLatitude) {
		return fmt.Errorf("geo point: latitude %v outside [%v, %v]: %w", p.Lat, MinLatitude, MaxLatitude, ErrInvalidCoordinate)
	}
	if !(p.Lon >= MinLongitude && p.Lon <= MaxLongitude) {
		return fmt.Errorf("geo point: longitude %v outside [%v, %v]: %w", p.Lon, MinLongitude, MaxLongitude, ErrInvalidCoordinate)
	}
	return nil
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%g, %g)", p.Lat, p.Lon)
}
