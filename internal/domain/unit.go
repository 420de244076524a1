package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidUnit = errors.New("invalid unit_measure")

// Unit of measure for great-circle distances.
type DistanceUnit string

const (
	Kilometer DistanceUnit = "km"
	Meter     DistanceUnit = "m"

	DefaultDistanceUnit = Kilometer
)

const (
	EarthRadiusKilometers = 6371.0
	EarthRadiusMeters     = 6371000.0
)

// ParseDistanceUnit matches raw against the known units case-insensitively,
// so "M" selects meters and "KM" selects kilometers.
func ParseDistanceUnit(raw string) (DistanceUnit, error) {
	switch DistanceUnit(strings.ToLower(raw)) {
	case Kilometer:
		return Kilometer, nil
	case Meter:
		return Meter, nil
	default:
		return "", fmt.Errorf("parse distance unit %q: %w", raw, ErrInvalidUnit)
	}
}

// Mean earth radius expressed in the unit.
func (u DistanceUnit) EarthRadius() (float64, error) {
	switch u {
	case Kilometer:
		return EarthRadiusKilometers, nil
	case Meter:
		return EarthRadiusMeters, nil
	default:
		return 0, fmt.Errorf("earth radius for %q: %w", string(u), ErrInvalidUnit)
	}
}
