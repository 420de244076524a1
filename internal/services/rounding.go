package services

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round v to the given number of decimal places using banker's rounding.
// Negative zero is reported as zero.
func roundHalfEven(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}

	r := decimal.NewFromFloat(v).RoundBank(places).InexactFloat64()
	if r == 0 {
		return 0
	}
	return r
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }

func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }
