package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round rounds x to the given number of decimal places, half away from zero.
// Infinities and NaN are returned unchanged.
func Round(x float64, places int32) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

// Round2 rounds x to cents.
func Round2(x float64) float64 {
	return Round(x, 2)
}
