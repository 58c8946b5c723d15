package strategy

import (
	"math"

	apperrors "optstrat/internal/errors"
	"optstrat/pkg/utils"
)

const (
	// GridSteps is the number of equal intervals in a price grid.
	GridSteps = 200
	// DefaultRangeFactor spans the display grid over [0.5*spot, 1.5*spot].
	DefaultRangeFactor = 1.5
	// MetricsRangeFactor spans [0, 2*spot] when searching for extrema.
	MetricsRangeFactor = 2.0
)

// CheckDisplayRange reports whether rangeFactor spans a display grid whose
// lowest price stays above zero, so that the current curve can be priced at
// every point.
func CheckDisplayRange(rangeFactor float64) error {
	if !(rangeFactor > 1 && rangeFactor < 2) {
		return apperrors.NewInputError("range_factor", rangeFactor, "must be between 1 and 2 (exclusive)")
	}
	return nil
}

// PriceGrid returns GridSteps+1 prices from spot*(2-rangeFactor) to
// spot*rangeFactor inclusive, each rounded to cents.
func PriceGrid(spotPrice, rangeFactor float64) ([]float64, error) {
	if !(spotPrice > 0) || math.IsInf(spotPrice, 0) {
		return nil, apperrors.NewInputError("spot_price", spotPrice, "must be positive")
	}
	if !(rangeFactor > 1) {
		return nil, apperrors.NewInputError("range_factor", rangeFactor, "must be greater than 1")
	}
	if rangeFactor > 2 {
		return nil, apperrors.NewInputError("range_factor", rangeFactor, "must not exceed 2 (grid would include negative prices)")
	}

	minPrice := spotPrice * (2 - rangeFactor)
	maxPrice := spotPrice * rangeFactor
	step := (maxPrice - minPrice) / GridSteps

	grid := make([]float64, GridSteps+1)
	for i := range grid {
		grid[i] = utils.Round2(minPrice + step*float64(i))
		if i > 0 && grid[i] <= grid[i-1] {
			return nil, apperrors.NewInputError("range_factor", rangeFactor, "range too narrow for a cent-resolution grid")
		}
	}

	return grid, nil
}
