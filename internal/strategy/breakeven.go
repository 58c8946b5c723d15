package strategy

import (
	"math"

	"optstrat/internal/models"
)

// FindBreakevens returns the expiration breakeven prices, ascending, found
// by scanning the default grid around currentPrice for sign changes and
// interpolating linearly between the bracketing grid points.
func FindBreakevens(def models.StrategyDefinition, legs []models.LegInstance, currentPrice float64) ([]float64, error) {
	if err := ensureValid(def, legs); err != nil {
		return nil, err
	}

	grid, err := PriceGrid(currentPrice, DefaultRangeFactor)
	if err != nil {
		return nil, err
	}
	pl, err := curve(def, legs, grid, 0)
	if err != nil {
		return nil, err
	}

	return crossings(grid, pl), nil
}

// crossings finds the zero crossings of a sampled curve. A pair of samples
// counts when one is <= 0 and the other >= 0, so exact zeros are caught; a
// crossing identical to the previous one is reported once.
func crossings(x, y []float64) []float64 {
	out := []float64{}
	for i := 1; i < len(y); i++ {
		y0, y1 := y[i-1], y[i]
		if !((y0 <= 0 && y1 >= 0) || (y0 >= 0 && y1 <= 0)) {
			continue
		}

		be := x[i-1]
		if denom := math.Abs(y0) + math.Abs(y1); denom > 0 {
			ratio := math.Abs(y0) / denom
			be = x[i-1] + ratio*(x[i]-x[i-1])
		}

		if len(out) > 0 && out[len(out)-1] == be {
			continue
		}
		out = append(out, be)
	}
	return out
}
