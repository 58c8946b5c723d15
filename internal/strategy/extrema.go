package strategy

import (
	"math"

	"optstrat/internal/models"
)

// CalculateMaxProfit returns the largest expiration profit over
// [0, 2*currentPrice], or +Inf when the curve is still rising at the right
// edge of that range.
func CalculateMaxProfit(def models.StrategyDefinition, legs []models.LegInstance, currentPrice float64) (float64, error) {
	pl, err := metricsCurve(def, legs, currentPrice)
	if err != nil {
		return 0, err
	}
	return maxProfit(pl), nil
}

// CalculateMaxLoss returns the most negative expiration profit over
// [0, 2*currentPrice], or -Inf when the curve is still falling at either
// edge of that range.
func CalculateMaxLoss(def models.StrategyDefinition, legs []models.LegInstance, currentPrice float64) (float64, error) {
	pl, err := metricsCurve(def, legs, currentPrice)
	if err != nil {
		return 0, err
	}
	return maxLoss(pl), nil
}

func metricsCurve(def models.StrategyDefinition, legs []models.LegInstance, currentPrice float64) ([]float64, error) {
	if err := ensureValid(def, legs); err != nil {
		return nil, err
	}
	grid, err := PriceGrid(currentPrice, MetricsRangeFactor)
	if err != nil {
		return nil, err
	}
	return curve(def, legs, grid, 0)
}

// slopeTolerance absorbs floating-point summation noise on payoff segments
// that are flat in exact arithmetic.
const slopeTolerance = 1e-6

// maxProfit and maxLoss expect at least two samples; PriceGrid always
// produces GridSteps+1.
func maxProfit(pl []float64) float64 {
	n := len(pl)
	best := pl[0]
	for _, v := range pl[1:] {
		best = math.Max(best, v)
	}

	if pl[n-1] >= best-slopeTolerance && pl[n-1] > pl[n-2]+slopeTolerance {
		return math.Inf(1)
	}
	return best
}

func maxLoss(pl []float64) float64 {
	n := len(pl)
	worst := pl[0]
	for _, v := range pl[1:] {
		worst = math.Min(worst, v)
	}

	if pl[n-1] <= worst+slopeTolerance && pl[n-1] < pl[n-2]-slopeTolerance {
		return math.Inf(-1)
	}
	if pl[0] <= worst+slopeTolerance && pl[0] < pl[1]-slopeTolerance {
		return math.Inf(-1)
	}
	return worst
}
