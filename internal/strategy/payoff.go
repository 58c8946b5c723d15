package strategy

import (
	"fmt"
	"math"

	apperrors "optstrat/internal/errors"
	"optstrat/internal/models"
	"optstrat/internal/pricing"
)

// ProfitLossAtPrice returns the strategy profit/loss with the underlying at
// stockPrice. timeToExpiry is in years; 0 values every option at intrinsic.
func ProfitLossAtPrice(def models.StrategyDefinition, legs []models.LegInstance, stockPrice, timeToExpiry float64) (float64, error) {
	if err := ensureValid(def, legs); err != nil {
		return 0, err
	}
	if err := checkEvaluationPoint(stockPrice, timeToExpiry); err != nil {
		return 0, err
	}
	return profitLoss(def, legs, stockPrice, timeToExpiry)
}

// ProfitLossCurve evaluates ProfitLossAtPrice at every grid point. The
// result is index-aligned with grid.
func ProfitLossCurve(def models.StrategyDefinition, legs []models.LegInstance, grid []float64, timeToExpiry float64) ([]float64, error) {
	if err := ensureValid(def, legs); err != nil {
		return nil, err
	}
	return curve(def, legs, grid, timeToExpiry)
}

func curve(def models.StrategyDefinition, legs []models.LegInstance, grid []float64, timeToExpiry float64) ([]float64, error) {
	out := make([]float64, len(grid))
	for i, price := range grid {
		if err := checkEvaluationPoint(price, timeToExpiry); err != nil {
			return nil, err
		}
		pl, err := profitLoss(def, legs, price, timeToExpiry)
		if err != nil {
			return nil, apperrors.Wrapf(err, "grid point %d", i)
		}
		out[i] = pl
	}
	return out, nil
}

func checkEvaluationPoint(stockPrice, timeToExpiry float64) error {
	if stockPrice < 0 || math.IsNaN(stockPrice) || math.IsInf(stockPrice, 0) {
		return apperrors.NewInputError("stock_price", stockPrice, "must be a non-negative number")
	}
	if timeToExpiry < 0 || math.IsNaN(timeToExpiry) {
		return apperrors.NewInputError("time_to_expiry", timeToExpiry, "must not be negative")
	}
	return nil
}

// profitLoss assumes legs have already been validated against def.
func profitLoss(def models.StrategyDefinition, legs []models.LegInstance, stockPrice, timeToExpiry float64) (float64, error) {
	var total float64
	for i, tpl := range def.Legs {
		pl, err := legProfitLoss(tpl, legs[i], stockPrice, timeToExpiry)
		if err != nil {
			return 0, apperrors.Wrapf(err, "leg %d", i+1)
		}
		total += pl
	}
	return total, nil
}

func legProfitLoss(tpl models.LegTemplate, leg models.LegInstance, stockPrice, timeToExpiry float64) (float64, error) {
	qty := float64(tpl.Quantity)

	switch tpl.Type {
	case models.InstrumentStock:
		if tpl.Action != models.ActionOwn {
			break
		}
		return (stockPrice - leg.CostBasis) * qty, nil

	case models.InstrumentCall, models.InstrumentPut:
		value := pricing.Intrinsic(tpl.Type, stockPrice, leg.Strike)
		if timeToExpiry > 0 {
			var err error
			value, err = pricing.Price(tpl.Type, stockPrice, leg.Strike, timeToExpiry, leg.RiskFreeRate, leg.Volatility)
			if err != nil {
				return 0, err
			}
		}

		switch tpl.Action {
		case models.ActionBuy:
			return (value - leg.Premium) * qty * models.ContractMultiplier, nil
		case models.ActionSell:
			return (leg.Premium - value) * qty * models.ContractMultiplier, nil
		}
	}

	return 0, fmt.Errorf("unsupported leg: %s %s", tpl.Action, tpl.Type)
}
