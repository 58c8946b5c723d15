package strategy

import (
	"optstrat/internal/models"
	"optstrat/internal/pricing"
)

// PositionGreeks sums leg Greeks scaled by direction, quantity and the
// contract multiplier. Owned stock adds one delta per share.
func PositionGreeks(def models.StrategyDefinition, legs []models.LegInstance, spotPrice, timeToExpiry float64) (models.OptionGreeks, error) {
	if err := ensureValid(def, legs); err != nil {
		return models.OptionGreeks{}, err
	}

	var total models.OptionGreeks
	for i, tpl := range def.Legs {
		leg := legs[i]
		qty := float64(tpl.Quantity)

		if tpl.Type == models.InstrumentStock {
			total.Delta += qty
			continue
		}

		g, err := pricing.Greeks(tpl.Type, spotPrice, leg.Strike, timeToExpiry, leg.RiskFreeRate, leg.Volatility)
		if err != nil {
			return models.OptionGreeks{}, err
		}

		scale := qty * models.ContractMultiplier
		if tpl.Action == models.ActionSell {
			scale = -scale
		}
		total = total.Add(g.Scale(scale))
	}

	return total, nil
}
