package strategy

import "optstrat/internal/models"

// CalculateNetPremium returns the net premium of the option legs: positive
// when paid, negative when received. Stock legs contribute nothing.
func CalculateNetPremium(def models.StrategyDefinition, legs []models.LegInstance) float64 {
	var net float64
	for i, tpl := range def.Legs {
		if i >= len(legs) || !tpl.Type.IsOption() {
			continue
		}
		amount := legs[i].Premium * float64(tpl.Quantity) * models.ContractMultiplier
		switch tpl.Action {
		case models.ActionBuy:
			net += amount
		case models.ActionSell:
			net -= amount
		}
	}
	return net
}
