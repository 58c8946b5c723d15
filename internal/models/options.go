package models

import (
	"encoding/json"
	"math"
)

// OptionGreeks represents option Greeks.
type OptionGreeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// Add returns the element-wise sum of two sets of Greeks.
func (g OptionGreeks) Add(o OptionGreeks) OptionGreeks {
	return OptionGreeks{
		Delta: g.Delta + o.Delta,
		Gamma: g.Gamma + o.Gamma,
		Theta: g.Theta + o.Theta,
		Vega:  g.Vega + o.Vega,
		Rho:   g.Rho + o.Rho,
	}
}

// Scale multiplies every Greek by f.
func (g OptionGreeks) Scale(f float64) OptionGreeks {
	return OptionGreeks{
		Delta: g.Delta * f,
		Gamma: g.Gamma * f,
		Theta: g.Theta * f,
		Vega:  g.Vega * f,
		Rho:   g.Rho * f,
	}
}

// Profile is the full output of one recomputation pass over a strategy.
// MaxProfit and MaxLoss may be +Inf and -Inf respectively.
type Profile struct {
	StrategyID string           `json:"strategy_id"`
	Market     MarketParameters `json:"market"`
	Legs       []LegInstance    `json:"legs"`
	Grid       []float64        `json:"grid"`
	Expiration []float64        `json:"expiration"`
	Current    []float64        `json:"current"`
	MaxProfit  float64          `json:"-"`
	MaxLoss    float64          `json:"-"`
	Breakevens []float64        `json:"breakevens"`
	NetPremium float64          `json:"net_premium"`
	Greeks     OptionGreeks     `json:"greeks"`
}

// MarshalJSON renders unbounded profit or loss as "+Inf" / "-Inf".
func (p Profile) MarshalJSON() ([]byte, error) {
	type plain Profile
	return json.Marshal(struct {
		plain
		MaxProfit interface{} `json:"max_profit"`
		MaxLoss   interface{} `json:"max_loss"`
	}{
		plain:     plain(p),
		MaxProfit: boundJSON(p.MaxProfit),
		MaxLoss:   boundJSON(p.MaxLoss),
	})
}

func boundJSON(v float64) interface{} {
	switch {
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	default:
		return v
	}
}
