package models

import (
	apperrors "optstrat/internal/errors"
)

// DaysPerYear converts calendar days to years for option pricing.
const DaysPerYear = 365.0

// MarketParameters is one snapshot of market inputs. Volatility and
// RiskFreeRate are annualized decimals (0.25 for 25%).
type MarketParameters struct {
	SpotPrice        float64 `json:"spot_price"`
	Volatility       float64 `json:"volatility"`
	RiskFreeRate     float64 `json:"risk_free_rate"`
	DaysToExpiration int     `json:"days_to_expiration"`
}

// NewMarketParameters builds market parameters from percent inputs, e.g.
// volatilityPct=25 and ratePct=5.
func NewMarketParameters(spot, volatilityPct, ratePct float64, days int) MarketParameters {
	return MarketParameters{
		SpotPrice:        spot,
		Volatility:       volatilityPct / 100,
		RiskFreeRate:     ratePct / 100,
		DaysToExpiration: days,
	}
}

// TimeToExpiry returns the time to expiration in years.
func (m MarketParameters) TimeToExpiry() float64 {
	return float64(m.DaysToExpiration) / DaysPerYear
}

// Validate checks the caller contract for market parameters.
func (m MarketParameters) Validate() error {
	if m.SpotPrice <= 0 {
		return apperrors.NewInputError("spot_price", m.SpotPrice, "must be positive")
	}
	if m.Volatility <= 0 {
		return apperrors.NewInputError("volatility", m.Volatility, "must be positive")
	}
	if m.DaysToExpiration < 0 {
		return apperrors.NewInputError("days_to_expiration", m.DaysToExpiration, "must not be negative")
	}
	return nil
}
