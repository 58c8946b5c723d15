package pricing

import (
	"math"

	"optstrat/internal/models"
)

// Greeks returns per-share sensitivities of a call or put. Theta is per
// calendar day, vega per one volatility point and rho per one rate point.
// At expiry only delta survives: 1 (call) or -1 (put) when in the money.
func Greeks(t models.InstrumentType, spot, strike, timeToExpiry, rate, vol float64) (models.OptionGreeks, error) {
	if err := validateInputs(t, spot, strike, timeToExpiry, vol); err != nil {
		return models.OptionGreeks{}, err
	}

	if timeToExpiry == 0 {
		var delta float64
		switch {
		case t == models.InstrumentCall && spot > strike:
			delta = 1
		case t == models.InstrumentPut && spot < strike:
			delta = -1
		}
		return models.OptionGreeks{Delta: delta}, nil
	}

	d1, d2 := d1d2(spot, strike, timeToExpiry, rate, vol)
	sqrtT := math.Sqrt(timeToExpiry)
	discount := strike * math.Exp(-rate*timeToExpiry)
	pdf := NormPDF(d1)

	g := models.OptionGreeks{
		Gamma: pdf / (spot * vol * sqrtT),
		Vega:  spot * pdf * sqrtT / 100,
	}

	decay := -spot * pdf * vol / (2 * sqrtT)
	if t == models.InstrumentCall {
		g.Delta = NormCDF(d1)
		g.Theta = (decay - rate*discount*NormCDF(d2)) / models.DaysPerYear
		g.Rho = timeToExpiry * discount * NormCDF(d2) / 100
	} else {
		g.Delta = NormCDF(d1) - 1
		g.Theta = (decay + rate*discount*NormCDF(-d2)) / models.DaysPerYear
		g.Rho = -timeToExpiry * discount * NormCDF(-d2) / 100
	}

	return g, nil
}
