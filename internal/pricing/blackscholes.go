// Package pricing values European options with the Black-Scholes-Merton
// model (no dividends).
package pricing

import (
	"fmt"
	"math"

	apperrors "optstrat/internal/errors"
	"optstrat/internal/models"
)

// Intrinsic returns the expiration value of an option. Stock and unknown
// types have no intrinsic option value.
func Intrinsic(t models.InstrumentType, spot, strike float64) float64 {
	switch t {
	case models.InstrumentCall:
		return math.Max(spot-strike, 0)
	case models.InstrumentPut:
		return math.Max(strike-spot, 0)
	default:
		return 0
	}
}

// Price returns the theoretical value of a call or put. timeToExpiry is in
// years; rate and vol are annualized decimals. At timeToExpiry == 0 the
// result is exactly Intrinsic and vol/rate are ignored.
func Price(t models.InstrumentType, spot, strike, timeToExpiry, rate, vol float64) (float64, error) {
	if err := validateInputs(t, spot, strike, timeToExpiry, vol); err != nil {
		return 0, err
	}

	if timeToExpiry == 0 {
		return Intrinsic(t, spot, strike), nil
	}

	d1, d2 := d1d2(spot, strike, timeToExpiry, rate, vol)
	discount := strike * math.Exp(-rate*timeToExpiry)

	var value float64
	if t == models.InstrumentCall {
		value = spot*NormCDF(d1) - discount*NormCDF(d2)
	} else {
		value = discount*NormCDF(-d2) - spot*NormCDF(-d1)
	}

	// Deep out-of-the-money values can round a hair below zero.
	return math.Max(value, 0), nil
}

func d1d2(spot, strike, timeToExpiry, rate, vol float64) (float64, float64) {
	volSqrtT := vol * math.Sqrt(timeToExpiry)
	d1 := (math.Log(spot/strike) + (rate+vol*vol/2)*timeToExpiry) / volSqrtT
	return d1, d1 - volSqrtT
}

func validateInputs(t models.InstrumentType, spot, strike, timeToExpiry, vol float64) error {
	if !t.IsOption() {
		return apperrors.NewInputError("option_type", t, "must be call or put")
	}
	if spot <= 0 || math.IsNaN(spot) {
		return apperrors.NewInputError("spot", spot, "must be positive")
	}
	if strike <= 0 || math.IsNaN(strike) {
		return apperrors.NewInputError("strike", strike, "must be positive")
	}
	if timeToExpiry < 0 || math.IsNaN(timeToExpiry) {
		return apperrors.NewInputError("time_to_expiry", timeToExpiry, "must not be negative")
	}
	if timeToExpiry > 0 && (vol <= 0 || math.IsNaN(vol)) {
		return apperrors.NewInputError("volatility", vol, fmt.Sprintf("must be positive when %.4f years remain", timeToExpiry))
	}
	return nil
}
