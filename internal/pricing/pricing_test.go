package pricing

import (
	"math"
	"testing"

	apperrors "optstrat/internal/errors"
	"optstrat/internal/models"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestPrice_ReferenceCase(t *testing.T) {
	// S=100, K=100, r=5%, sigma=20%, T=1
	call, err := Price(models.InstrumentCall, 100, 100, 1, 0.05, 0.2)
	if err != nil {
		t.Fatalf("call err: %v", err)
	}
	put, err := Price(models.InstrumentPut, 100, 100, 1, 0.05, 0.2)
	if err != nil {
		t.Fatalf("put err: %v", err)
	}

	if !almostEqual(call, 10.450583572185565, 1e-7) {
		t.Errorf("call price mismatch: got=%v", call)
	}
	if !almostEqual(put, 5.573526022256971, 1e-7) {
		t.Errorf("put price mismatch: got=%v", put)
	}
}

func TestPrice_PutCallParity(t *testing.T) {
	cases := []struct {
		spot, strike, rate, vol, years float64
	}{
		{100, 100, 0.05, 0.25, 30.0 / 365},
		{110, 100, 0.03, 0.40, 0.5},
		{50, 75, 0.00, 0.15, 2},
		{250, 200, -0.01, 0.60, 7.0 / 365},
	}

	for _, c := range cases {
		call, _ := Price(models.InstrumentCall, c.spot, c.strike, c.years, c.rate, c.vol)
		put, _ := Price(models.InstrumentPut, c.spot, c.strike, c.years, c.rate, c.vol)

		left := call - put
		right := c.spot - c.strike*math.Exp(-c.rate*c.years)
		if !almostEqual(left, right, 1e-4) {
			t.Errorf("parity mismatch for %+v: left=%v right=%v", c, left, right)
		}
	}
}

func TestPrice_ExpiryIsIntrinsic(t *testing.T) {
	tests := []struct {
		typ          models.InstrumentType
		spot, strike float64
		want         float64
	}{
		{models.InstrumentCall, 110, 100, 10},
		{models.InstrumentCall, 90, 100, 0},
		{models.InstrumentPut, 90, 100, 10},
		{models.InstrumentPut, 110, 100, 0},
	}

	for _, tt := range tests {
		// vol and rate are irrelevant at expiry, even when invalid.
		got, err := Price(tt.typ, tt.spot, tt.strike, 0, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("Price(%s, %v, %v, T=0) = %v, want %v", tt.typ, tt.spot, tt.strike, got, tt.want)
		}
		if got != Intrinsic(tt.typ, tt.spot, tt.strike) {
			t.Errorf("Price at T=0 must equal Intrinsic exactly")
		}
	}
}

func TestPrice_ConvergesToIntrinsic(t *testing.T) {
	oneDay, err := Price(models.InstrumentCall, 110, 100, 1.0/365, 0.05, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	thirtyDays, err := Price(models.InstrumentCall, 110, 100, 30.0/365, 0.05, 0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if oneDay < 10 {
		t.Errorf("1-day call %v should be at least intrinsic 10", oneDay)
	}
	if oneDay-10 > 0.1 {
		t.Errorf("1-day call %v should carry only a small time value", oneDay)
	}
	if oneDay > thirtyDays {
		t.Errorf("1-day call %v should not exceed 30-day call %v", oneDay, thirtyDays)
	}
}

func TestPrice_InvalidInputs(t *testing.T) {
	tests := []struct {
		name                          string
		typ                           models.InstrumentType
		spot, strike, years, rate, vol float64
	}{
		{"zero spot", models.InstrumentCall, 0, 100, 1, 0.05, 0.2},
		{"negative strike", models.InstrumentPut, 100, -5, 1, 0.05, 0.2},
		{"negative time", models.InstrumentCall, 100, 100, -0.1, 0.05, 0.2},
		{"zero vol", models.InstrumentCall, 100, 100, 1, 0.05, 0},
		{"stock", models.InstrumentStock, 100, 100, 1, 0.05, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Price(tt.typ, tt.spot, tt.strike, tt.years, tt.rate, tt.vol)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !apperrors.Is(err, apperrors.ErrInputValidation) {
				t.Errorf("expected ErrInputValidation, got %v", err)
			}
		})
	}
}

func TestNormCDF(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0.5},
		{1, 0.8413447460685429},
		{-1.96, 0.024997895148220435},
		{3, 0.9986501019683699},
		{-10, 7.61985302416047e-24},
	}

	for _, tt := range tests {
		if got := NormCDF(tt.x); !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("NormCDF(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestGreeks_CallPutRelations(t *testing.T) {
	call, err := Greeks(models.InstrumentCall, 100, 100, 0.5, 0.05, 0.3)
	if err != nil {
		t.Fatalf("call greeks: %v", err)
	}
	put, err := Greeks(models.InstrumentPut, 100, 100, 0.5, 0.05, 0.3)
	if err != nil {
		t.Fatalf("put greeks: %v", err)
	}

	if !almostEqual(call.Delta-put.Delta, 1, 1e-12) {
		t.Errorf("call delta - put delta = %v, want 1", call.Delta-put.Delta)
	}
	if !almostEqual(call.Gamma, put.Gamma, 1e-12) {
		t.Errorf("gamma differs: %v vs %v", call.Gamma, put.Gamma)
	}
	if !almostEqual(call.Vega, put.Vega, 1e-12) {
		t.Errorf("vega differs: %v vs %v", call.Vega, put.Vega)
	}
	if call.Theta >= 0 {
		t.Errorf("long call theta should be negative, got %v", call.Theta)
	}
	if call.Rho <= 0 || put.Rho >= 0 {
		t.Errorf("rho signs wrong: call %v put %v", call.Rho, put.Rho)
	}
}

func TestGreeks_DeltaMatchesFiniteDifference(t *testing.T) {
	const h = 0.01
	g, _ := Greeks(models.InstrumentCall, 105, 100, 0.25, 0.04, 0.35)
	up, _ := Price(models.InstrumentCall, 105+h, 100, 0.25, 0.04, 0.35)
	down, _ := Price(models.InstrumentCall, 105-h, 100, 0.25, 0.04, 0.35)

	if fd := (up - down) / (2 * h); !almostEqual(g.Delta, fd, 1e-5) {
		t.Errorf("delta %v, finite difference %v", g.Delta, fd)
	}
}

func TestGreeks_AtExpiry(t *testing.T) {
	g, err := Greeks(models.InstrumentPut, 90, 100, 0, 0.05, 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g != (models.OptionGreeks{Delta: -1}) {
		t.Errorf("expiry put greeks = %+v, want delta -1 only", g)
	}
}
