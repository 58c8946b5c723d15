package cli

import (
	"math"
	"testing"

	"optstrat/internal/models"
)

func TestParseLegOverrides(t *testing.T) {
	got, err := parseLegOverrides("strike", []string{"1=95", " 3 = 110.5 "}, 4)
	if err != nil {
		t.Fatalf("parseLegOverrides: %v", err)
	}
	if len(got) != 2 || got[0] != 95 || got[2] != 110.5 {
		t.Errorf("got %v, want map[0:95 2:110.5]", got)
	}

	for _, bad := range []string{"0=1", "5=1", "x=1", "1", "1=y"} {
		if _, err := parseLegOverrides("strike", []string{bad}, 4); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestApplyOverrides(t *testing.T) {
	legs := []models.LegInstance{
		{Type: models.InstrumentStock, CostBasis: 100},
		{Type: models.InstrumentCall, Strike: 105, Premium: 1.19},
	}
	if err := applyOverrides(legs, []string{"2=110"}, []string{"2=0.5"}, []string{"1=92"}); err != nil {
		t.Fatalf("applyOverrides: %v", err)
	}
	if legs[0].CostBasis != 92 || legs[1].Strike != 110 || legs[1].Premium != 0.5 {
		t.Errorf("overrides not applied: %+v", legs)
	}
}

func TestApplyOverridesRejectsMismatchedField(t *testing.T) {
	newLegs := func() []models.LegInstance {
		return []models.LegInstance{
			{Type: models.InstrumentStock, CostBasis: 100},
			{Type: models.InstrumentCall, Strike: 105, Premium: 1.19},
		}
	}

	tests := []struct {
		name                     string
		strikes, premiums, bases []string
	}{
		{"strike on stock", []string{"1=90"}, nil, nil},
		{"premium on stock", nil, []string{"1=2"}, nil},
		{"cost basis on call", nil, nil, []string{"2=95"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			legs := newLegs()
			if err := applyOverrides(legs, tt.strikes, tt.premiums, tt.bases); err == nil {
				t.Errorf("expected error, legs now %+v", legs)
			}
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"debit", FormatNetPremium(571), "$571.00 debit"},
		{"credit", FormatNetPremium(-152), "$152.00 credit"},
		{"flat", FormatNetPremium(0), "$0.00"},
		{"atm", FormatOffset(0), "ATM"},
		{"above", FormatOffset(5), "+5"},
		{"below", FormatOffset(-10), "-10"},
		{"breakevens", FormatBreakevens([]float64{94.29, 105.71}), "94.29, 105.71"},
		{"no breakevens", FormatBreakevens(nil), "none"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestOutputPnLWithoutColor(t *testing.T) {
	o := &Output{}
	if got := o.PnL(math.Inf(1)); got != "Unlimited" {
		t.Errorf("PnL(+Inf) = %q", got)
	}
	if got := o.PnL(-250); got != "-$250.00" {
		t.Errorf("PnL(-250) = %q", got)
	}
	if got := o.PnL(12.5); got != "+$12.50" {
		t.Errorf("PnL(12.5) = %q", got)
	}
}
