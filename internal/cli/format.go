package cli

import (
	"fmt"
	"strconv"
	"strings"

	"optstrat/internal/models"
	"optstrat/pkg/utils"
)

// FormatBreakevens formats breakeven prices as a comma separated list.
func FormatBreakevens(prices []float64) string {
	if len(prices) == 0 {
		return "none"
	}
	parts := make([]string, len(prices))
	for i, p := range prices {
		parts[i] = utils.FormatPrice(p)
	}
	return strings.Join(parts, ", ")
}

// FormatGreeks formats position Greeks.
func FormatGreeks(g models.OptionGreeks) string {
	return fmt.Sprintf("Δ: %.2f  Γ: %.4f  Θ: %.2f  ν: %.2f  ρ: %.2f", g.Delta, g.Gamma, g.Theta, g.Vega, g.Rho)
}

// FormatOffset formats a strike offset relative to spot, e.g. "ATM", "+5".
func FormatOffset(offset int) string {
	switch {
	case offset == 0:
		return "ATM"
	case offset > 0:
		return fmt.Sprintf("+%d", offset)
	}
	return strconv.Itoa(offset)
}

// FormatNetPremium describes the net premium as a debit or credit.
func FormatNetPremium(net float64) string {
	switch {
	case net > 0:
		return utils.FormatCurrency(net) + " debit"
	case net < 0:
		return utils.FormatCurrency(-net) + " credit"
	}
	return utils.FormatCurrency(0)
}

// parseLegOverrides parses repeated "i=v" flag values into a map keyed by
// zero-based leg index. Indexes on the command line are 1-based.
func parseLegOverrides(flag string, values []string, legCount int) (map[int]float64, error) {
	out := make(map[int]float64, len(values))
	for _, raw := range values {
		idx, val, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("--%s %q: expected leg=value", flag, raw)
		}
		leg, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil || leg < 1 || leg > legCount {
			return nil, fmt.Errorf("--%s %q: leg must be between 1 and %d", flag, raw, legCount)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("--%s %q: invalid number: %w", flag, raw, err)
		}
		out[leg-1] = v
	}
	return out, nil
}
