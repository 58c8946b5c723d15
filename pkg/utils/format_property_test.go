package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Property: FormatCurrency output has a $ prefix, two decimals, groups of
// three digits, and parses back to the rounded amount.
func TestProperty_CurrencyFormatting(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	grouping := regexp.MustCompile(`^\d{1,3}(,\d{3})*$`)

	properties.Property("FormatCurrency produces grouped dollar amounts", prop.ForAll(
		func(amount float64) bool {
			formatted := FormatCurrency(amount)

			prefix := "$"
			if amount < 0 {
				prefix = "-$"
			}
			if !strings.HasPrefix(formatted, prefix) {
				t.Logf("missing %s prefix for %f: %s", prefix, amount, formatted)
				return false
			}

			body := strings.TrimPrefix(strings.TrimPrefix(formatted, "-"), "$")
			parts := strings.Split(body, ".")
			if len(parts) != 2 || len(parts[1]) != 2 {
				t.Logf("expected 2 decimal places for %f, got %s", amount, formatted)
				return false
			}
			if !grouping.MatchString(parts[0]) {
				t.Logf("bad grouping for %f: %s", amount, formatted)
				return false
			}

			parsed, err := strconv.ParseFloat(strings.ReplaceAll(parts[0], ",", "")+"."+parts[1], 64)
			if err != nil {
				return false
			}
			return math.Abs(parsed-math.Abs(amount)) <= 0.005+1e-6
		},
		gen.Float64Range(-1e9, 1e9),
	))

	properties.Property("FormatPnL marks gains with +", prop.ForAll(
		func(amount float64) bool {
			formatted := FormatPnL(amount)
			if amount > 0 {
				return strings.HasPrefix(formatted, "+$")
			}
			return !strings.HasPrefix(formatted, "+")
		},
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}
