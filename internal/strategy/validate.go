package strategy

import (
	"fmt"

	apperrors "optstrat/internal/errors"
	"optstrat/internal/models"
)

// ValidateStrategy checks a leg set against its strategy definition and
// collects every violation rather than stopping at the first.
func ValidateStrategy(def models.StrategyDefinition, legs []models.LegInstance) models.ValidationResult {
	errs := []string{}

	if len(legs) != len(def.Legs) {
		errs = append(errs, fmt.Sprintf("%s requires %d legs, got %d", strategyLabel(def), len(def.Legs), len(legs)))
	}

	n := len(legs)
	if len(def.Legs) < n {
		n = len(def.Legs)
	}
	for i := 0; i < n; i++ {
		tpl, leg := def.Legs[i], legs[i]

		if msg := checkTemplate(tpl); msg != "" {
			errs = append(errs, fmt.Sprintf("leg %d: %s", i+1, msg))
			continue
		}
		if leg.Type != tpl.Type {
			errs = append(errs, fmt.Sprintf("leg %d: expected %s leg, got %q", i+1, tpl.Type, leg.Type))
			continue
		}
		if !tpl.Type.IsOption() {
			continue
		}
		if !(leg.Strike > 0) {
			errs = append(errs, fmt.Sprintf("leg %d: strike must be greater than 0", i+1))
		}
		if !(leg.Premium >= 0) {
			errs = append(errs, fmt.Sprintf("leg %d: premium cannot be negative", i+1))
		}
	}

	return models.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

// ensureValid converts a failed validation into a StrategyError.
func ensureValid(def models.StrategyDefinition, legs []models.LegInstance) error {
	result := ValidateStrategy(def, legs)
	if !result.IsValid {
		return apperrors.NewStrategyError(def.ID, result.Errors)
	}
	return nil
}

func strategyLabel(def models.StrategyDefinition) string {
	if def.Name != "" {
		return def.Name
	}
	if def.ID != "" {
		return def.ID
	}
	return "strategy"
}
