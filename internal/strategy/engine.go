// Package strategy evaluates multi-leg option strategies: default leg
// generation, profit/loss curves, breakevens and profit/loss extrema.
package strategy

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"optstrat/internal/config"
	apperrors "optstrat/internal/errors"
	"optstrat/internal/models"
	"optstrat/internal/pricing"
	"optstrat/pkg/utils"
)

// Engine binds the strategy catalog to the evaluation functions. It holds no
// per-calculation state and is safe for concurrent use.
type Engine struct {
	catalog     *Catalog
	rangeFactor float64
	logger      zerolog.Logger
}

// NewEngine creates a new Engine. A zero range factor in cfg selects
// DefaultRangeFactor; any other value must satisfy CheckDisplayRange.
func NewEngine(catalog *Catalog, cfg config.EngineConfig, logger zerolog.Logger) (*Engine, error) {
	rangeFactor := cfg.RangeFactor
	if rangeFactor == 0 {
		rangeFactor = DefaultRangeFactor
	}
	if err := CheckDisplayRange(rangeFactor); err != nil {
		return nil, err
	}
	return &Engine{
		catalog:     catalog,
		rangeFactor: rangeFactor,
		logger:      logger.With().Str("component", "strategy").Logger(),
	}, nil
}

// Catalog returns the engine's strategy catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

// GenerateDefaultLegs builds one leg per template of the strategy. Option
// strikes are spot+offset rounded to whole dollars, and premiums are the
// theoretical value rounded to cents. Each option leg keeps the market
// volatility and rate it was priced with.
func (e *Engine) GenerateDefaultLegs(strategyID string, spotPrice float64, market models.MarketParameters) ([]models.LegInstance, error) {
	def, err := e.catalog.Get(strategyID)
	if err != nil {
		return nil, err
	}
	if !(spotPrice > 0) {
		return nil, apperrors.NewInputError("spot_price", spotPrice, "must be positive")
	}
	if err := market.Validate(); err != nil {
		return nil, err
	}

	years := market.TimeToExpiry()
	legs := make([]models.LegInstance, len(def.Legs))
	for i, tpl := range def.Legs {
		if tpl.Type == models.InstrumentStock {
			legs[i] = models.LegInstance{Type: tpl.Type, CostBasis: spotPrice}
			continue
		}

		strike := math.Round(spotPrice + float64(tpl.StrikeOffset))
		value, err := pricing.Price(tpl.Type, spotPrice, strike, years, market.RiskFreeRate, market.Volatility)
		if err != nil {
			return nil, apperrors.Wrapf(err, "%s leg %d", strategyID, i+1)
		}

		legs[i] = models.LegInstance{
			Type:         tpl.Type,
			Strike:       strike,
			Premium:      utils.Round2(value),
			Volatility:   market.Volatility,
			RiskFreeRate: market.RiskFreeRate,
		}
	}

	e.logger.Debug().
		Str("strategy", strategyID).
		Float64("spot", spotPrice).
		Int("legs", len(legs)).
		Msg("Generated default legs")

	return legs, nil
}

// Analyze runs one full recomputation pass. When legs is nil the default
// legs for market are used.
func (e *Engine) Analyze(strategyID string, market models.MarketParameters, legs []models.LegInstance) (*models.Profile, error) {
	start := time.Now()

	def, err := e.catalog.Get(strategyID)
	if err != nil {
		return nil, err
	}
	if err := market.Validate(); err != nil {
		return nil, err
	}
	if legs == nil {
		legs, err = e.GenerateDefaultLegs(strategyID, market.SpotPrice, market)
		if err != nil {
			return nil, err
		}
	}
	if err := ensureValid(def, legs); err != nil {
		return nil, err
	}

	years := market.TimeToExpiry()
	grid, err := PriceGrid(market.SpotPrice, e.rangeFactor)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		StrategyID: strategyID,
		Market:     market,
		Legs:       append([]models.LegInstance(nil), legs...),
		Grid:       grid,
		NetPremium: CalculateNetPremium(def, legs),
	}

	if profile.Expiration, err = curve(def, legs, grid, 0); err != nil {
		return nil, apperrors.Wrap(err, "expiration curve")
	}
	if profile.Current, err = curve(def, legs, grid, years); err != nil {
		return nil, apperrors.Wrap(err, "current curve")
	}
	if profile.Breakevens, err = FindBreakevens(def, legs, market.SpotPrice); err != nil {
		return nil, err
	}

	extrema, err := metricsCurve(def, legs, market.SpotPrice)
	if err != nil {
		return nil, err
	}
	profile.MaxProfit = maxProfit(extrema)
	profile.MaxLoss = maxLoss(extrema)

	if profile.Greeks, err = PositionGreeks(def, legs, market.SpotPrice, years); err != nil {
		return nil, err
	}

	e.logger.Debug().
		Str("strategy", strategyID).
		Float64("spot", market.SpotPrice).
		Int("days", market.DaysToExpiration).
		Int("breakevens", len(profile.Breakevens)).
		Bool("unbounded_profit", math.IsInf(profile.MaxProfit, 1)).
		Bool("unbounded_loss", math.IsInf(profile.MaxLoss, -1)).
		Dur("duration", time.Since(start)).
		Msg("Strategy analyzed")

	return profile, nil
}
