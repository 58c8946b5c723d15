// Package config provides configuration management for the strategy tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	apperrors "optstrat/internal/errors"
	"optstrat/internal/models"
)

// Config holds all application configuration.
type Config struct {
	Market  MarketConfig  `mapstructure:"market"`
	Engine  EngineConfig  `mapstructure:"engine"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// MarketConfig holds the default market parameters. Volatility and rate are
// percentages, as entered by a user.
type MarketConfig struct {
	Spot          float64 `mapstructure:"spot"`
	VolatilityPct float64 `mapstructure:"volatility_pct"`
	RatePct       float64 `mapstructure:"rate_pct"`
	Days          int     `mapstructure:"days"`
}

// Parameters converts the configured defaults into market parameters.
func (m MarketConfig) Parameters() models.MarketParameters {
	return models.NewMarketParameters(m.Spot, m.VolatilityPct, m.RatePct, m.Days)
}

// EngineConfig holds strategy engine configuration.
type EngineConfig struct {
	RangeFactor float64 `mapstructure:"range_factor"` // display grid spans spot*(2-k)..spot*k
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
}

// envBindings maps config keys to environment variables.
var envBindings = map[string]string{
	"market.spot":           "OPTSTRAT_SPOT",
	"market.volatility_pct": "OPTSTRAT_VOLATILITY",
	"market.rate_pct":       "OPTSTRAT_RATE",
	"market.days":           "OPTSTRAT_DAYS",
	"logging.level":         "OPTSTRAT_LOG_LEVEL",
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/optstrat"
	}
	return filepath.Join(home, ".config", "optstrat")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config.toml is replaced by a commented template and defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, configDir)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("loading config.toml: %w", err)
		}
		// Best effort: a read-only home directory should not block a calculation.
		_ = createTemplateConfig(configDir)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("market.spot", 100.0)
	v.SetDefault("market.volatility_pct", 25.0)
	v.SetDefault("market.rate_pct", 5.0)
	v.SetDefault("market.days", 30)
	v.SetDefault("engine.range_factor", 1.5)
	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(configDir, "logs", "optstrat.log"))
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 30)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Market.Parameters().Validate(); err != nil {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, err.Error())
	}
	if c.Engine.RangeFactor <= 1 || c.Engine.RangeFactor >= 2 {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "engine.range_factor must be between 1 and 2 (exclusive), got %v", c.Engine.RangeFactor)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "unknown logging.level %q", c.Logging.Level)
	}
	return nil
}
