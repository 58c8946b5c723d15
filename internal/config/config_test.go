package config

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "optstrat/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func TestLoadCreatesTemplateAndUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Market.Spot != 100 || cfg.Market.VolatilityPct != 25 || cfg.Market.Days != 30 {
		t.Errorf("unexpected market defaults: %+v", cfg.Market)
	}
	if cfg.Engine.RangeFactor != 1.5 {
		t.Errorf("RangeFactor = %v, want 1.5", cfg.Engine.RangeFactor)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.toml")); err != nil {
		t.Errorf("expected template to be written: %v", err)
	}

	// The written template must load back to the same values.
	again, err := Load(dir)
	if err != nil {
		t.Fatalf("reloading template: %v", err)
	}
	if again.Market != cfg.Market || again.Engine != cfg.Engine {
		t.Errorf("template differs from defaults: %+v vs %+v", again, cfg)
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[market]
spot = 250.5
volatility_pct = 40
rate_pct = 3.5
days = 0

[engine]
range_factor = 1.25
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p := cfg.Market.Parameters()
	if p.SpotPrice != 250.5 || p.Volatility != 0.4 || p.DaysToExpiration != 0 {
		t.Errorf("unexpected parameters: %+v", p)
	}
	if cfg.Engine.RangeFactor != 1.25 {
		t.Errorf("RangeFactor = %v, want 1.25", cfg.Engine.RangeFactor)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level default = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[market]\nspot = 100\n")
	t.Setenv("OPTSTRAT_SPOT", "42.5")
	t.Setenv("OPTSTRAT_DAYS", "7")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Market.Spot != 42.5 {
		t.Errorf("Spot = %v, want 42.5 from env", cfg.Market.Spot)
	}
	if cfg.Market.Days != 7 {
		t.Errorf("Days = %v, want 7 from env", cfg.Market.Days)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative spot", "[market]\nspot = -1\n"},
		{"zero volatility", "[market]\nvolatility_pct = 0\n"},
		{"range factor too small", "[engine]\nrange_factor = 1.0\n"},
		{"range factor too large", "[engine]\nrange_factor = 2.0\n"},
		{"bad log level", "[logging]\nlevel = \"loud\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !apperrors.Is(err, apperrors.ErrConfigInvalid) {
				t.Errorf("expected ErrConfigInvalid, got %v", err)
			}
		})
	}
}
