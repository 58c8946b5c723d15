package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# optstrat configuration

[market]
# Default underlying price
spot = 100.0
# Annualized volatility in percent
volatility_pct = 25.0
# Annualized risk-free rate in percent
rate_pct = 5.0
# Calendar days to expiration
days = 30

[engine]
# Display grid spans spot*(2-range_factor) .. spot*range_factor
range_factor = 1.5

[ui]
# Enable colored output
color_enabled = true

[logging]
# Log level: debug, info, warn, error
level = "warn"
# Also write rotated log files
file = false
max_size = 10
max_backups = 3
max_age = 30
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing config template: %w", err)
	}

	return nil
}
