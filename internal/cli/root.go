// Package cli provides the command-line interface for the strategy engine.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"optstrat/internal/config"
	"optstrat/internal/logging"
	"optstrat/internal/strategy"
	"optstrat/pkg/utils"
)

// Version information
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Engine *strategy.Engine
}

// NewRootCmd creates the root command for the CLI. Configuration, logger and
// engine are built in PersistentPreRunE once flags are parsed.
func NewRootCmd(logger zerolog.Logger) *cobra.Command {
	app := &App{Logger: logger}

	rootCmd := &cobra.Command{
		Use:   "optstrat",
		Short: "Options strategy payoff analyzer",
		Long: `optstrat prices option legs with Black-Scholes-Merton and analyzes
multi-leg strategies: profit/loss at expiration and today, breakevens,
maximum profit and loss, and position Greeks.

Use 'optstrat strategy list' to see the available strategies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/optstrat)")
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	addCoreCommands(rootCmd, app)
	addStrategyCommands(rootCmd, app)

	return rootCmd
}

func (app *App) init(cmd *cobra.Command) error {
	configDir, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	app.Config = cfg

	logCfg := logging.FromConfig(cfg.Logging)
	logCfg.Output = cmd.ErrOrStderr()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		logCfg.Level = "debug"
	}
	app.Logger = logging.NewLoggerWithConfig(logCfg)

	catalog, err := strategy.DefaultCatalog()
	if err != nil {
		return err
	}
	app.Engine, err = strategy.NewEngine(catalog, cfg.Engine, app.Logger)
	if err != nil {
		return err
	}
	cmd.SetContext(logging.WithLogger(cmd.Context(), app.Logger))

	app.Logger.Debug().
		Str("config_dir", configDir).
		Int("strategies", len(catalog.IDs())).
		Msg("Application initialized")

	return nil
}

// addCoreCommands adds core utility commands.
func addCoreCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, nil)
			if output.IsJSON() {
				output.JSON(map[string]string{
					"version":    Version,
					"build_date": BuildDate,
				})
			} else {
				output.Printf("optstrat v%s\n", Version)
				output.Dim("Build date: %s", BuildDate)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			showConfig(output, app.Config)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd, app.Config)
			dir, _ := cmd.Flags().GetString("config")
			if dir == "" {
				dir = config.DefaultConfigDir()
			}
			if output.IsJSON() {
				output.JSON(map[string]string{"path": dir})
			} else {
				output.Println(dir)
			}
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			if output.IsJSON() {
				output.JSON(map[string]bool{"valid": true})
			} else {
				output.Success("✓ Configuration is valid")
			}
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Market Defaults")
	output.Printf("  Spot:            %s\n", utils.FormatPrice(cfg.Market.Spot))
	output.Printf("  Volatility:      %.2f%%\n", cfg.Market.VolatilityPct)
	output.Printf("  Risk-free rate:  %.2f%%\n", cfg.Market.RatePct)
	output.Printf("  Days to expiry:  %d\n", cfg.Market.Days)
	output.Println()

	output.Bold("Engine")
	output.Printf("  Range factor:    %.2f\n", cfg.Engine.RangeFactor)
	output.Println()

	output.Bold("Logging")
	output.Printf("  Level:           %s\n", cfg.Logging.Level)
	output.Printf("  File:            %v\n", cfg.Logging.File)
	if cfg.Logging.File {
		output.Printf("  Path:            %s\n", cfg.Logging.FilePath)
	}
}
