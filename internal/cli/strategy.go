package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"optstrat/internal/config"
	apperrors "optstrat/internal/errors"
	"optstrat/internal/logging"
	"optstrat/internal/models"
	"optstrat/internal/pricing"
	"optstrat/internal/strategy"
	"optstrat/pkg/utils"
)

// curveStride is the number of grid steps between printed curve rows.
const curveStride = 10

// addStrategyCommands adds strategy analysis commands.
func addStrategyCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newStrategyCmd(app))
	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(newPriceCmd(app))
}

func newStrategyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Browse the strategy catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available strategies",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config)
			defs := app.Engine.Catalog().All()
			if output.IsJSON() {
				return output.JSON(defs)
			}

			table := NewTable(output, "ID", "NAME", "LEGS", "COMPLEXITY", "RISK")
			for _, def := range defs {
				table.AddRow(def.ID, def.Name, fmt.Sprintf("%d", len(def.Legs)), def.Complexity, def.Risk)
			}
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show a strategy's legs and default leg values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config)
			def, err := app.Engine.Catalog().Get(args[0])
			if err != nil {
				return err
			}
			market := app.Config.Market.Parameters()
			legs, err := app.Engine.GenerateDefaultLegs(def.ID, market.SpotPrice, market)
			if err != nil {
				return err
			}

			if output.IsJSON() {
				return output.JSON(struct {
					Strategy    models.StrategyDefinition `json:"strategy"`
					Market      models.MarketParameters   `json:"market"`
					DefaultLegs []models.LegInstance      `json:"default_legs"`
				}{def, market, legs})
			}

			output.Bold("%s (%s)", def.Name, def.ID)
			output.Println(def.Description)
			output.Dim("Complexity: %s  Risk: %s", def.Complexity, def.Risk)
			output.Println()
			printMarket(output, market)
			output.Println()
			printLegs(output, def, legs)
			return nil
		},
	})

	return cmd
}

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		spot, vol, rate, rangeFactor float64
		days                         int
		strikes, premiums, bases     []string
		showCurve                    bool
		csvPath                      string
	)

	cmd := &cobra.Command{
		Use:   "analyze <id>",
		Short: "Analyze a strategy's profit and loss",
		Long: `Analyze builds the default legs for a strategy at the given market
parameters, applies any per-leg overrides, and reports profit/loss at
expiration and today, breakevens, maximum profit and loss, net premium and
position Greeks.

Leg overrides use 1-based indexes, e.g. --strike 2=105 --premium 2=1.25.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config)
			id := args[0]
			logger := logging.WithOperation(logging.WithStrategy(logging.FromContext(cmd.Context()), id), "analyze")

			market := marketFromFlags(cmd, app.Config.Market, spot, vol, rate, days)
			engine := app.Engine
			if cmd.Flags().Changed("range") {
				var err error
				engine, err = strategy.NewEngine(app.Engine.Catalog(), config.EngineConfig{RangeFactor: rangeFactor}, logger)
				if err != nil {
					return apperrors.Wrap(err, "--range")
				}
			}

			legs, err := engine.GenerateDefaultLegs(id, market.SpotPrice, market)
			if err != nil {
				return err
			}
			if err := applyOverrides(legs, strikes, premiums, bases); err != nil {
				return err
			}

			profile, err := engine.Analyze(id, market, legs)
			if err != nil {
				return err
			}

			if csvPath != "" {
				if err := ExportCurveCSV(csvPath, profile); err != nil {
					return err
				}
				logger.Info().Str("path", csvPath).Int("rows", len(profile.Grid)).Msg("Curve exported")
			}

			if output.IsJSON() {
				return output.JSON(profile)
			}

			def, _ := engine.Catalog().Get(id)
			printProfile(output, def, profile, showCurve)
			if csvPath != "" {
				output.Success("✓ Curve written to %s", csvPath)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&spot, "spot", 0, "underlying price (default from config)")
	cmd.Flags().Float64Var(&vol, "vol", 0, "annualized volatility in percent (default from config)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "risk-free rate in percent (default from config)")
	cmd.Flags().IntVar(&days, "days", 0, "calendar days to expiration (default from config)")
	cmd.Flags().Float64Var(&rangeFactor, "range", strategy.DefaultRangeFactor, "display grid range factor k, grid spans spot*(2-k)..spot*k")
	cmd.Flags().StringArrayVar(&strikes, "strike", nil, "override a leg strike, leg=value")
	cmd.Flags().StringArrayVar(&premiums, "premium", nil, "override a leg premium, leg=value")
	cmd.Flags().StringArrayVar(&bases, "cost-basis", nil, "override a stock leg cost basis, leg=value")
	cmd.Flags().BoolVar(&showCurve, "curve", false, "print the profit/loss curves")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write the profit/loss curves to a CSV file")

	return cmd
}

func newPriceCmd(app *App) *cobra.Command {
	var (
		optionType              string
		spot, strike, vol, rate float64
		days                    int
	)

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a single option",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd, app.Config)
			market := marketFromFlags(cmd, app.Config.Market, spot, vol, rate, days)
			if err := market.Validate(); err != nil {
				return err
			}

			typ := models.InstrumentType(strings.ToLower(optionType))
			if !cmd.Flags().Changed("strike") {
				strike = market.SpotPrice
			}

			years := market.TimeToExpiry()
			value, err := pricing.Price(typ, market.SpotPrice, strike, years, market.RiskFreeRate, market.Volatility)
			if err != nil {
				return err
			}
			greeks, err := pricing.Greeks(typ, market.SpotPrice, strike, years, market.RiskFreeRate, market.Volatility)
			if err != nil {
				return err
			}
			intrinsic := pricing.Intrinsic(typ, market.SpotPrice, strike)

			if output.IsJSON() {
				return output.JSON(struct {
					Type      models.InstrumentType   `json:"type"`
					Strike    float64                 `json:"strike"`
					Market    models.MarketParameters `json:"market"`
					Value     float64                 `json:"value"`
					Intrinsic float64                 `json:"intrinsic"`
					TimeValue float64                 `json:"time_value"`
					Greeks    models.OptionGreeks     `json:"greeks"`
				}{typ, strike, market, value, intrinsic, value - intrinsic, greeks})
			}

			output.Bold("%s %s", strings.ToUpper(string(typ)), utils.FormatPrice(strike))
			printMarket(output, market)
			output.Println()
			output.Printf("  Value:       %s\n", utils.FormatCurrency(value))
			output.Printf("  Intrinsic:   %s\n", utils.FormatCurrency(intrinsic))
			output.Printf("  Time value:  %s\n", utils.FormatCurrency(value-intrinsic))
			output.Printf("  Contract:    %s\n", utils.FormatCurrency(value*models.ContractMultiplier))
			output.Printf("  Greeks:      %s\n", FormatGreeks(greeks))
			return nil
		},
	}

	cmd.Flags().StringVar(&optionType, "type", "call", "option type: call or put")
	cmd.Flags().Float64Var(&spot, "spot", 0, "underlying price (default from config)")
	cmd.Flags().Float64Var(&strike, "strike", 0, "strike price (default: spot)")
	cmd.Flags().Float64Var(&vol, "vol", 0, "annualized volatility in percent (default from config)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "risk-free rate in percent (default from config)")
	cmd.Flags().IntVar(&days, "days", 0, "calendar days to expiration (default from config)")

	return cmd
}

// marketFromFlags starts from the configured market defaults and applies
// any market flags set on the command line.
func marketFromFlags(cmd *cobra.Command, defaults config.MarketConfig, spot, vol, rate float64, days int) models.MarketParameters {
	m := defaults
	if cmd.Flags().Changed("spot") {
		m.Spot = spot
	}
	if cmd.Flags().Changed("vol") {
		m.VolatilityPct = vol
	}
	if cmd.Flags().Changed("rate") {
		m.RatePct = rate
	}
	if cmd.Flags().Changed("days") {
		m.Days = days
	}
	return m.Parameters()
}

// applyOverrides edits legs in place from --strike, --premium and
// --cost-basis values. Strike and premium apply to option legs only, cost
// basis to stock legs only.
func applyOverrides(legs []models.LegInstance, strikes, premiums, bases []string) error {
	set := []struct {
		flag   string
		values []string
		option bool
		apply  func(*models.LegInstance, float64)
	}{
		{"strike", strikes, true, func(l *models.LegInstance, v float64) { l.Strike = v }},
		{"premium", premiums, true, func(l *models.LegInstance, v float64) { l.Premium = v }},
		{"cost-basis", bases, false, func(l *models.LegInstance, v float64) { l.CostBasis = v }},
	}

	for _, s := range set {
		overrides, err := parseLegOverrides(s.flag, s.values, len(legs))
		if err != nil {
			return err
		}
		for i, v := range overrides {
			if legs[i].Type.IsOption() != s.option {
				return fmt.Errorf("--%s: leg %d is a %s leg", s.flag, i+1, legs[i].Type)
			}
			s.apply(&legs[i], v)
		}
	}
	return nil
}

func printMarket(output *Output, m models.MarketParameters) {
	output.Dim("Spot %s  Vol %.2f%%  Rate %.2f%%  Days %d",
		utils.FormatPrice(m.SpotPrice), m.Volatility*100, m.RiskFreeRate*100, m.DaysToExpiration)
}

func printLegs(output *Output, def models.StrategyDefinition, legs []models.LegInstance) {
	table := NewTable(output, "#", "ACTION", "TYPE", "QTY", "OFFSET", "STRIKE", "PREMIUM", "COST BASIS")
	for i, tpl := range def.Legs {
		leg := legs[i]
		offset, strike, premium, basis := "-", "-", "-", "-"
		if tpl.Type.IsOption() {
			offset = FormatOffset(tpl.StrikeOffset)
			strike = utils.FormatPrice(leg.Strike)
			premium = utils.FormatPrice(leg.Premium)
		} else {
			basis = utils.FormatPrice(leg.CostBasis)
		}
		table.AddRow(fmt.Sprintf("%d", i+1), string(tpl.Action), string(tpl.Type),
			fmt.Sprintf("%d", tpl.Quantity), offset, strike, premium, basis)
	}
	table.Render()
}

func printProfile(output *Output, def models.StrategyDefinition, p *models.Profile, showCurve bool) {
	output.Bold("%s (%s)", def.Name, def.ID)
	printMarket(output, p.Market)
	output.Println()
	printLegs(output, def, p.Legs)
	output.Println()

	output.Bold("Metrics")
	output.Printf("  Net premium:  %s\n", FormatNetPremium(p.NetPremium))
	output.Printf("  Max profit:   %s\n", output.PnL(p.MaxProfit))
	output.Printf("  Max loss:     %s\n", output.PnL(p.MaxLoss))
	output.Printf("  Breakevens:   %s\n", FormatBreakevens(p.Breakevens))
	output.Printf("  Greeks:       %s\n", FormatGreeks(p.Greeks))

	if !showCurve {
		return
	}
	output.Println()
	output.Bold("Profit/Loss")
	table := NewTable(output, "PRICE", "AT EXPIRATION", "TODAY")
	for i := 0; i < len(p.Grid); i += curveStride {
		table.AddRow(utils.FormatPrice(p.Grid[i]), output.PnL(p.Expiration[i]), output.PnL(p.Current[i]))
	}
	table.Render()
}
