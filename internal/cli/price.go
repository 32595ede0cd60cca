package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/optionmc/option-pricer/internal/domain"
	"github.com/optionmc/option-pricer/internal/output"
	"github.com/optionmc/option-pricer/internal/simulation"
)

// priceFlags collects the flag overrides for the price command.
type priceFlags struct {
	configFile string
	format     string
	save       bool
	chartFile  string
	chartPaths int
	pathsCSV   string

	initialPrice float64
	strike       float64
	maturity     float64
	rate         float64
	volatility   float64
	numPaths     int
	numSteps     int
	seed         int64
}

func newPriceCmd(app *App) *cobra.Command {
	flags := &priceFlags{}

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Estimate a European call option price via Monte Carlo",
		Long: `Simulates asset price paths under Geometric Brownian Motion and reports
the discounted expected payoff. Parameters come from defaults, an optional
YAML configuration file, and flag overrides, in that order of precedence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := resolveParameters(app, cmd, flags)
			if err != nil {
				return err
			}

			engine := simulation.NewEngine(app.Logger)
			result, matrix, err := engine.Run(params)
			if err != nil {
				return err
			}

			if err := writeResult(cmd, flags, result); err != nil {
				return err
			}
			if flags.pathsCSV != "" {
				if err := output.ExportPathsCSV(matrix, flags.pathsCSV); err != nil {
					return err
				}
				app.Logger.Info().Str("file", flags.pathsCSV).Msg("Path matrix exported")
			}
			if flags.chartFile != "" {
				if err := output.WritePathChart(matrix, flags.chartPaths, flags.chartFile); err != nil {
					return err
				}
				app.Logger.Info().Str("file", flags.chartFile).Msg("Path chart written")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "YAML parameter file")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.Flags().BoolVar(&flags.save, "save", false, "write the report to a timestamped file instead of stdout")
	cmd.Flags().StringVar(&flags.chartFile, "chart", "", "write a PNG chart of simulated paths to this file")
	cmd.Flags().IntVar(&flags.chartPaths, "chart-paths", 50, "maximum number of paths to draw in the chart")
	cmd.Flags().StringVar(&flags.pathsCSV, "paths-csv", "", "export the full path matrix as CSV to this file")

	cmd.Flags().Float64VarP(&flags.initialPrice, "initial-price", "s", domain.DefaultInitialPrice, "initial asset price S0")
	cmd.Flags().Float64VarP(&flags.strike, "strike", "k", domain.DefaultStrike, "strike price K")
	cmd.Flags().Float64VarP(&flags.maturity, "maturity", "t", domain.DefaultMaturityYears, "time to maturity T in years")
	cmd.Flags().Float64VarP(&flags.rate, "rate", "r", domain.DefaultRiskFreeRate, "annualized risk-free rate r")
	cmd.Flags().Float64Var(&flags.volatility, "volatility", domain.DefaultVolatility, "annualized volatility sigma")
	cmd.Flags().IntVarP(&flags.numPaths, "paths", "n", domain.DefaultNumPaths, "number of simulated paths N")
	cmd.Flags().IntVarP(&flags.numSteps, "steps", "m", domain.DefaultNumSteps, "number of time steps M")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed (0 derives one from the clock)")

	return cmd
}

// resolveParameters layers defaults, the optional config file, and explicit
// flag overrides into one validated parameter record.
func resolveParameters(app *App, cmd *cobra.Command, flags *priceFlags) (domain.SimulationParameters, error) {
	params := domain.DefaultParameters()
	if flags.configFile != "" {
		loaded, err := app.Parser.LoadFromFile(flags.configFile)
		if err != nil {
			return domain.SimulationParameters{}, err
		}
		params = *loaded
	}

	set := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	set("initial-price", func() { params.InitialPrice = flags.initialPrice })
	set("strike", func() { params.Strike = flags.strike })
	set("maturity", func() { params.MaturityYears = flags.maturity })
	set("rate", func() { params.RiskFreeRate = flags.rate })
	set("volatility", func() { params.Volatility = flags.volatility })
	set("paths", func() { params.NumPaths = flags.numPaths })
	set("steps", func() { params.NumSteps = flags.numSteps })
	set("seed", func() { params.Seed = flags.seed })

	if err := params.Validate(); err != nil {
		return domain.SimulationParameters{}, err
	}
	return params, nil
}

func writeResult(cmd *cobra.Command, flags *priceFlags, result *domain.PricingResult) error {
	formatter := output.GetFormatterByName(flags.format)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %s", flags.format, strings.Join(output.AvailableFormatterNames(), ", "))
	}

	if flags.save {
		ext := map[string]string{"console": "txt", "json": "json", "csv": "csv"}[formatter.Name()]
		filename, err := output.WriteFormatted(formatter, result, ext)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), filename)
		return nil
	}

	data, err := formatter.Format(result)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
