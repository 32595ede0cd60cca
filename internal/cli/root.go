// Package cli provides the command-line interface for the option pricer.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/optionmc/option-pricer/internal/config"
	"github.com/optionmc/option-pricer/internal/logging"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Logger zerolog.Logger
	Parser *config.InputParser
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(logger zerolog.Logger) *cobra.Command {
	app := &App{
		Logger: logger,
		Parser: config.NewInputParser(),
	}

	rootCmd := &cobra.Command{
		Use:   "option-pricer",
		Short: "Monte Carlo European call option pricer",
		Long: `option-pricer estimates the fair price of a European call option by
simulating asset price paths under Geometric Brownian Motion and averaging
the discounted terminal payoffs.

Use 'option-pricer price' to run a pricing simulation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
				cfg := logging.DefaultConfig()
				cfg.File = true
				cfg.FilePath = logFile
				app.Logger = logging.NewLoggerWithConfig(cfg)
			}
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "also write logs to this rotating file")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newPriceCmd(app))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "option-pricer v%s\n", Version)
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "Generate and inspect simulation parameter files.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [file]",
		Short: "Write an example configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := "option-pricer.yaml"
			if len(args) == 1 {
				filename = args[0]
			}
			if err := app.Parser.WriteExampleConfig(filename); err != nil {
				return err
			}
			app.Logger.Info().Str("file", filename).Msg("Example configuration written")
			fmt.Fprintln(cmd.OutOrStdout(), filename)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the default parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			params := app.Parser.CreateExampleConfiguration()
			fmt.Fprintf(cmd.OutOrStdout(), "S0=%.2f K=%.2f T=%.2fy r=%.4f sigma=%.4f paths=%d steps=%d\n",
				params.InitialPrice, params.Strike, params.MaturityYears,
				params.RiskFreeRate, params.Volatility, params.NumPaths, params.NumSteps)
			return nil
		},
	})

	return cmd
}
