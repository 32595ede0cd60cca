package main

import (
	"os"

	"github.com/optionmc/option-pricer/internal/cli"
	"github.com/optionmc/option-pricer/internal/logging"
)

func main() {
	logger := logging.NewLogger()
	rootCmd := cli.NewRootCmd(logger)
	if err := rootCmd.Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
