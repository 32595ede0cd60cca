package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionmc/option-pricer/internal/cli"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := cli.NewRootCmd(zerolog.Nop())
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestCLIVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "option-pricer v")
}

func TestCLIPriceWithConfigFile(t *testing.T) {
	out, err := runCommand(t, "price", "--config", "../testdata/example_config.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "The estimated price of the European Call Option is: $")
	assert.Contains(t, out, "seed=42")
}

func TestCLIPriceFlagOverrides(t *testing.T) {
	out, err := runCommand(t, "price",
		"--paths", "500", "--steps", "16", "--seed", "7",
		"--volatility", "0", "--strike", "90")
	require.NoError(t, err)
	// sigma=0 collapses to the deterministic discounted payoff.
	assert.Contains(t, out, "The estimated price of the European Call Option is: $14.39")
}

func TestCLIPriceChartAndCSVExport(t *testing.T) {
	dir := t.TempDir()
	chartPath := filepath.Join(dir, "paths.png")
	csvPath := filepath.Join(dir, "paths.csv")

	_, err := runCommand(t, "price",
		"--paths", "100", "--steps", "16", "--seed", "1",
		"--chart", chartPath, "--chart-paths", "10",
		"--paths-csv", csvPath)
	require.NoError(t, err)
	assert.FileExists(t, chartPath)
	assert.FileExists(t, csvPath)
}

func TestCLIPriceLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "pricer.log")

	_, err := runCommand(t, "price",
		"--paths", "50", "--steps", "4", "--seed", "3",
		"--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err, "expected --log-file to route logs to the rotating file")
	assert.Contains(t, string(data), "Pricing complete")
}

func TestCLIPriceInvalidParameters(t *testing.T) {
	_, err := runCommand(t, "price", "--maturity", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid parameter")
}

func TestCLIPriceUnknownFormat(t *testing.T) {
	_, err := runCommand(t, "price", "--format", "xml", "--paths", "10", "--steps", "2", "--seed", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestCLIConfigInit(t *testing.T) {
	file := filepath.Join(t.TempDir(), "params.yaml")
	out, err := runCommand(t, "config", "init", file)
	require.NoError(t, err)
	assert.Contains(t, out, file)
	assert.FileExists(t, file)
}

func TestCLIConfigShow(t *testing.T) {
	out, err := runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "S0=100.00")
	assert.Contains(t, out, "paths=10000")
}
