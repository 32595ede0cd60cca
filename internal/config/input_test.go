package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optionmc/option-pricer/internal/domain"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "initial_price: 120\n" +
		"strike: 125\n" +
		"maturity_years: 0.5\n" +
		"risk_free_rate: 0.03\n" +
		"volatility: 0.25\n" +
		"num_paths: 5000\n" +
		"num_steps: 126\n" +
		"seed: 42\n"

	tmpfile := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(tmpfile, []byte(testConfig), 0o644))

	parser := NewInputParser()
	params, err := parser.LoadFromFile(tmpfile)

	require.NoError(t, err)
	require.NotNil(t, params)
	assert.Equal(t, 120.0, params.InitialPrice)
	assert.Equal(t, 125.0, params.Strike)
	assert.Equal(t, 0.5, params.MaturityYears)
	assert.Equal(t, 0.03, params.RiskFreeRate)
	assert.Equal(t, 0.25, params.Volatility)
	assert.Equal(t, 5000, params.NumPaths)
	assert.Equal(t, 126, params.NumSteps)
	assert.Equal(t, int64(42), params.Seed)
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	// Only the strike is overridden; everything else takes defaults.
	tmpfile := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(tmpfile, []byte("strike: 95\n"), 0o644))

	parser := NewInputParser()
	params, err := parser.LoadFromFile(tmpfile)

	require.NoError(t, err)
	assert.Equal(t, 95.0, params.Strike)
	assert.Equal(t, domain.DefaultInitialPrice, params.InitialPrice)
	assert.Equal(t, domain.DefaultNumPaths, params.NumPaths)
	assert.Equal(t, domain.DefaultNumSteps, params.NumSteps)
	assert.Equal(t, int64(0), params.Seed)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	params, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, params)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	tmpfile := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(tmpfile, []byte("initial_price: [not a number\n"), 0o644))

	parser := NewInputParser()
	params, err := parser.LoadFromFile(tmpfile)

	assert.Error(t, err)
	assert.Nil(t, params)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_ValidationFailure(t *testing.T) {
	tmpfile := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(tmpfile, []byte("volatility: -0.2\n"), 0o644))

	parser := NewInputParser()
	params, err := parser.LoadFromFile(tmpfile)

	require.Error(t, err)
	assert.Nil(t, params)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameter))
}

func TestWriteExampleConfig_Roundtrip(t *testing.T) {
	tmpfile := filepath.Join(t.TempDir(), "example.yaml")

	parser := NewInputParser()
	require.NoError(t, parser.WriteExampleConfig(tmpfile))

	params, err := parser.LoadFromFile(tmpfile)
	require.NoError(t, err)
	assert.Equal(t, parser.CreateExampleConfiguration(), *params)
}
