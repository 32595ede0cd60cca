package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/optionmc/option-pricer/internal/domain"
)

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// rawParameters mirrors SimulationParameters with optional fields so omitted
// values can fall back to defaults before validation.
type rawParameters struct {
	InitialPrice  *float64 `yaml:"initial_price"`
	Strike        *float64 `yaml:"strike"`
	MaturityYears *float64 `yaml:"maturity_years"`
	RiskFreeRate  *float64 `yaml:"risk_free_rate"`
	Volatility    *float64 `yaml:"volatility"`
	NumPaths      *int     `yaml:"num_paths"`
	NumSteps      *int     `yaml:"num_steps"`
	Seed          *int64   `yaml:"seed"`
}

// LoadFromFile loads simulation parameters from a YAML file, applying the
// default parameter set for any omitted field, then validates the result.
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var raw rawParameters
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	params := applyDefaults(raw)
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &params, nil
}

func applyDefaults(raw rawParameters) domain.SimulationParameters {
	params := domain.DefaultParameters()
	if raw.InitialPrice != nil {
		params.InitialPrice = *raw.InitialPrice
	}
	if raw.Strike != nil {
		params.Strike = *raw.Strike
	}
	if raw.MaturityYears != nil {
		params.MaturityYears = *raw.MaturityYears
	}
	if raw.RiskFreeRate != nil {
		params.RiskFreeRate = *raw.RiskFreeRate
	}
	if raw.Volatility != nil {
		params.Volatility = *raw.Volatility
	}
	if raw.NumPaths != nil {
		params.NumPaths = *raw.NumPaths
	}
	if raw.NumSteps != nil {
		params.NumSteps = *raw.NumSteps
	}
	if raw.Seed != nil {
		params.Seed = *raw.Seed
	}
	return params
}

// CreateExampleConfiguration returns the default example parameter set.
func (ip *InputParser) CreateExampleConfiguration() domain.SimulationParameters {
	return domain.DefaultParameters()
}

// WriteExampleConfig serializes the example configuration to a YAML file.
func (ip *InputParser) WriteExampleConfig(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleConfiguration())
	if err != nil {
		return fmt.Errorf("failed to marshal example config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
