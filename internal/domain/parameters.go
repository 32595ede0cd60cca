package domain

import (
	"fmt"
	"math"
)

// Default simulation parameters, used when a configuration file or flag omits a value.
const (
	DefaultInitialPrice  = 100.0
	DefaultStrike        = 110.0
	DefaultMaturityYears = 1.0
	DefaultRiskFreeRate  = 0.05
	DefaultVolatility    = 0.2
	DefaultNumPaths      = 10000
	DefaultNumSteps      = 252
)

// SimulationParameters is the immutable input record for one pricing run.
// Rates and volatility are annualized; maturity is in years.
type SimulationParameters struct {
	InitialPrice  float64 `yaml:"initial_price" json:"initial_price"`
	Strike        float64 `yaml:"strike" json:"strike"`
	MaturityYears float64 `yaml:"maturity_years" json:"maturity_years"`
	RiskFreeRate  float64 `yaml:"risk_free_rate" json:"risk_free_rate"`
	Volatility    float64 `yaml:"volatility" json:"volatility"`
	NumPaths      int     `yaml:"num_paths" json:"num_paths"`
	NumSteps      int     `yaml:"num_steps" json:"num_steps"`
	// Seed drives the random source. Zero means derive a seed at run time.
	Seed int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// DefaultParameters returns the standard example parameter set.
func DefaultParameters() SimulationParameters {
	return SimulationParameters{
		InitialPrice:  DefaultInitialPrice,
		Strike:        DefaultStrike,
		MaturityYears: DefaultMaturityYears,
		RiskFreeRate:  DefaultRiskFreeRate,
		Volatility:    DefaultVolatility,
		NumPaths:      DefaultNumPaths,
		NumSteps:      DefaultNumSteps,
	}
}

// Validate checks the parameter record before any simulation work.
// All violations are reported as ErrInvalidParameter.
func (p SimulationParameters) Validate() error {
	if !isFinite(p.InitialPrice) || p.InitialPrice <= 0 {
		return fmt.Errorf("%w: initial price must be a positive finite number, got %v", ErrInvalidParameter, p.InitialPrice)
	}
	if !isFinite(p.Strike) || p.Strike <= 0 {
		return fmt.Errorf("%w: strike must be a positive finite number, got %v", ErrInvalidParameter, p.Strike)
	}
	if !isFinite(p.MaturityYears) || p.MaturityYears <= 0 {
		return fmt.Errorf("%w: maturity must be a positive number of years, got %v", ErrInvalidParameter, p.MaturityYears)
	}
	if !isFinite(p.RiskFreeRate) {
		return fmt.Errorf("%w: risk-free rate must be finite, got %v", ErrInvalidParameter, p.RiskFreeRate)
	}
	if !isFinite(p.Volatility) || p.Volatility < 0 {
		return fmt.Errorf("%w: volatility cannot be negative, got %v", ErrInvalidParameter, p.Volatility)
	}
	if p.NumPaths <= 0 {
		return fmt.Errorf("%w: number of paths must be positive, got %d", ErrInvalidParameter, p.NumPaths)
	}
	if p.NumSteps <= 0 {
		return fmt.Errorf("%w: number of steps must be positive, got %d", ErrInvalidParameter, p.NumSteps)
	}
	return nil
}

// StepSize returns dt = T/M. Only meaningful for validated parameters.
func (p SimulationParameters) StepSize() float64 {
	return p.MaturityYears / float64(p.NumSteps)
}

// DiscountFactor returns exp(-r*T), the present-value factor at maturity.
func (p SimulationParameters) DiscountFactor() float64 {
	return math.Exp(-p.RiskFreeRate * p.MaturityYears)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
