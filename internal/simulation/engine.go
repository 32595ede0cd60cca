package simulation

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/optionmc/option-pricer/internal/domain"
)

// Engine orchestrates one pricing run: validate, simulate, price, summarize.
// Each run is independent and side-effect-free apart from consuming entropy,
// so a single Engine can serve any number of invocations.
type Engine struct {
	Logger zerolog.Logger
}

// NewEngine creates a pricing engine with the given logger.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{Logger: logger}
}

// Run executes the full pipeline for one parameter set and returns the
// pricing result together with the simulated path matrix so callers can hand
// it to a visualization consumer. A zero seed is replaced with a derived one;
// the effective seed is recorded in the result for reproducibility.
func (e *Engine) Run(params domain.SimulationParameters) (*domain.PricingResult, *domain.PathMatrix, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}
	if params.Seed == 0 {
		params.Seed = seedFunc()
	}

	e.Logger.Debug().
		Int("paths", params.NumPaths).
		Int("steps", params.NumSteps).
		Int64("seed", params.Seed).
		Float64("dt", params.StepSize()).
		Msg("Starting path simulation")

	start := time.Now()
	simulator := NewPathSimulator(NewSource(params.Seed))
	matrix, err := simulator.SimulatePaths(params)
	if err != nil {
		return nil, nil, err
	}

	price, stdErr, err := PriceEuropeanCall(matrix, params.Strike, params.RiskFreeRate, params.MaturityYears)
	if err != nil {
		return nil, nil, err
	}

	terminal, err := TerminalStatistics(matrix)
	if err != nil {
		return nil, nil, err
	}

	elapsed := time.Since(start)
	e.Logger.Info().
		Float64("price", price).
		Float64("std_error", stdErr).
		Dur("elapsed", elapsed).
		Msg("Pricing complete")

	result := &domain.PricingResult{
		Price:          price,
		StandardError:  stdErr,
		DiscountFactor: params.DiscountFactor(),
		Terminal:       terminal,
		Parameters:     params,
		Elapsed:        elapsed,
	}
	return result, matrix, nil
}
