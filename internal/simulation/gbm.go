package simulation

import (
	"math"

	"github.com/optionmc/option-pricer/internal/domain"
)

// PathSimulator generates asset price trajectories under Geometric Brownian
// Motion using the exact log-normal transition, which is free of
// discretization bias:
//
//	S[t+1] = S[t] * exp((r - sigma^2/2)*dt + sigma*sqrt(dt)*Z)
//
// with Z ~ N(0,1) drawn independently per (path, step).
type PathSimulator struct {
	Source NormalSource
}

// NewPathSimulator creates a simulator drawing from the given source.
func NewPathSimulator(source NormalSource) *PathSimulator {
	return &PathSimulator{Source: source}
}

// SimulatePaths produces an N x (M+1) path matrix where column 0 is the
// initial price for every row. The matrix is freshly allocated and
// independent of caller state; its only side effect is consuming draws from
// the source. Invalid parameters fail with ErrInvalidParameter before any
// simulation work.
func (ps *PathSimulator) SimulatePaths(params domain.SimulationParameters) (*domain.PathMatrix, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	dt := params.StepSize()
	drift := (params.RiskFreeRate - 0.5*params.Volatility*params.Volatility) * dt
	diffusion := params.Volatility * math.Sqrt(dt)

	matrix := domain.NewPathMatrix(params.NumPaths, params.NumSteps)
	for i := 0; i < params.NumPaths; i++ {
		price := params.InitialPrice
		matrix.Set(i, 0, price)
		for t := 1; t <= params.NumSteps; t++ {
			z := ps.Source.NormFloat64()
			price *= math.Exp(drift + diffusion*z)
			matrix.Set(i, t, price)
		}
	}
	return matrix, nil
}
