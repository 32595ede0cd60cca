package simulation

import (
	"fmt"
	"math"

	"github.com/optionmc/option-pricer/internal/domain"
)

// PriceEuropeanCall reduces a path matrix to a discounted European call price
// estimate:
//
//	payoff_i = max(S_i[M] - K, 0)
//	price    = exp(-r*T) * mean(payoff_i)
//
// It also returns the Monte Carlo standard error of the estimate, the sample
// standard deviation of the discounted payoffs divided by sqrt(N). The
// reduction is pure and one-shot; an empty matrix or a non-finite terminal
// price fails with ErrComputation and no partial result.
func PriceEuropeanCall(matrix *domain.PathMatrix, strike, rate, maturity float64) (price, stdErr float64, err error) {
	if matrix == nil || matrix.NumPaths() == 0 {
		return 0, 0, fmt.Errorf("%w: empty path matrix", domain.ErrComputation)
	}

	discount := math.Exp(-rate * maturity)
	n := matrix.NumPaths()

	var sum, sumSquares float64
	for i := 0; i < n; i++ {
		terminal := matrix.Terminal(i)
		if math.IsNaN(terminal) || math.IsInf(terminal, 0) {
			return 0, 0, fmt.Errorf("%w: non-finite terminal price in path %d", domain.ErrComputation, i)
		}
		payoff := discount * math.Max(terminal-strike, 0)
		sum += payoff
		sumSquares += payoff * payoff
	}

	price = sum / float64(n)
	if n > 1 {
		variance := (sumSquares - float64(n)*price*price) / float64(n-1)
		if variance < 0 {
			variance = 0 // guard against rounding below zero
		}
		stdErr = math.Sqrt(variance / float64(n))
	}
	return price, stdErr, nil
}
