package simulation

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/optionmc/option-pricer/internal/domain"
)

// TerminalStatistics summarizes the distribution of terminal prices across
// all simulated paths.
func TerminalStatistics(matrix *domain.PathMatrix) (domain.TerminalStatistics, error) {
	if matrix == nil || matrix.NumPaths() == 0 {
		return domain.TerminalStatistics{}, fmt.Errorf("%w: empty path matrix", domain.ErrComputation)
	}

	data := stats.Float64Data(matrix.TerminalPrices())

	mean, err := data.Mean()
	if err != nil {
		return domain.TerminalStatistics{}, fmt.Errorf("%w: %v", domain.ErrComputation, err)
	}
	min, err := data.Min()
	if err != nil {
		return domain.TerminalStatistics{}, fmt.Errorf("%w: %v", domain.ErrComputation, err)
	}
	max, err := data.Max()
	if err != nil {
		return domain.TerminalStatistics{}, fmt.Errorf("%w: %v", domain.ErrComputation, err)
	}

	// Sample standard deviation is undefined for a single path; leave it zero.
	var stdDev float64
	if matrix.NumPaths() > 1 {
		stdDev, err = data.StandardDeviationSample()
		if err != nil {
			return domain.TerminalStatistics{}, fmt.Errorf("%w: %v", domain.ErrComputation, err)
		}
	}

	p10, err := percentileOrMean(data, 10, mean)
	if err != nil {
		return domain.TerminalStatistics{}, err
	}
	p50, err := percentileOrMean(data, 50, mean)
	if err != nil {
		return domain.TerminalStatistics{}, err
	}
	p90, err := percentileOrMean(data, 90, mean)
	if err != nil {
		return domain.TerminalStatistics{}, err
	}

	return domain.TerminalStatistics{
		Mean:   mean,
		StdDev: stdDev,
		Min:    min,
		Max:    max,
		P10:    p10,
		P50:    p50,
		P90:    p90,
	}, nil
}

// percentileOrMean falls back to the mean for samples too small for the
// requested percentile.
func percentileOrMean(data stats.Float64Data, percent, mean float64) (float64, error) {
	p, err := data.Percentile(percent)
	if err != nil {
		if len(data) > 0 {
			return mean, nil
		}
		return 0, fmt.Errorf("%w: %v", domain.ErrComputation, err)
	}
	return p, nil
}
