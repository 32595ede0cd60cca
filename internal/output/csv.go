package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/optionmc/option-pricer/internal/domain"
	"github.com/optionmc/option-pricer/pkg/money"
)

// CSVFormatter produces a summary CSV with aggregate statistics for one run.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.PricingResult) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Metric", "Value", "Description"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	p := result.Parameters
	rows := [][]string{
		{"Price", money.New(result.Price).Format(), "Discounted expected payoff"},
		{"Standard Error", money.New(result.StandardError).Format(), "Monte Carlo sampling error of the estimate"},
		{"Discount Factor", strconv.FormatFloat(result.DiscountFactor, 'f', 6, 64), "exp(-r*T)"},
		{"Terminal Mean", money.New(result.Terminal.Mean).Format(), "Mean simulated price at maturity"},
		{"Terminal StdDev", money.New(result.Terminal.StdDev).Format(), "Standard deviation of prices at maturity"},
		{"Terminal P10", money.New(result.Terminal.P10).Format(), "10th percentile of prices at maturity"},
		{"Terminal P50", money.New(result.Terminal.P50).Format(), "Median price at maturity"},
		{"Terminal P90", money.New(result.Terminal.P90).Format(), "90th percentile of prices at maturity"},
		{"Paths", strconv.Itoa(p.NumPaths), "Number of simulated trajectories"},
		{"Steps", strconv.Itoa(p.NumSteps), "Time steps per trajectory"},
		{"Seed", strconv.FormatInt(p.Seed, 10), "Random source seed used"},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write data row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportPathsCSV writes every simulated trajectory to a CSV file, one row per
// path with a PathID column followed by the price at each step. Intended for
// offline inspection of the raw matrix.
func ExportPathsCSV(matrix *domain.PathMatrix, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := make([]string, matrix.NumSteps()+2)
	header[0] = "PathID"
	for t := 0; t <= matrix.NumSteps(); t++ {
		header[t+1] = "Step" + strconv.Itoa(t)
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := make([]string, matrix.NumSteps()+2)
	for i := 0; i < matrix.NumPaths(); i++ {
		row[0] = strconv.Itoa(i)
		for t, price := range matrix.Row(i) {
			row[t+1] = strconv.FormatFloat(price, 'f', 4, 64)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write path %d: %w", i, err)
		}
	}
	return nil
}
