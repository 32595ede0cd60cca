package output

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/vicanso/go-charts/v2"

	"github.com/optionmc/option-pricer/internal/domain"
)

// RenderPathChart renders up to maxPaths simulated trajectories as a PNG line
// chart. The chart is a pure consumer of the path matrix; the numerical core
// never depends on it.
func RenderPathChart(matrix *domain.PathMatrix, maxPaths int) ([]byte, error) {
	if matrix == nil || matrix.NumPaths() == 0 {
		return nil, errors.New("no paths to render")
	}
	if maxPaths <= 0 || maxPaths > matrix.NumPaths() {
		maxPaths = matrix.NumPaths()
	}

	values := make([][]float64, maxPaths)
	var yMin, yMax float64
	for i := 0; i < maxPaths; i++ {
		row := matrix.Row(i)
		values[i] = row
		for j, v := range row {
			if i == 0 && j == 0 {
				yMin, yMax = v, v
				continue
			}
			if v < yMin {
				yMin = v
			}
			if v > yMax {
				yMax = v
			}
		}
	}

	pad := (yMax - yMin) * 0.05
	if pad < yMax*0.002 {
		pad = yMax * 0.002
	}
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	xLabels := make([]string, matrix.NumSteps()+1)
	for t := 0; t <= matrix.NumSteps(); t++ {
		xLabels[t] = strconv.Itoa(t)
	}

	painter, err := charts.LineRender(values,
		charts.TitleTextOptionFunc(fmt.Sprintf("Simulated GBM price paths (%d of %d)", maxPaths, matrix.NumPaths())),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: xLabels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// WritePathChart renders the chart and writes it to outputPath.
func WritePathChart(matrix *domain.PathMatrix, maxPaths int, outputPath string) error {
	img, err := RenderPathChart(matrix, maxPaths)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, img, 0o644); err != nil {
		return fmt.Errorf("failed to write chart %s: %w", outputPath, err)
	}
	return nil
}
