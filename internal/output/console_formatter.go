package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/optionmc/option-pricer/internal/domain"
	"github.com/optionmc/option-pricer/pkg/money"
)

// ConsoleFormatter renders a human-readable pricing report.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.PricingResult) ([]byte, error) {
	p := result.Parameters
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "EUROPEAN CALL OPTION PRICE ESTIMATE")
	fmt.Fprintln(&buf, "===================================")
	fmt.Fprintf(&buf, "The estimated price of the European Call Option is: %s\n", money.New(result.Price).Format())
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Standard error:   %s\n", money.New(result.StandardError).Format())
	fmt.Fprintf(&buf, "Discount factor:  %.6f\n", result.DiscountFactor)
	fmt.Fprintf(&buf, "Terminal price:   mean=%s stddev=%s min=%s max=%s\n",
		money.New(result.Terminal.Mean).Format(),
		money.New(result.Terminal.StdDev).Format(),
		money.New(result.Terminal.Min).Format(),
		money.New(result.Terminal.Max).Format(),
	)
	fmt.Fprintf(&buf, "Percentiles:      P10=%s P50=%s P90=%s\n",
		money.New(result.Terminal.P10).Format(),
		money.New(result.Terminal.P50).Format(),
		money.New(result.Terminal.P90).Format(),
	)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Parameters: S0=%.2f K=%.2f T=%.2fy r=%.4f sigma=%.4f\n",
		p.InitialPrice, p.Strike, p.MaturityYears, p.RiskFreeRate, p.Volatility)
	fmt.Fprintf(&buf, "Simulation: paths=%d steps=%d seed=%d elapsed=%s\n",
		p.NumPaths, p.NumSteps, p.Seed, result.Elapsed.Round(time.Millisecond))
	return buf.Bytes(), nil
}
