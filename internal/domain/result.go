package domain

import "time"

// TerminalStatistics summarizes the distribution of simulated prices at maturity.
type TerminalStatistics struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P10    float64 `json:"p10"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
}

// PricingResult is the outcome of one Monte Carlo pricing run.
// Price is the discounted expected payoff; StandardError is the Monte Carlo
// sampling error of that estimate (shrinks as 1/sqrt(N)).
type PricingResult struct {
	Price          float64              `json:"price"`
	StandardError  float64              `json:"standard_error"`
	DiscountFactor float64              `json:"discount_factor"`
	Terminal       TerminalStatistics   `json:"terminal_statistics"`
	Parameters     SimulationParameters `json:"parameters"`
	Elapsed        time.Duration        `json:"elapsed_ns"`
}
