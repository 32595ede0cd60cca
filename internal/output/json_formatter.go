package output

import (
	"encoding/json"

	"github.com/optionmc/option-pricer/internal/domain"
)

// JSONFormatter serializes the pricing result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.PricingResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
