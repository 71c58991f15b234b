package output

import (
	"encoding/json"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// JSONFormatter renders the full result as JSON
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	if j.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
