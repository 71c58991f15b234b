package output

import (
	"fmt"
	"io"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateReport renders result with the named formatter and writes it to w
func GenerateReport(w io.Writer, result *domain.CalculationResult, format string) error {
	formatter := GetFormatterByName(format)
	if formatter == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format result: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// FormatLei formats a whole-lei amount for display
func FormatLei(amount decimal.Decimal) string {
	return amount.StringFixed(0) + " lei"
}

// FormatPercentage formats a percentage rate for display
func FormatPercentage(rate decimal.Decimal) string {
	return rate.String() + "%"
}
