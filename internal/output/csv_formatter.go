package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// CSVFormatter writes a header row and a single row for the result
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Sector", "Gross", "Net", "Pension", "Health", "IncomeTax",
		"ContributionBase", "PersonalDeduction", "TaxableIncome", "UntaxedAmount",
		"EmployerSurcharge", "TotalCost", "IsOvertaxed", "OvertaxShortfall", "Notes",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		string(result.Sector),
		result.Gross.StringFixed(0),
		result.Net.StringFixed(0),
		result.PensionContribution.StringFixed(0),
		result.HealthContribution.StringFixed(0),
		result.IncomeTax.StringFixed(0),
		result.ContributionBase.StringFixed(0),
		result.PersonalDeduction.StringFixed(0),
		result.TaxableIncome.StringFixed(0),
		result.UntaxedAmount.StringFixed(0),
		result.EmployerSurcharge.StringFixed(0),
		result.TotalCost.StringFixed(0),
		strconv.FormatBool(result.IsOvertaxed),
		result.OvertaxShortfall.StringFixed(0),
		strings.Join(result.Notes, "; "),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
