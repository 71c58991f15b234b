package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Sector",
		"Type",
		"Gross",
		"Net",
		"Income Tax",
		"Total Cost",
		"Net Diff from Base",
		"Net % Change",
		"Cost Diff from Base",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, rowType string) []string {
	return []string{
		string(result.Sector),
		rowType,
		result.Gross.StringFixed(0),
		result.Net.StringFixed(0),
		result.IncomeTax.StringFixed(0),
		result.TotalCost.StringFixed(0),
		result.NetDiffFromBase.StringFixed(0),
		result.NetPctFromBase.StringFixed(1),
		result.CostDiffFromBase.StringFixed(0),
		result.TaxDiffFromBase.StringFixed(0),
	}
}
