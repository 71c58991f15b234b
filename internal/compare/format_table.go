package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing sectors
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("SECTOR COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Amount: %s lei (%s)\n", compSet.Amount.StringFixed(0), compSet.CalculationType))
	sb.WriteString(fmt.Sprintf("Rules year: %d\n", compSet.RulesYear))
	sb.WriteString("\n")

	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Sector",
		numWidth, "Gross",
		numWidth, "Net",
		numWidth, "Income Tax",
		numWidth, "Total Cost"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if compSet.BaseResult != nil && len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO " + strings.ToUpper(compSet.BaseResult.Label) + "\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.Label))
			sb.WriteString(fmt.Sprintf("  Net:          %s%s lei (%s%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				alt.NetDiffFromBase.StringFixed(0),
				tf.deltaSymbol(alt.NetPctFromBase),
				alt.NetPctFromBase.StringFixed(1)))

			if !alt.CostDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Total Cost:   %s%s lei\n",
					tf.deltaSymbol(alt.CostDiffFromBase),
					alt.CostDiffFromBase.StringFixed(0)))
			}
			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Income Tax:   %s%s lei\n",
					tf.deltaSymbol(alt.TaxDiffFromBase),
					alt.TaxDiffFromBase.StringFixed(0)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nHIGHLIGHTS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single sector row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.Label
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, result.Gross.StringFixed(0),
		numWidth, result.Net.StringFixed(0),
		numWidth, result.IncomeTax.StringFixed(0),
		numWidth, result.TotalCost.StringFixed(0))
}

// deltaSymbol returns "+" for positive deltas; negative values carry their own sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary of the net differences
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	if compSet.BaseResult != nil {
		sb.WriteString(fmt.Sprintf("Base: %s %s lei | ", compSet.BaseResult.Label, compSet.BaseResult.Net.StringFixed(0)))
	}

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		netChange := "="
		if !alt.NetDiffFromBase.IsZero() {
			netChange = tf.deltaSymbol(alt.NetDiffFromBase) + alt.NetDiffFromBase.StringFixed(0)
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.Label, netChange))
	}

	return sb.String()
}
