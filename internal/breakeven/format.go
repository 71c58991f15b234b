package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats raise results as a console table
type TableFormatter struct{}

// Format renders a single raise as a before/after table
func (tf *TableFormatter) Format(result *RaiseResult) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 64) + "\n")
	sb.WriteString(fmt.Sprintf("RAISE ANALYSIS - %s SECTOR\n", strings.ToUpper(result.Sector.Label())))
	sb.WriteString(strings.Repeat("=", 64) + "\n\n")

	sb.WriteString(fmt.Sprintf("%-20s %12s %12s %12s\n", "", "Before", "After", "Change"))
	sb.WriteString(strings.Repeat("-", 64) + "\n")
	tf.row(&sb, "Gross", result.Before.Gross, result.After.Gross)
	tf.row(&sb, "Net", result.Before.Net, result.After.Net)
	tf.row(&sb, "Income tax", result.Before.IncomeTax, result.After.IncomeTax)
	tf.row(&sb, "Employer cost", result.Before.TotalCost, result.After.TotalCost)
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Cost per extra lei net: %s\n", result.CostPerNetLei.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("Share reaching employee: %s%%\n", result.NetShare.StringFixed(1)))
	sb.WriteString(fmt.Sprintf("Status: %s (%s)\n", tf.formatStatus(result.Success), result.ConvergenceInfo))
	return sb.String()
}

// FormatMultiSector renders one raise solved in every sector
func (tf *TableFormatter) FormatMultiSector(result *MultiSectorResult) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-14s %10s %10s %10s %10s %8s\n", "Sector", "Gross +", "Net +", "Cost +", "Cost/lei", "Share"))
	sb.WriteString(strings.Repeat("-", 67) + "\n")
	for _, r := range result.Results {
		marker := " "
		if result.Best != nil && r.Sector == result.Best.Sector {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%-13s%s %10s %10s %10s %10s %7s%%\n",
			tf.truncate(r.Sector.Label(), 13), marker,
			tf.deltaSymbol(r.GrossIncrease)+r.GrossIncrease.StringFixed(0),
			tf.deltaSymbol(r.NetIncrease)+r.NetIncrease.StringFixed(0),
			tf.deltaSymbol(r.CostIncrease)+r.CostIncrease.StringFixed(0),
			r.CostPerNetLei.StringFixed(2),
			r.NetShare.StringFixed(1)))
	}

	if len(result.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		for _, rec := range result.Recommendations {
			sb.WriteString("• " + rec + "\n")
		}
	}
	return sb.String()
}

func (tf *TableFormatter) row(sb *strings.Builder, label string, before, after decimal.Decimal) {
	change := after.Sub(before)
	sb.WriteString(fmt.Sprintf("%-20s %12s %12s %12s\n", label,
		before.StringFixed(0), after.StringFixed(0), tf.deltaSymbol(change)+change.StringFixed(0)))
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "OK"
	}
	return "NOT MET"
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// JSONFormatter formats raise results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format renders a single raise as JSON
func (jf *JSONFormatter) Format(result *RaiseResult) (string, error) {
	return jf.marshal(result)
}

// FormatMultiSector renders a multi-sector raise as JSON
func (jf *JSONFormatter) FormatMultiSector(result *MultiSectorResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
