package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a detailed salary breakdown for the terminal
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 56))
	fmt.Fprintf(&buf, "SALARY CALCULATION - %s SECTOR\n", strings.ToUpper(result.Sector.Label()))
	fmt.Fprintln(&buf, strings.Repeat("=", 56))
	fmt.Fprintln(&buf)

	line(&buf, "Gross salary", result.Gross)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "EMPLOYEE WITHHOLDINGS")
	fmt.Fprintln(&buf, strings.Repeat("-", 56))
	rateLine(&buf, "Pension (CAS)", result.Rates.Pension, result.PensionContribution)
	rateLine(&buf, "Health (CASS)", result.Rates.Health, result.HealthContribution)
	rateLine(&buf, "Income tax", result.Rates.IncomeTax, result.IncomeTax)
	line(&buf, "Total withholdings", result.TotalWithholdings())
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "TAX BASE")
	fmt.Fprintln(&buf, strings.Repeat("-", 56))
	line(&buf, "Contribution base", result.ContributionBase)
	if result.UntaxedAmount.IsPositive() {
		line(&buf, "Untaxed amount", result.UntaxedAmount)
	}
	line(&buf, "Personal deduction", result.PersonalDeduction)
	if result.VoucherIncome.IsPositive() {
		line(&buf, "Voucher income", result.VoucherIncome)
	}
	line(&buf, "Taxable income", result.TaxableIncome)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "EMPLOYER")
	fmt.Fprintln(&buf, strings.Repeat("-", 56))
	rateLine(&buf, "Work insurance (CAM)", result.Rates.WorkInsurance, result.EmployerSurcharge)
	line(&buf, "Total employer cost", result.TotalCost)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, strings.Repeat("=", 56))
	line(&buf, "NET SALARY", result.Net)
	fmt.Fprintln(&buf, strings.Repeat("=", 56))

	if result.IsOvertaxed {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Part-time overtaxation applies.")
		if result.OvertaxShortfall.IsPositive() {
			line(&buf, "Employer shortfall", result.OvertaxShortfall)
		}
	}

	if result.Iterations > 0 {
		fmt.Fprintln(&buf)
		status := "converged"
		if !result.Converged {
			status = "closest match"
		}
		fmt.Fprintf(&buf, "Search: %d iterations (%s)\n", result.Iterations, status)
	}

	if len(result.Notes) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "NOTES")
		for _, note := range result.Notes {
			fmt.Fprintf(&buf, "• %s\n", note)
		}
	}

	return buf.Bytes(), nil
}

func line(buf *bytes.Buffer, label string, amount decimal.Decimal) {
	fmt.Fprintf(buf, "%-30s %20s\n", label+":", FormatLei(amount))
}

func rateLine(buf *bytes.Buffer, label string, rate, amount decimal.Decimal) {
	fmt.Fprintf(buf, "%-30s %20s\n", fmt.Sprintf("%s %s:", label, FormatPercentage(rate)), FormatLei(amount))
}
