package calculation

import (
	"fmt"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ApplyExemptions applies the personal income tax exemptions on top of a
// sector result. Disability is applied before youth; each one only moves the
// remaining income tax into net salary.
func (c *SalaryCalculator) ApplyExemptions(r domain.CalculationResult, opts domain.CalculationOptions) domain.CalculationResult {
	facilities := c.Rules.Salary.Facilities

	if facilities.DisabilityExempt && opts.IsDisabled && r.IncomeTax.IsPositive() {
		r = exemptIncomeTax(r, "disability")
	}

	youthThreshold := c.Rules.Salary.Thresholds.Youth
	if facilities.YouthExempt && opts.IsYouth && r.Gross.LessThanOrEqual(youthThreshold) && r.IncomeTax.IsPositive() {
		r = exemptIncomeTax(r, fmt.Sprintf("youth (gross up to %s lei)", youthThreshold.StringFixed(0)))
	}
	return r
}

func exemptIncomeTax(r domain.CalculationResult, reason string) domain.CalculationResult {
	waived := r.IncomeTax
	r.IncomeTax = decimal.Zero
	r.Rates.IncomeTax = decimal.Zero
	r = withNet(r)
	return r.WithNote(fmt.Sprintf("income tax of %s lei waived: %s exemption", waived.StringFixed(0), reason))
}
