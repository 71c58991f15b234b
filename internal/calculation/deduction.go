package calculation

import (
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// DeductionCap is the full personal deduction: the base plus the per-child
// and per-dependent amounts. The whole sum phases out together.
func (c *SalaryCalculator) DeductionCap(opts domain.CalculationOptions) decimal.Decimal {
	d := c.Rules.Salary.Deduction
	children := d.PerChild.Mul(decimal.NewFromInt(int64(max(opts.Children, 0))))
	dependents := d.PerOtherDependent.Mul(decimal.NewFromInt(int64(max(opts.Dependents, 0))))
	return c.Rules.DeductionBase().Add(children).Add(dependents)
}

// PersonalDeduction returns the regressive personal deduction for a gross
// salary. The deduction is anchored on the economy-wide minimum wage:
//
//	gross <= minimum wage          full cap
//	gross >  minimum wage + range  zero
//	otherwise                      cap * (1 - (gross - minimum wage) / range), rounded
//
// A non-positive range is treated like a salary at the minimum wage.
func (c *SalaryCalculator) PersonalDeduction(gross decimal.Decimal, opts domain.CalculationOptions) decimal.Decimal {
	if !opts.IsBasicFunction {
		return decimal.Zero
	}

	minimumWage := c.Rules.Salary.MinimumWage.Standard
	phaseOut := c.Rules.Salary.Deduction.Range
	total := c.DeductionCap(opts)

	if gross.LessThanOrEqual(minimumWage) || !phaseOut.IsPositive() {
		return total
	}
	above := gross.Sub(minimumWage)
	if above.GreaterThan(phaseOut) {
		return decimal.Zero
	}

	// divide last so exact halves still round up
	remaining := total.Mul(phaseOut.Sub(above)).Div(phaseOut)
	return nonNegative(roundUnits(remaining))
}
