package calculation

import (
	"fmt"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// isOvertaxed reports whether a part-time salary must pay contributions as if
// it were the sector minimum wage
func (c *SalaryCalculator) isOvertaxed(gross decimal.Decimal, opts domain.CalculationOptions, minimumWage decimal.Decimal) bool {
	rules := c.Rules.Salary.Overtaxation
	if !rules.Enabled || !opts.IsPartTime {
		return false
	}
	if !gross.LessThan(minimumWage) {
		return false
	}
	return !opts.HasOvertaxationExemption(rules)
}

// overtaxationNote explains the contribution base of an overtaxed result
func overtaxationNote(r domain.CalculationResult) string {
	if r.OvertaxShortfall.IsPositive() {
		return fmt.Sprintf("part-time salary below the minimum wage: contributions are due on %s lei; the employer covers a shortfall of %s lei",
			r.ContributionBase.StringFixed(0), r.OvertaxShortfall.StringFixed(0))
	}
	return fmt.Sprintf("part-time salary below the minimum wage: contributions are due on %s lei",
		r.ContributionBase.StringFixed(0))
}
