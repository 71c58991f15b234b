package calculation

import (
	"fmt"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// CONTRIBUTION AND TAX PIPELINE:
//
// Every sector runs the same skeleton and then applies its own stages:
//
//  1. Untaxed amount: when enabled, a gross salary at or below the sector
//     minimum wage has a fixed amount removed from the contribution base.
//  2. Employee contributions: pension (CAS) and health (CASS) are percentages
//     of the contribution base, rounded half-up to whole lei.
//  3. Income tax: applied to gross, minus the untaxed amount, contributions
//     and personal deduction, plus voucher income. Floored at zero.
//  4. Employer surcharge (CAM): work insurance on the employer base. This is
//     the only value truncated instead of rounded.
//
// Sector stages then replace parts of the skeleton: a reduced pension rate
// for IT, and a threshold exemption that taxes only the part of gross above
// a ceiling for IT, construction and agriculture.

// sectorParams carries what differs between sectors in the skeleton
type sectorParams struct {
	sector      domain.Sector
	minimumWage decimal.Decimal
	pensionRate decimal.Decimal
	healthRate  decimal.Decimal
}

func (c *SalaryCalculator) paramsFor(sector domain.Sector) sectorParams {
	rates := c.Rules.Salary.Rates
	p := sectorParams{
		sector:      sector,
		minimumWage: c.Rules.MinimumWageFor(sector),
		pensionRate: c.Rules.PensionRateFor(sector),
		healthRate:  rates.Health,
	}
	if sector.IsConstructionLike() && c.Rules.Salary.Facilities.ConstructionHealthExempt {
		p.healthRate = decimal.Zero
	}
	return p
}

// calculateBase runs the shared skeleton for one sector
func (c *SalaryCalculator) calculateBase(gross decimal.Decimal, opts domain.CalculationOptions, p sectorParams) domain.CalculationResult {
	rules := c.Rules.Salary
	overtaxed := c.isOvertaxed(gross, opts, p.minimumWage)

	untaxed := decimal.Zero
	if !overtaxed && rules.Facilities.UntaxedAmountEnabled && gross.LessThanOrEqual(p.minimumWage) {
		untaxed = rules.Facilities.UntaxedAmount
	}

	contributionBase := nonNegative(gross.Sub(untaxed))
	if overtaxed {
		contributionBase = p.minimumWage
	}

	r := domain.CalculationResult{
		Sector:              p.sector,
		Gross:               gross,
		ContributionBase:    contributionBase,
		EmployerBase:        contributionBase,
		UntaxedAmount:       untaxed,
		PensionContribution: roundUnits(percentOf(contributionBase, p.pensionRate)),
		HealthContribution:  roundUnits(percentOf(contributionBase, p.healthRate)),
		PersonalDeduction:   c.PersonalDeduction(gross, opts),
		VoucherIncome:       opts.VoucherIncome(),
		IsOvertaxed:         overtaxed,
		Rates: domain.RateBreakdown{
			Pension:       p.pensionRate,
			Health:        p.healthRate,
			IncomeTax:     rules.Rates.IncomeTax,
			WorkInsurance: rules.Rates.WorkInsurance,
		},
		Converged: true,
	}

	r = c.withIncomeTax(r, gross.Sub(untaxed))

	r.EmployerSurcharge = percentOf(r.EmployerBase, rules.Rates.WorkInsurance).Floor()
	r.TotalCost = gross.Add(r.EmployerSurcharge)

	if untaxed.IsPositive() {
		r = r.WithNote(fmt.Sprintf("untaxed amount of %s lei applied at or below the minimum wage", untaxed.StringFixed(0)))
	}
	if overtaxed {
		r = r.WithNote(overtaxationNote(r))
	}
	return r
}

// withIncomeTax recomputes taxable income, income tax and net salary.
// taxablePart is the share of gross that is subject to income tax before
// contributions and deductions are removed.
func (c *SalaryCalculator) withIncomeTax(r domain.CalculationResult, taxablePart decimal.Decimal) domain.CalculationResult {
	taxable := taxablePart.
		Sub(r.PensionContribution).
		Sub(r.HealthContribution).
		Sub(r.PersonalDeduction).
		Add(r.VoucherIncome)
	r.TaxableIncome = nonNegative(taxable)
	r.IncomeTax = roundUnits(percentOf(r.TaxableIncome, c.Rules.Salary.Rates.IncomeTax))
	return withNet(r)
}

// withNet recomputes net salary and, for overtaxed results, the shortfall the
// employer has to cover
func withNet(r domain.CalculationResult) domain.CalculationResult {
	r.Net = r.Gross.Sub(r.TotalWithholdings())
	r.OvertaxShortfall = decimal.Zero
	if r.IsOvertaxed && r.Net.IsNegative() {
		r.OvertaxShortfall = r.Net.Neg()
	}
	return r
}

// withReducedPension recomputes the pension contribution at a lower rate and
// the tax that depends on it
func (c *SalaryCalculator) withReducedPension(r domain.CalculationResult, rate decimal.Decimal) domain.CalculationResult {
	r.PensionContribution = roundUnits(percentOf(r.ContributionBase, rate))
	r.Rates.Pension = rate
	r = c.withIncomeTax(r, r.Gross.Sub(r.UntaxedAmount))
	return r.WithNote(fmt.Sprintf("pension contribution reduced to %s%%", rate.String()))
}

// withThresholdExemption exempts gross up to threshold from income tax. Above
// the threshold only the excess is taxed.
func (c *SalaryCalculator) withThresholdExemption(r domain.CalculationResult, threshold decimal.Decimal, label string) domain.CalculationResult {
	if r.Gross.LessThanOrEqual(threshold) {
		r.TaxableIncome = decimal.Zero
		r.IncomeTax = decimal.Zero
		r.Rates.IncomeTax = decimal.Zero
		r = withNet(r)
		return r.WithNote(fmt.Sprintf("%s income tax exemption: gross at or below %s lei", label, threshold.StringFixed(0)))
	}
	r = c.withIncomeTax(r, r.Gross.Sub(threshold))
	return r.WithNote(fmt.Sprintf("%s income tax exemption: only the amount above %s lei is taxed", label, threshold.StringFixed(0)))
}

// CalculateStandard computes a result for the standard sector
func (c *SalaryCalculator) CalculateStandard(gross decimal.Decimal, opts domain.CalculationOptions) domain.CalculationResult {
	return c.calculateBase(gross, opts, c.paramsFor(domain.SectorStandard))
}

// CalculateIT computes a result for the IT sector: the standard result, an
// optional reduced pension when the second pillar is optional, and the IT
// threshold exemption when enabled.
func (c *SalaryCalculator) CalculateIT(gross decimal.Decimal, opts domain.CalculationOptions) domain.CalculationResult {
	r := c.CalculateStandard(gross, opts)
	r.Sector = domain.SectorIT

	facilities := c.Rules.Salary.Facilities
	if facilities.ITSecondPillarOptional {
		rates := c.Rules.Salary.Rates
		r = c.withReducedPension(r, nonNegative(rates.Pension.Sub(rates.SecondPillar)))
	}
	if facilities.ITTaxExempt {
		r = c.withThresholdExemption(r, c.Rules.Salary.Thresholds.IT, domain.SectorIT.Label())
	}
	return r
}

// CalculateConstruction computes a result for construction or agriculture.
// Any other sector value is treated as construction.
func (c *SalaryCalculator) CalculateConstruction(gross decimal.Decimal, opts domain.CalculationOptions, sector domain.Sector) domain.CalculationResult {
	if sector != domain.SectorAgriculture {
		sector = domain.SectorConstruction
	}
	r := c.calculateBase(gross, opts, c.paramsFor(sector))

	if c.Rules.Salary.Facilities.ConstructionTaxExempt {
		r = c.withThresholdExemption(r, c.Rules.Salary.Thresholds.ConstructionAgriculture, sector.Label())
	}
	return r
}
