package config

import (
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// FISCAL RULE DEFAULTS (2025):
//
// 1. Contributions: pension 25%, health 10%, income tax 10%, employer
//    work insurance 2.25%. Construction and agriculture pay a reduced
//    pension rate of 21.25%; the second pillar share is 4.75%.
//
// 2. Minimum gross wage: 4050 lei economy-wide, 4582 lei in construction.
//    Agriculture and IT use the economy-wide value.
//
// 3. Untaxed amount: 300 lei excluded from the contribution base for
//    salaries at or below the minimum wage.
//
// 4. Personal deduction: 20% of the minimum wage plus 100 lei per child
//    and per other dependent, phased out linearly over 2000 lei above the
//    minimum wage.
//
// 5. Tax exemption ceilings: 10000 lei for IT and construction/agriculture,
//    6050 lei for the youth exemption.

const defaultYear = 2025

// DefaultRules returns the rule set used for every field a rules record omits
func DefaultRules() domain.FiscalRules {
	return domain.FiscalRules{
		Year: defaultYear,
		Salary: domain.SalaryRules{
			Rates: domain.ContributionRates{
				Pension:             decimal.NewFromInt(25),
				Health:              decimal.NewFromInt(10),
				IncomeTax:           decimal.NewFromInt(10),
				WorkInsurance:       decimal.NewFromFloat(2.25),
				ConstructionPension: decimal.NewFromFloat(21.25),
				AgriculturePension:  decimal.NewFromFloat(21.25),
				SecondPillar:        decimal.NewFromFloat(4.75),
			},
			MinimumWage: domain.MinimumWages{
				Standard:     decimal.NewFromInt(4050),
				Construction: decimal.NewFromInt(4582),
				Agriculture:  decimal.NewFromInt(4050),
				IT:           decimal.NewFromInt(4050),
			},
			Thresholds: domain.ExemptionThresholds{
				IT:                      decimal.NewFromInt(10000),
				ConstructionAgriculture: decimal.NewFromInt(10000),
				Youth:                   decimal.NewFromInt(6050),
			},
			Deduction: domain.DeductionRules{
				BaseAmount:        decimal.NewFromInt(810),
				BasePercent:       decimal.NewFromInt(20),
				Range:             decimal.NewFromInt(2000),
				PerChild:          decimal.NewFromInt(100),
				PerOtherDependent: decimal.NewFromInt(100),
			},
			Facilities: domain.Facilities{
				UntaxedAmountEnabled:     true,
				UntaxedAmount:            decimal.NewFromInt(300),
				ITTaxExempt:              false,
				ITSecondPillarOptional:   false,
				ConstructionTaxExempt:    true,
				ConstructionHealthExempt: false,
				YouthExempt:              true,
				DisabilityExempt:         true,
			},
			Overtaxation: domain.OvertaxationRules{
				Enabled:          true,
				ExemptMinors:     true,
				ExemptStudents:   true,
				ExemptPensioners: true,
			},
		},
	}
}

// FallbackRules is returned when no rules record exists at all. Only the
// statutory contribution rates and the economy minimum wage survive; every
// other amount is zero and every facility is off.
func FallbackRules() domain.FiscalRules {
	defaults := DefaultRules()
	return domain.FiscalRules{
		Year: defaultYear,
		Salary: domain.SalaryRules{
			Rates: domain.ContributionRates{
				Pension:             defaults.Salary.Rates.Pension,
				Health:              defaults.Salary.Rates.Health,
				IncomeTax:           defaults.Salary.Rates.IncomeTax,
				WorkInsurance:       defaults.Salary.Rates.WorkInsurance,
				ConstructionPension: defaults.Salary.Rates.Pension,
				AgriculturePension:  defaults.Salary.Rates.Pension,
			},
			MinimumWage: domain.MinimumWages{
				Standard: defaults.Salary.MinimumWage.Standard,
			},
		},
	}
}
