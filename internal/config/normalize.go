package config

import (
	"math"
	"strings"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// Raw rules schema keys
const (
	keyYear    = "year"
	keyVersion = "version"
	keySalary  = "salary"
)

// Normalize converts a loosely-typed rules record (decoded YAML/JSON, an
// admin form payload, ...) into a fully populated FiscalRules. Missing or
// unparsable fields take their DefaultRules value; a nil or non-map input
// yields FallbackRules. Top-level sections other than salary are kept in
// Extra untouched. Normalize never panics.
func Normalize(raw any) domain.FiscalRules {
	if raw == nil {
		return FallbackRules()
	}
	root, err := cast.ToStringMapE(raw)
	if err != nil || root == nil {
		return FallbackRules()
	}

	def := DefaultRules()
	rules := domain.FiscalRules{
		Year:    integer(root, keyYear, def.Year),
		Version: text(root, keyVersion, ""),
	}

	salary := section(root, keySalary)
	rules.Salary = normalizeSalary(salary, def.Salary)

	for k, v := range root {
		switch k {
		case keyYear, keyVersion, keySalary:
			continue
		}
		if rules.Extra == nil {
			rules.Extra = make(map[string]any)
		}
		rules.Extra[k] = v
	}

	return rules
}

func normalizeSalary(salary map[string]any, def domain.SalaryRules) domain.SalaryRules {
	rates := section(salary, "rates")
	wages := section(salary, "minimum_wage")
	thresholds := section(salary, "thresholds")
	deduction := section(salary, "deduction")
	facilities := section(salary, "facilities")
	overtax := section(salary, "overtaxation")

	out := domain.SalaryRules{
		Rates: domain.ContributionRates{
			Pension:             number(rates, "pension", def.Rates.Pension),
			Health:              number(rates, "health", def.Rates.Health),
			IncomeTax:           number(rates, "income_tax", def.Rates.IncomeTax),
			WorkInsurance:       number(rates, "work_insurance", def.Rates.WorkInsurance),
			ConstructionPension: number(rates, "construction_pension", def.Rates.ConstructionPension),
			AgriculturePension:  number(rates, "agriculture_pension", def.Rates.AgriculturePension),
			SecondPillar:        number(rates, "second_pillar", def.Rates.SecondPillar),
		},
		MinimumWage: domain.MinimumWages{
			Standard:     number(wages, "standard", def.MinimumWage.Standard),
			Construction: number(wages, "construction", def.MinimumWage.Construction),
			Agriculture:  number(wages, "agriculture", def.MinimumWage.Agriculture),
			IT:           number(wages, "it", def.MinimumWage.IT),
		},
		Thresholds: domain.ExemptionThresholds{
			IT:                      number(thresholds, "it", def.Thresholds.IT),
			ConstructionAgriculture: number(thresholds, "construction_agriculture", def.Thresholds.ConstructionAgriculture),
			Youth:                   number(thresholds, "youth", def.Thresholds.Youth),
		},
		Deduction: normalizeDeduction(deduction, def.Deduction),
		Facilities: domain.Facilities{
			UntaxedAmountEnabled:     boolean(facilities, "untaxed_amount_enabled", def.Facilities.UntaxedAmountEnabled),
			UntaxedAmount:            number(facilities, "untaxed_amount", def.Facilities.UntaxedAmount),
			ITTaxExempt:              boolean(facilities, "it_tax_exempt", def.Facilities.ITTaxExempt),
			ITSecondPillarOptional:   boolean(facilities, "it_second_pillar_optional", def.Facilities.ITSecondPillarOptional),
			ConstructionTaxExempt:    boolean(facilities, "construction_tax_exempt", def.Facilities.ConstructionTaxExempt),
			ConstructionHealthExempt: boolean(facilities, "construction_health_exempt", def.Facilities.ConstructionHealthExempt),
			YouthExempt:              boolean(facilities, "youth_exempt", def.Facilities.YouthExempt),
			DisabilityExempt:         boolean(facilities, "disability_exempt", def.Facilities.DisabilityExempt),
		},
		Overtaxation: domain.OvertaxationRules{
			Enabled:          boolean(overtax, "enabled", def.Overtaxation.Enabled),
			ExemptMinors:     boolean(overtax, "exempt_minors", def.Overtaxation.ExemptMinors),
			ExemptStudents:   boolean(overtax, "exempt_students", def.Overtaxation.ExemptStudents),
			ExemptPensioners: boolean(overtax, "exempt_pensioners", def.Overtaxation.ExemptPensioners),
		},
	}

	return out
}

// normalizeDeduction keeps the percent mode only when the record asks for it:
// a record that sets base_amount without base_percent uses the fixed amount.
func normalizeDeduction(m map[string]any, def domain.DeductionRules) domain.DeductionRules {
	out := domain.DeductionRules{
		BaseAmount:        number(m, "base_amount", def.BaseAmount),
		BasePercent:       def.BasePercent,
		Range:             number(m, "range", def.Range),
		PerChild:          number(m, "per_child", def.PerChild),
		PerOtherDependent: number(m, "per_other_dependent", def.PerOtherDependent),
	}
	switch {
	case present(m, "base_percent"):
		out.BasePercent = number(m, "base_percent", decimal.Zero)
	case present(m, "base_amount"):
		out.BasePercent = decimal.Zero
	}
	return out
}

// section returns a nested object, or an empty map when it is missing or malformed
func section(parent map[string]any, key string) map[string]any {
	v, ok := parent[key]
	if !ok || v == nil {
		return map[string]any{}
	}
	m, err := cast.ToStringMapE(v)
	if err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

func present(m map[string]any, key string) bool {
	v, ok := m[key]
	return ok && v != nil
}

func number(m map[string]any, key string, def decimal.Decimal) decimal.Decimal {
	if !present(m, key) {
		return def
	}
	switch v := m[key].(type) {
	case decimal.Decimal:
		return v
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			return d
		}
		return def
	}
	f, err := cast.ToFloat64E(m[key])
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return decimal.NewFromFloat(f)
}

func boolean(m map[string]any, key string, def bool) bool {
	if !present(m, key) {
		return def
	}
	b, err := cast.ToBoolE(m[key])
	if err != nil {
		return def
	}
	return b
}

func integer(m map[string]any, key string, def int) int {
	if !present(m, key) {
		return def
	}
	i, err := cast.ToIntE(m[key])
	if err != nil {
		return def
	}
	return i
}

func text(m map[string]any, key string, def string) string {
	if !present(m, key) {
		return def
	}
	s, err := cast.ToStringE(m[key])
	if err != nil {
		return def
	}
	return s
}
