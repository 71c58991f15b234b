package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FiscalRules is a normalized, year-scoped snapshot of the salary tax
// parameters. It is produced by config.Normalize and is never mutated by
// the calculation engine.
type FiscalRules struct {
	Year    int         `yaml:"year" json:"year"`
	Version string      `yaml:"version,omitempty" json:"version,omitempty"`
	Salary  SalaryRules `yaml:"salary" json:"salary"`

	// Extra holds sections the salary engine does not interpret
	// (exchange rate, self-employment rules, ...) exactly as they were read.
	// They sit at the top level in both YAML and JSON.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MarshalJSON writes Extra sections next to year, version and salary
func (fr FiscalRules) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(fr.Extra)+3)
	for k, v := range fr.Extra {
		out[k] = v
	}
	out["year"] = fr.Year
	if fr.Version != "" {
		out["version"] = fr.Version
	}
	out["salary"] = fr.Salary
	return json.Marshal(out)
}

// UnmarshalJSON collects every unknown top-level key into Extra
func (fr *FiscalRules) UnmarshalJSON(data []byte) error {
	type plain FiscalRules
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	delete(raw, "year")
	delete(raw, "version")
	delete(raw, "salary")
	if len(raw) > 0 {
		known.Extra = raw
	}

	*fr = FiscalRules(known)
	return nil
}

// SalaryRules groups every parameter used by the salary calculator
type SalaryRules struct {
	Rates        ContributionRates   `yaml:"rates" json:"rates"`
	MinimumWage  MinimumWages        `yaml:"minimum_wage" json:"minimum_wage"`
	Thresholds   ExemptionThresholds `yaml:"thresholds" json:"thresholds"`
	Deduction    DeductionRules      `yaml:"deduction" json:"deduction"`
	Facilities   Facilities          `yaml:"facilities" json:"facilities"`
	Overtaxation OvertaxationRules   `yaml:"overtaxation" json:"overtaxation"`
}

// ContributionRates are expressed as percentages (25 means 25%)
type ContributionRates struct {
	Pension             decimal.Decimal `yaml:"pension" json:"pension"`
	Health              decimal.Decimal `yaml:"health" json:"health"`
	IncomeTax           decimal.Decimal `yaml:"income_tax" json:"income_tax"`
	WorkInsurance       decimal.Decimal `yaml:"work_insurance" json:"work_insurance"`
	ConstructionPension decimal.Decimal `yaml:"construction_pension" json:"construction_pension"`
	AgriculturePension  decimal.Decimal `yaml:"agriculture_pension" json:"agriculture_pension"`
	SecondPillar        decimal.Decimal `yaml:"second_pillar" json:"second_pillar"`
}

// MinimumWages contains the economy-wide and sector-specific minimum gross wages
type MinimumWages struct {
	Standard     decimal.Decimal `yaml:"standard" json:"standard"`
	Construction decimal.Decimal `yaml:"construction" json:"construction"`
	Agriculture  decimal.Decimal `yaml:"agriculture" json:"agriculture"`
	IT           decimal.Decimal `yaml:"it" json:"it"`
}

// ExemptionThresholds are gross income ceilings for the tax exemptions
type ExemptionThresholds struct {
	IT                      decimal.Decimal `yaml:"it" json:"it"`
	ConstructionAgriculture decimal.Decimal `yaml:"construction_agriculture" json:"construction_agriculture"`
	Youth                   decimal.Decimal `yaml:"youth" json:"youth"`
}

// DeductionRules configures the regressive personal deduction.
// When BasePercent is positive the base is a share of the economy minimum
// wage and BaseAmount is ignored.
type DeductionRules struct {
	BaseAmount        decimal.Decimal `yaml:"base_amount" json:"base_amount"`
	BasePercent       decimal.Decimal `yaml:"base_percent" json:"base_percent"`
	Range             decimal.Decimal `yaml:"range" json:"range"`
	PerChild          decimal.Decimal `yaml:"per_child" json:"per_child"`
	PerOtherDependent decimal.Decimal `yaml:"per_other_dependent" json:"per_other_dependent"`
}

// Facilities are the boolean switches for fiscal facilities
type Facilities struct {
	UntaxedAmountEnabled     bool            `yaml:"untaxed_amount_enabled" json:"untaxed_amount_enabled"`
	UntaxedAmount            decimal.Decimal `yaml:"untaxed_amount" json:"untaxed_amount"`
	ITTaxExempt              bool            `yaml:"it_tax_exempt" json:"it_tax_exempt"`
	ITSecondPillarOptional   bool            `yaml:"it_second_pillar_optional" json:"it_second_pillar_optional"`
	ConstructionTaxExempt    bool            `yaml:"construction_tax_exempt" json:"construction_tax_exempt"`
	ConstructionHealthExempt bool            `yaml:"construction_health_exempt" json:"construction_health_exempt"`
	YouthExempt              bool            `yaml:"youth_exempt" json:"youth_exempt"`
	DisabilityExempt         bool            `yaml:"disability_exempt" json:"disability_exempt"`
}

// OvertaxationRules controls part-time contributions on the minimum wage
type OvertaxationRules struct {
	Enabled          bool `yaml:"enabled" json:"enabled"`
	ExemptMinors     bool `yaml:"exempt_minors" json:"exempt_minors"`
	ExemptStudents   bool `yaml:"exempt_students" json:"exempt_students"`
	ExemptPensioners bool `yaml:"exempt_pensioners" json:"exempt_pensioners"`
}

// MinimumWageFor returns the minimum gross wage that applies to a sector.
// IT salaries are computed on the standard skeleton, so minimum_wage.it is
// carried for reference only. Construction and agriculture values that are
// not set fall back to the standard wage.
func (fr FiscalRules) MinimumWageFor(sector Sector) decimal.Decimal {
	mw := fr.Salary.MinimumWage
	var specific decimal.Decimal
	switch sector {
	case SectorConstruction:
		specific = mw.Construction
	case SectorAgriculture:
		specific = mw.Agriculture
	}
	if specific.IsPositive() {
		return specific
	}
	return mw.Standard
}

// PensionRateFor returns the employee pension rate used by a sector
func (fr FiscalRules) PensionRateFor(sector Sector) decimal.Decimal {
	rates := fr.Salary.Rates
	switch sector {
	case SectorConstruction:
		return rates.ConstructionPension
	case SectorAgriculture:
		return rates.AgriculturePension
	}
	return rates.Pension
}

// DeductionBase returns the personal deduction base before children and
// other dependents are added
func (fr FiscalRules) DeductionBase() decimal.Decimal {
	d := fr.Salary.Deduction
	if d.BasePercent.IsPositive() {
		return fr.Salary.MinimumWage.Standard.Mul(d.BasePercent).Div(decimal.NewFromInt(100)).Round(0)
	}
	return d.BaseAmount
}
