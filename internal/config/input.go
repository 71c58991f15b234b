package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// RulesParser handles loading and validation of fiscal rules files
type RulesParser struct{}

// NewRulesParser creates a new rules parser
func NewRulesParser() *RulesParser {
	return &RulesParser{}
}

// LoadFromFile loads fiscal rules from a YAML or JSON file. Fields the file
// omits take their default value.
func (rp *RulesParser) LoadFromFile(filename string) (domain.FiscalRules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return domain.FiscalRules{}, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	rules, err := rp.LoadFromBytes(data)
	if err != nil {
		return domain.FiscalRules{}, fmt.Errorf("failed to load rules from %s: %w", filename, err)
	}
	return rules, nil
}

// LoadFromBytes decodes a YAML or JSON rules document and normalizes it
func (rp *RulesParser) LoadFromBytes(data []byte) (domain.FiscalRules, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.FiscalRules{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return Normalize(raw), nil
}

// Marshal renders normalized rules as YAML
func (rp *RulesParser) Marshal(rules domain.FiscalRules) ([]byte, error) {
	data, err := yaml.Marshal(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rules: %w", err)
	}
	return data, nil
}

// ValidationError reports a rules field that fails a semantic check
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateRules checks that normalized rules make sense. The calculator does
// not require this; it exists for the tooling that edits rule files.
func (rp *RulesParser) ValidateRules(rules domain.FiscalRules) error {
	s := rules.Salary

	rates := []struct {
		field string
		value decimal.Decimal
	}{
		{"salary.rates.pension", s.Rates.Pension},
		{"salary.rates.health", s.Rates.Health},
		{"salary.rates.income_tax", s.Rates.IncomeTax},
		{"salary.rates.work_insurance", s.Rates.WorkInsurance},
		{"salary.rates.construction_pension", s.Rates.ConstructionPension},
		{"salary.rates.agriculture_pension", s.Rates.AgriculturePension},
		{"salary.rates.second_pillar", s.Rates.SecondPillar},
		{"salary.deduction.base_percent", s.Deduction.BasePercent},
	}
	hundred := decimal.NewFromInt(100)
	for _, r := range rates {
		if r.value.IsNegative() || r.value.GreaterThan(hundred) {
			return &ValidationError{Field: r.field, Message: fmt.Sprintf("must be between 0 and 100, got %s", r.value)}
		}
	}

	if s.Rates.SecondPillar.GreaterThan(s.Rates.Pension) {
		return &ValidationError{Field: "salary.rates.second_pillar", Message: "cannot exceed the pension rate"}
	}

	if !s.MinimumWage.Standard.IsPositive() {
		return &ValidationError{Field: "salary.minimum_wage.standard", Message: "must be positive"}
	}
	wages := []struct {
		field string
		value decimal.Decimal
	}{
		{"salary.minimum_wage.construction", s.MinimumWage.Construction},
		{"salary.minimum_wage.agriculture", s.MinimumWage.Agriculture},
		{"salary.minimum_wage.it", s.MinimumWage.IT},
	}
	for _, w := range wages {
		if w.value.IsNegative() {
			return &ValidationError{Field: w.field, Message: "cannot be negative"}
		}
	}

	amounts := []struct {
		field string
		value decimal.Decimal
	}{
		{"salary.thresholds.it", s.Thresholds.IT},
		{"salary.thresholds.construction_agriculture", s.Thresholds.ConstructionAgriculture},
		{"salary.thresholds.youth", s.Thresholds.Youth},
		{"salary.deduction.base_amount", s.Deduction.BaseAmount},
		{"salary.deduction.range", s.Deduction.Range},
		{"salary.deduction.per_child", s.Deduction.PerChild},
		{"salary.deduction.per_other_dependent", s.Deduction.PerOtherDependent},
		{"salary.facilities.untaxed_amount", s.Facilities.UntaxedAmount},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return &ValidationError{Field: a.field, Message: "cannot be negative"}
		}
	}

	if s.Facilities.UntaxedAmountEnabled && s.Facilities.UntaxedAmount.GreaterThan(s.MinimumWage.Standard) {
		return &ValidationError{Field: "salary.facilities.untaxed_amount", Message: "cannot exceed the minimum wage"}
	}

	if rules.Year < 2000 || rules.Year > 2100 {
		return &ValidationError{Field: "year", Message: fmt.Sprintf("must be between 2000 and 2100, got %d", rules.Year)}
	}

	return nil
}
