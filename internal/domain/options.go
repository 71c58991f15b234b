package domain

import (
	"github.com/shopspring/decimal"
)

// CalculationOptions are the per-request inputs that are not fiscal rules
type CalculationOptions struct {
	Dependents int `yaml:"dependents" json:"dependents"`
	Children   int `yaml:"children" json:"children"`

	// Meal vouchers and vacation vouchers are taxable income but are
	// excluded from the contribution base.
	MealVoucherValue     decimal.Decimal `yaml:"meal_voucher_value" json:"meal_voucher_value"`
	MealVoucherDays      int             `yaml:"meal_voucher_days" json:"meal_voucher_days"`
	VacationVoucherValue decimal.Decimal `yaml:"vacation_voucher_value" json:"vacation_voucher_value"`

	// IsBasicFunction marks the employee's main job; only the main job
	// qualifies for the personal deduction.
	IsBasicFunction bool `yaml:"is_basic_function" json:"is_basic_function"`

	IsPartTime  bool `yaml:"is_part_time" json:"is_part_time"`
	IsMinor     bool `yaml:"is_minor" json:"is_minor"`
	IsStudent   bool `yaml:"is_student" json:"is_student"`
	IsPensioner bool `yaml:"is_pensioner" json:"is_pensioner"`

	IsYouth    bool `yaml:"is_youth" json:"is_youth"`
	IsDisabled bool `yaml:"is_disabled" json:"is_disabled"`

	// Sector is used when a calculation is requested without an explicit sector
	Sector Sector `yaml:"sector" json:"sector"`
}

// DefaultOptions returns options for a full-time main job in the standard sector
func DefaultOptions() CalculationOptions {
	return CalculationOptions{
		IsBasicFunction: true,
		Sector:          SectorStandard,
	}
}

// VoucherIncome is the taxable value of meal and vacation vouchers
func (o CalculationOptions) VoucherIncome() decimal.Decimal {
	meal := o.MealVoucherValue.Mul(decimal.NewFromInt(int64(o.MealVoucherDays)))
	return meal.Add(o.VacationVoucherValue)
}

// HasOvertaxationExemption reports whether any exemption category applies,
// given which categories the rules exempt
func (o CalculationOptions) HasOvertaxationExemption(rules OvertaxationRules) bool {
	return (o.IsMinor && rules.ExemptMinors) ||
		(o.IsStudent && rules.ExemptStudents) ||
		(o.IsPensioner && rules.ExemptPensioners)
}
