package transform

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SetMealVouchers sets the daily meal voucher value and the number of days
type SetMealVouchers struct {
	Value decimal.Decimal
	Days  int
}

func (t *SetMealVouchers) Name() string { return "set_meal_vouchers" }

func (t *SetMealVouchers) Description() string {
	return fmt.Sprintf("Meal vouchers of %s lei for %d days", t.Value, t.Days)
}

func (t *SetMealVouchers) Validate(base *Scenario) error {
	if t.Value.IsNegative() || t.Days < 0 {
		return NewTransformError(t.Name(), "validate", "value and days must be non-negative", nil)
	}
	return validateBase(t.Name(), base)
}

func (t *SetMealVouchers) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Options.MealVoucherValue = t.Value
	modified.Options.MealVoucherDays = t.Days
	return modified, nil
}

// SetVacationVouchers sets the vacation voucher value for the month
type SetVacationVouchers struct {
	Value decimal.Decimal
}

func (t *SetVacationVouchers) Name() string { return "set_vacation_vouchers" }

func (t *SetVacationVouchers) Description() string {
	return fmt.Sprintf("Vacation vouchers of %s lei", t.Value)
}

func (t *SetVacationVouchers) Validate(base *Scenario) error {
	if t.Value.IsNegative() {
		return NewTransformError(t.Name(), "validate", "value must be non-negative", nil)
	}
	return validateBase(t.Name(), base)
}

func (t *SetVacationVouchers) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Options.VacationVoucherValue = t.Value
	return modified, nil
}
