package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// SetSector moves the job to another sector
type SetSector struct {
	Sector domain.Sector
}

func (t *SetSector) Name() string { return "set_sector" }

func (t *SetSector) Description() string {
	return fmt.Sprintf("Move the job to the %s sector", t.Sector.Label())
}

func (t *SetSector) Validate(base *Scenario) error {
	if !t.Sector.Valid() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown sector %q", t.Sector), domain.ErrUnknownSector)
	}
	return validateBase(t.Name(), base)
}

func (t *SetSector) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Sector = t.Sector
	modified.Options.Sector = t.Sector
	return modified, nil
}

// AdjustGross changes the gross salary by a fixed amount
type AdjustGross struct {
	Amount decimal.Decimal
}

func (t *AdjustGross) Name() string { return "adjust_gross" }

func (t *AdjustGross) Description() string {
	if t.Amount.IsNegative() {
		return fmt.Sprintf("Cut gross salary by %s lei", t.Amount.Abs())
	}
	return fmt.Sprintf("Raise gross salary by %s lei", t.Amount)
}

func (t *AdjustGross) Validate(base *Scenario) error {
	if err := validateBase(t.Name(), base); err != nil {
		return err
	}
	if base.Gross.Add(t.Amount).IsNegative() {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("gross salary %s cannot drop by %s", base.Gross, t.Amount.Abs()), nil)
	}
	return nil
}

func (t *AdjustGross) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Gross = base.Gross.Add(t.Amount)
	return modified, nil
}

// AdjustGrossPercent changes the gross salary by a percentage, rounded to
// whole lei
type AdjustGrossPercent struct {
	Percent decimal.Decimal
}

func (t *AdjustGrossPercent) Name() string { return "adjust_gross_percent" }

func (t *AdjustGrossPercent) Description() string {
	return fmt.Sprintf("Change gross salary by %s%%", t.Percent)
}

func (t *AdjustGrossPercent) Validate(base *Scenario) error {
	if t.Percent.LessThan(decimal.NewFromInt(-100)) {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("percent must be at least -100, got %s", t.Percent), nil)
	}
	return validateBase(t.Name(), base)
}

func (t *AdjustGrossPercent) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	change := base.Gross.Mul(t.Percent).Div(decimal.NewFromInt(100))
	modified.Gross = base.Gross.Add(change).Round(0)
	return modified, nil
}

// SetPartTime switches between a part-time and a full-time contract
type SetPartTime struct {
	Enabled bool
}

func (t *SetPartTime) Name() string { return "set_part_time" }

func (t *SetPartTime) Description() string {
	if t.Enabled {
		return "Switch to a part-time contract"
	}
	return "Switch to a full-time contract"
}

func (t *SetPartTime) Validate(base *Scenario) error {
	return validateBase(t.Name(), base)
}

func (t *SetPartTime) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Options.IsPartTime = t.Enabled
	return modified, nil
}

// SetBasicFunction marks the job as the main job or a secondary one
type SetBasicFunction struct {
	Enabled bool
}

func (t *SetBasicFunction) Name() string { return "set_basic_function" }

func (t *SetBasicFunction) Description() string {
	if t.Enabled {
		return "Treat the job as the main job"
	}
	return "Treat the job as a secondary job (no personal deduction)"
}

func (t *SetBasicFunction) Validate(base *Scenario) error {
	return validateBase(t.Name(), base)
}

func (t *SetBasicFunction) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Options.IsBasicFunction = t.Enabled
	return modified, nil
}
