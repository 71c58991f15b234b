package transform

import (
	"fmt"
)

// SetChildren sets the number of children in care
type SetChildren struct {
	Count int
}

func (t *SetChildren) Name() string { return "set_children" }

func (t *SetChildren) Description() string {
	return fmt.Sprintf("Set children in care to %d", t.Count)
}

func (t *SetChildren) Validate(base *Scenario) error {
	if t.Count < 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("count must be non-negative, got %d", t.Count), nil)
	}
	return validateBase(t.Name(), base)
}

func (t *SetChildren) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Options.Children = t.Count
	return modified, nil
}

// AddChildren changes the number of children in care. The count never
// drops below zero.
type AddChildren struct {
	Delta int
}

func (t *AddChildren) Name() string { return "add_children" }

func (t *AddChildren) Description() string {
	if t.Delta < 0 {
		return fmt.Sprintf("Remove %d children in care", -t.Delta)
	}
	return fmt.Sprintf("Add %d children in care", t.Delta)
}

func (t *AddChildren) Validate(base *Scenario) error {
	return validateBase(t.Name(), base)
}

func (t *AddChildren) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Options.Children = max(modified.Options.Children+t.Delta, 0)
	return modified, nil
}

// SetDependents sets the number of other dependents
type SetDependents struct {
	Count int
}

func (t *SetDependents) Name() string { return "set_dependents" }

func (t *SetDependents) Description() string {
	return fmt.Sprintf("Set other dependents to %d", t.Count)
}

func (t *SetDependents) Validate(base *Scenario) error {
	if t.Count < 0 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("count must be non-negative, got %d", t.Count), nil)
	}
	return validateBase(t.Name(), base)
}

func (t *SetDependents) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	modified.Options.Dependents = t.Count
	return modified, nil
}
