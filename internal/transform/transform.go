package transform

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// Scenario is one employee's salary situation: what the employer pays, in
// which sector, under which personal circumstances
type Scenario struct {
	Name    string
	Gross   decimal.Decimal
	Sector  domain.Sector
	Options domain.CalculationOptions
}

// Copy returns an independent copy of the scenario
func (s *Scenario) Copy() *Scenario {
	c := *s
	return &c
}

// ScenarioTransform defines the interface for all scenario transformations.
// Transforms are composable: each returns a modified copy and never changes
// its input.
type ScenarioTransform interface {
	// Apply transforms a base scenario and returns a new modified scenario.
	Apply(base *Scenario) (*Scenario, error)

	// Name returns a short identifier for this transform (e.g., "set_children").
	Name() string

	// Description returns a human-readable description of what this transform does.
	Description() string

	// Validate checks if the transform parameters are valid without applying it.
	Validate(base *Scenario) error
}

// ApplyTransforms applies a sequence of transforms to a base scenario.
// Transforms are applied in order, with each transform receiving the output of the previous one.
func ApplyTransforms(base *Scenario, transforms []ScenarioTransform) (*Scenario, error) {
	if base == nil {
		return nil, fmt.Errorf("base scenario cannot be nil")
	}

	current := base.Copy()
	for i, transform := range transforms {
		if transform == nil {
			return nil, fmt.Errorf("transform at index %d is nil", i)
		}

		if err := transform.Validate(current); err != nil {
			return nil, fmt.Errorf("transform %s validation failed: %w", transform.Name(), err)
		}

		next, err := transform.Apply(current)
		if err != nil {
			return nil, fmt.Errorf("transform %s failed: %w", transform.Name(), err)
		}
		current = next
	}

	return current, nil
}

// TransformError represents an error that occurred during transformation.
type TransformError struct {
	TransformName string
	Operation     string
	Reason        string
	Err           error
}

func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transform %s (%s): %s: %v", e.TransformName, e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("transform %s (%s): %s", e.TransformName, e.Operation, e.Reason)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// NewTransformError creates a new TransformError
func NewTransformError(transformName, operation, reason string, err error) *TransformError {
	return &TransformError{
		TransformName: transformName,
		Operation:     operation,
		Reason:        reason,
		Err:           err,
	}
}

func validateBase(name string, base *Scenario) error {
	if base == nil {
		return NewTransformError(name, "validate", "base scenario cannot be nil", nil)
	}
	return nil
}
