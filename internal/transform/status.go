package transform

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// statusFlags maps a personal status to the option it controls
var statusFlags = map[string]func(*domain.CalculationOptions) *bool{
	"youth":     func(o *domain.CalculationOptions) *bool { return &o.IsYouth },
	"disabled":  func(o *domain.CalculationOptions) *bool { return &o.IsDisabled },
	"student":   func(o *domain.CalculationOptions) *bool { return &o.IsStudent },
	"minor":     func(o *domain.CalculationOptions) *bool { return &o.IsMinor },
	"pensioner": func(o *domain.CalculationOptions) *bool { return &o.IsPensioner },
}

// StatusNames lists the statuses SetStatus accepts
func StatusNames() []string {
	names := make([]string, 0, len(statusFlags))
	for name := range statusFlags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetStatus turns a personal status (youth, disabled, ...) on or off
type SetStatus struct {
	Status  string
	Enabled bool
}

func (t *SetStatus) Name() string { return "set_status" }

func (t *SetStatus) Description() string {
	if t.Enabled {
		return fmt.Sprintf("Employee is %s", t.Status)
	}
	return fmt.Sprintf("Employee is not %s", t.Status)
}

func (t *SetStatus) Validate(base *Scenario) error {
	if _, ok := statusFlags[t.Status]; !ok {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("unknown status %q", t.Status), nil)
	}
	return validateBase(t.Name(), base)
}

func (t *SetStatus) Apply(base *Scenario) (*Scenario, error) {
	modified := base.Copy()
	*statusFlags[t.Status](&modified.Options) = t.Enabled
	return modified, nil
}
