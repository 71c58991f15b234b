package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// TransformRegistry provides a central registry for all available transforms.
// It enables creation of transforms from string parameters, useful for CLI commands.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory is a function that creates a transform from parameters.
type TransformFactory func(params map[string]string) (ScenarioTransform, error)

// NewTransformRegistry creates a new registry with all built-in transforms registered.
func NewTransformRegistry() *TransformRegistry {
	registry := &TransformRegistry{
		factories: make(map[string]TransformFactory),
	}

	registry.Register("set_children", createSetChildren)
	registry.Register("add_children", createAddChildren)
	registry.Register("set_dependents", createSetDependents)
	registry.Register("set_sector", createSetSector)
	registry.Register("adjust_gross", createAdjustGross)
	registry.Register("adjust_gross_percent", createAdjustGrossPercent)
	registry.Register("set_part_time", createSetPartTime)
	registry.Register("set_basic_function", createSetBasicFunction)
	registry.Register("set_status", createSetStatus)
	registry.Register("set_meal_vouchers", createSetMealVouchers)
	registry.Register("set_vacation_vouchers", createSetVacationVouchers)

	return registry
}

// Register adds a transform factory to the registry.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create creates a transform by name with the given parameters.
func (r *TransformRegistry) Create(name string, params map[string]string) (ScenarioTransform, error) {
	factory, exists := r.factories[name]
	if !exists {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(params)
}

// List returns the names of all registered transforms, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses a transform specification string.
// Format: "transform_name:param1=value1,param2=value2"
// Example: "set_meal_vouchers:value=40,days=21"
func (r *TransformRegistry) ParseTransformSpec(spec string) (ScenarioTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	name := strings.TrimSpace(parts[0])
	paramsStr := strings.TrimSpace(parts[1])

	params := make(map[string]string)
	if paramsStr != "" {
		for _, paramPair := range strings.Split(paramsStr, ",") {
			kv := strings.SplitN(paramPair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", paramPair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	return r.Create(name, params)
}

// Parameter helpers

func requireParam(transform string, params map[string]string, key string) (string, error) {
	value, ok := params[key]
	if !ok {
		return "", fmt.Errorf("%s requires '%s' parameter", transform, key)
	}
	return value, nil
}

func intParam(transform string, params map[string]string, key string) (int, error) {
	raw, err := requireParam(transform, params, key)
	if err != nil {
		return 0, err
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

func decimalParam(transform string, params map[string]string, key string) (decimal.Decimal, error) {
	raw, err := requireParam(transform, params, key)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// boolParam defaults to true when the parameter is missing
func boolParam(params map[string]string, key string) (bool, error) {
	raw, ok := params[key]
	if !ok {
		return true, nil
	}
	v, err := cast.ToBoolE(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}

// Factory functions for each transform

func createSetChildren(params map[string]string) (ScenarioTransform, error) {
	count, err := intParam("set_children", params, "count")
	if err != nil {
		return nil, err
	}
	return &SetChildren{Count: count}, nil
}

func createAddChildren(params map[string]string) (ScenarioTransform, error) {
	delta, err := intParam("add_children", params, "count")
	if err != nil {
		return nil, err
	}
	return &AddChildren{Delta: delta}, nil
}

func createSetDependents(params map[string]string) (ScenarioTransform, error) {
	count, err := intParam("set_dependents", params, "count")
	if err != nil {
		return nil, err
	}
	return &SetDependents{Count: count}, nil
}

func createSetSector(params map[string]string) (ScenarioTransform, error) {
	raw, err := requireParam("set_sector", params, "sector")
	if err != nil {
		return nil, err
	}
	sector, err := domain.ParseSector(raw)
	if err != nil {
		return nil, err
	}
	return &SetSector{Sector: sector}, nil
}

func createAdjustGross(params map[string]string) (ScenarioTransform, error) {
	amount, err := decimalParam("adjust_gross", params, "amount")
	if err != nil {
		return nil, err
	}
	return &AdjustGross{Amount: amount}, nil
}

func createAdjustGrossPercent(params map[string]string) (ScenarioTransform, error) {
	percent, err := decimalParam("adjust_gross_percent", params, "percent")
	if err != nil {
		return nil, err
	}
	return &AdjustGrossPercent{Percent: percent}, nil
}

func createSetPartTime(params map[string]string) (ScenarioTransform, error) {
	enabled, err := boolParam(params, "enabled")
	if err != nil {
		return nil, err
	}
	return &SetPartTime{Enabled: enabled}, nil
}

func createSetBasicFunction(params map[string]string) (ScenarioTransform, error) {
	enabled, err := boolParam(params, "enabled")
	if err != nil {
		return nil, err
	}
	return &SetBasicFunction{Enabled: enabled}, nil
}

func createSetStatus(params map[string]string) (ScenarioTransform, error) {
	status, err := requireParam("set_status", params, "status")
	if err != nil {
		return nil, err
	}
	if _, ok := statusFlags[status]; !ok {
		return nil, fmt.Errorf("invalid status %q, expected one of: %s", status, strings.Join(StatusNames(), ", "))
	}
	enabled, err := boolParam(params, "enabled")
	if err != nil {
		return nil, err
	}
	return &SetStatus{Status: status, Enabled: enabled}, nil
}

func createSetMealVouchers(params map[string]string) (ScenarioTransform, error) {
	value, err := decimalParam("set_meal_vouchers", params, "value")
	if err != nil {
		return nil, err
	}
	days, err := intParam("set_meal_vouchers", params, "days")
	if err != nil {
		return nil, err
	}
	return &SetMealVouchers{Value: value, Days: days}, nil
}

func createSetVacationVouchers(params map[string]string) (ScenarioTransform, error) {
	value, err := decimalParam("set_vacation_vouchers", params, "value")
	if err != nil {
		return nil, err
	}
	return &SetVacationVouchers{Value: value}, nil
}
