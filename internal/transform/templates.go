package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateBuiltInTemplates creates a template registry with common salary what-ifs
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	// Household
	registry.Register(Template{
		Name:        "one_child",
		Description: "One more child in care",
		Transforms:  []ScenarioTransform{&AddChildren{Delta: 1}},
	})
	registry.Register(Template{
		Name:        "two_children",
		Description: "Two more children in care",
		Transforms:  []ScenarioTransform{&AddChildren{Delta: 2}},
	})

	// Sector
	for _, sector := range []domain.Sector{domain.SectorStandard, domain.SectorIT, domain.SectorConstruction, domain.SectorAgriculture} {
		registry.Register(Template{
			Name:        "sector_" + string(sector),
			Description: fmt.Sprintf("Same job in the %s sector", sector.Label()),
			Transforms:  []ScenarioTransform{&SetSector{Sector: sector}},
		})
	}

	// Pay
	registry.Register(Template{
		Name:        "raise_500",
		Description: "Gross raise of 500 lei",
		Transforms:  []ScenarioTransform{&AdjustGross{Amount: decimal.NewFromInt(500)}},
	})
	registry.Register(Template{
		Name:        "raise_10pct",
		Description: "Gross raise of 10%",
		Transforms:  []ScenarioTransform{&AdjustGrossPercent{Percent: decimal.NewFromInt(10)}},
	})
	registry.Register(Template{
		Name:        "meal_vouchers",
		Description: "Meal vouchers of 40 lei for 21 working days",
		Transforms:  []ScenarioTransform{&SetMealVouchers{Value: decimal.NewFromInt(40), Days: 21}},
	})

	// Status
	registry.Register(Template{
		Name:        "under_26",
		Description: "Employee under 26",
		Transforms:  []ScenarioTransform{&SetStatus{Status: "youth", Enabled: true}},
	})
	registry.Register(Template{
		Name:        "disability",
		Description: "Employee with a disability certificate",
		Transforms:  []ScenarioTransform{&SetStatus{Status: "disabled", Enabled: true}},
	})

	// Contract
	registry.Register(Template{
		Name:        "secondary_job",
		Description: "Secondary job without personal deduction",
		Transforms:  []ScenarioTransform{&SetBasicFunction{Enabled: false}},
	})
	registry.Register(Template{
		Name:        "part_time",
		Description: "Part-time contract",
		Transforms:  []ScenarioTransform{&SetPartTime{Enabled: true}},
	})
	registry.Register(Template{
		Name:        "part_time_student",
		Description: "Part-time contract for a student",
		Transforms: []ScenarioTransform{
			&SetPartTime{Enabled: true},
			&SetStatus{Status: "student", Enabled: true},
		},
	})

	return registry
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(list string) []string {
	if list == "" {
		return nil
	}

	parts := strings.Split(list, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// Resolve turns template names and transform specs into templates. Entries
// containing ':' are parsed as single-transform specs.
func (tr *TemplateRegistry) Resolve(names []string, transforms *TransformRegistry) ([]Template, error) {
	resolved := make([]Template, 0, len(names))
	for _, name := range names {
		if strings.Contains(name, ":") {
			t, err := transforms.ParseTransformSpec(name)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, Template{Name: name, Description: t.Description(), Transforms: []ScenarioTransform{t}})
			continue
		}

		t, ok := tr.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown template: %s", name)
		}
		resolved = append(resolved, t)
	}
	return resolved, nil
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	categories := map[string][]Template{}
	order := []string{"Household", "Sector", "Pay", "Status", "Contract"}
	for _, name := range registry.List() {
		t := registry.templates[name]
		categories[templateCategory(t.Name)] = append(categories[templateCategory(t.Name)], t)
	}

	for _, category := range order {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-22s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  salcalc compare 5000 --with one_child,sector_it\n")
	sb.WriteString("  salcalc compare 5000 --transform \"set_meal_vouchers:value=30,days=20\"\n")

	return sb.String()
}

func templateCategory(name string) string {
	switch {
	case strings.Contains(name, "child"):
		return "Household"
	case strings.HasPrefix(name, "sector_"):
		return "Sector"
	case strings.HasPrefix(name, "raise_"), strings.HasSuffix(name, "vouchers"):
		return "Pay"
	case name == "under_26", name == "disability":
		return "Status"
	default:
		return "Contract"
	}
}
