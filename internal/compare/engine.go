package compare

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/salcalc/internal/calculation"
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/rgehrsitz/salcalc/internal/transform"
	"github.com/shopspring/decimal"
)

// CompareEngine runs one amount through every sector
type CompareEngine struct {
	Calculator        *calculation.SalaryCalculator
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calc *calculation.SalaryCalculator) *CompareEngine {
	return &CompareEngine{
		Calculator:        calc,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// Compare computes amount for every sector and reports the differences
// against the standard sector
func (ce *CompareEngine) Compare(
	ctx context.Context,
	amount decimal.Decimal,
	calcType domain.CalculationType,
	opts domain.CalculationOptions,
) (*ComparisonSet, error) {

	var base *ComparisonResult
	alternatives := []ComparisonResult{}

	for _, sector := range domain.Sectors() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("comparison cancelled: %w", err)
		}

		result, err := ce.Calculator.Calculate(amount, calcType, sector, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate sector %s: %w", sector, err)
		}
		metrics := ce.MetricsCalculator.CalculateMetrics(result)

		if sector == domain.SectorStandard {
			base = &metrics
			continue
		}
		alternatives = append(alternatives, metrics)
	}

	for i := range alternatives {
		alternatives[i] = ce.MetricsCalculator.CalculateComparison(alternatives[i], *base)
	}

	compSet := &ComparisonSet{
		Amount:             amount,
		CalculationType:    calcType,
		RulesYear:          ce.Calculator.Rules.Year,
		BaseSector:         domain.SectorStandard,
		BaseResult:         base,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareScenarios computes the base scenario and every template applied to
// it, reporting the differences against the base
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	base *transform.Scenario,
	templates []transform.Template,
) (*ComparisonSet, error) {

	calculate := func(s *transform.Scenario, label string) (ComparisonResult, error) {
		result, err := ce.Calculator.Calculate(s.Gross, domain.FromGross, s.Sector, s.Options)
		if err != nil {
			return ComparisonResult{}, fmt.Errorf("failed to calculate scenario %s: %w", label, err)
		}
		metrics := ce.MetricsCalculator.CalculateMetrics(result)
		metrics.Label = label
		return metrics, nil
	}

	baseName := base.Name
	if baseName == "" {
		baseName = "Current"
	}
	baseMetrics, err := calculate(base, baseName)
	if err != nil {
		return nil, err
	}

	alternatives := make([]ComparisonResult, 0, len(templates))
	for _, template := range templates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("comparison cancelled: %w", err)
		}

		scenario, err := transform.ApplyTransforms(base, template.Transforms)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", template.Name, err)
		}
		metrics, err := calculate(scenario, template.Name)
		if err != nil {
			return nil, err
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(metrics, baseMetrics))
	}

	compSet := &ComparisonSet{
		Amount:             base.Gross,
		CalculationType:    domain.FromGross,
		RulesYear:          ce.Calculator.Rules.Year,
		BaseSector:         baseMetrics.Sector,
		BaseResult:         &baseMetrics,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareSectors is a convenience wrapper for a one-off comparison
func CompareSectors(amount decimal.Decimal, calcType domain.CalculationType, rules domain.FiscalRules, opts domain.CalculationOptions) (*ComparisonSet, error) {
	return NewCompareEngine(calculation.NewSalaryCalculator(rules)).Compare(context.Background(), amount, calcType, opts)
}
