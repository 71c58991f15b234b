package integration

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/salcalc/internal/calculation"
	"github.com/rgehrsitz/salcalc/internal/compare"
	"github.com/rgehrsitz/salcalc/internal/config"
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/rgehrsitz/salcalc/internal/output"
)

const exampleRules = "../../fiscal_rules.example.yaml"

func loadExampleRules(t *testing.T) domain.FiscalRules {
	t.Helper()
	parser := config.NewRulesParser()
	rules, err := parser.LoadFromFile(exampleRules)
	require.NoError(t, err, "Should load the example rules")
	require.NoError(t, parser.ValidateRules(rules), "Example rules should be valid")
	return rules
}

// TestExampleRulesMatchDefaults keeps the documented example in sync with
// the built-in rules
func TestExampleRulesMatchDefaults(t *testing.T) {
	rules := loadExampleRules(t)
	defaults := config.DefaultRules()

	assert.Equal(t, defaults.Year, rules.Year)
	assert.True(t, defaults.Salary.Facilities.UntaxedAmount.Equal(rules.Salary.Facilities.UntaxedAmount))
	assert.Equal(t, defaults.Salary.Facilities.ConstructionTaxExempt, rules.Salary.Facilities.ConstructionTaxExempt)
	assert.Equal(t, defaults.Salary.Facilities.ITTaxExempt, rules.Salary.Facilities.ITTaxExempt)
	assert.Equal(t, defaults.Salary.Overtaxation, rules.Salary.Overtaxation)
	assert.True(t, defaults.Salary.Rates.WorkInsurance.Equal(rules.Salary.Rates.WorkInsurance))
	assert.True(t, defaults.Salary.MinimumWage.Construction.Equal(rules.Salary.MinimumWage.Construction))
	assert.True(t, defaults.Salary.Thresholds.Youth.Equal(rules.Salary.Thresholds.Youth))
	assert.True(t, defaults.DeductionBase().Equal(rules.DeductionBase()))
	assert.Contains(t, rules.Extra, "exchange_rate")
}

// TestBasicIntegration runs the example rules through every layer
func TestBasicIntegration(t *testing.T) {
	rules := loadExampleRules(t)
	calc := calculation.NewSalaryCalculator(rules)
	opts := domain.DefaultOptions()

	t.Run("gross_to_net", func(t *testing.T) {
		result, err := calc.Calculate(decimal.NewFromInt(5000), domain.FromGross, domain.SectorStandard, opts)
		require.NoError(t, err)
		assert.Equal(t, "2967", result.Net.String())
		assert.Equal(t, "5112", result.TotalCost.String())
	})

	t.Run("round_trips", func(t *testing.T) {
		for _, sector := range domain.Sectors() {
			forward, err := calc.Calculate(decimal.NewFromInt(7300), domain.FromGross, sector, opts)
			require.NoError(t, err)

			fromNet, err := calc.Calculate(forward.Net, domain.FromNet, sector, opts)
			require.NoError(t, err)
			assert.True(t, fromNet.Net.Equal(forward.Net), "net round trip for %s", sector)

			fromCost, err := calc.Calculate(forward.TotalCost, domain.FromCost, sector, opts)
			require.NoError(t, err)
			assert.True(t, fromCost.TotalCost.Equal(forward.TotalCost), "cost round trip for %s", sector)
		}
	})

	t.Run("comparison", func(t *testing.T) {
		compSet, err := compare.NewCompareEngine(calc).Compare(context.Background(), decimal.NewFromInt(8000), domain.FromGross, opts)
		require.NoError(t, err)
		require.Len(t, compSet.All(), len(domain.Sectors()))
		assert.NotEmpty(t, compSet.Recommendations)
	})

	t.Run("output_generation", func(t *testing.T) {
		result, err := calc.Calculate(decimal.NewFromInt(5000), domain.FromGross, domain.SectorIT, opts)
		require.NoError(t, err)

		for _, format := range output.AvailableFormatterNames() {
			var buf bytes.Buffer
			require.NoError(t, output.GenerateReport(&buf, &result, format), format)
			assert.NotEmpty(t, buf.String(), format)
		}
	})
}

// TestRulesRoundTrip checks that printed rules load back unchanged
func TestRulesRoundTrip(t *testing.T) {
	rules := loadExampleRules(t)
	parser := config.NewRulesParser()

	data, err := parser.Marshal(rules)
	require.NoError(t, err)
	reloaded, err := parser.LoadFromBytes(data)
	require.NoError(t, err)

	calc := calculation.NewSalaryCalculator(rules)
	recalc := calculation.NewSalaryCalculator(reloaded)
	for _, gross := range []int64{3000, 4050, 6000, 12000} {
		a := calc.CalculateGross(decimal.NewFromInt(gross), domain.SectorConstruction, domain.DefaultOptions())
		b := recalc.CalculateGross(decimal.NewFromInt(gross), domain.SectorConstruction, domain.DefaultOptions())
		assert.True(t, a.Net.Equal(b.Net), "gross %d", gross)
	}
}
