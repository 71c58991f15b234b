package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/salcalc/internal/calculation"
	"github.com/rgehrsitz/salcalc/internal/config"
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSectors(t *testing.T) {
	compSet, err := CompareSectors(decimal.NewFromInt(8000), domain.FromGross, config.DefaultRules(), domain.DefaultOptions())
	require.NoError(t, err)

	require.NotNil(t, compSet.BaseResult)
	assert.Equal(t, domain.SectorStandard, compSet.BaseSector)
	assert.Equal(t, domain.SectorStandard, compSet.BaseResult.Sector)
	assert.Equal(t, "4680", compSet.BaseResult.Net.String())
	require.Len(t, compSet.AlternativeResults, 3)
	assert.Len(t, compSet.All(), 4)

	it := compSet.AlternativeResults[0]
	assert.Equal(t, domain.SectorIT, it.Sector)
	assert.True(t, it.NetDiffFromBase.IsZero())

	construction := compSet.AlternativeResults[1]
	assert.Equal(t, domain.SectorConstruction, construction.Sector)
	assert.Equal(t, "5500", construction.Net.String())
	assert.Equal(t, "820", construction.NetDiffFromBase.String())
	// 820 / 4680 = 17.52%
	assert.Equal(t, "17.5", construction.NetPctFromBase.String())
	assert.Equal(t, "-520", construction.TaxDiffFromBase.String())
	assert.True(t, construction.CostDiffFromBase.IsZero())

	assert.Equal(t, []string{
		"Highest Net: Construction pays 820 lei more than Standard",
		"Lowest Tax: Construction withholds 520 lei less income tax than Standard",
	}, compSet.Recommendations)
}

func TestCompareSectors_InvalidType(t *testing.T) {
	_, err := CompareSectors(decimal.NewFromInt(8000), domain.CalculationType("hourly"), config.DefaultRules(), domain.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCalculationType)
}

func TestCompareEngine_FromNet(t *testing.T) {
	engine := NewCompareEngine(calculation.NewSalaryCalculator(config.DefaultRules()))

	compSet, err := engine.Compare(context.Background(), decimal.NewFromInt(5000), domain.FromNet, domain.DefaultOptions())
	require.NoError(t, err)

	for _, r := range compSet.All() {
		assert.Equal(t, "5000", r.Net.String(), "sector %s", r.Sector)
	}
	// the same net costs less gross in construction
	assert.True(t, compSet.AlternativeResults[1].Gross.LessThan(compSet.BaseResult.Gross))
	assert.True(t, compSet.AlternativeResults[1].CostDiffFromBase.IsNegative())
}

func TestCompareEngine_Cancelled(t *testing.T) {
	engine := NewCompareEngine(calculation.NewSalaryCalculator(config.DefaultRules()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Compare(ctx, decimal.NewFromInt(5000), domain.FromGross, domain.DefaultOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()

	base := ComparisonResult{Net: decimal.NewFromInt(3000), TotalCost: decimal.NewFromInt(5000), IncomeTax: decimal.NewFromInt(300)}
	alt := ComparisonResult{Net: decimal.NewFromInt(2900), TotalCost: decimal.NewFromInt(5100), IncomeTax: decimal.NewFromInt(250)}

	got := mc.CalculateComparison(alt, base)
	assert.Equal(t, "-100", got.NetDiffFromBase.String())
	assert.Equal(t, "-3.3", got.NetPctFromBase.String())
	assert.Equal(t, "100", got.CostDiffFromBase.String())
	assert.Equal(t, "-50", got.TaxDiffFromBase.String())

	zeroBase := ComparisonResult{}
	got = mc.CalculateComparison(alt, zeroBase)
	assert.True(t, got.NetPctFromBase.IsZero())
}

func TestGenerateRecommendations_NoAlternatives(t *testing.T) {
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{BaseResult: &ComparisonResult{}}))
}
