package compare

import (
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one sector or scenario outcome
type ComparisonResult struct {
	Sector domain.Sector             `json:"sector"`
	Label  string                    `json:"label"`
	Result *domain.CalculationResult `json:"result,omitempty"`

	// Key metrics
	Gross     decimal.Decimal `json:"gross"`
	Net       decimal.Decimal `json:"net"`
	IncomeTax decimal.Decimal `json:"incomeTax"`
	TotalCost decimal.Decimal `json:"totalCost"`

	// Comparison to base
	NetDiffFromBase  decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase   decimal.Decimal `json:"netPctFromBase"`
	CostDiffFromBase decimal.Decimal `json:"costDiffFromBase"`
	TaxDiffFromBase  decimal.Decimal `json:"taxDiffFromBase"`
}

// ComparisonSet is a base outcome and the alternatives compared to it
type ComparisonSet struct {
	Amount             decimal.Decimal        `json:"amount"`
	CalculationType    domain.CalculationType `json:"calculationType"`
	RulesYear          int                    `json:"rulesYear"`
	BaseSector         domain.Sector          `json:"baseSector"`
	BaseResult         *ComparisonResult      `json:"baseResult"`
	AlternativeResults []ComparisonResult     `json:"alternativeResults"`
	Recommendations    []string               `json:"recommendations"`
}

// All returns the base result followed by the alternatives
func (cs *ComparisonSet) All() []ComparisonResult {
	all := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		all = append(all, *cs.BaseResult)
	}
	return append(all, cs.AlternativeResults...)
}

// MetricsCalculator extracts comparison metrics from calculation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics copies the key figures of a result
func (mc *MetricsCalculator) CalculateMetrics(result domain.CalculationResult) ComparisonResult {
	r := result
	return ComparisonResult{
		Sector:    result.Sector,
		Label:     result.Sector.Label(),
		Result:    &r,
		Gross:     result.Gross,
		Net:       result.Net,
		IncomeTax: result.IncomeTax,
		TotalCost: result.TotalCost,
	}
}

// CalculateComparison fills the differences between a sector and the base.
// The percentage is relative to the base net and kept to one decimal.
func (mc *MetricsCalculator) CalculateComparison(sector, base ComparisonResult) ComparisonResult {
	sector.NetDiffFromBase = sector.Net.Sub(base.Net)
	sector.NetPctFromBase = decimal.Zero
	if !base.Net.IsZero() {
		sector.NetPctFromBase = sector.NetDiffFromBase.
			Div(base.Net.Abs()).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}
	sector.CostDiffFromBase = sector.TotalCost.Sub(base.TotalCost)
	sector.TaxDiffFromBase = sector.IncomeTax.Sub(base.IncomeTax)
	return sector
}

// GenerateRecommendations highlights the sectors that beat the base
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	bestNet := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].Net.GreaterThan(bestNet.Net) {
			bestNet = &compSet.AlternativeResults[i]
		}
	}
	if bestNet != compSet.BaseResult {
		recommendations = append(recommendations,
			"Highest Net: "+bestNet.Label+" pays "+bestNet.NetDiffFromBase.StringFixed(0)+
				" lei more than "+compSet.BaseResult.Label)
	}

	lowestCost := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].TotalCost.LessThan(lowestCost.TotalCost) {
			lowestCost = &compSet.AlternativeResults[i]
		}
	}
	if lowestCost != compSet.BaseResult {
		recommendations = append(recommendations,
			"Lowest Cost: "+lowestCost.Label+" costs the employer "+lowestCost.CostDiffFromBase.Abs().StringFixed(0)+
				" lei less than "+compSet.BaseResult.Label)
	}

	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].IncomeTax.LessThan(lowestTax.IncomeTax) {
			lowestTax = &compSet.AlternativeResults[i]
		}
	}
	if lowestTax != compSet.BaseResult {
		recommendations = append(recommendations,
			"Lowest Tax: "+lowestTax.Label+" withholds "+lowestTax.TaxDiffFromBase.Abs().StringFixed(0)+
				" lei less income tax than "+compSet.BaseResult.Label)
	}

	return recommendations
}
