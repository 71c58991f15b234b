package calculation

import (
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// netSearchIterations bounds the net-to-gross binary search
	netSearchIterations = 50
	// costSearchIterations bounds the cost-to-net binary search
	costSearchIterations = 40
)

var (
	// searchTolerance is the accepted distance from the target, in lei
	searchTolerance = decimal.NewFromInt(1)
	// netSearchHeadroom caps gross at this multiple of the target net
	netSearchHeadroom = decimal.NewFromFloat(2.5)
	// costSearchFloor is the lowest gross share of a total cost worth searching
	costSearchFloor = decimal.NewFromFloat(0.3)
)

// searchMetric extracts the value a search converges on
type searchMetric func(domain.CalculationResult) decimal.Decimal

// searchGross runs an integer binary search over gross salaries in [lo, hi].
// The metric must grow with gross; small rounding dips are tolerated by
// keeping the closest result seen. ok is false when the range was empty.
func (c *SalaryCalculator) searchGross(lo, hi int64, maxIterations int, target decimal.Decimal, metric searchMetric, evaluate func(decimal.Decimal) domain.CalculationResult) (best domain.CalculationResult, ok bool) {
	var bestDiff decimal.Decimal

	for i := 1; i <= maxIterations; i++ {
		if lo > hi {
			break
		}
		mid := lo + (hi-lo)/2
		r := evaluate(decimal.NewFromInt(mid))
		diff := metric(r).Sub(target)

		if !ok || diff.Abs().LessThan(bestDiff) {
			best, bestDiff, ok = r, diff.Abs(), true
			best.Iterations = i
		}
		c.logger().Debugf("search iteration %d: gross=%d diff=%s", i, mid, diff.String())

		if diff.Abs().LessThan(searchTolerance) {
			best = r
			best.Iterations = i
			best.Converged = true
			return best, true
		}
		if diff.IsNegative() {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	if ok {
		best.Converged = false
		c.logger().Debugf("search stopped without converging, closest diff %s", bestDiff.String())
	}
	return best, ok
}

// NetToGross finds the gross salary that yields targetNet.
//
// Net salary drops when gross crosses the sector minimum wage, because the
// untaxed amount disappears there. The search is therefore split: targets
// below the net at the minimum wage are searched under it, the rest above it.
func (c *SalaryCalculator) NetToGross(targetNet decimal.Decimal, sector domain.Sector, opts domain.CalculationOptions) domain.CalculationResult {
	sector = resolveSector(sector, opts)
	evaluate := func(gross decimal.Decimal) domain.CalculationResult {
		return c.CalculateGross(gross, sector, opts)
	}

	minimumWage := c.Rules.MinimumWageFor(sector)
	atMinimum := evaluate(minimumWage)
	if atMinimum.Net.Sub(targetNet).Abs().LessThan(searchTolerance) {
		return atMinimum
	}

	var lo, hi int64
	if targetNet.LessThan(atMinimum.Net) {
		lo = targetNet.Floor().IntPart()
		hi = minimumWage.Floor().IntPart()
	} else {
		lo = minimumWage.Floor().IntPart() + 1
		hi = targetNet.Mul(netSearchHeadroom).Floor().IntPart()
	}

	net := func(r domain.CalculationResult) decimal.Decimal { return r.Net }
	best, ok := c.searchGross(lo, hi, netSearchIterations, targetNet, net, evaluate)
	if !ok {
		return atMinimum
	}
	if !best.Converged {
		c.logger().Warnf("net %s not reached exactly, closest net %s", targetNet.String(), best.Net.String())
	}
	return best
}

// CostToNet finds the gross salary whose total employer cost equals
// totalCost and returns the full result for it
func (c *SalaryCalculator) CostToNet(totalCost decimal.Decimal, sector domain.Sector, opts domain.CalculationOptions) domain.CalculationResult {
	sector = resolveSector(sector, opts)
	evaluate := func(gross decimal.Decimal) domain.CalculationResult {
		return c.CalculateGross(gross, sector, opts)
	}

	lo := totalCost.Mul(costSearchFloor).Floor().IntPart()
	hi := totalCost.Floor().IntPart()

	cost := func(r domain.CalculationResult) decimal.Decimal { return r.TotalCost }
	best, ok := c.searchGross(lo, hi, costSearchIterations, totalCost, cost, evaluate)
	if !ok {
		return evaluate(decimal.NewFromInt(hi))
	}
	if !best.Converged {
		c.logger().Warnf("cost %s not reached exactly, closest cost %s", totalCost.String(), best.TotalCost.String())
	}
	return best
}
