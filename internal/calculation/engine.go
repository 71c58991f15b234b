package calculation

import (
	"fmt"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

type sectorMethod func(c *SalaryCalculator, gross decimal.Decimal, opts domain.CalculationOptions) domain.CalculationResult

// sectorMethods maps every supported sector to its gross-to-net method
var sectorMethods = map[domain.Sector]sectorMethod{
	domain.SectorStandard: (*SalaryCalculator).CalculateStandard,
	domain.SectorIT:       (*SalaryCalculator).CalculateIT,
	domain.SectorConstruction: func(c *SalaryCalculator, gross decimal.Decimal, opts domain.CalculationOptions) domain.CalculationResult {
		return c.CalculateConstruction(gross, opts, domain.SectorConstruction)
	},
	domain.SectorAgriculture: func(c *SalaryCalculator, gross decimal.Decimal, opts domain.CalculationOptions) domain.CalculationResult {
		return c.CalculateConstruction(gross, opts, domain.SectorAgriculture)
	},
}

// resolveSector picks the explicit sector, then the one in options, then standard
func resolveSector(sector domain.Sector, opts domain.CalculationOptions) domain.Sector {
	if sector == "" {
		sector = opts.Sector
	}
	if sector == "" {
		sector = domain.SectorStandard
	}
	return sector
}

// CalculateForSector dispatches to the sector method. Unknown sectors fall
// back to the standard rules.
func (c *SalaryCalculator) CalculateForSector(gross decimal.Decimal, sector domain.Sector, opts domain.CalculationOptions) domain.CalculationResult {
	sector = resolveSector(sector, opts)
	method, ok := sectorMethods[sector]
	if !ok {
		c.logger().Warnf("unknown sector %q, using standard rules", sector)
		method = sectorMethods[domain.SectorStandard]
	}
	return method(c, gross, opts)
}

// CalculateGross computes the full gross-to-net result: the sector method
// followed by the personal exemptions
func (c *SalaryCalculator) CalculateGross(gross decimal.Decimal, sector domain.Sector, opts domain.CalculationOptions) domain.CalculationResult {
	r := c.CalculateForSector(gross, sector, opts)
	return c.ApplyExemptions(r, opts)
}

// Calculate computes a result from a gross salary, a target net salary or a
// total employer cost
func (c *SalaryCalculator) Calculate(value decimal.Decimal, calcType domain.CalculationType, sector domain.Sector, opts domain.CalculationOptions) (domain.CalculationResult, error) {
	if value.IsNegative() {
		return domain.CalculationResult{}, fmt.Errorf("amount must not be negative: %s", value.String())
	}
	sector = resolveSector(sector, opts)
	opts.Sector = sector

	c.logger().Debugf("calculate %s=%s sector=%s", calcType, value.String(), sector)

	switch calcType {
	case domain.FromGross, "":
		return c.CalculateGross(value, sector, opts), nil
	case domain.FromNet:
		return c.NetToGross(value, sector, opts), nil
	case domain.FromCost:
		return c.CostToNet(value, sector, opts), nil
	}
	return domain.CalculationResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownCalculationType, calcType)
}

// Calculate is a convenience wrapper that builds a calculator for a single
// computation
func Calculate(value decimal.Decimal, calcType domain.CalculationType, sector domain.Sector, rules domain.FiscalRules, opts domain.CalculationOptions) (domain.CalculationResult, error) {
	return NewSalaryCalculator(rules).Calculate(value, calcType, sector, opts)
}
