package calculation

import (
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SalaryCalculator computes salary results for one snapshot of fiscal rules.
// It holds no state between calls; every method is a pure function of its
// arguments and the rules snapshot.
type SalaryCalculator struct {
	Rules  domain.FiscalRules
	Logger Logger
}

// NewSalaryCalculator creates a calculator bound to a rules snapshot
func NewSalaryCalculator(rules domain.FiscalRules) *SalaryCalculator {
	return &SalaryCalculator{
		Rules:  rules,
		Logger: NopLogger{},
	}
}

// SetLogger replaces the logger; nil restores the no-op logger
func (c *SalaryCalculator) SetLogger(l Logger) {
	if l == nil {
		c.Logger = NopLogger{}
		return
	}
	c.Logger = l
}

func (c *SalaryCalculator) logger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}

// percentOf applies a percentage rate (25 means 25%)
func percentOf(base, rate decimal.Decimal) decimal.Decimal {
	return base.Mul(rate).Div(hundred)
}

// roundUnits rounds half-up to whole currency units. Amounts passed here are
// never negative, so half-away-from-zero is half-up.
func roundUnits(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
