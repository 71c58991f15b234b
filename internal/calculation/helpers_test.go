package calculation

import (
	"testing"

	"github.com/rgehrsitz/salcalc/internal/config"
	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func lei(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertLei(t *testing.T, expected int64, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, actual.Equal(lei(expected)), "%s: expected %d, got %s", field, expected, actual.String())
}

func newTestCalculator() *SalaryCalculator {
	return NewSalaryCalculator(config.DefaultRules())
}

func rulesWith(modify func(*domain.FiscalRules)) domain.FiscalRules {
	rules := config.DefaultRules()
	modify(&rules)
	return rules
}

// recordingLogger collects messages for assertions
type recordingLogger struct {
	debug []string
	warn  []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debug = append(l.debug, format)
}
func (l *recordingLogger) Infof(string, ...any) {}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warn = append(l.warn, format)
}
func (l *recordingLogger) Errorf(string, ...any) {}
