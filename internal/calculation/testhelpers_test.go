package calculation

import (
	"testing"

	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/rgehrsitz/isoamt/internal/taxtables"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineFor(t *testing.T, year int) *Engine {
	t.Helper()
	engine, err := NewEngineForYear(taxtables.MustDefault(), year)
	require.NoError(t, err)
	return engine
}

func constantsFor(t *testing.T, year int, fs domain.FilingStatus) (*domain.TaxYear, domain.TaxYearConstants) {
	t.Helper()
	ty, err := taxtables.MustDefault().Get(year)
	require.NoError(t, err)
	c, ok := ty.Constants(fs)
	require.True(t, ok)
	return ty, c
}

func d(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// TestLogger records messages for assertions
type TestLogger struct {
	Debugs []string
	Warns  []string
}

func (l *TestLogger) Debugf(format string, args ...any) { l.Debugs = append(l.Debugs, format) }
func (l *TestLogger) Infof(format string, args ...any)  {}
func (l *TestLogger) Warnf(format string, args ...any)  { l.Warns = append(l.Warns, format) }
func (l *TestLogger) Errorf(format string, args ...any) {}

func assertDecimal(t *testing.T, expected float64, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, actual.Equal(d(expected)), "expected %v, got %s", expected, actual.String())
}
