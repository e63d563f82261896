package calculation

import (
	"testing"

	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBargainElement(t *testing.T) {
	assertDecimal(t, 400000, BargainElement(d(50), d(10), d(10000)))
	assertDecimal(t, 0, BargainElement(d(50), d(10), decimal.Zero))
	// underwater options are not clamped
	assertDecimal(t, -500, BargainElement(d(5), d(10), d(100)))
}

func TestAmtExemption(t *testing.T) {
	ty, c := constantsFor(t, 2022, domain.Single)

	tests := []struct {
		name     string
		amti     float64
		expected float64
	}{
		{"below phase-out", 500000, 75900},
		{"at phase-out", 539900, 75900},
		{"partially phased out", 600000, 60875},
		{"fully phased out", 1000000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, AmtExemption(d(tt.amti), c, ty.PhaseOutFraction()))
		})
	}
}

func TestAmtExemption_NonIncreasingAndNonNegative(t *testing.T) {
	for _, year := range []int{2016, 2022} {
		for _, fs := range domain.FilingStatuses {
			ty, c := constantsFor(t, year, fs)
			previous := AmtExemption(decimal.Zero, c, ty.PhaseOutFraction())
			for amti := int64(0); amti <= 2500000; amti += 5000 {
				exemption := AmtExemption(decimal.NewFromInt(amti), c, ty.PhaseOutFraction())
				assert.False(t, exemption.IsNegative(), "%d %s: exemption negative at %d", year, fs, amti)
				assert.True(t, exemption.LessThanOrEqual(previous), "%d %s: exemption increased at %d", year, fs, amti)
				previous = exemption
			}
		}
	}
}

func TestAmtBase(t *testing.T) {
	assertDecimal(t, 424100, AmtBase(d(500000), d(75900)))
	assertDecimal(t, 0, AmtBase(d(50000), d(75900)))
}

func TestAmt(t *testing.T) {
	ty, c := constantsFor(t, 2022, domain.Single)
	low, high := ty.AmtLow(), ty.AmtHigh()

	assertDecimal(t, 26000, Amt(d(100000), c, low, high))
	assertDecimal(t, 114626, Amt(d(424100), c, low, high))
	assertDecimal(t, 0, Amt(d(-1000), c, low, high))
	assertDecimal(t, 0, Amt(decimal.Zero, c, low, high))
}

func TestAmt_ContinuousAtBreakpoint(t *testing.T) {
	for _, year := range []int{2016, 2022} {
		for _, fs := range domain.FilingStatuses {
			ty, c := constantsFor(t, year, fs)
			low, high := ty.AmtLow(), ty.AmtHigh()
			expected := c.Breakpoint.Mul(low)

			assert.True(t, Amt(c.Breakpoint, c, low, high).Equal(expected), "%d %s at breakpoint", year, fs)

			epsilon := d(0.01)
			below := Amt(c.Breakpoint.Sub(epsilon), c, low, high)
			above := Amt(c.Breakpoint.Add(epsilon), c, low, high)
			assert.True(t, expected.Sub(below).LessThanOrEqual(epsilon), "%d %s left limit", year, fs)
			assert.True(t, above.Sub(expected).LessThanOrEqual(epsilon), "%d %s right limit", year, fs)
		}
	}
}

func TestPayableTax(t *testing.T) {
	assertDecimal(t, 114626, PayableTax(d(114626), d(14768)))
	assertDecimal(t, 14768, PayableTax(d(6266), d(14768)))
	assertDecimal(t, 100, PayableTax(d(100), d(100)))
}
