package calculation

import (
	"testing"

	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLadderTax_2022Single(t *testing.T) {
	_, c := constantsFor(t, 2022, domain.Single)

	tests := []struct {
		name     string
		taxable  float64
		expected float64
	}{
		{"zero", 0, 0},
		{"negative", -5000, 0},
		{"inside first bracket", 5000, 500},
		{"exactly at first threshold", 10275, 1027.5},
		{"second bracket", 41775, 4807.5},
		{"third bracket", 87050, 14768},
		{"above top threshold", 600000, 184955},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.expected, LadderTax(d(tt.taxable), c.Brackets))
		})
	}
}

func TestOrdinaryTax_AppliesStandardDeduction(t *testing.T) {
	_, c := constantsFor(t, 2022, domain.Single)

	assertDecimal(t, 14768, OrdinaryTax(d(100000), c))
	assertDecimal(t, 87050, TaxableIncome(d(100000), c))

	// deduction exceeding income means no tax
	assertDecimal(t, 0, OrdinaryTax(d(10000), c))
	assertDecimal(t, 0, TaxableIncome(d(10000), c))
}

func TestOrdinaryTax_2016HasNoDeduction(t *testing.T) {
	_, c := constantsFor(t, 2016, domain.Single)

	assertDecimal(t, 8271.25, OrdinaryTax(d(50000), c))
}

func TestOrdinaryTax_MonotoneNonDecreasing(t *testing.T) {
	for _, year := range []int{2016, 2022} {
		for _, fs := range domain.FilingStatuses {
			_, c := constantsFor(t, year, fs)
			assert.True(t, OrdinaryTax(decimal.Zero, c).IsZero(), "%d %s: tax on zero income", year, fs)

			previous := decimal.Zero
			for income := int64(0); income <= 1500000; income += 2500 {
				tax := OrdinaryTax(decimal.NewFromInt(income), c)
				assert.True(t, tax.GreaterThanOrEqual(previous), "%d %s: tax decreased at %d", year, fs, income)
				previous = tax
			}
		}
	}
}

func TestLadderTax_EmptyBrackets(t *testing.T) {
	assert.True(t, LadderTax(d(50000), nil).IsZero())
}

func TestMarginalRate(t *testing.T) {
	_, c := constantsFor(t, 2022, domain.Single)

	assertDecimal(t, 10, MarginalRate(d(5000), c.Brackets))
	assertDecimal(t, 22, MarginalRate(d(87050), c.Brackets))
	assertDecimal(t, 37, MarginalRate(d(2000000), c.Brackets))
}
