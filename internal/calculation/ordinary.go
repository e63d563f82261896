package calculation

import (
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxableIncome is gross income less the standard deduction, floored at zero
func TaxableIncome(income decimal.Decimal, c domain.TaxYearConstants) decimal.Decimal {
	return decimal.Max(decimal.Zero, income.Sub(c.StandardDeduction))
}

// OrdinaryTax computes regular income tax on gross income by walking the
// bracket ladder from the bottom rung.
func OrdinaryTax(income decimal.Decimal, c domain.TaxYearConstants) decimal.Decimal {
	return LadderTax(TaxableIncome(income, c), c.Brackets)
}

// LadderTax walks brackets from lowest to highest. Each rung taxes the
// income between its threshold and the next rung's threshold at its own
// rate; the top rung extends to infinity. Brackets must start at 0 with
// strictly increasing thresholds.
func LadderTax(taxable decimal.Decimal, brackets []domain.Bracket) decimal.Decimal {
	if !taxable.IsPositive() || len(brackets) == 0 {
		return decimal.Zero
	}

	tax := decimal.Zero
	for i := 1; i < len(brackets); i++ {
		previous := brackets[i-1]
		currentThreshold := brackets[i].Threshold

		if taxable.LessThan(currentThreshold) {
			return tax.Add(previous.Fraction().Mul(taxable.Sub(previous.Threshold)))
		}
		tax = tax.Add(previous.Fraction().Mul(currentThreshold.Sub(previous.Threshold)))
	}

	// sentinel rung: everything above the last threshold
	top := brackets[len(brackets)-1]
	return tax.Add(top.Fraction().Mul(taxable.Sub(top.Threshold)))
}

// MarginalRate returns the rate (percentage points) applied to the last
// dollar of taxable income
func MarginalRate(taxable decimal.Decimal, brackets []domain.Bracket) decimal.Decimal {
	rate := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThan(b.Threshold) {
			break
		}
		rate = b.Rate
	}
	return rate
}
