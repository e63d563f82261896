package calculation

import (
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
)

// AmtExemption returns the exemption after phase-out. Above the phase-out
// threshold the base exemption shrinks by phaseOutRate of the excess and
// never drops below zero.
func AmtExemption(amti decimal.Decimal, c domain.TaxYearConstants, phaseOutRate decimal.Decimal) decimal.Decimal {
	exemption := c.Exemption
	if amti.GreaterThan(c.PhaseOut) {
		exemption = exemption.Sub(amti.Sub(c.PhaseOut).Mul(phaseOutRate))
	}
	if exemption.IsNegative() {
		return decimal.Zero
	}
	return exemption
}

// AmtBase is AMTI less the exemption, floored at zero
func AmtBase(amti, exemption decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, amti.Sub(exemption))
}

// Amt applies the two-rate AMT schedule: lowRate up to the breakpoint and
// highRate on the remainder.
func Amt(amtBase decimal.Decimal, c domain.TaxYearConstants, lowRate, highRate decimal.Decimal) decimal.Decimal {
	if amtBase.IsNegative() {
		amtBase = decimal.Zero
	}
	if amtBase.GreaterThan(c.Breakpoint) {
		return c.Breakpoint.Mul(lowRate).Add(amtBase.Sub(c.Breakpoint).Mul(highRate))
	}
	return amtBase.Mul(lowRate)
}

// amtBreakdown carries the intermediate AMT values for one ISO count
type amtBreakdown struct {
	bargain   decimal.Decimal
	amti      decimal.Decimal
	exemption decimal.Decimal
	base      decimal.Decimal
	amt       decimal.Decimal
}

// amtFor runs bargain element -> AMTI -> exemption -> base -> AMT for a
// given ISO count without touching the caller's inputs.
func amtFor(ty *domain.TaxYear, c domain.TaxYearConstants, in domain.CalculationInputs, isoCount decimal.Decimal) amtBreakdown {
	var b amtBreakdown
	b.bargain = BargainElement(in.FairMarketValue, in.StrikePrice, isoCount)
	b.amti = in.Income.Add(b.bargain)
	b.exemption = AmtExemption(b.amti, c, ty.PhaseOutFraction())
	b.base = AmtBase(b.amti, b.exemption)
	b.amt = Amt(b.base, c, ty.AmtLow(), ty.AmtHigh())
	return b
}
