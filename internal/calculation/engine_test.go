package calculation

import (
	"testing"

	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/rgehrsitz/isoamt/internal/taxtables"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInputs() domain.CalculationInputs {
	return domain.CalculationInputs{
		Income:          decimal.NewFromInt(100000),
		StrikePrice:     decimal.NewFromInt(10),
		FairMarketValue: decimal.NewFromInt(50),
		IsoCount:        decimal.NewFromInt(10000),
		FilingStatus:    domain.Single,
	}
}

func TestNewEngine(t *testing.T) {
	engine := engineFor(t, 2022)

	assert.NotNil(t, engine.TaxYear, "Should hold a tax year")
	assert.Equal(t, 2022, engine.TaxYear.Year)
	assert.Equal(t, DefaultSolverOptions(), engine.Solver)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestNewEngineForYear_Unknown(t *testing.T) {
	engine, err := NewEngineForYear(taxtables.MustDefault(), 1999)

	assert.Error(t, err)
	assert.Nil(t, engine)
	assert.Contains(t, err.Error(), "no tax table for year 1999")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := engineFor(t, 2022)

	custom := &TestLogger{}
	engine.SetLogger(custom)
	assert.Equal(t, custom, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger, "Should fall back to no-op logger")
}

func TestEngine_Calculate_AmtExceedsOrdinary(t *testing.T) {
	engine := engineFor(t, 2022)

	out := engine.Calculate(referenceInputs())

	assert.Equal(t, 2022, out.TaxYear)
	assert.Equal(t, domain.Single, out.FilingStatus)
	assertDecimal(t, 400000, out.BargainElement)
	assertDecimal(t, 500000, out.AMTI)
	assertDecimal(t, 75900, out.AmtExemption)
	assertDecimal(t, 424100, out.AmtBase)
	assertDecimal(t, 114626, out.Amt)
	assertDecimal(t, 87050, out.TaxableIncome)
	assertDecimal(t, 14768, out.OrdinaryTax)
	assertDecimal(t, 22, out.MarginalRate)
	assertDecimal(t, 114626, out.PayableTax)

	require.True(t, out.AmtApplies())
	require.NotNil(t, out.MaxIsos, "max ISOs should be solved when AMT exceeds ordinary tax")
	assert.True(t, out.MaxIsos.Converged)
}

func TestEngine_Calculate_ZeroIsos(t *testing.T) {
	engine := engineFor(t, 2022)
	in := referenceInputs().WithIsoCount(decimal.Zero)

	out := engine.Calculate(in)

	assert.True(t, out.BargainElement.IsZero())
	assertDecimal(t, 100000, out.AMTI)
	assertDecimal(t, 24100, out.AmtBase)
	assertDecimal(t, 6266, out.Amt)
	assertDecimal(t, 14768, out.PayableTax)
	assert.False(t, out.AmtApplies())
	assert.Nil(t, out.MaxIsos, "max ISOs are only reported when AMT applies")
}

func TestEngine_Calculate_PayableIsMax(t *testing.T) {
	engine := engineFor(t, 2022)

	for _, fs := range domain.FilingStatuses {
		for _, isos := range []int64{0, 500, 2000, 10000, 50000} {
			in := referenceInputs().WithIsoCount(decimal.NewFromInt(isos))
			in.FilingStatus = fs
			out := engine.Calculate(in)
			assert.True(t, out.PayableTax.Equal(decimal.Max(out.Amt, out.OrdinaryTax)), "%s isos=%d", fs, isos)
		}
	}
}

func TestEngine_Calculate_Idempotent(t *testing.T) {
	engine := engineFor(t, 2022)
	in := referenceInputs()

	first := engine.Calculate(in)
	second := engine.Calculate(in)

	assert.Equal(t, first, second)
}

func TestEngine_Calculate_DefaultsFilingStatus(t *testing.T) {
	engine := engineFor(t, 2022)
	in := referenceInputs()
	in.FilingStatus = ""

	out := engine.Calculate(in)

	assert.Equal(t, domain.Single, out.FilingStatus)
	assertDecimal(t, 14768, out.OrdinaryTax)
}

func TestEngine_Calculate_MarriedFilingJointly(t *testing.T) {
	engine := engineFor(t, 2022)
	in := referenceInputs()
	in.FilingStatus = domain.MarriedFilingJointly

	out := engine.Calculate(in)

	// taxable 74,100: 2,055 + (74,100 - 20,550) * 12%
	assertDecimal(t, 8481, out.OrdinaryTax)
	assertDecimal(t, 12, out.MarginalRate)
	assertDecimal(t, 118100, out.AmtExemption)
	assertDecimal(t, 381900, out.AmtBase)
}

func TestEngine_CalculateRaw(t *testing.T) {
	engine := engineFor(t, 2022)

	out := engine.CalculateRaw(domain.RawInputs{
		Income:          "100,000",
		StrikePrice:     "10",
		FairMarketValue: "$50",
		IsoCount:        "10,000",
		FilingStatus:    "single",
	})
	assert.Equal(t, engine.Calculate(referenceInputs()), out)

	empty := engine.CalculateRaw(domain.RawInputs{Income: "abc"})
	assert.True(t, empty.PayableTax.IsZero())
	assert.Nil(t, empty.MaxIsos)
}
