package domain

import "github.com/shopspring/decimal"

// CalculationOutputs holds every derived value for one set of inputs
type CalculationOutputs struct {
	TaxYear        int             `yaml:"tax_year" json:"tax_year"`
	FilingStatus   FilingStatus    `yaml:"filing_status" json:"filing_status"`
	BargainElement decimal.Decimal `yaml:"bargain_element" json:"bargain_element"`
	AMTI           decimal.Decimal `yaml:"amti" json:"amti"`
	AmtExemption   decimal.Decimal `yaml:"amt_exemption" json:"amt_exemption"`
	AmtBase        decimal.Decimal `yaml:"amt_base" json:"amt_base"`
	Amt            decimal.Decimal `yaml:"amt" json:"amt"`
	TaxableIncome  decimal.Decimal `yaml:"taxable_income" json:"taxable_income"`
	OrdinaryTax    decimal.Decimal `yaml:"ordinary_tax" json:"ordinary_tax"`
	MarginalRate   decimal.Decimal `yaml:"marginal_rate" json:"marginal_rate"` // percentage points
	PayableTax     decimal.Decimal `yaml:"payable_tax" json:"payable_tax"`

	// MaxIsos is set only when Amt exceeds OrdinaryTax
	MaxIsos *Solution `yaml:"max_isos,omitempty" json:"max_isos,omitempty"`
}

// AmtApplies reports whether AMT exceeds ordinary tax
func (o CalculationOutputs) AmtApplies() bool {
	return o.Amt.GreaterThan(o.OrdinaryTax)
}

// Solution is the result of the max-ISO search. Isos is an approximation:
// when Converged is false the iteration cap was hit first.
type Solution struct {
	Isos        decimal.Decimal `yaml:"isos" json:"isos"`
	Iterations  int             `yaml:"iterations" json:"iterations"`
	Converged   bool            `yaml:"converged" json:"converged"`
	Discrepancy decimal.Decimal `yaml:"discrepancy" json:"discrepancy"`
}
