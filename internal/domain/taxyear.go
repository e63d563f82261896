package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Bracket is one rung of an ordinary income tax ladder. Rate is in percentage
// points and applies to income from Threshold up to the next rung's threshold.
type Bracket struct {
	Rate      decimal.Decimal `yaml:"rate" json:"rate" toml:"rate"`
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold" toml:"threshold"`
}

// Fraction returns the rate as a multiplier (24 -> 0.24)
func (b Bracket) Fraction() decimal.Decimal {
	return b.Rate.Div(hundred)
}

// TaxYearConstants holds the constants for one filing status in one tax year
type TaxYearConstants struct {
	Exemption         decimal.Decimal `yaml:"exemption" json:"exemption" toml:"exemption"`
	PhaseOut          decimal.Decimal `yaml:"phase_out" json:"phase_out" toml:"phase_out"`
	Breakpoint        decimal.Decimal `yaml:"breakpoint" json:"breakpoint" toml:"breakpoint"`
	StandardDeduction decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction" toml:"standard_deduction"`
	Brackets          []Bracket       `yaml:"brackets" json:"brackets" toml:"brackets" validate:"required,min=1,dive"`
}

// TaxYear is a complete constant table for one tax year.
// Rates are percentage points.
type TaxYear struct {
	Year         int                               `yaml:"year" json:"year" toml:"year" validate:"required,gte=1987"`
	Description  string                            `yaml:"description,omitempty" json:"description,omitempty" toml:"description"`
	AmtLowRate   decimal.Decimal                   `yaml:"amt_low_rate" json:"amt_low_rate" toml:"amt_low_rate"`
	AmtHighRate  decimal.Decimal                   `yaml:"amt_high_rate" json:"amt_high_rate" toml:"amt_high_rate"`
	PhaseOutRate decimal.Decimal                   `yaml:"phase_out_rate" json:"phase_out_rate" toml:"phase_out_rate"`
	Statuses     map[FilingStatus]TaxYearConstants `yaml:"statuses" json:"statuses" toml:"statuses" validate:"required,min=1,dive"`
}

// Constants returns the row for the given filing status. The zero FilingStatus
// selects Single.
func (ty *TaxYear) Constants(fs FilingStatus) (TaxYearConstants, bool) {
	c, ok := ty.Statuses[fs.OrDefault()]
	return c, ok
}

// AmtLow returns the lower AMT rate as a multiplier
func (ty *TaxYear) AmtLow() decimal.Decimal { return ty.AmtLowRate.Div(hundred) }

// AmtHigh returns the upper AMT rate as a multiplier
func (ty *TaxYear) AmtHigh() decimal.Decimal { return ty.AmtHighRate.Div(hundred) }

// PhaseOutFraction returns the exemption phase-out rate as a multiplier
func (ty *TaxYear) PhaseOutFraction() decimal.Decimal { return ty.PhaseOutRate.Div(hundred) }
