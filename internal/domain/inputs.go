package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CalculationInputs is one immutable set of calculator inputs
type CalculationInputs struct {
	Income          decimal.Decimal `yaml:"income" json:"income"`
	StrikePrice     decimal.Decimal `yaml:"strike_price" json:"strike_price"`
	FairMarketValue decimal.Decimal `yaml:"fair_market_value" json:"fair_market_value"`
	IsoCount        decimal.Decimal `yaml:"iso_count" json:"iso_count"`
	FilingStatus    FilingStatus    `yaml:"filing_status" json:"filing_status"`
}

// WithIsoCount returns a copy with a different ISO count
func (in CalculationInputs) WithIsoCount(isos decimal.Decimal) CalculationInputs {
	in.IsoCount = isos
	return in
}

// RawInputs carries inputs as typed by a user, possibly formatted ("1,234")
// or empty.
type RawInputs struct {
	Income          string `yaml:"income" json:"income" validate:"omitempty,max=32"`
	StrikePrice     string `yaml:"strike_price" json:"strike_price" validate:"omitempty,max=32"`
	FairMarketValue string `yaml:"fair_market_value" json:"fair_market_value" validate:"omitempty,max=32"`
	IsoCount        string `yaml:"iso_count" json:"iso_count" validate:"omitempty,max=32"`
	FilingStatus    string `yaml:"filing_status" json:"filing_status"`
}

// Parse converts raw text into CalculationInputs. Numeric fields that are empty
// or unparsable become zero and an unrecognized filing status becomes Single.
func (r RawInputs) Parse() CalculationInputs {
	fs, err := ParseFilingStatus(r.FilingStatus)
	if err != nil {
		fs = Single
	}
	return CalculationInputs{
		Income:          ParseAmount(r.Income),
		StrikePrice:     ParseAmount(r.StrikePrice),
		FairMarketValue: ParseAmount(r.FairMarketValue),
		IsoCount:        ParseAmount(r.IsoCount),
		FilingStatus:    fs,
	}
}

var amountReplacer = strings.NewReplacer(",", "", "$", "", "_", "", " ", "")

// ParseAmount parses a user-typed number such as "1,234" or "$50.25".
// Anything that does not parse yields zero.
func ParseAmount(s string) decimal.Decimal {
	cleaned := amountReplacer.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
