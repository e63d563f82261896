package calculation

import (
	"fmt"

	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
)

// SweepPoint is the pipeline evaluated at one ISO count
type SweepPoint struct {
	IsoCount    decimal.Decimal `yaml:"iso_count" json:"iso_count"`
	Amt         decimal.Decimal `yaml:"amt" json:"amt"`
	OrdinaryTax decimal.Decimal `yaml:"ordinary_tax" json:"ordinary_tax"`
	PayableTax  decimal.Decimal `yaml:"payable_tax" json:"payable_tax"`
	AmtApplies  bool            `yaml:"amt_applies" json:"amt_applies"`
}

// SweepResult holds a sweep over ISO counts
type SweepResult struct {
	Inputs domain.CalculationInputs `yaml:"inputs" json:"inputs"`
	Points []SweepPoint             `yaml:"points" json:"points"`
}

// FirstAmtPoint returns the index of the first point where AMT applies, or -1
func (r *SweepResult) FirstAmtPoint() int {
	for i, p := range r.Points {
		if p.AmtApplies {
			return i
		}
	}
	return -1
}

// Sweep evaluates steps evenly spaced ISO counts from..to inclusive. The
// inputs' own ISO count is ignored.
func (e *Engine) Sweep(in domain.CalculationInputs, from, to decimal.Decimal, steps int) (*SweepResult, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", steps)
	}
	if to.LessThan(from) {
		return nil, fmt.Errorf("sweep range is inverted: %s > %s", from, to)
	}

	c, ok := e.TaxYear.Constants(in.FilingStatus)
	if !ok {
		return nil, fmt.Errorf("tax year %d has no constants for %s", e.TaxYear.Year, in.FilingStatus.OrDefault())
	}

	ordinary := OrdinaryTax(in.Income, c)
	step := to.Sub(from).Div(decimal.NewFromInt(int64(steps - 1)))

	result := &SweepResult{Inputs: in, Points: make([]SweepPoint, 0, steps)}
	for i := 0; i < steps; i++ {
		isos := from.Add(step.Mul(decimal.NewFromInt(int64(i))))
		if i == steps-1 {
			isos = to
		}
		amt := amtFor(e.TaxYear, c, in, isos).amt
		result.Points = append(result.Points, SweepPoint{
			IsoCount:    isos,
			Amt:         amt,
			OrdinaryTax: ordinary,
			PayableTax:  PayableTax(amt, ordinary),
			AmtApplies:  amt.GreaterThan(ordinary),
		})
	}
	return result, nil
}
