package taxtables

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	validate   = validator.New()
	maxPercent = decimal.NewFromInt(100)
)

// Validate enforces the table invariants the calculators rely on:
//   - every filing status has a row
//   - exemption, phase-out, breakpoint and standard deduction are non-negative
//   - the ladder starts at threshold 0 and thresholds strictly increase
//   - all rates lie in [0, 100]
func Validate(ty *domain.TaxYear) error {
	if ty == nil {
		return &TableError{Message: "table is nil"}
	}
	if err := validate.Struct(ty); err != nil {
		return &TableError{Year: ty.Year, Message: "invalid table structure", Cause: err}
	}

	for _, rate := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"amt_low_rate", ty.AmtLowRate},
		{"amt_high_rate", ty.AmtHighRate},
		{"phase_out_rate", ty.PhaseOutRate},
	} {
		if !inPercentRange(rate.value) {
			return &TableError{Year: ty.Year, Message: fmt.Sprintf("%s %s outside [0, 100]", rate.name, rate.value)}
		}
	}

	for _, fs := range domain.FilingStatuses {
		c, ok := ty.Statuses[fs]
		if !ok {
			return &TableError{Year: ty.Year, Status: fs, Message: "missing filing status"}
		}
		if err := validateConstants(c); err != nil {
			return &TableError{Year: ty.Year, Status: fs, Message: err.Error()}
		}
	}
	return nil
}

func validateConstants(c domain.TaxYearConstants) error {
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"exemption", c.Exemption},
		{"phase_out", c.PhaseOut},
		{"breakpoint", c.Breakpoint},
		{"standard_deduction", c.StandardDeduction},
	} {
		if f.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", f.name)
		}
	}

	if len(c.Brackets) == 0 {
		return fmt.Errorf("no brackets")
	}
	if !c.Brackets[0].Threshold.IsZero() {
		return fmt.Errorf("first bracket must start at 0, got %s", c.Brackets[0].Threshold)
	}
	for i, b := range c.Brackets {
		if !inPercentRange(b.Rate) {
			return fmt.Errorf("bracket %d rate %s outside [0, 100]", i, b.Rate)
		}
		if i > 0 && !b.Threshold.GreaterThan(c.Brackets[i-1].Threshold) {
			return fmt.Errorf("bracket %d threshold %s does not exceed %s", i, b.Threshold, c.Brackets[i-1].Threshold)
		}
	}
	return nil
}

func inPercentRange(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(maxPercent)
}
