package compare

import (
	"fmt"

	"github.com/rgehrsitz/isoamt/internal/calculation"
	"github.com/rgehrsitz/isoamt/internal/domain"
)

// CompareEngine runs the same inputs under several filing statuses
type CompareEngine struct {
	Calc              calculation.Recalculator
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calc calculation.Recalculator) *CompareEngine {
	return &CompareEngine{
		Calc:              calc,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	// BaseStatus defaults to the inputs' filing status
	BaseStatus domain.FilingStatus
	// Alternatives defaults to every other filing status
	Alternatives []domain.FilingStatus
}

// Compare calculates the base status and each alternative
func (ce *CompareEngine) Compare(in domain.CalculationInputs, options CompareOptions) (*ComparisonSet, error) {
	base := options.BaseStatus
	if base == "" {
		base = in.FilingStatus
	}
	base = base.OrDefault()

	alternatives := options.Alternatives
	if len(alternatives) == 0 {
		for _, fs := range domain.FilingStatuses {
			if fs != base {
				alternatives = append(alternatives, fs)
			}
		}
	}

	in.FilingStatus = base
	baseOut := ce.Calc.Calculate(in)
	baseResult := ce.MetricsCalculator.CalculateMetrics(baseOut)

	seen := map[domain.FilingStatus]bool{base: true}
	results := []ComparisonResult{}
	for _, fs := range alternatives {
		fs = fs.OrDefault()
		if seen[fs] {
			return nil, fmt.Errorf("filing status %s listed more than once", fs)
		}
		seen[fs] = true

		alt := in
		alt.FilingStatus = fs
		result := ce.MetricsCalculator.CalculateMetrics(ce.Calc.Calculate(alt))
		results = append(results, ce.MetricsCalculator.CalculateComparison(result, baseResult))
	}

	compSet := &ComparisonSet{
		TaxYear:            baseOut.TaxYear,
		Inputs:             in,
		BaseStatus:         base,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}
