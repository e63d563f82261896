package compare

import (
	"fmt"

	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one filing status evaluated for the shared inputs
type ComparisonResult struct {
	FilingStatus domain.FilingStatus       `json:"filingStatus"`
	Outputs      domain.CalculationOutputs `json:"-"`

	// Key Metrics
	Amt         decimal.Decimal `json:"amt"`
	OrdinaryTax decimal.Decimal `json:"ordinaryTax"`
	PayableTax  decimal.Decimal `json:"payableTax"`
	AmtApplies  bool            `json:"amtApplies"`
	// MaxIsos is zero unless AmtApplies
	MaxIsos decimal.Decimal `json:"maxIsos"`

	// Comparison to Base
	PayableDiffFromBase decimal.Decimal `json:"payableDiffFromBase"`
	PayablePctFromBase  decimal.Decimal `json:"payablePctFromBase"`
	AmtDiffFromBase     decimal.Decimal `json:"amtDiffFromBase"`
}

// Name is the display name of the result's filing status
func (r *ComparisonResult) Name() string {
	return r.FilingStatus.Label()
}

// ComparisonSet is a base filing status against alternatives
type ComparisonSet struct {
	TaxYear            int                      `json:"taxYear"`
	Inputs             domain.CalculationInputs `json:"inputs"`
	BaseStatus         domain.FilingStatus      `json:"baseStatus"`
	BaseResult         *ComparisonResult        `json:"baseResult"`
	AlternativeResults []ComparisonResult       `json:"alternativeResults"`
	Recommendations    []string                 `json:"recommendations"`
}

// MetricsCalculator extracts comparison metrics from calculation outputs
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics copies the headline numbers out of a calculation
func (mc *MetricsCalculator) CalculateMetrics(out domain.CalculationOutputs) ComparisonResult {
	result := ComparisonResult{
		FilingStatus: out.FilingStatus,
		Outputs:      out,
		Amt:          out.Amt,
		OrdinaryTax:  out.OrdinaryTax,
		PayableTax:   out.PayableTax,
		AmtApplies:   out.AmtApplies(),
	}
	if out.MaxIsos != nil {
		result.MaxIsos = out.MaxIsos.Isos
	}
	return result
}

// CalculateComparison computes deltas between a result and the base
func (mc *MetricsCalculator) CalculateComparison(result, base ComparisonResult) ComparisonResult {
	result.PayableDiffFromBase = result.PayableTax.Sub(base.PayableTax)
	if !base.PayableTax.IsZero() {
		result.PayablePctFromBase = result.PayableDiffFromBase.
			Div(base.PayableTax).
			Mul(decimal.NewFromInt(100))
	}
	result.AmtDiffFromBase = result.Amt.Sub(base.Amt)
	return result
}

// GenerateRecommendations summarises which filing status comes out ahead
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}
	base := compSet.BaseResult

	lowest := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.PayableTax.LessThan(lowest.PayableTax) {
			lowest = alt
		}
	}
	if lowest != base {
		recommendations = append(recommendations, fmt.Sprintf(
			"Lowest Tax: %s pays $%s less than %s",
			lowest.Name(), base.PayableTax.Sub(lowest.PayableTax).StringFixed(0), base.Name()))
	}

	if base.AmtApplies {
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if !alt.AmtApplies {
				recommendations = append(recommendations,
					"No AMT: "+alt.Name()+" keeps AMT at or below ordinary tax for this exercise")
			}
		}
	}

	if base.AmtApplies {
		most := base
		for i := range compSet.AlternativeResults {
			alt := &compSet.AlternativeResults[i]
			if alt.AmtApplies && alt.MaxIsos.GreaterThan(most.MaxIsos) {
				most = alt
			}
		}
		if most != base {
			recommendations = append(recommendations, fmt.Sprintf(
				"Most Headroom: %s allows %s more ISOs before AMT",
				most.Name(), most.MaxIsos.Sub(base.MaxIsos).Floor().String()))
		}
	}

	return recommendations
}
