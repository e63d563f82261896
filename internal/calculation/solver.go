package calculation

import (
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// SolverOptions configures the max-ISO bisection
type SolverOptions struct {
	Tolerance     decimal.Decimal `yaml:"tolerance" json:"tolerance"`           // dollars
	MaxIterations int             `yaml:"max_iterations" json:"max_iterations"` // hard cap
}

// DefaultSolverOptions returns a $10 tolerance and a 100 iteration cap
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(10),
		MaxIterations: 100,
	}
}

// WithDefaults fills a non-positive tolerance or iteration cap from
// DefaultSolverOptions
func (o SolverOptions) WithDefaults() SolverOptions {
	d := DefaultSolverOptions()
	if o.Tolerance.IsPositive() {
		d.Tolerance = o.Tolerance
	}
	if o.MaxIterations > 0 {
		d.MaxIterations = o.MaxIterations
	}
	return d
}

// MaxIsoSolver searches for the ISO count at which AMT falls to ordinary tax
type MaxIsoSolver struct {
	taxYear *domain.TaxYear
	options SolverOptions
	logger  Logger
}

// NewMaxIsoSolver creates a solver bound to one tax year
func NewMaxIsoSolver(ty *domain.TaxYear, options SolverOptions, logger Logger) *MaxIsoSolver {
	if logger == nil {
		logger = NopLogger{}
	}
	return &MaxIsoSolver{taxYear: ty, options: options.WithDefaults(), logger: logger}
}

// Solve bisects over [0, in.IsoCount]. ordinaryTax does not depend on the
// ISO count and is held fixed. The search stops once AMT at the trial count
// is within the tolerance of ordinaryTax or the iteration cap is reached; in
// the latter case the last trial is returned with Converged=false.
func (s *MaxIsoSolver) Solve(in domain.CalculationInputs, ordinaryTax decimal.Decimal) domain.Solution {
	c, ok := s.taxYear.Constants(in.FilingStatus)
	if !ok {
		return domain.Solution{Isos: in.IsoCount}
	}

	lower := decimal.Zero
	upper := in.IsoCount
	trial := in.IsoCount
	discrepancy := decimal.Zero

	for iteration := 1; iteration <= s.options.MaxIterations; iteration++ {
		trialAmt := amtFor(s.taxYear, c, in, trial).amt
		discrepancy = trialAmt.Sub(ordinaryTax)

		s.logger.Debugf("max-isos iteration %d: trial=%s amt=%s discrepancy=%s",
			iteration, trial.StringFixed(4), trialAmt.StringFixed(2), discrepancy.StringFixed(2))

		if discrepancy.Abs().LessThanOrEqual(s.options.Tolerance) {
			return domain.Solution{
				Isos:        trial,
				Iterations:  iteration,
				Converged:   true,
				Discrepancy: discrepancy,
			}
		}

		if discrepancy.IsPositive() {
			upper = trial
		} else {
			lower = trial
		}
		trial = upper.Add(lower).Div(two)
	}

	s.logger.Warnf("max-isos search stopped after %d iterations (discrepancy %s)",
		s.options.MaxIterations, discrepancy.StringFixed(2))
	return domain.Solution{
		Isos:        trial,
		Iterations:  s.options.MaxIterations,
		Converged:   false,
		Discrepancy: discrepancy,
	}
}
