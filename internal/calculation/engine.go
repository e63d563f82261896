package calculation

import (
	"fmt"

	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/rgehrsitz/isoamt/internal/taxtables"
)

// Engine runs the full AMT / ordinary tax pipeline for one tax year.
// It holds no per-calculation state and can be shared.
type Engine struct {
	TaxYear *domain.TaxYear
	Solver  SolverOptions
	Logger  Logger
}

// NewEngine creates an engine for a validated tax year
func NewEngine(ty *domain.TaxYear) *Engine {
	return &Engine{
		TaxYear: ty,
		Solver:  DefaultSolverOptions(),
		Logger:  NopLogger{},
	}
}

// NewEngineForYear builds an engine from a registry entry
func NewEngineForYear(registry *taxtables.Registry, year int) (*Engine, error) {
	ty, err := registry.Get(year)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	return NewEngine(ty), nil
}

// SetLogger sets the logger; nil installs a no-op logger
func (e *Engine) SetLogger(logger Logger) {
	if logger == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = logger
}

// Calculate computes every output for the inputs. The max-ISO search runs only
// when AMT exceeds ordinary tax at the requested ISO count.
func (e *Engine) Calculate(in domain.CalculationInputs) domain.CalculationOutputs {
	fs := in.FilingStatus.OrDefault()
	out := domain.CalculationOutputs{
		TaxYear:      e.TaxYear.Year,
		FilingStatus: fs,
	}

	c, ok := e.TaxYear.Constants(fs)
	if !ok {
		e.Logger.Errorf("tax year %d has no constants for %s", e.TaxYear.Year, fs)
		return out
	}

	b := amtFor(e.TaxYear, c, in, in.IsoCount)
	out.BargainElement = b.bargain
	out.AMTI = b.amti
	out.AmtExemption = b.exemption
	out.AmtBase = b.base
	out.Amt = b.amt

	out.TaxableIncome = TaxableIncome(in.Income, c)
	out.OrdinaryTax = OrdinaryTax(in.Income, c)
	out.MarginalRate = MarginalRate(out.TaxableIncome, c.Brackets)
	out.PayableTax = PayableTax(out.Amt, out.OrdinaryTax)

	e.Logger.Debugf("tax year %d %s: amti=%s amt=%s ordinary=%s",
		e.TaxYear.Year, fs, out.AMTI.StringFixed(2), out.Amt.StringFixed(2), out.OrdinaryTax.StringFixed(2))

	if out.AmtApplies() {
		solution := NewMaxIsoSolver(e.TaxYear, e.Solver, e.Logger).Solve(in, out.OrdinaryTax)
		out.MaxIsos = &solution
	}
	return out
}

// CalculateRaw parses user-typed inputs, coercing bad numbers to zero, then calculates
func (e *Engine) CalculateRaw(raw domain.RawInputs) domain.CalculationOutputs {
	return e.Calculate(raw.Parse())
}
