package calculation

import "github.com/rgehrsitz/isoamt/internal/domain"

// Recalculator is what an input surface needs from the core: on every input
// change, hand over the current inputs and get fresh outputs back.
type Recalculator interface {
	Calculate(in domain.CalculationInputs) domain.CalculationOutputs
}

var _ Recalculator = (*Engine)(nil)

// Observer receives the outputs of each recalculation
type Observer func(in domain.CalculationInputs, out domain.CalculationOutputs)

// LiveCalculator recalculates whenever inputs change and notifies observers.
// It keeps only the latest inputs so a UI can re-render; outputs are never
// derived from a previous run.
type LiveCalculator struct {
	calc      Recalculator
	observers []Observer
	inputs    domain.CalculationInputs
}

// NewLiveCalculator wraps a Recalculator
func NewLiveCalculator(calc Recalculator, observers ...Observer) *LiveCalculator {
	return &LiveCalculator{calc: calc, observers: observers}
}

// Subscribe adds an observer
func (lc *LiveCalculator) Subscribe(o Observer) {
	lc.observers = append(lc.observers, o)
}

// Inputs returns the most recent inputs
func (lc *LiveCalculator) Inputs() domain.CalculationInputs {
	return lc.inputs
}

// Update stores new inputs, recalculates and notifies every observer
func (lc *LiveCalculator) Update(in domain.CalculationInputs) domain.CalculationOutputs {
	lc.inputs = in
	out := lc.calc.Calculate(in)
	for _, o := range lc.observers {
		o(in, out)
	}
	return out
}

// UpdateRaw parses raw inputs and calls Update
func (lc *LiveCalculator) UpdateRaw(raw domain.RawInputs) domain.CalculationOutputs {
	return lc.Update(raw.Parse())
}
