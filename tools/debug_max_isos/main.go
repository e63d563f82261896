package main

import (
	"fmt"
	"os"

	calc "github.com/rgehrsitz/isoamt/internal/calculation"
	"github.com/rgehrsitz/isoamt/internal/config"
	"github.com/rgehrsitz/isoamt/internal/taxtables"
	"github.com/shopspring/decimal"
)

// traceLogger prints the solver's iteration trace to stderr
type traceLogger struct{}

func (traceLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (traceLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (traceLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN "+format+"\n", args...)
}
func (traceLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_max_isos <scenario-file> [steps]")
		return
	}
	steps := 21
	if len(os.Args) > 2 {
		if _, err := fmt.Sscanf(os.Args[2], "%d", &steps); err != nil {
			panic(err)
		}
	}

	scenario, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	registry := taxtables.MustDefault()
	if err := registry.LoadInto(scenario.Tables...); err != nil {
		panic(err)
	}
	engine, err := calc.NewEngineForYear(registry, scenario.TaxYear)
	if err != nil {
		panic(err)
	}
	engine.Solver = scenario.Solver.Options()
	engine.SetLogger(traceLogger{})

	in := scenario.Inputs.Parse()
	out := engine.Calculate(in)
	if out.MaxIsos == nil {
		fmt.Println("AMT does not exceed ordinary tax; nothing to solve")
		return
	}

	// Sweep twice the solved range so the crossing sits mid-table
	upper := decimal.Min(in.IsoCount, out.MaxIsos.Isos.Mul(decimal.NewFromInt(2)))
	sweep, err := engine.Sweep(in, decimal.Zero, upper, steps)
	if err != nil {
		panic(err)
	}

	fmt.Println("Index,IsoCount,AMT,Ordinary,Payable,Discrepancy,AmtApplies")
	for idx, p := range sweep.Points {
		fmt.Printf("%d,%s,%s,%s,%s,%s,%t\n", idx,
			p.IsoCount.StringFixed(2),
			p.Amt.StringFixed(2),
			p.OrdinaryTax.StringFixed(2),
			p.PayableTax.StringFixed(2),
			p.Amt.Sub(p.OrdinaryTax).StringFixed(2),
			p.AmtApplies)
	}
	fmt.Printf("# solved max ISOs %s after %d iterations (converged=%t)\n",
		out.MaxIsos.Isos.StringFixed(4), out.MaxIsos.Iterations, out.MaxIsos.Converged)
}
