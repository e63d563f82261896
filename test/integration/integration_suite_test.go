package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/isoamt/internal/calculation"
	"github.com/rgehrsitz/isoamt/internal/compare"
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/rgehrsitz/isoamt/internal/output"
	"github.com/rgehrsitz/isoamt/internal/taxtables"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIntegrationSmokeTest renders one scenario in every report format
func TestIntegrationSmokeTest(t *testing.T) {
	scenario, out := loadAndCalculate(t, referenceScenario)
	report := output.NewReport(scenario.Name, scenario.Inputs.Parse(), out)
	dir := t.TempDir()

	markers := map[string]string{
		"console":  "ALTERNATIVE MINIMUM TAX",
		"json":     `"payable_tax"`,
		"yaml":     "payable_tax:",
		"csv":      "Metric,Value",
		"markdown": "Reference exercise",
		"html":     "<table>",
		"pdf":      "%PDF",
	}

	for _, name := range output.FormatterNames() {
		t.Run(name, func(t *testing.T) {
			f := output.GetFormatterByName(name)
			require.NotNil(t, f)

			path, err := output.WriteFormatted(f, report, filepath.Join(dir, "report."+output.Extension(name)))
			require.NoError(t, err)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			require.NotEmpty(t, data)
			if marker, ok := markers[name]; ok {
				assert.True(t, bytes.Contains(data, []byte(marker)), "%s report missing %q", name, marker)
			}
		})
	}
}

// TestIntegrationRegression checks the pieces agree with each other
func TestIntegrationRegression(t *testing.T) {
	scenario, out := loadAndCalculate(t, referenceScenario)
	in := scenario.Inputs.Parse()

	engine, err := calculation.NewEngineForYear(taxtables.MustDefault(), 2022)
	require.NoError(t, err)

	t.Run("calculation_consistency", func(t *testing.T) {
		again := engine.Calculate(in)
		assert.True(t, again.Amt.Equal(out.Amt))
		assert.True(t, again.PayableTax.Equal(out.PayableTax))
		assert.True(t, again.MaxIsos.Isos.Equal(out.MaxIsos.Isos))
	})

	t.Run("sweep_matches_calculate", func(t *testing.T) {
		sweep, err := engine.Sweep(in, decimal.Zero, in.IsoCount, 5)
		require.NoError(t, err)
		require.Len(t, sweep.Points, 5)

		last := sweep.Points[len(sweep.Points)-1]
		assert.True(t, last.Amt.Equal(out.Amt))
		assert.True(t, last.PayableTax.Equal(out.PayableTax))

		first := sweep.Points[0]
		assert.True(t, first.Amt.Equal(engine.Calculate(in.WithIsoCount(decimal.Zero)).Amt))
		assert.False(t, first.AmtApplies)
	})

	t.Run("max_isos_is_break_even", func(t *testing.T) {
		at := engine.Calculate(in.WithIsoCount(out.MaxIsos.Isos))
		assert.True(t, at.Amt.Sub(at.OrdinaryTax).Abs().LessThanOrEqual(decimal.NewFromInt(10)),
			"amt %s ordinary %s", at.Amt, at.OrdinaryTax)
	})

	t.Run("live_calculator_matches_engine", func(t *testing.T) {
		var seen []domain.CalculationOutputs
		live := calculation.NewLiveCalculator(engine, func(_ domain.CalculationInputs, o domain.CalculationOutputs) {
			seen = append(seen, o)
		})
		got := live.UpdateRaw(scenario.Inputs)
		require.Len(t, seen, 1)
		assert.True(t, got.Amt.Equal(out.Amt))
	})

	t.Run("compare_base_matches_calculate", func(t *testing.T) {
		compSet, err := compare.NewCompareEngine(engine).Compare(in, compare.CompareOptions{})
		require.NoError(t, err)
		assert.True(t, compSet.BaseResult.PayableTax.Equal(out.PayableTax))
		assert.Len(t, compSet.AlternativeResults, 2)
	})
}

// TestTableRoundTrip re-encodes the embedded tables and checks nothing changes
func TestTableRoundTrip(t *testing.T) {
	registry := taxtables.MustDefault()

	for _, year := range registry.Years() {
		for _, format := range []taxtables.Format{taxtables.FormatYAML, taxtables.FormatTOML} {
			ty, err := registry.Get(year)
			require.NoError(t, err)

			data, err := taxtables.Marshal(ty, format)
			require.NoError(t, err)

			parsed, err := taxtables.Parse(data, format)
			require.NoError(t, err, "%d as %s", year, format)

			in := domain.CalculationInputs{
				Income:          decimal.NewFromInt(250000),
				StrikePrice:     decimal.NewFromInt(1),
				FairMarketValue: decimal.NewFromInt(21),
				IsoCount:        decimal.NewFromInt(5000),
			}
			want := calculation.NewEngine(ty).Calculate(in)
			got := calculation.NewEngine(parsed).Calculate(in)
			assert.True(t, want.PayableTax.Equal(got.PayableTax), "%d as %s", year, format)
		}
	}
}
