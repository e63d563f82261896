package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/isoamt/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree with isolated env settings
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvTaxYear, "")
	t.Setenv(config.EnvTables, "")
	t.Setenv(config.EnvLogLevel, "")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

var referenceFlags = []string{"--income", "100,000", "--strike", "10", "--fmv", "50", "--isos", "10000"}

func TestRootCommand(t *testing.T) {
	cmd := rootCmd
	require.NotNil(t, cmd)
	assert.Equal(t, "isoamt", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("tax-year"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("tables"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "Alternative Minimum Tax")
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{"calculate", "max-isos", "sweep", "compare", "tables", "validate", "version"}
	cmds := newRootCmd().Commands()
	for _, name := range expected {
		found := false
		for _, c := range cmds {
			if c.Name() == name {
				found = true
				break
			}
		}
		assert.Truef(t, found, "expected command %q to be registered", name)
	}
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestCalculate_Flags(t *testing.T) {
	out, err := execute(t, append([]string{"calculate"}, referenceFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "$114,626.00")
	assert.Contains(t, out, "$14,768.00")
	assert.Contains(t, out, "Max ISOs Before AMT")
}

func TestCalculate_JSONFormat(t *testing.T) {
	out, err := execute(t, append([]string{"calculate", "--format", "json"}, referenceFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, `"amt"`)
	assert.Contains(t, out, "114626")
}

func TestCalculate_ScenarioWithOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`name: Test scenario
tax_year: 2022
inputs:
  income: "100000"
  strike_price: "10"
  fair_market_value: "50"
  iso_count: "10000"
  filing_status: single
`), 0644))

	out, err := execute(t, "calculate", path, "--isos", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "$6,266.00")
	assert.NotContains(t, out, "Max ISOs Before AMT")
}

func TestCalculate_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	_, err := execute(t, append([]string{"calculate", "--format", "markdown", "--output", path}, referenceFlags...)...)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "114,626.00")
}

func TestCalculate_Errors(t *testing.T) {
	_, err := execute(t, "calculate", "--status", "widowed")
	assert.Error(t, err)

	_, err = execute(t, "calculate", "--tax-year", "1999")
	assert.ErrorContains(t, err, "no tax table for year 1999")

	_, err = execute(t, "calculate", "--format", "docx")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "calculate", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestMaxIsos_RejectsNonPositiveSolverFlags(t *testing.T) {
	for _, args := range [][]string{
		{"--tolerance", "0"},
		{"--tolerance", "-5"},
		{"--tolerance", "abc"},
		{"--max-iterations", "0"},
		{"--max-iterations", "-1"},
	} {
		_, err := execute(t, append(append([]string{"max-isos"}, referenceFlags...), args...)...)
		assert.ErrorContains(t, err, "must be positive", args)
	}

	_, err := execute(t, append(append([]string{"max-isos"}, referenceFlags...), "--tolerance", "1", "--max-iterations", "50")...)
	assert.NoError(t, err)
}

func TestTablePaths_DoesNotAliasInputs(t *testing.T) {
	env := make([]string, 1, 4)
	env[0] = "env.yaml"

	first := tablePaths(env, []string{"scenario-a.yaml"}, []string{"flag.toml"})
	second := tablePaths(env, []string{"scenario-b.yaml"}, nil)

	assert.Equal(t, []string{"env.yaml", "scenario-a.yaml", "flag.toml"}, first)
	assert.Equal(t, []string{"env.yaml", "scenario-b.yaml"}, second)
	assert.Equal(t, []string{"env.yaml"}, env)
	assert.Empty(t, tablePaths())
}

func TestMaxIsos(t *testing.T) {
	out, err := execute(t, append([]string{"max-isos"}, referenceFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Max ISOs before AMT exceeds ordinary tax: 81")

	out, err = execute(t, "max-isos", "--income", "100000", "--strike", "10", "--fmv", "50", "--isos", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "no limit applies")
}

func TestSweep(t *testing.T) {
	out, err := execute(t, append([]string{"sweep", "--format", "csv", "--from", "0", "--to", "2000", "--steps", "5"}, referenceFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Metric,Value")
	assert.Contains(t, out, "2000")

	_, err = execute(t, append([]string{"sweep", "--steps", "1"}, referenceFlags...)...)
	assert.ErrorContains(t, err, "at least 2 steps")
}

func TestCompare(t *testing.T) {
	out, err := execute(t, append([]string{"compare"}, referenceFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "FILING STATUS COMPARISON")
	assert.Contains(t, out, "Single (base)")
	assert.Contains(t, out, "Married Filing Separately")

	out, err = execute(t, append([]string{"compare", "--base", "mfj", "--against", "single", "--format", "compact"}, referenceFlags...)...)
	require.NoError(t, err)
	assert.Equal(t, "Base: MFJ | Single: +$11.8K\n", out)

	_, err = execute(t, append([]string{"compare", "--format", "xml"}, referenceFlags...)...)
	assert.ErrorContains(t, err, "unknown compare format")

	_, err = execute(t, append([]string{"compare", "--against", "widowed"}, referenceFlags...)...)
	assert.Error(t, err)
}

func TestTables(t *testing.T) {
	out, err := execute(t, "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "2016")
	assert.Contains(t, out, "2022 (default)")

	out, err = execute(t, "tables", "2022", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "539900")

	_, err = execute(t, "tables", "abc")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("name: ok\ninputs:\n  income: \"1\"\n"), 0644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("inputs:\n  filing_status: widowed\n"), 0644))

	out, err := execute(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")

	_, err = execute(t, "validate", bad)
	assert.Error(t, err)

	_, err = execute(t, "validate", "--table", good)
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "isoamt dev")
}
