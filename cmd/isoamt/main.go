package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/isoamt/internal/calculation"
	"github.com/rgehrsitz/isoamt/internal/config"
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/rgehrsitz/isoamt/internal/taxtables"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalOptions are the persistent flags shared by every command
type globalOptions struct {
	taxYear int
	tables  []string
	envFile string
	debug   bool
}

// inputOptions are the per-calculation flags; set flags override scenario files
type inputOptions struct {
	income        string
	strike        string
	fmv           string
	isos          string
	status        string
	tolerance     string
	maxIterations int
	format        string
	outputFile    string
	title         string
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "isoamt",
		Short: "ISO exercise AMT estimator",
		Long: `Estimate Alternative Minimum Tax exposure from exercising Incentive Stock Options.

Compares AMT against ordinary income tax, reports the payable tax and, when AMT
is higher, how many ISOs can be exercised before AMT overtakes ordinary tax.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().IntVar(&g.taxYear, "tax-year", 0, "Tax year table to use (default 2022, or $"+config.EnvTaxYear+")")
	root.PersistentFlags().StringSliceVar(&g.tables, "tables", nil, "Additional YAML/TOML tax table files overriding embedded years")
	root.PersistentFlags().StringVar(&g.envFile, "env-file", ".env", "Environment file with ISOAMT_* defaults")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "Enable debug logging")

	root.AddCommand(
		calculateCmd(g),
		maxIsosCmd(g),
		sweepCmd(g),
		compareCmd(g),
		tablesCmd(g),
		validateCmd(),
		versionCmd(),
	)
	return root
}

var rootCmd = newRootCmd()

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "isoamt %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.Main.Version
	}
	return ""
}

func addInputFlags(cmd *cobra.Command, o *inputOptions) {
	cmd.Flags().StringVar(&o.income, "income", "", "Ordinary income, e.g. 100,000")
	cmd.Flags().StringVar(&o.strike, "strike", "", "Strike price per share")
	cmd.Flags().StringVar(&o.fmv, "fmv", "", "Fair market value per share at exercise")
	cmd.Flags().StringVar(&o.isos, "isos", "", "Number of ISOs exercised")
	cmd.Flags().StringVar(&o.status, "status", "", "Filing status: single, mfj or mfs")
	cmd.Flags().StringVar(&o.tolerance, "tolerance", "", "Max-ISO search tolerance in dollars (default 10)")
	cmd.Flags().IntVar(&o.maxIterations, "max-iterations", 0, "Max-ISO search iteration cap (default 100)")
}

func addOutputFlags(cmd *cobra.Command, o *inputOptions) {
	cmd.Flags().StringVarP(&o.format, "format", "f", "", "Output format: console, json, yaml, csv, markdown, html, pdf")
	cmd.Flags().StringVarP(&o.outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().StringVar(&o.title, "title", "", "Report title")
}

// session is everything a command needs to run one calculation
type session struct {
	engine   *calculation.Engine
	inputs   domain.CalculationInputs
	scenario *config.Scenario
	logger   *cliLogger
}

// newSession merges env settings, an optional scenario file and flags, then
// builds an engine for the chosen tax year
func newSession(cmd *cobra.Command, g *globalOptions, o *inputOptions, args []string) (*session, error) {
	settings, err := config.LoadEnv(g.envFile)
	if err != nil {
		return nil, err
	}
	level := settings.LogLevel
	if g.debug {
		level = "debug"
	}
	logger := newCLILogger(level, cmd.ErrOrStderr())

	scenario := &config.Scenario{}
	if len(args) > 0 {
		scenario, err = config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return nil, err
		}
		logger.Debugf("loaded scenario %q from %s", scenario.DisplayName(), args[0])
	}
	if err := applyInputFlags(cmd, o, scenario); err != nil {
		return nil, err
	}

	registry, err := taxtables.Default()
	if err != nil {
		return nil, err
	}
	if err := registry.LoadInto(tablePaths(settings.Tables, scenario.Tables, g.tables)...); err != nil {
		return nil, err
	}

	year := settings.TaxYear
	if scenario.TaxYear != 0 {
		year = scenario.TaxYear
	}
	if cmd.Flags().Changed("tax-year") {
		year = g.taxYear
	}

	engine, err := calculation.NewEngineForYear(registry, year)
	if err != nil {
		return nil, err
	}
	engine.Solver = scenario.Solver.Options()
	engine.SetLogger(logger)

	return &session{
		engine:   engine,
		inputs:   scenario.Inputs.Parse(),
		scenario: scenario,
		logger:   logger,
	}, nil
}

func applyInputFlags(cmd *cobra.Command, o *inputOptions, s *config.Scenario) error {
	flags := cmd.Flags()
	if flags.Changed("income") {
		s.Inputs.Income = o.income
	}
	if flags.Changed("strike") {
		s.Inputs.StrikePrice = o.strike
	}
	if flags.Changed("fmv") {
		s.Inputs.FairMarketValue = o.fmv
	}
	if flags.Changed("isos") {
		s.Inputs.IsoCount = o.isos
	}
	if flags.Changed("status") {
		if _, err := domain.ParseFilingStatus(o.status); err != nil {
			return err
		}
		s.Inputs.FilingStatus = o.status
	}
	if flags.Changed("tolerance") {
		tolerance := domain.ParseAmount(o.tolerance)
		if !tolerance.IsPositive() {
			return fmt.Errorf("--tolerance must be positive, got %q", o.tolerance)
		}
		s.Solver.Tolerance = tolerance
	}
	if flags.Changed("max-iterations") {
		if o.maxIterations <= 0 {
			return fmt.Errorf("--max-iterations must be positive, got %d", o.maxIterations)
		}
		s.Solver.MaxIterations = o.maxIterations
	}
	if flags.Lookup("format") != nil && flags.Changed("format") {
		s.Output.Format = o.format
	}
	if flags.Lookup("output") != nil && flags.Changed("output") {
		s.Output.File = o.outputFile
	}
	if flags.Lookup("title") != nil && flags.Changed("title") {
		s.Name = o.title
	}
	return nil
}

// tablePaths orders table overrides env first, then scenario, then flags, so
// later files replace earlier ones for the same year
func tablePaths(groups ...[]string) []string {
	var paths []string
	for _, g := range groups {
		paths = append(paths, g...)
	}
	return paths
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
