package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/isoamt/internal/compare"
	"github.com/rgehrsitz/isoamt/internal/config"
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/rgehrsitz/isoamt/internal/output"
	"github.com/rgehrsitz/isoamt/internal/taxtables"
	"github.com/spf13/cobra"
)

func calculateCmd(g *globalOptions) *cobra.Command {
	o := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "calculate [scenario-file]",
		Short: "Calculate AMT, ordinary tax and payable tax",
		Long: `Calculate AMT, ordinary income tax and the payable tax for an ISO exercise.

Inputs come from an optional YAML scenario file and are overridden by flags.
When AMT exceeds ordinary tax the report also includes the largest ISO count
that keeps AMT at or below ordinary tax.`,
		Example: `  isoamt calculate --income 100000 --strike 10 --fmv 50 --isos 10000
  isoamt calculate scenario.yaml --format pdf --output report.pdf`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g, o, args)
			if err != nil {
				return err
			}
			out := s.engine.Calculate(s.inputs)
			report := output.NewReport(s.scenario.Name, s.inputs, out)
			return render(cmd, s, report)
		},
	}
	addInputFlags(cmd, o)
	addOutputFlags(cmd, o)
	return cmd
}

func maxIsosCmd(g *globalOptions) *cobra.Command {
	o := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "max-isos [scenario-file]",
		Short: "Find the most ISOs that can be exercised before AMT exceeds ordinary tax",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g, o, args)
			if err != nil {
				return err
			}
			out := s.engine.Calculate(s.inputs)
			w := cmd.OutOrStdout()
			if out.MaxIsos == nil {
				fmt.Fprintf(w, "AMT does not exceed ordinary tax at %s ISOs; no limit applies.\n",
					output.FormatShares(s.inputs.IsoCount))
				return nil
			}
			sol := out.MaxIsos
			fmt.Fprintf(w, "Max ISOs before AMT exceeds ordinary tax: %s\n", output.FormatWholeShares(sol.Isos))
			fmt.Fprintf(w, "Search: %d iterations, discrepancy %s", sol.Iterations, output.FormatCurrency(sol.Discrepancy))
			if !sol.Converged {
				fmt.Fprint(w, " (did not converge)")
			}
			fmt.Fprintln(w)
			return nil
		},
	}
	addInputFlags(cmd, o)
	return cmd
}

func sweepCmd(g *globalOptions) *cobra.Command {
	o := &inputOptions{}
	var from, to string
	var steps int
	cmd := &cobra.Command{
		Use:     "sweep [scenario-file]",
		Short:   "Tabulate AMT against ordinary tax across a range of ISO counts",
		Example: `  isoamt sweep --income 100000 --strike 10 --fmv 50 --from 0 --to 2000 --steps 11`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g, o, args)
			if err != nil {
				return err
			}
			upper := domain.ParseAmount(to)
			if !cmd.Flags().Changed("to") {
				upper = s.inputs.IsoCount
			}
			sweep, err := s.engine.Sweep(s.inputs, domain.ParseAmount(from), upper, steps)
			if err != nil {
				return err
			}
			out := s.engine.Calculate(s.inputs.WithIsoCount(upper))
			report := output.NewReport(s.scenario.Name, s.inputs.WithIsoCount(upper), out).WithSweep(sweep)
			return render(cmd, s, report)
		},
	}
	addInputFlags(cmd, o)
	addOutputFlags(cmd, o)
	cmd.Flags().StringVar(&from, "from", "0", "Lowest ISO count")
	cmd.Flags().StringVar(&to, "to", "", "Highest ISO count (default --isos)")
	cmd.Flags().IntVar(&steps, "steps", 11, "Number of points including both ends")
	return cmd
}

func compareCmd(g *globalOptions) *cobra.Command {
	o := &inputOptions{}
	var base, format string
	var against []string
	cmd := &cobra.Command{
		Use:   "compare [scenario-file]",
		Short: "Compare the same exercise under each filing status",
		Example: `  isoamt compare --income 100000 --strike 10 --fmv 50 --isos 10000
  isoamt compare --base mfj --against single --format csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, g, o, args)
			if err != nil {
				return err
			}

			opts := compare.CompareOptions{}
			if cmd.Flags().Changed("base") {
				if opts.BaseStatus, err = domain.ParseFilingStatus(base); err != nil {
					return err
				}
			}
			for _, a := range against {
				fs, err := domain.ParseFilingStatus(a)
				if err != nil {
					return err
				}
				opts.Alternatives = append(opts.Alternatives, fs)
			}

			compSet, err := compare.NewCompareEngine(s.engine).Compare(s.inputs, opts)
			if err != nil {
				return err
			}

			var text string
			switch strings.ToLower(format) {
			case "", "table":
				text = (&compare.TableFormatter{}).Format(compSet)
			case "compact":
				text = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
			case "csv":
				text, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				text, err = (&compare.JSONFormatter{Indent: "  "}).Format(compSet)
			default:
				return fmt.Errorf("unknown compare format %q (available: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
	addInputFlags(cmd, o)
	cmd.Flags().StringVar(&base, "base", "", "Base filing status (default --status)")
	cmd.Flags().StringSliceVar(&against, "against", nil, "Filing statuses to compare against (default all others)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, compact, csv, json")
	return cmd
}

func tablesCmd(g *globalOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tables [year]",
		Short: "List tax years or print one year's table",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadEnv(g.envFile)
			if err != nil {
				return err
			}
			registry, err := taxtables.Default()
			if err != nil {
				return err
			}
			if err := registry.LoadInto(append(settings.Tables, g.tables...)...); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, y := range registry.Years() {
					ty, _ := registry.Get(y)
					marker := ""
					if y == taxtables.DefaultYear {
						marker = " (default)"
					}
					fmt.Fprintf(w, "%d%s  %s\n", y, marker, ty.Description)
				}
				return nil
			}

			var year int
			if _, err := fmt.Sscanf(args[0], "%d", &year); err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
			ty, err := registry.Get(year)
			if err != nil {
				return err
			}
			data, err := taxtables.Marshal(ty, taxtables.Format(strings.ToLower(format)))
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(taxtables.FormatYAML), "Table format: yaml or toml")
	return cmd
}

func validateCmd() *cobra.Command {
	var asTable bool
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a scenario file or, with --table, a tax table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			w := cmd.OutOrStdout()
			if asTable {
				ty, err := taxtables.LoadFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "✅ %s: tax table for %d is valid\n", path, ty.Year)
				return nil
			}
			scenario, err := config.NewInputParser().LoadFromFile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "✅ %s: scenario %q is valid\n", path, scenario.DisplayName())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asTable, "table", false, "Validate a YAML/TOML tax table instead of a scenario")
	return cmd
}

// render writes the report to stdout, or to a file for the file-only formats
// and whenever an output path is given
func render(cmd *cobra.Command, s *session, report *output.Report) error {
	name := s.scenario.Output.Format
	if name == "" {
		name = "console"
	}
	f := output.GetFormatterByName(name)
	if f == nil {
		return fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(output.FormatterNames(), ", "))
	}

	path := s.scenario.Output.File
	if path == "" && (name == "pdf" || name == "html") {
		written, err := output.WriteFormatted(f, report, "")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", written)
		return nil
	}
	if path != "" {
		written, err := output.WriteFormatted(f, report, path)
		if err != nil {
			return err
		}
		s.logger.Infof("report %s written to %s", report.ID, written)
		return nil
	}

	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
