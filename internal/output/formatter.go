package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rgehrsitz/isoamt/internal/calculation"
	"github.com/rgehrsitz/isoamt/internal/domain"
)

// Report bundles one calculation for rendering
type Report struct {
	ID        string                    `yaml:"id" json:"id"`
	Title     string                    `yaml:"title" json:"title"`
	Generated time.Time                 `yaml:"generated" json:"generated"`
	Inputs    domain.CalculationInputs  `yaml:"inputs" json:"inputs"`
	Outputs   domain.CalculationOutputs `yaml:"outputs" json:"outputs"`
	Sweep     *calculation.SweepResult  `yaml:"sweep,omitempty" json:"sweep,omitempty"`
}

// NewReport stamps a calculation with a fresh ID and the current time
func NewReport(title string, in domain.CalculationInputs, out domain.CalculationOutputs) *Report {
	if title == "" {
		title = "ISO Exercise AMT Estimate"
	}
	return &Report{
		ID:        uuid.NewString(),
		Title:     title,
		Generated: time.Now(),
		Inputs:    in,
		Outputs:   out,
	}
}

// WithSweep attaches a sweep table
func (r *Report) WithSweep(s *calculation.SweepResult) *Report {
	r.Sweep = s
	return r
}

// Formatter renders a report into bytes
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var registry = map[string]Formatter{}

// Register adds a formatter under its name, replacing any existing one
func Register(f Formatter) {
	registry[f.Name()] = f
}

func init() {
	Register(ConsoleFormatter{})
	Register(JSONFormatter)
	Register(YAMLFormatter)
	Register(CSVFormatter{})
	Register(MarkdownFormatter{})
	Register(HTMLFormatter{})
	Register(PDFFormatter{})
}

// GetFormatterByName returns the named formatter or nil
func GetFormatterByName(name string) Formatter {
	return registry[name]
}

// FormatterNames lists registered formatter names
func FormatterNames() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var extensions = map[string]string{
	"console":  "txt",
	"json":     "json",
	"yaml":     "yaml",
	"csv":      "csv",
	"markdown": "md",
	"html":     "html",
	"pdf":      "pdf",
}

// Extension returns the file extension for a formatter name
func Extension(name string) string {
	if ext, ok := extensions[name]; ok {
		return ext
	}
	return "txt"
}

// WriteFormatted renders the report and writes it to path. An empty path
// produces amt_report_<timestamp>.<ext> in the working directory.
func WriteFormatted(f Formatter, report *Report, path string) (string, error) {
	data, err := f.Format(report)
	if err != nil {
		return "", fmt.Errorf("failed to format report as %s: %w", f.Name(), err)
	}
	if path == "" {
		path = fmt.Sprintf("amt_report_%s.%s", time.Now().Format("20060102_150405"), Extension(f.Name()))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
