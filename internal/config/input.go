package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rgehrsitz/isoamt/internal/calculation"
	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario is one calculator input file
type Scenario struct {
	Name    string           `yaml:"name" json:"name" validate:"max=120"`
	TaxYear int              `yaml:"tax_year" json:"tax_year" validate:"omitempty,gte=1987,lte=2100"`
	Tables  []string         `yaml:"tables,omitempty" json:"tables,omitempty" validate:"dive,required"`
	Inputs  domain.RawInputs `yaml:"inputs" json:"inputs"`
	Solver  SolverConfig     `yaml:"solver,omitempty" json:"solver,omitempty"`
	Output  OutputConfig     `yaml:"output,omitempty" json:"output,omitempty"`
}

// SolverConfig overrides the max-ISO search defaults
type SolverConfig struct {
	Tolerance     decimal.Decimal `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
	MaxIterations int             `yaml:"max_iterations,omitempty" json:"max_iterations,omitempty" validate:"gte=0,lte=10000"`
}

// Options converts the config into solver options, keeping defaults for unset fields
func (sc SolverConfig) Options() calculation.SolverOptions {
	return calculation.SolverOptions{
		Tolerance:     sc.Tolerance,
		MaxIterations: sc.MaxIterations,
	}.WithDefaults()
}

// OutputConfig selects a report format and destination
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format,omitempty" validate:"omitempty,oneof=console json yaml csv markdown html pdf"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// InputError reports a problem with a scenario file
type InputError struct {
	File    string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	msg := e.Message
	if e.File != "" {
		msg = fmt.Sprintf("%s: %s", e.File, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// InputParser handles parsing of scenario files
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{validate: validator.New()}
}

// LoadFromFile loads a scenario from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &InputError{File: filename, Message: "failed to read file", Cause: err}
	}

	scenario, err := ip.Parse(data)
	if err != nil {
		return nil, &InputError{File: filename, Message: "invalid scenario", Cause: err}
	}
	return scenario, nil
}

// Parse decodes and validates scenario YAML
func (ip *InputParser) Parse(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &scenario, nil
}

// ValidateScenario checks structure only. Numeric fields are not rejected:
// unparsable amounts are treated as zero by the calculator.
func (ip *InputParser) ValidateScenario(scenario *Scenario) error {
	if err := ip.validate.Struct(scenario); err != nil {
		return err
	}
	if _, err := domain.ParseFilingStatus(scenario.Inputs.FilingStatus); err != nil {
		return err
	}
	if scenario.Solver.Tolerance.IsNegative() {
		return fmt.Errorf("solver tolerance cannot be negative")
	}
	return nil
}

// SaveScenario writes a scenario back to YAML
func SaveScenario(scenario *Scenario, filename string) error {
	data, err := yaml.Marshal(scenario)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// DisplayName returns the scenario name or a summary of its inputs
func (s *Scenario) DisplayName() string {
	if strings.TrimSpace(s.Name) != "" {
		return s.Name
	}
	fs, err := domain.ParseFilingStatus(s.Inputs.FilingStatus)
	if err != nil {
		fs = domain.Single
	}
	return fmt.Sprintf("%s ISOs, %s", strings.TrimSpace(s.Inputs.IsoCount), fs.Label())
}
