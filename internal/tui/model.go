// Package tui is the interactive calculator: four text inputs, a filing status
// selector and a results panel that is recalculated on every keystroke.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/isoamt/internal/calculation"
	"github.com/rgehrsitz/isoamt/internal/domain"
)

// Field identifies one of the text inputs
type Field int

const (
	FieldIncome Field = iota
	FieldStrike
	FieldFMV
	FieldIsos
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldIncome:
		return "Ordinary income"
	case FieldStrike:
		return "Strike price"
	case FieldFMV:
		return "Fair market value"
	case FieldIsos:
		return "ISOs exercised"
	default:
		return "Unknown"
	}
}

func (f Field) placeholder() string {
	switch f {
	case FieldIncome:
		return "100,000"
	case FieldStrike:
		return "10.00"
	case FieldFMV:
		return "50.00"
	default:
		return "10,000"
	}
}

// Model is the whole application state
type Model struct {
	inputs []textinput.Model
	focus  Field
	status domain.FilingStatus

	live    *calculation.LiveCalculator
	outputs domain.CalculationOutputs
	recalcs *int

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int
}

// NewModel creates the model, pre-filled with initial, and runs the first calculation
func NewModel(calc calculation.Recalculator, initial domain.RawInputs) Model {
	m := Model{
		inputs: make([]textinput.Model, fieldCount),
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
	m.status, _ = domain.ParseFilingStatus(initial.FilingStatus)
	m.status = m.status.OrDefault()

	values := []string{initial.Income, initial.StrikePrice, initial.FairMarketValue, initial.IsoCount}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = Field(i).placeholder()
		ti.CharLimit = 20
		ti.Width = 20
		ti.Prompt = ""
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[FieldIncome].Focus()

	// bubbletea copies the model on every update, so the counter lives behind a pointer
	recalcs := new(int)
	m.recalcs = recalcs
	m.live = calculation.NewLiveCalculator(calc)
	m.live.Subscribe(func(domain.CalculationInputs, domain.CalculationOutputs) {
		*recalcs++
	})
	m.outputs = m.live.UpdateRaw(m.RawInputs())
	return m
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// RawInputs returns exactly what the user has typed
func (m Model) RawInputs() domain.RawInputs {
	return domain.RawInputs{
		Income:          m.inputs[FieldIncome].Value(),
		StrikePrice:     m.inputs[FieldStrike].Value(),
		FairMarketValue: m.inputs[FieldFMV].Value(),
		IsoCount:        m.inputs[FieldIsos].Value(),
		FilingStatus:    string(m.status),
	}
}

// Outputs returns the latest calculation
func (m Model) Outputs() domain.CalculationOutputs {
	return m.outputs
}

// Status returns the selected filing status
func (m Model) Status() domain.FilingStatus {
	return m.status
}

// Recalculations counts calculations run so far, including the initial one
func (m Model) Recalculations() int {
	return *m.recalcs
}

// Focused returns the field with keyboard focus
func (m Model) Focused() Field {
	return m.focus
}

// recalculate feeds the current inputs through the live calculator
func (m *Model) recalculate() {
	m.outputs = m.live.UpdateRaw(m.RawInputs())
}
