package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m.updateInputs(msg)
}

// handleKeyPress processes navigation keys and passes everything else to the
// focused text input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.StatusNext):
		m.status = m.status.Next()
		m.recalculate()
		return m, nil

	case key.Matches(msg, m.keys.StatusPrev):
		m.status = m.status.Prev()
		m.recalculate()
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		m.recalculate()
		return m, m.setFocus(FieldIncome)
	}

	return m.updateInputs(msg)
}

// updateInputs forwards a message to the focused input and recalculates when
// its value changed
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if m.inputs[m.focus].Value() != before {
		m.recalculate()
	}
	return m, cmd
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[m.focus].Focus()
}
