package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/isoamt/internal/domain"
	"github.com/rgehrsitz/isoamt/internal/output"
	"github.com/rgehrsitz/isoamt/internal/tui/components"
	"github.com/rgehrsitz/isoamt/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	sections := []string{
		m.renderTitleBar(),
		m.renderTabs(),
		m.renderInputs(),
		m.renderResults(),
		m.renderStatusBar(),
	}
	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("ISO AMT Calculator")
	year := tuistyles.SubtitleStyle.Render(fmt.Sprintf("  Tax year %d", m.outputs.TaxYear))
	return title + year + "\n"
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(domain.FilingStatuses))
	for _, fs := range domain.FilingStatuses {
		style := tuistyles.TabStyle
		if fs == m.status {
			style = tuistyles.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(fs.Label()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderInputs() string {
	var sb strings.Builder
	for i, in := range m.inputs {
		label := tuistyles.InputLabelStyle
		marker := "  "
		if Field(i) == m.focus {
			label = tuistyles.FocusedLabelStyle
			marker = tuistyles.StatusKeyStyle.Render("▸ ")
		}
		sb.WriteString(marker + label.Render(Field(i).String()) + in.View() + "\n")
	}
	return sb.String()
}

func (m Model) renderResults() string {
	out := m.outputs
	applies := out.AmtApplies()

	columns := 3
	if m.width < 90 {
		columns = 2
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Bargain element", output.FormatCurrency(out.BargainElement)),
		components.NewMetricCard("AMTI", output.FormatCurrency(out.AMTI)),
		components.NewMetricCard("AMT exemption", output.FormatCurrency(out.AmtExemption)),
		components.NewMetricCard("AMT base", output.FormatCurrency(out.AmtBase)),
		components.NewMetricCard("AMT", output.FormatCurrency(out.Amt)).WithHighlight(applies),
		components.NewMetricCard("Ordinary tax", output.FormatCurrency(out.OrdinaryTax)).
			WithDescription("on " + output.FormatCurrency(out.TaxableIncome) + " taxable"),
	}

	payable := components.NewMetricCard("Payable tax", output.FormatCurrency(out.PayableTax))
	if applies {
		payable.WithTrend(false, output.FormatCurrency(out.Amt.Sub(out.OrdinaryTax))+" AMT")
	} else {
		payable.WithTrend(true, "no AMT due")
	}
	cards = append(cards, payable)

	if applies && out.MaxIsos != nil {
		note := fmt.Sprintf("%d iterations", out.MaxIsos.Iterations)
		if !out.MaxIsos.Converged {
			note += ", not converged"
		}
		cards = append(cards, components.NewMetricCard("Max ISOs before AMT", output.FormatWholeShares(out.MaxIsos.Isos)).
			WithDescription(note).
			WithHighlight(true))
	}

	return "\n" + components.MetricGrid(cards, columns)
}

func (m Model) renderStatusBar() string {
	if m.showHelp {
		return "\n" + m.help.View(m.keys)
	}
	rate := components.NewMetricCard("Marginal", output.FormatPercentage(m.outputs.MarginalRate)).RenderCompact()
	info := tuistyles.StatusBarStyle.Render(fmt.Sprintf("%s · %d updates  ", m.status.Short(), m.Recalculations()))
	return "\n" + info + rate + "  " + m.help.View(m.keys)
}
