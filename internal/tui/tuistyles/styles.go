// Package tuistyles holds the lipgloss palette and styles shared by the TUI
// and its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#7D56F4")
	ColorSecondary = lipgloss.Color("#3C3C3C")
	ColorAccent    = lipgloss.Color("#F25D94")
	ColorSuccess   = lipgloss.Color("#04B575")
	ColorDanger    = lipgloss.Color("#FF4672")
	ColorInfo      = lipgloss.Color("#5FAFFF")

	ColorForeground = lipgloss.Color("#FAFAFA")
	ColorMuted      = lipgloss.Color("#8A8A8A")
	ColorBorder     = lipgloss.Color("#555555")
)

var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	StatusKeyStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)

	// TabStyle and ActiveTabStyle render the filing status selector
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	ActiveTabStyle = TabStyle.
			Foreground(ColorForeground).
			Background(ColorPrimary).
			BorderForeground(ColorPrimary).
			Bold(true)

	InputLabelStyle   = lipgloss.NewStyle().Width(22).Foreground(ColorMuted)
	FocusedLabelStyle = InputLabelStyle.Foreground(ColorAccent).Bold(true)

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorForeground)
	MetricPositiveStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	MetricNegativeStyle = lipgloss.NewStyle().Foreground(ColorDanger)

	HighlightBorderColor = ColorDanger

	InfoStyle  = lipgloss.NewStyle().Foreground(ColorInfo)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)

// MetricTrendStyle colors a trend line green when it is good news
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the trend direction
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}
