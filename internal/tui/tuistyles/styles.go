package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// Colors
var (
	ColorPrimary   = lipgloss.Color("#2E86DE")
	ColorSecondary = lipgloss.Color("#8395A7")
	ColorAccent    = lipgloss.Color("#F6B93B")
	ColorSuccess   = lipgloss.Color("#10AC84")
	ColorDanger    = lipgloss.Color("#EE5253")

	ColorForeground = lipgloss.Color("#F5F6FA")
	ColorMuted      = lipgloss.Color("#636E72")
	ColorBorder     = lipgloss.Color("#576574")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActiveBorderStyle = BorderStyle.
				BorderForeground(ColorPrimary)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	MetricPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	MetricNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorDanger)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	TableCellStyle = lipgloss.NewStyle()

	TableHighlightStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)
)

// MetricTrendStyle picks the color for a change
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for a change
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "▲"
	}
	return "▼"
}

// FormatLei formats an amount in whole lei
func FormatLei(amount decimal.Decimal) string {
	return amount.StringFixed(0) + " lei"
}
