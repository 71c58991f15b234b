package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/salcalc/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard displays one amount with a label and an optional change
type MetricCard struct {
	Label       string
	Value       string
	Trend       *Trend
	Description string
	Width       int
	Highlight   bool
}

// Trend is a change against a reference amount
type Trend struct {
	IsPositive bool
	Change     string // e.g. "+820 lei"
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 22,
	}
}

// NewAmountCard creates a card for an amount in lei
func NewAmountCard(label string, amount decimal.Decimal) *MetricCard {
	return NewMetricCard(label, tuistyles.FormatLei(amount))
}

// WithDelta shows the difference to a reference amount. A zero delta adds nothing.
func (m *MetricCard) WithDelta(delta decimal.Decimal) *MetricCard {
	if delta.IsZero() {
		return m
	}
	sign := ""
	if delta.IsPositive() {
		sign = "+"
	}
	m.Trend = &Trend{
		IsPositive: delta.IsPositive(),
		Change:     sign + tuistyles.FormatLei(delta),
	}
	return m
}

// WithDescription adds a description line
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// WithHighlight draws the border in the primary color
func (m *MetricCard) WithHighlight() *MetricCard {
	m.Highlight = true
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	label := tuistyles.MetricLabelStyle.Render(m.Label)
	value := tuistyles.MetricValueStyle.Render(m.Value)

	var trend string
	if m.Trend != nil {
		arrow := tuistyles.TrendIndicator(m.Trend.IsPositive)
		trendStyle := tuistyles.MetricTrendStyle(m.Trend.IsPositive)
		trend = "\n" + trendStyle.Render(fmt.Sprintf("%s %s", arrow, m.Trend.Change))
	}

	var desc string
	if m.Description != "" {
		desc = "\n" + tuistyles.SubtitleStyle.Render(m.Description)
	}

	border := tuistyles.ColorBorder
	if m.Highlight {
		border = tuistyles.ColorPrimary
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(label + "\n" + value + trend + desc)
}

// MetricRow renders cards side by side
func MetricRow(cards ...*MetricCard) string {
	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, card.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
