package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/salcalc/internal/domain"
	"github.com/rgehrsitz/salcalc/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render("⠋ Loading fiscal rules..."))
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneCalculator:
		content = m.renderCalculator()
	case SceneCompare:
		content = m.renderCompare()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderStatusBar(),
	))
}

// renderTitleBar renders the application title and the active scene
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("salcalc - Romanian salary calculator")
	subtitle := m.currentScene.String()
	if m.rulesSource != "" && m.calculator != nil {
		subtitle = fmt.Sprintf("%s / rules %d (%s)", subtitle, m.calculator.Rules.Year, m.rulesSource)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(subtitle), "")
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	bindings := []string{
		formatShortcut(m.keys.Edit),
		formatShortcut(m.keys.CycleType),
		formatShortcut(m.keys.Compare),
		formatShortcut(m.keys.Help),
		formatShortcut(m.keys.Quit),
	}
	return "\n" + StatusBarStyle.Render(strings.Join(bindings, " • "))
}

func formatShortcut(b key.Binding) string {
	h := b.Help()
	return StatusKeyStyle.Render(h.Key) + " " + h.Desc
}

// renderError renders an error message
func (m Model) renderError() string {
	content := ErrorStyle.Render(
		fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
	)
	return m.renderApp(content)
}

// renderCalculator renders the input panel and the result breakdown
func (m Model) renderCalculator() string {
	var sb strings.Builder

	input := m.amountInput.View()
	if m.editing {
		input = ActiveBorderStyle.Render(input)
	} else {
		input = BorderStyle.Render(input)
	}
	sb.WriteString(input + "\n")

	sb.WriteString(m.renderChoices("Type", []string{"gross", "net", "cost"}, m.typeIndex) + "\n")
	sectors := make([]string, 0, len(domain.Sectors()))
	for _, s := range domain.Sectors() {
		sectors = append(sectors, s.Label())
	}
	sb.WriteString(m.renderChoices("Sector", sectors, m.sectorIndex) + "\n")
	sb.WriteString(m.renderOptions() + "\n\n")

	if m.inputErr != "" {
		sb.WriteString(ErrorStyle.Render(m.inputErr) + "\n")
		return sb.String()
	}
	if m.result == nil {
		sb.WriteString(InfoStyle.Render("Type an amount to calculate.") + "\n")
		return sb.String()
	}

	r := m.result
	sb.WriteString(components.MetricRow(
		components.NewAmountCard("Gross", r.Gross),
		components.NewAmountCard("Net", r.Net).WithHighlight(),
		components.NewAmountCard("Employer cost", r.TotalCost),
	) + "\n")

	rows := [][2]string{
		{fmt.Sprintf("Pension %s%%", r.Rates.Pension), FormatLei(r.PensionContribution)},
		{fmt.Sprintf("Health %s%%", r.Rates.Health), FormatLei(r.HealthContribution)},
		{fmt.Sprintf("Income tax %s%%", r.Rates.IncomeTax), FormatLei(r.IncomeTax)},
		{"Personal deduction", FormatLei(r.PersonalDeduction)},
		{"Taxable income", FormatLei(r.TaxableIncome)},
		{fmt.Sprintf("Work insurance %s%%", r.Rates.WorkInsurance), FormatLei(r.EmployerSurcharge)},
	}
	if r.UntaxedAmount.IsPositive() {
		rows = append(rows, [2]string{"Untaxed amount", FormatLei(r.UntaxedAmount)})
	}
	if r.IsOvertaxed {
		rows = append(rows, [2]string{"Employer shortfall", FormatLei(r.OvertaxShortfall)})
	}
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %-24s %14s\n", row[0], row[1]))
	}

	for _, note := range r.Notes {
		sb.WriteString(InfoStyle.Render("• "+note) + "\n")
	}
	return sb.String()
}

func (m Model) renderChoices(label string, choices []string, selected int) string {
	parts := make([]string, 0, len(choices))
	for i, c := range choices {
		if i == selected {
			parts = append(parts, SelectedItemStyle.Render("["+c+"]"))
		} else {
			parts = append(parts, UnselectedItemStyle.Render(" "+c+" "))
		}
	}
	return fmt.Sprintf("%-8s %s", label+":", strings.Join(parts, " "))
}

func (m Model) renderOptions() string {
	check := func(on bool) string {
		if on {
			return "x"
		}
		return " "
	}
	o := m.options
	return fmt.Sprintf("[%s] 1 basic  [%s] 2 part-time  [%s] 3 under 26  [%s] 4 disability  [%s] 5 student  children: %d (+/-)",
		check(o.IsBasicFunction), check(o.IsPartTime), check(o.IsYouth), check(o.IsDisabled), check(o.IsStudent), o.Children)
}

// renderCompare renders the sector comparison
func (m Model) renderCompare() string {
	if m.comparison == nil {
		return BorderStyle.Render("Enter an amount on the calculator screen first.")
	}

	var sb strings.Builder
	sb.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%-14s %12s %12s %12s %12s", "Sector", "Gross", "Net", "Tax", "Cost")) + "\n")

	for _, r := range m.comparison.All() {
		line := fmt.Sprintf("%-14s %12s %12s %12s %12s",
			r.Label, r.Gross.StringFixed(0), r.Net.StringFixed(0), r.IncomeTax.StringFixed(0), r.TotalCost.StringFixed(0))
		if r.Sector == m.Sector() {
			sb.WriteString(TableHighlightStyle.Render(line) + "\n")
			continue
		}
		sb.WriteString(TableCellStyle.Render(line) + "\n")
	}

	cards := make([]*components.MetricCard, 0, len(m.comparison.AlternativeResults))
	for _, alt := range m.comparison.AlternativeResults {
		cards = append(cards, components.NewAmountCard(alt.Label+" net", alt.Net).WithDelta(alt.NetDiffFromBase))
	}
	sb.WriteString("\n" + components.MetricRow(cards...) + "\n")

	for _, rec := range m.comparison.Recommendations {
		sb.WriteString(InfoStyle.Render("• "+rec) + "\n")
	}
	return sb.String()
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	helpText := `
KEYBOARD SHORTCUTS:
  enter    Start or finish editing the amount
  tab      Cycle gross / net / cost
  ←/→      Previous / next sector
  1-5      Toggle basic function, part-time, under 26, disability, student
  +/-      Add or remove a child
  c        Sector comparison
  ?        Show this help
  esc      Go back
  q/Ctrl+C Quit

While editing, digits go to the amount field.
`
	return BorderStyle.Render(helpText)
}
