package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/salcalc/internal/calculation"
	"github.com/rgehrsitz/salcalc/internal/compare"
	"github.com/rgehrsitz/salcalc/internal/config"
	"github.com/rgehrsitz/salcalc/internal/domain"
)

var calculationTypes = []domain.CalculationType{domain.FromGross, domain.FromNet, domain.FromCost}

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Rules
	rulesPath   string
	rulesSource string
	calculator  *calculation.SalaryCalculator

	// Inputs
	amountInput textinput.Model
	editing     bool
	typeIndex   int
	sectorIndex int
	options     domain.CalculationOptions

	// Outputs
	result     *domain.CalculationResult
	comparison *compare.ComparisonSet
	inputErr   string

	keys keyMap

	// Error state
	err error

	// Loading state
	loading bool
}

// NewModel creates a new application model. An empty rulesPath uses the
// built-in rules.
func NewModel(rulesPath string) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. 5000"
	ti.Prompt = "Amount: "
	ti.CharLimit = 12
	ti.Width = 14
	ti.Focus()

	return Model{
		currentScene: SceneCalculator,
		rulesPath:    rulesPath,
		amountInput:  ti,
		editing:      true,
		options:      domain.DefaultOptions(),
		keys:         defaultKeyMap(),
		width:        80,
		height:       24,
		loading:      true,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadRulesCmd(m.rulesPath), textinput.Blink)
}

// loadRulesCmd returns a command that loads the fiscal rules
func loadRulesCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return RulesLoadedMsg{Rules: config.DefaultRules(), Source: "built-in"}
		}
		rules, err := config.NewRulesParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return RulesLoadedMsg{Rules: rules, Source: path}
	}
}

// CalculationType returns the selected calculation type
func (m Model) CalculationType() domain.CalculationType {
	return calculationTypes[m.typeIndex]
}

// Sector returns the selected sector
func (m Model) Sector() domain.Sector {
	return domain.Sectors()[m.sectorIndex]
}

// Options returns the current calculation options
func (m Model) Options() domain.CalculationOptions {
	return m.options
}

// Result returns the latest calculation result, if any
func (m Model) Result() *domain.CalculationResult {
	return m.result
}

// recalculate refreshes the result and the sector comparison from the
// current inputs
func (m Model) recalculate() Model {
	m.result = nil
	m.comparison = nil
	m.inputErr = ""

	if m.calculator == nil {
		return m
	}

	raw := strings.TrimSpace(m.amountInput.Value())
	if raw == "" {
		return m
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		m.inputErr = fmt.Sprintf("%q is not a positive amount", raw)
		return m
	}

	opts := m.options
	opts.Sector = m.Sector()

	result, err := m.calculator.Calculate(amount, m.CalculationType(), m.Sector(), opts)
	if err != nil {
		m.inputErr = err.Error()
		return m
	}
	m.result = &result

	comparison, err := compare.NewCompareEngine(m.calculator).Compare(context.Background(), amount, m.CalculationType(), opts)
	if err == nil {
		m.comparison = comparison
	}
	return m
}
