package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/salcalc/internal/calculation"
	"github.com/rgehrsitz/salcalc/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case RulesLoadedMsg:
		m.loading = false
		m.rulesSource = msg.Source
		m.calculator = calculation.NewSalaryCalculator(msg.Rules)
		return m.recalculate(), nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}

	if m.editing {
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.CycleType):
		m.typeIndex = (m.typeIndex + 1) % len(calculationTypes)
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.Edit):
		m.editing = !m.editing
		if m.editing {
			return m, m.amountInput.Focus()
		}
		m.amountInput.Blur()
		return m.recalculate(), nil
	}

	if m.editing {
		if key.Matches(msg, m.keys.Back) {
			m.editing = false
			m.amountInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.amountInput, cmd = m.amountInput.Update(msg)
		return m.recalculate(), cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		return m.navigate(SceneHelp), nil

	case key.Matches(msg, m.keys.Back):
		if m.currentScene == SceneHelp {
			return m.navigate(m.previousScene), nil
		}
		return m.navigate(SceneCalculator), nil

	case key.Matches(msg, m.keys.Compare):
		if m.currentScene == SceneCompare {
			return m.navigate(SceneCalculator), nil
		}
		return m.navigate(SceneCompare), nil

	case key.Matches(msg, m.keys.NextSector):
		m.sectorIndex = (m.sectorIndex + 1) % len(domain.Sectors())
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.PrevSector):
		n := len(domain.Sectors())
		m.sectorIndex = (m.sectorIndex + n - 1) % n
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.Basic):
		m.options.IsBasicFunction = !m.options.IsBasicFunction
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.PartTime):
		m.options.IsPartTime = !m.options.IsPartTime
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.Youth):
		m.options.IsYouth = !m.options.IsYouth
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.Disabled):
		m.options.IsDisabled = !m.options.IsDisabled
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.Student):
		m.options.IsStudent = !m.options.IsStudent
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.MoreKids):
		m.options.Children++
		return m.recalculate(), nil

	case key.Matches(msg, m.keys.FewerKids):
		if m.options.Children > 0 {
			m.options.Children--
		}
		return m.recalculate(), nil
	}

	return m, nil
}

func (m Model) navigate(scene Scene) Model {
	if scene != m.currentScene {
		m.previousScene = m.currentScene
		m.currentScene = scene
	}
	return m
}
