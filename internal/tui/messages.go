package tui

import (
	"github.com/rgehrsitz/salcalc/internal/domain"
)

// Scene represents the screens of the calculator
type Scene int

const (
	SceneCalculator Scene = iota
	SceneCompare
	SceneHelp
)

func (s Scene) String() string {
	switch s {
	case SceneCalculator:
		return "Calculator"
	case SceneCompare:
		return "Sector comparison"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// RulesLoadedMsg signals the fiscal rules are available
type RulesLoadedMsg struct {
	Rules  domain.FiscalRules
	Source string
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
