package tui

import "github.com/rgehrsitz/salcalc/internal/tui/tuistyles"

// Re-export styles from tuistyles to avoid import cycles
var (
	AppStyle            = tuistyles.AppStyle
	TitleStyle          = tuistyles.TitleStyle
	SubtitleStyle       = tuistyles.SubtitleStyle
	StatusBarStyle      = tuistyles.StatusBarStyle
	StatusKeyStyle      = tuistyles.StatusKeyStyle
	BorderStyle         = tuistyles.BorderStyle
	ActiveBorderStyle   = tuistyles.ActiveBorderStyle
	SelectedItemStyle   = tuistyles.SelectedItemStyle
	UnselectedItemStyle = tuistyles.UnselectedItemStyle
	ErrorStyle          = tuistyles.ErrorStyle
	InfoStyle           = tuistyles.InfoStyle
	TableHeaderStyle    = tuistyles.TableHeaderStyle
	TableCellStyle      = tuistyles.TableCellStyle
	TableHighlightStyle = tuistyles.TableHighlightStyle
)

// Re-export helper functions
var (
	FormatLei = tuistyles.FormatLei
)
