package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rgehrsitz/salcalc/internal/tui"
)

func newRootCmd() *cobra.Command {
	settings := viper.New()
	settings.SetEnvPrefix("SALCALC")
	settings.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "salcalc-tui",
		Short: "Interactive Romanian salary calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rulesPath := settings.GetString("rules")
			if rulesPath != "" {
				if _, err := os.Stat(rulesPath); os.IsNotExist(err) {
					return fmt.Errorf("rules file not found: %s", rulesPath)
				}
			}

			p := tea.NewProgram(
				tui.NewModel(rulesPath),
				tea.WithAltScreen(), // Use alternate screen buffer
				tea.WithContext(cmd.Context()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().String("rules", "", "Path to fiscal rules file (default: built-in rules)")
	_ = settings.BindPFlag("rules", cmd.Flags().Lookup("rules"))
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
