package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/salcalc/internal/config"
	"github.com/rgehrsitz/salcalc/internal/domain"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <rules-file>",
		Short: "Validate a fiscal rules file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewRulesParser()
			rules, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if err := parser.ValidateRules(rules); err != nil {
				return fmt.Errorf("invalid rules: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fiscal rules for %d are valid\n", rules.Year)
			return nil
		},
	}
}

func (a *app) rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules [rules-file]",
		Short: "Print the effective fiscal rules as YAML",
		Long: `Rules prints the normalized fiscal rules: every key the file omits shows
its default value. Without a file the configured or built-in rules are printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewRulesParser()

			var rules domain.FiscalRules
			var err error
			if len(args) == 1 {
				rules, err = parser.LoadFromFile(args[0])
			} else {
				rules, _, err = a.loadRules()
			}
			if err != nil {
				return err
			}

			data, err := parser.Marshal(rules)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
