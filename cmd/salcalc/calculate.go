package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/salcalc/internal/output"
)

func (a *app) calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate <value>",
		Short: "Calculate net salary, gross salary or employer cost",
		Long: `Calculate a full salary breakdown from a gross salary, a target net
salary (--type net) or a total employer cost (--type cost).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(cmd, args[0])
			if err != nil {
				return err
			}
			calc, err := a.newCalculator()
			if err != nil {
				return err
			}

			result, err := calc.Calculate(req.amount, req.calcType, req.sector, req.opts)
			if err != nil {
				return err
			}
			a.log().Info("calculation complete",
				zap.String("op", "calculate"),
				zap.String("type", string(req.calcType)),
				zap.String("sector", string(result.Sector)),
				zap.String("gross", result.Gross.String()),
				zap.String("net", result.Net.String()),
				zap.Int("iterations", result.Iterations),
			)

			format, _ := cmd.Flags().GetString("format")
			save, _ := cmd.Flags().GetBool("save")
			if !save {
				return output.GenerateReport(cmd.OutOrStdout(), &result, format)
			}

			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format: %s", format)
			}
			filename, err := output.WriteFormatted(f, &result, reportExtension(f.Name()))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
			return nil
		},
	}

	addTypeFlag(cmd)
	addInputFlags(cmd, true)
	cmd.Flags().StringP("format", "f", "console", "Output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+")")
	cmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")
	return cmd
}

func reportExtension(formatter string) string {
	switch formatter {
	case "json", "csv":
		return formatter
	default:
		return "txt"
	}
}
