package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/salcalc/internal/breakeven"
)

func (a *app) raiseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raise <current-gross> <amount>",
		Short: "Find the salary change behind a raise",
		Long: `Raise starts from the current gross salary and finds the new salary for
a raise expressed as extra net pay (--goal net), a new net salary
(--goal target_net) or an extra employer budget (--goal cost). It reports what
each extra lei of net pay costs the employer.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(cmd, args[0])
			if err != nil {
				return err
			}
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			goalName, _ := flags.GetString("goal")
			goal, err := breakeven.ParseRaiseGoal(goalName)
			if err != nil {
				return err
			}

			raiseReq := breakeven.RaiseRequest{
				CurrentGross: req.amount,
				Sector:       req.sector,
				Options:      req.opts,
				Goal:         goal,
				Amount:       amount,
			}
			if maxGross, _ := flags.GetFloat64("max-gross"); maxGross > 0 {
				v := decimal.NewFromFloat(maxGross)
				raiseReq.Constraints.MaxGross = &v
			}
			if maxCost, _ := flags.GetFloat64("max-cost"); maxCost > 0 {
				v := decimal.NewFromFloat(maxCost)
				raiseReq.Constraints.MaxCost = &v
			}

			calc, err := a.newCalculator()
			if err != nil {
				return err
			}
			solver := breakeven.NewSolver(calc)

			format, _ := flags.GetString("format")
			allSectors, _ := flags.GetBool("all-sectors")
			out := cmd.OutOrStdout()

			if allSectors {
				result, err := solver.SolveAllSectors(cmd.Context(), raiseReq)
				if err != nil {
					return err
				}
				a.log().Info("raise solved for all sectors", zap.String("op", "raise"), zap.Bool("found", result.Best != nil))
				return writeRaise(out, format,
					func() string { return (&breakeven.TableFormatter{}).FormatMultiSector(result) },
					func() (string, error) { return (&breakeven.JSONFormatter{Pretty: true}).FormatMultiSector(result) })
			}

			result, err := solver.Solve(cmd.Context(), raiseReq)
			if err != nil {
				return err
			}
			a.log().Info("raise solved",
				zap.String("op", "raise"),
				zap.String("sector", string(result.Sector)),
				zap.String("cost_increase", result.CostIncrease.String()),
				zap.Bool("success", result.Success),
			)
			return writeRaise(out, format,
				func() string { return (&breakeven.TableFormatter{}).Format(result) },
				func() (string, error) { return (&breakeven.JSONFormatter{Pretty: true}).Format(result) })
		},
	}

	addInputFlags(cmd, true)
	cmd.Flags().StringP("goal", "g", string(breakeven.GoalNetRaise), "How the amount is meant: net, target_net or cost")
	cmd.Flags().Bool("all-sectors", false, "Solve the raise in every sector")
	cmd.Flags().Float64("max-gross", 0, "Maximum acceptable gross salary")
	cmd.Flags().Float64("max-cost", 0, "Maximum acceptable employer cost")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	return cmd
}

func writeRaise(out io.Writer, format string, table func() string, jsonText func() (string, error)) error {
	switch format {
	case "table":
		_, err := fmt.Fprint(out, table())
		return err
	case "json":
		data, err := jsonText()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, data)
		return err
	}
	return fmt.Errorf("unsupported format: %s", format)
}
