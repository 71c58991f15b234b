package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/salcalc/internal/compare"
	"github.com/rgehrsitz/salcalc/internal/transform"
)

func (a *app) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <value>",
		Short: "Compare one salary across sectors or what-if scenarios",
		Long: `Compare runs the same amount through the standard, IT, construction and
agriculture rules and reports the differences against the standard sector.

With --with or --transform it instead compares the current situation against
what-if scenarios built from templates (see --list-templates).`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			templates := transform.CreateBuiltInTemplates()

			if list, _ := flags.GetBool("list-templates"); list {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(templates))
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
			}

			req, err := readRequest(cmd, args[0])
			if err != nil {
				return err
			}
			calc, err := a.newCalculator()
			if err != nil {
				return err
			}
			engine := compare.NewCompareEngine(calc)

			withList, _ := flags.GetString("with")
			specs, _ := flags.GetStringArray("transform")
			names := append(transform.ParseTemplateList(withList), specs...)

			var compSet *compare.ComparisonSet
			if len(names) == 0 {
				compSet, err = engine.Compare(cmd.Context(), req.amount, req.calcType, req.opts)
				if err != nil {
					return err
				}
			} else {
				resolved, err := templates.Resolve(names, transform.NewTransformRegistry())
				if err != nil {
					return err
				}

				// the base scenario is the gross behind the input amount
				current, err := calc.Calculate(req.amount, req.calcType, req.sector, req.opts)
				if err != nil {
					return err
				}
				base := &transform.Scenario{
					Name:    "Current",
					Gross:   current.Gross,
					Sector:  current.Sector,
					Options: req.opts,
				}
				compSet, err = engine.CompareScenarios(cmd.Context(), base, resolved)
				if err != nil {
					return err
				}
			}

			a.log().Info("comparison complete",
				zap.String("op", "compare"),
				zap.String("amount", req.amount.String()),
				zap.Int("results", len(compSet.All())),
			)

			format, _ := flags.GetString("format")
			return writeComparison(cmd.OutOrStdout(), format, compSet)
		},
	}

	addTypeFlag(cmd)
	addInputFlags(cmd, true)
	cmd.Flags().String("with", "", "Comma-separated list of templates to compare against the current situation")
	cmd.Flags().StringArray("transform", nil, "Transform spec to compare, e.g. set_children:count=2 (repeatable)")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	return cmd
}

func writeComparison(out io.Writer, format string, compSet *compare.ComparisonSet) error {
	switch format {
	case "table":
		fmt.Fprint(out, (&compare.TableFormatter{}).Format(compSet))
	case "compact":
		fmt.Fprint(out, (&compare.TableFormatter{}).FormatCompact(compSet))
	case "csv":
		data, err := (&compare.CSVFormatter{}).Format(compSet)
		if err != nil {
			return err
		}
		fmt.Fprint(out, data)
	case "json":
		data, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, data)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}
