package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// request is one parsed calculation request
type request struct {
	amount   decimal.Decimal
	calcType domain.CalculationType
	sector   domain.Sector
	opts     domain.CalculationOptions
}

func addTypeFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("type", "t", "gross", "What the value is: gross, net or cost")
}

func addInputFlags(cmd *cobra.Command, withSector bool) {
	flags := cmd.Flags()
	if withSector {
		flags.StringP("sector", "s", "standard", "Sector: standard, it, construction, agriculture")
	}
	flags.Int("children", 0, "Number of children in care")
	flags.Int("dependents", 0, "Number of other dependents")
	flags.Float64("meal-value", 0, "Meal voucher value per day")
	flags.Int("meal-days", 0, "Number of meal voucher days")
	flags.Float64("vacation-vouchers", 0, "Vacation voucher value for the month")
	flags.Bool("no-basic-function", false, "Secondary job: no personal deduction")
	flags.Bool("part-time", false, "Part-time contract")
	flags.Bool("minor", false, "Employee is a minor")
	flags.Bool("student", false, "Employee is a student")
	flags.Bool("pensioner", false, "Employee is a pensioner")
	flags.Bool("youth", false, "Employee is under 26")
	flags.Bool("disabled", false, "Employee has a disability certificate")
}

// parseAmount accepts only positive numbers
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: not a number", raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("invalid amount %q: must be positive", raw)
	}
	return amount, nil
}

func readRequest(cmd *cobra.Command, rawAmount string) (request, error) {
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return request{}, err
	}

	flags := cmd.Flags()
	calcType := domain.FromGross
	if flags.Lookup("type") != nil {
		typeName, _ := flags.GetString("type")
		if calcType, err = domain.ParseCalculationType(typeName); err != nil {
			return request{}, err
		}
	}

	sector := domain.SectorStandard
	if flags.Lookup("sector") != nil {
		sectorName, _ := flags.GetString("sector")
		if sector, err = domain.ParseSector(sectorName); err != nil {
			return request{}, err
		}
	}

	opts := domain.DefaultOptions()
	opts.Sector = sector
	opts.Children, _ = flags.GetInt("children")
	opts.Dependents, _ = flags.GetInt("dependents")
	opts.MealVoucherDays, _ = flags.GetInt("meal-days")
	if opts.Children < 0 || opts.Dependents < 0 || opts.MealVoucherDays < 0 {
		return request{}, fmt.Errorf("children, dependents and meal days must not be negative")
	}

	mealValue, _ := flags.GetFloat64("meal-value")
	vacation, _ := flags.GetFloat64("vacation-vouchers")
	if mealValue < 0 || vacation < 0 {
		return request{}, fmt.Errorf("voucher values must not be negative")
	}
	opts.MealVoucherValue = decimal.NewFromFloat(mealValue)
	opts.VacationVoucherValue = decimal.NewFromFloat(vacation)

	noBasic, _ := flags.GetBool("no-basic-function")
	opts.IsBasicFunction = !noBasic
	opts.IsPartTime, _ = flags.GetBool("part-time")
	opts.IsMinor, _ = flags.GetBool("minor")
	opts.IsStudent, _ = flags.GetBool("student")
	opts.IsPensioner, _ = flags.GetBool("pensioner")
	opts.IsYouth, _ = flags.GetBool("youth")
	opts.IsDisabled, _ = flags.GetBool("disabled")

	return request{amount: amount, calcType: calcType, sector: sector, opts: opts}, nil
}
