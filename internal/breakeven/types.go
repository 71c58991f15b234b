package breakeven

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/salcalc/internal/domain"
)

// RaiseGoal defines how a raise is expressed
type RaiseGoal string

const (
	GoalNetRaise   RaiseGoal = "net"        // Employee takes home Amount more
	GoalTargetNet  RaiseGoal = "target_net" // Employee takes home Amount in total
	GoalCostBudget RaiseGoal = "cost"       // Employer spends Amount more
)

// ParseRaiseGoal converts user input into a RaiseGoal
func ParseRaiseGoal(value string) (RaiseGoal, error) {
	switch RaiseGoal(value) {
	case GoalNetRaise, GoalTargetNet, GoalCostBudget:
		return RaiseGoal(value), nil
	case "":
		return GoalNetRaise, nil
	}
	return "", &BreakEvenError{
		Operation: "parse_goal",
		Message:   "unknown raise goal " + value,
	}
}

// Constraints bound what a raise may require
type Constraints struct {
	MaxGross *decimal.Decimal `json:"max_gross,omitempty"`
	MaxCost  *decimal.Decimal `json:"max_cost,omitempty"`
}

// RaiseRequest describes one raise to solve
type RaiseRequest struct {
	CurrentGross decimal.Decimal
	Sector       domain.Sector
	Options      domain.CalculationOptions
	Goal         RaiseGoal
	Amount       decimal.Decimal
	Constraints  Constraints
}

// RaiseResult contains the salary before and after a raise
type RaiseResult struct {
	Sector domain.Sector `json:"sector"`
	Goal   RaiseGoal     `json:"goal"`

	Before domain.CalculationResult `json:"before"`
	After  domain.CalculationResult `json:"after"`

	GrossIncrease decimal.Decimal `json:"gross_increase"`
	NetIncrease   decimal.Decimal `json:"net_increase"`
	CostIncrease  decimal.Decimal `json:"cost_increase"`

	// CostPerNetLei is what one extra lei of net pay costs the employer
	CostPerNetLei decimal.Decimal `json:"cost_per_net_lei"`
	// NetShare is the percentage of the extra cost that reaches the employee
	NetShare decimal.Decimal `json:"net_share"`

	Success         bool   `json:"success"`
	ConvergenceInfo string `json:"convergence_info"`
}

// MultiSectorResult contains one raise solved in every sector
type MultiSectorResult struct {
	Results         []RaiseResult `json:"results"`
	Best            *RaiseResult  `json:"best,omitempty"`
	Recommendations []string      `json:"recommendations"`
}

// Validate checks that a request can be solved
func (r RaiseRequest) Validate() error {
	if !r.CurrentGross.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "current gross salary must be positive",
		}
	}
	if !r.Amount.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "raise amount must be positive",
		}
	}
	switch r.Goal {
	case GoalNetRaise, GoalTargetNet, GoalCostBudget:
	default:
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "unsupported raise goal: " + string(r.Goal),
		}
	}

	c := r.Constraints
	if c.MaxGross != nil && !c.MaxGross.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "max_gross must be positive",
		}
	}
	if c.MaxCost != nil && !c.MaxCost.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_request",
			Message:   "max_cost must be positive",
		}
	}
	return nil
}

// BreakEvenError represents errors from the raise solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
