package breakeven

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/salcalc/internal/calculation"
	"github.com/rgehrsitz/salcalc/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Solver finds the salary change that delivers a raise
type Solver struct {
	Calculator *calculation.SalaryCalculator
}

// NewSolver creates a new raise solver
func NewSolver(calc *calculation.SalaryCalculator) *Solver {
	return &Solver{Calculator: calc}
}

// Solve computes the salary before and after the requested raise
func (s *Solver) Solve(ctx context.Context, req RaiseRequest) (*RaiseResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "cancelled", Cause: err}
	}

	before, err := s.Calculator.Calculate(req.CurrentGross, domain.FromGross, req.Sector, req.Options)
	if err != nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "failed to calculate current salary", Cause: err}
	}

	var value decimal.Decimal
	calcType := domain.FromNet
	switch req.Goal {
	case GoalNetRaise:
		value = before.Net.Add(req.Amount)
	case GoalTargetNet:
		if !req.Amount.GreaterThan(before.Net) {
			return nil, &BreakEvenError{
				Operation: "solve",
				Message:   fmt.Sprintf("target net %s does not exceed the current net %s", req.Amount, before.Net),
			}
		}
		value = req.Amount
	case GoalCostBudget:
		value = before.TotalCost.Add(req.Amount)
		calcType = domain.FromCost
	}

	after, err := s.Calculator.Calculate(value, calcType, before.Sector, req.Options)
	if err != nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "failed to calculate raised salary", Cause: err}
	}

	return evaluate(req, before, after), nil
}

// evaluate derives the raise metrics and checks the constraints
func evaluate(req RaiseRequest, before, after domain.CalculationResult) *RaiseResult {
	result := &RaiseResult{
		Sector:        after.Sector,
		Goal:          req.Goal,
		Before:        before,
		After:         after,
		GrossIncrease: after.Gross.Sub(before.Gross),
		NetIncrease:   after.Net.Sub(before.Net),
		CostIncrease:  after.TotalCost.Sub(before.TotalCost),
		Success:       after.Converged,
	}
	if result.NetIncrease.IsPositive() {
		result.CostPerNetLei = result.CostIncrease.Div(result.NetIncrease).Round(2)
	}
	if result.CostIncrease.IsPositive() {
		result.NetShare = result.NetIncrease.Mul(hundred).Div(result.CostIncrease).Round(1)
	}

	if after.Converged {
		result.ConvergenceInfo = fmt.Sprintf("Converged in %d iterations", after.Iterations)
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Closest match after %d iterations", after.Iterations)
	}

	c := req.Constraints
	if c.MaxGross != nil && after.Gross.GreaterThan(*c.MaxGross) {
		result.Success = false
		result.ConvergenceInfo = fmt.Sprintf("Required gross %s exceeds the maximum %s", after.Gross, c.MaxGross)
	}
	if c.MaxCost != nil && after.TotalCost.GreaterThan(*c.MaxCost) {
		result.Success = false
		result.ConvergenceInfo = fmt.Sprintf("Required cost %s exceeds the maximum %s", after.TotalCost, c.MaxCost)
	}
	return result
}
