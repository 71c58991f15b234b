package domain

import (
	"github.com/shopspring/decimal"
)

// CalculationResult is the immutable outcome of one salary calculation.
// Amounts are whole currency units (lei).
type CalculationResult struct {
	Sector Sector `json:"sector"`

	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`

	PensionContribution decimal.Decimal `json:"pensionContribution"`
	HealthContribution  decimal.Decimal `json:"healthContribution"`
	IncomeTax           decimal.Decimal `json:"incomeTax"`

	ContributionBase  decimal.Decimal `json:"contributionBase"`
	PersonalDeduction decimal.Decimal `json:"personalDeduction"`
	TaxableIncome     decimal.Decimal `json:"taxableIncome"`
	UntaxedAmount     decimal.Decimal `json:"untaxedAmount"`
	VoucherIncome     decimal.Decimal `json:"voucherIncome"`

	EmployerBase      decimal.Decimal `json:"employerBase"`
	EmployerSurcharge decimal.Decimal `json:"employerSurcharge"`
	TotalCost         decimal.Decimal `json:"totalCost"`

	Rates RateBreakdown `json:"rates"`

	IsOvertaxed      bool            `json:"isOvertaxed"`
	OvertaxShortfall decimal.Decimal `json:"overtaxShortfall"`
	Notes            []string        `json:"notes,omitempty"`

	// Iterations is set by the inverse searches. Converged is false only when
	// a search stopped before reaching its target.
	Iterations int  `json:"iterations,omitempty"`
	Converged  bool `json:"converged,omitempty"`
}

// RateBreakdown lists the percentages that were actually applied
type RateBreakdown struct {
	Pension       decimal.Decimal `json:"pension"`
	Health        decimal.Decimal `json:"health"`
	IncomeTax     decimal.Decimal `json:"incomeTax"`
	WorkInsurance decimal.Decimal `json:"workInsurance"`
}

// TotalWithholdings is the sum of the employee-side withholdings
func (r CalculationResult) TotalWithholdings() decimal.Decimal {
	return r.PensionContribution.Add(r.HealthContribution).Add(r.IncomeTax)
}

// WithNote returns a copy of the result with msg appended to Notes
func (r CalculationResult) WithNote(msg string) CalculationResult {
	notes := make([]string, 0, len(r.Notes)+1)
	notes = append(notes, r.Notes...)
	r.Notes = append(notes, msg)
	return r
}
