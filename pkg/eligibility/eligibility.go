// Package eligibility implements the pure computation core of the SDK:
// eligibility rules, withdrawal limits and fee breakdowns. The engine has
// no side effects and may be called any number of times.
package eligibility

import (
	"fmt"

	"github.com/peydey/sdk-go/pkg/domain"
	"github.com/peydey/sdk-go/pkg/domain/user"
	"github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/money"
)

// Rules are the UAE early-access eligibility thresholds and rates.
type Rules struct {
	MinMonthlySalary     float64 // AED
	MinAccountAgeDays    int
	MinCreditScore       int
	MaxWithdrawalPercent float64 // fraction of earned salary withdrawable
	EarlyAccessFeeRate   float64
	VATRate              float64
}

// DefaultRules returns the production rule set.
func DefaultRules() Rules {
	return Rules{
		MinMonthlySalary:     1000,
		MinAccountAgeDays:    30,
		MinCreditScore:       650,
		MaxWithdrawalPercent: 0.25,
		EarlyAccessFeeRate:   0.05,
		VATRate:              0.05,
	}
}

// Engine evaluates eligibility, limits and fees against a rule set.
type Engine struct {
	rules    Rules
	currency money.Currency
}

// NewEngine creates an Engine with the given rules, computing in AED.
func NewEngine(rules Rules) *Engine {
	return &Engine{rules: rules, currency: money.AEDCurrency}
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() Rules { return e.rules }

// CheckEligibility evaluates every rule independently and reports all
// failing conditions, in a fixed order: salary, account age, active loans,
// credit score, earned salary.
func (e *Engine) CheckEligibility(r *user.Record) withdrawal.EligibilityResult {
	reasons := []string{}
	if r.MonthlySalary < e.rules.MinMonthlySalary {
		reasons = append(reasons, fmt.Sprintf(
			"Monthly salary below minimum requirement (AED %.0f)", e.rules.MinMonthlySalary))
	}
	if r.AccountAgeDays < e.rules.MinAccountAgeDays {
		reasons = append(reasons, fmt.Sprintf(
			"Account age below minimum requirement (%d days)", e.rules.MinAccountAgeDays))
	}
	if r.HasActiveLoans {
		reasons = append(reasons, "Active loans detected")
	}
	if r.CreditScore < e.rules.MinCreditScore {
		reasons = append(reasons, fmt.Sprintf(
			"Credit score below minimum requirement (%d)", e.rules.MinCreditScore))
	}
	if r.EarnedSalary <= 0 {
		reasons = append(reasons, "No earned salary available")
	}

	return withdrawal.EligibilityResult{
		IsEligible: len(reasons) == 0,
		Reasons:    reasons,
		Limits:     e.CalculateLimits(r),
	}
}

// CalculateLimits derives the per-user withdrawal figures. The available
// balance is MaxWithdrawalPercent of the earned salary, rounded to two
// decimals half away from zero.
func (e *Engine) CalculateLimits(r *user.Record) withdrawal.Limits {
	available := money.Zero(e.currency)
	if earned, err := money.New(r.EarnedSalary, e.currency); err == nil {
		if m, err := earned.Multiply(e.rules.MaxWithdrawalPercent); err == nil {
			available = m
		}
	}

	return withdrawal.Limits{
		MonthlySalary:        r.MonthlySalary,
		EarnedSalary:         r.EarnedSalary,
		AvailableBalance:     available.AmountFloat(),
		MaxWithdrawalPercent: e.rules.MaxWithdrawalPercent * 100,
		AccountAgeDays:       r.AccountAgeDays,
		EarlyAccessFeeRate:   e.rules.EarlyAccessFeeRate,
		VATRate:              e.rules.VATRate,
	}
}

// CalculateFees itemizes the cost of withdrawing amount early. A zero
// amount yields an all-zero breakdown; a negative amount is rejected with
// domain.ErrInvalidAmount.
func (e *Engine) CalculateFees(amount float64) (*withdrawal.FeeBreakdown, error) {
	if amount < 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, amount)
	}

	requested, err := money.New(amount, e.currency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidAmount, amount)
	}

	fee, err := requested.Multiply(e.rules.EarlyAccessFeeRate)
	if err != nil {
		return nil, err
	}
	vat, err := fee.Multiply(e.rules.VATRate)
	if err != nil {
		return nil, err
	}
	total, err := fee.Add(vat)
	if err != nil {
		return nil, err
	}
	receive, err := requested.Subtract(total)
	if err != nil {
		return nil, err
	}

	return &withdrawal.FeeBreakdown{
		RequestedAmount: requested.AmountFloat(),
		EarlyAccessFee:  fee.AmountFloat(),
		VATAmount:       vat.AmountFloat(),
		TotalFee:        total.AmountFloat(),
		YouReceive:      receive.AmountFloat(),
	}, nil
}
