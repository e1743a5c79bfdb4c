// Package provider defines the external collaborator interfaces of the SDK:
// the WPS authority that validates and executes withdrawals, and the user
// directory that resolves onboarding credentials to an employee record.
//
// Production implementations make real network calls; infra/provider ships
// in-memory doubles that simulate latency only.
package provider

import (
	"context"

	"github.com/peydey/sdk-go/pkg/domain"
	"github.com/peydey/sdk-go/pkg/domain/withdrawal"
)

// ValidationMethod identifies how the user proves their identity to the WPS.
type ValidationMethod string

const (
	// MethodPassword validates against the user's WPS password.
	MethodPassword ValidationMethod = "password"
	// MethodPIN validates against the user's WPS PIN.
	MethodPIN ValidationMethod = "pin"
	// MethodEmiratesID validates against the user's Emirates ID.
	MethodEmiratesID ValidationMethod = "emiratesId"
)

// Credentials carry the method and secret presented for WPS validation.
type Credentials struct {
	Method ValidationMethod `json:"method"`
	Value  string           `json:"value"`
}

// WPSLimits are the authority-side withdrawal limits reported with an
// eligibility check.
type WPSLimits struct {
	DailyLimit       float64 `json:"dailyLimit"`
	MonthlyLimit     float64 `json:"monthlyLimit"`
	RemainingDaily   float64 `json:"remainingDaily"`
	RemainingMonthly float64 `json:"remainingMonthly"`
}

// EligibilityCheck is the WPS-side secondary eligibility verdict. Its
// reasons are distinct from the SDK engine's reasons.
type EligibilityCheck struct {
	IsEligible bool      `json:"isEligible"`
	Reasons    []string  `json:"reasons"`
	Limits     WPSLimits `json:"wpsLimits"`
}

// ValidationResult is the outcome of Authority.ValidateUser. It is consumed
// immediately by Authority.ProcessWithdrawal and never persisted.
type ValidationResult struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	Error       string            `json:"error,omitempty"`
	Code        domain.Code       `json:"code,omitempty"`
	Reasons     []string          `json:"reasons,omitempty"`
	Eligibility *EligibilityCheck `json:"eligibilityCheck,omitempty"`
}

// ProcessingResult is the outcome of Authority.ProcessWithdrawal. A
// successful result carries the receipt and the WPS transaction id.
type ProcessingResult struct {
	Success       bool                `json:"success"`
	Message       string              `json:"message,omitempty"`
	Error         string              `json:"error,omitempty"`
	Code          domain.Code         `json:"code,omitempty"`
	Status        withdrawal.Status   `json:"status,omitempty"`
	Receipt       *withdrawal.Receipt `json:"receipt,omitempty"`
	TransactionID string              `json:"transactionId,omitempty"`
}

// Authority abstracts the external workforce-payment-system. Both calls are
// keyed to one specific withdrawal request; neither mutates it. Business
// failures are reported in the result value; the error return is reserved
// for transport faults such as context cancellation.
type Authority interface {
	ValidateUser(
		ctx context.Context,
		creds Credentials,
		req *withdrawal.Request,
	) (*ValidationResult, error)
	ProcessWithdrawal(
		ctx context.Context,
		req *withdrawal.Request,
		validation *ValidationResult,
	) (*ProcessingResult, error)
}
