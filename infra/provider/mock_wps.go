package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/peydey/sdk-go/pkg/domain"
	"github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/provider"
)

// Fixed credentials the mock accepts, one per validation method.
const (
	mockEmiratesID = "784-1968-6570305-0"
	mockPassword   = "correct_password"
	mockPIN        = "1234"
)

// MockWPSAuthority simulates the workforce-payment-system for tests and
// local development.
//
// Usage:
//   - ValidateUser checks the method against the allow-list, then the secret
//     against a fixed expected value, then runs an always-eligible WPS-side
//     eligibility check.
//   - ProcessWithdrawal refuses a failed validation immediately; otherwise it
//     generates a fresh receipt on every call.
//   - Each network hop sleeps for the configured latency and honors context
//     cancellation.
//
// This is NOT for production use. A real Authority calls the WPS endpoint
// with real timeouts and retries.
type MockWPSAuthority struct {
	latency time.Duration
	methods []provider.ValidationMethod
}

// NewMockWPSAuthority creates a mock authority that delays each simulated
// network call by latency. Tests pass zero.
func NewMockWPSAuthority(latency time.Duration) *MockWPSAuthority {
	return &MockWPSAuthority{
		latency: latency,
		methods: []provider.ValidationMethod{
			provider.MethodPassword,
			provider.MethodPIN,
			provider.MethodEmiratesID,
		},
	}
}

// ValidateUser checks the credentials against the mock's fixed expectations
// and runs the WPS-side eligibility check. It examines the request but never
// mutates it.
func (m *MockWPSAuthority) ValidateUser(
	ctx context.Context,
	creds provider.Credentials,
	req *withdrawal.Request,
) (*provider.ValidationResult, error) {
	if !m.allowed(creds.Method) {
		return &provider.ValidationResult{
			Success: false,
			Error:   "Invalid validation method",
			Code:    domain.CodeInvalidMethod,
		}, nil
	}

	if err := m.simulateCall(ctx); err != nil {
		return nil, err
	}
	if !m.credentialsMatch(creds) {
		return &provider.ValidationResult{
			Success: false,
			Error:   "User validation failed",
			Code:    domain.CodeValidationFailed,
		}, nil
	}

	check, err := m.checkEligibility(ctx, req)
	if err != nil {
		return nil, err
	}
	if !check.IsEligible {
		return &provider.ValidationResult{
			Success: false,
			Error:   "User not eligible for withdrawal",
			Code:    domain.CodeNotEligible,
			Reasons: check.Reasons,
		}, nil
	}

	return &provider.ValidationResult{
		Success:     true,
		Message:     "User validated successfully",
		Eligibility: check,
	}, nil
}

// ProcessWithdrawal executes the withdrawal on the WPS side. A failed
// validation result is refused without any simulated network hop. Every
// successful call generates a distinct receipt; callers are responsible for
// not processing one real-world withdrawal twice.
func (m *MockWPSAuthority) ProcessWithdrawal(
	ctx context.Context,
	req *withdrawal.Request,
	validation *provider.ValidationResult,
) (*provider.ProcessingResult, error) {
	if validation == nil || !validation.Success {
		return &provider.ProcessingResult{
			Success: false,
			Error:   "Cannot process withdrawal - validation failed",
			Code:    domain.CodeValidationFailed,
		}, nil
	}

	if err := m.simulateCall(ctx); err != nil {
		return nil, err
	}

	return &provider.ProcessingResult{
		Success:       true,
		Message:       "Withdrawal processed successfully",
		Status:        withdrawal.StatusCompleted,
		Receipt:       m.generateReceipt(req),
		TransactionID: fmt.Sprintf("wps_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
	}, nil
}

func (m *MockWPSAuthority) allowed(method provider.ValidationMethod) bool {
	for _, allowed := range m.methods {
		if method == allowed {
			return true
		}
	}
	return false
}

func (m *MockWPSAuthority) credentialsMatch(creds provider.Credentials) bool {
	switch creds.Method {
	case provider.MethodEmiratesID:
		return creds.Value == mockEmiratesID
	case provider.MethodPassword:
		return creds.Value == mockPassword
	case provider.MethodPIN:
		return creds.Value == mockPIN
	}
	return false
}

// checkEligibility is the WPS-side secondary check. The mock always reports
// eligible, with representative limit figures.
func (m *MockWPSAuthority) checkEligibility(
	ctx context.Context,
	_ *withdrawal.Request,
) (*provider.EligibilityCheck, error) {
	if err := m.simulateCall(ctx); err != nil {
		return nil, err
	}
	return &provider.EligibilityCheck{
		IsEligible: true,
		Reasons:    []string{},
		Limits: provider.WPSLimits{
			DailyLimit:       5000,
			MonthlyLimit:     20000,
			RemainingDaily:   4500,
			RemainingMonthly: 18000,
		},
	}, nil
}

func (m *MockWPSAuthority) generateReceipt(req *withdrawal.Request) *withdrawal.Receipt {
	now := time.Now()
	return &withdrawal.Receipt{
		ReceiptNumber: fmt.Sprintf("RCP_%d", now.UnixNano()),
		Date:          now,
		Amount:        req.Amount,
		Currency:      req.Currency,
		User:          req.User.Name,
		EmiratesID:    req.User.EmiratesID,
		Employer:      req.User.Employer,
		WPSPartner:    req.User.WPSPartner,
		Status:        withdrawal.StatusCompleted,
		Message:       "Transaction is in process and will be completed shortly",
	}
}

// simulateCall models WPS network latency while honoring cancellation.
func (m *MockWPSAuthority) simulateCall(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.latency):
		return nil
	}
}
