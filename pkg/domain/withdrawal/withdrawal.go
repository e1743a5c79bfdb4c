// Package withdrawal defines the value objects of the early-access
// withdrawal flow: limits, eligibility results, fee breakdowns, requests
// and receipts.
package withdrawal

import (
	"time"

	"github.com/peydey/sdk-go/pkg/domain/user"
	"github.com/peydey/sdk-go/pkg/money"
)

// Status is the lifecycle state of a withdrawal request or ledger entry.
type Status string

const (
	// StatusPending marks a request created but not yet processed.
	StatusPending Status = "pending"
	// StatusProcessing marks a request currently being executed by the WPS.
	StatusProcessing Status = "processing"
	// StatusCompleted marks a successfully executed request. Terminal.
	StatusCompleted Status = "completed"
	// StatusFailed marks a request the WPS could not execute. Terminal.
	StatusFailed Status = "failed"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Limits are the per-user withdrawal figures derived from the employee
// record. Recomputed on every query; never persisted.
type Limits struct {
	MonthlySalary        float64 `json:"monthlySalary"`
	EarnedSalary         float64 `json:"earnedSalary"`
	AvailableBalance     float64 `json:"availableBalance"`
	MaxWithdrawalPercent float64 `json:"maxWithdrawalPercent"`
	AccountAgeDays       int     `json:"accountAge"`
	EarlyAccessFeeRate   float64 `json:"earlyAccessFee"`
	VATRate              float64 `json:"vatRate"`
}

// EligibilityResult is the outcome of an eligibility check. Reasons is
// empty iff IsEligible is true.
type EligibilityResult struct {
	IsEligible bool     `json:"isEligible"`
	Reasons    []string `json:"reasons"`
	Limits     Limits   `json:"limits"`
}

// FeeBreakdown itemizes the cost of withdrawing a given amount early.
// All figures are rounded to two decimals, half away from zero at the
// fils boundary.
type FeeBreakdown struct {
	RequestedAmount float64 `json:"requestedAmount"`
	EarlyAccessFee  float64 `json:"earlyAccessFee"`
	VATAmount       float64 `json:"vatAmount"`
	TotalFee        float64 `json:"totalFee"`
	YouReceive      float64 `json:"youReceive"`
}

// Request is a withdrawal request handed to the WPS authority. The ID is
// immutable once created; Status is the only field that changes afterwards.
type Request struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	Amount    float64       `json:"amount"`
	Type      string        `json:"withdrawalType"`
	Status    Status        `json:"status"`
	Currency  money.Code    `json:"currency"`
	CreatedAt time.Time     `json:"timestamp"`
	User      user.Snapshot `json:"userData"`
}

// Receipt is the proof of a processed withdrawal, generated once per
// successful WPS processing call.
type Receipt struct {
	ReceiptNumber string     `json:"receiptNumber"`
	Date          time.Time  `json:"date"`
	Amount        float64    `json:"amount"`
	Currency      money.Code `json:"currency"`
	User          string     `json:"user"`
	EmiratesID    string     `json:"emiratesId"`
	Employer      string     `json:"employer"`
	WPSPartner    string     `json:"wpsPartner"`
	Status        Status     `json:"status"`
	Message       string     `json:"message"`
}
