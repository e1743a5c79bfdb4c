package sdk

import (
	"github.com/peydey/sdk-go/pkg/domain"
	"github.com/peydey/sdk-go/pkg/domain/user"
	wd "github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/ledger"
	svc "github.com/peydey/sdk-go/pkg/service/withdrawal"
)

// OnboardResult is the outcome of OnboardUser.
type OnboardResult struct {
	Success   bool         `json:"success"`
	Error     string       `json:"error,omitempty"`
	Code      domain.Code  `json:"code,omitempty"`
	Message   string       `json:"message,omitempty"`
	SessionID string       `json:"sessionId,omitempty"`
	User      *user.Record `json:"userData,omitempty"`
}

// UserDetailsResult is the outcome of GetUserDetails. CanProceed mirrors
// the eligibility verdict.
type UserDetailsResult struct {
	Success     bool                 `json:"success"`
	Error       string               `json:"error,omitempty"`
	Code        domain.Code          `json:"code,omitempty"`
	User        *user.Record         `json:"userData,omitempty"`
	Limits      wd.Limits            `json:"limits"`
	Eligibility wd.EligibilityResult `json:"eligibility"`
	History     []ledger.Entry       `json:"transactionHistory,omitempty"`
	CanProceed  bool                 `json:"canProceed"`
}

// HistoryEntry is a ledger entry with its display date attached.
type HistoryEntry struct {
	ledger.Entry
	FormattedDate string `json:"formattedDate"`
}

// HistoryResult is the outcome of GetTransactionHistory.
type HistoryResult struct {
	Success          bool           `json:"success"`
	Error            string         `json:"error,omitempty"`
	Code             domain.Code    `json:"code,omitempty"`
	AvailableBalance float64        `json:"availableBalance"`
	Transactions     []HistoryEntry `json:"transactions,omitempty"`
}

// FeesResult is the outcome of CalculateWithdrawalFees.
type FeesResult struct {
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
	Code    domain.Code      `json:"code,omitempty"`
	Fees    *wd.FeeBreakdown `json:"fees,omitempty"`
}

// WithdrawResult is the outcome of HandleWithdrawalRequest. On success the
// Handle carries the bound WPS callbacks for the caller to invoke.
type WithdrawResult struct {
	Success bool                 `json:"success"`
	Error   string               `json:"error,omitempty"`
	Code    domain.Code          `json:"code,omitempty"`
	Message string               `json:"message,omitempty"`
	Reasons []string             `json:"reasons,omitempty"`
	Request *wd.Request          `json:"withdrawalRequest,omitempty"`
	Handle  *svc.AuthorityHandle `json:"-"`
}

// CompleteResult is the outcome of CompleteWithdrawal.
type CompleteResult struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Code    domain.Code  `json:"code,omitempty"`
	Entry   ledger.Entry `json:"transaction"`
}

// ExitResult is the outcome of ExitSDK.
type ExitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
