// Package sdk composes the PeyDey early-access withdrawal flow behind a
// single facade. One SDK instance owns one session; multiple instances are
// fully independent, so multi-tenant hosts can run concurrent flows.
//
// The flow has seven steps: onboard, details, history, fees, withdraw, the
// two WPS callback steps driven by the caller through the returned handle,
// and exit.
package sdk

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/peydey/sdk-go/pkg/config"
	"github.com/peydey/sdk-go/pkg/domain"
	"github.com/peydey/sdk-go/pkg/domain/user"
	wd "github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/eligibility"
	"github.com/peydey/sdk-go/pkg/ledger"
	"github.com/peydey/sdk-go/pkg/provider"
	"github.com/peydey/sdk-go/pkg/session"
	svc "github.com/peydey/sdk-go/pkg/service/withdrawal"
)

// SDK is the facade over the withdrawal flow. Construct one per user flow
// with New.
type SDK struct {
	cfg         *config.Config
	logger      *slog.Logger
	sessions    *session.Store
	engine      *eligibility.Engine
	ledger      *ledger.Ledger
	directory   provider.Directory
	coordinator *svc.Coordinator
}

// New creates an SDK instance with the given collaborators. A nil logger
// falls back to a discarding logger.
func New(
	cfg *config.Config,
	directory provider.Directory,
	authority provider.Authority,
	logger *slog.Logger,
) *SDK {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SDK{
		cfg:         cfg,
		logger:      logger,
		sessions:    session.NewStore(),
		engine:      eligibility.NewEngine(eligibility.DefaultRules()),
		ledger:      ledger.New(),
		directory:   directory,
		coordinator: svc.NewCoordinator(authority, logger),
	}
}

// OnboardUser looks the user up in the employer directory and starts a
// session. A directory miss fails with AUTH_FAILED; any other collaborator
// fault is converted to ONBOARDING_ERROR so the caller never observes a raw
// error.
func (s *SDK) OnboardUser(ctx context.Context, creds provider.LookupCredentials) *OnboardResult {
	lookupCtx, cancel := context.WithTimeout(ctx, s.cfg.WPSTimeout)
	defer cancel()

	record, err := s.directory.Lookup(lookupCtx, creds)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return &OnboardResult{
				Success: false,
				Error:   "Authentication failed",
				Code:    domain.CodeAuthFailed,
			}
		}
		s.logger.Error("onboarding failed", "error", err)
		return &OnboardResult{
			Success: false,
			Error:   "Onboarding failed",
			Code:    domain.CodeOnboardingError,
		}
	}

	if err := record.Validate(); err != nil {
		s.logger.Error("directory returned invalid record", "error", err)
		return &OnboardResult{
			Success: false,
			Error:   "Onboarding failed",
			Code:    domain.CodeOnboardingError,
		}
	}

	sessionID := s.sessions.Create(record)
	s.logger.Info("user onboarded", "userId", record.ID, "sessionId", sessionID)

	return &OnboardResult{
		Success:   true,
		SessionID: sessionID,
		User:      record,
		Message:   "User onboarded successfully",
	}
}

// GetUserDetails returns the session user together with their computed
// eligibility, limits and recent transactions.
func (s *SDK) GetUserDetails() *UserDetailsResult {
	sess := s.sessions.Get()
	if !sess.Authenticated {
		return &UserDetailsResult{
			Success: false,
			Error:   "User not authenticated",
			Code:    domain.CodeNotAuthenticated,
		}
	}

	result := s.engine.CheckEligibility(sess.User)
	s.logger.Debug("user details retrieved", "userId", sess.User.ID)

	return &UserDetailsResult{
		Success:     true,
		User:        sess.User,
		Limits:      result.Limits,
		Eligibility: result,
		History:     s.ledger.History(sess.User.ID, s.cfg.HistoryLimit),
		CanProceed:  result.IsEligible,
	}
}

// GetTransactionHistory returns the available balance and the user's recent
// transactions with display dates attached.
func (s *SDK) GetTransactionHistory() *HistoryResult {
	sess := s.sessions.Get()
	if !sess.Authenticated {
		return &HistoryResult{
			Success: false,
			Error:   "User not authenticated",
			Code:    domain.CodeNotAuthenticated,
		}
	}

	limits := s.engine.CalculateLimits(sess.User)
	entries := s.ledger.History(sess.User.ID, s.cfg.HistoryLimit)
	transactions := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		transactions = append(transactions, HistoryEntry{
			Entry:         e,
			FormattedDate: ledger.FormatDate(e.Timestamp),
		})
	}

	return &HistoryResult{
		Success:          true,
		AvailableBalance: limits.AvailableBalance,
		Transactions:     transactions,
	}
}

// CalculateWithdrawalFees itemizes the cost of withdrawing amount early.
func (s *SDK) CalculateWithdrawalFees(amount float64) *FeesResult {
	sess := s.sessions.Get()
	if !sess.Authenticated {
		return &FeesResult{
			Success: false,
			Error:   "User not authenticated",
			Code:    domain.CodeNotAuthenticated,
		}
	}

	fees, err := s.engine.CalculateFees(amount)
	if err != nil {
		return &FeesResult{
			Success: false,
			Error:   "Invalid withdrawal amount",
			Code:    domain.CodeInvalidAmount,
		}
	}
	return &FeesResult{Success: true, Fees: fees}
}

// HandleWithdrawalRequest checks eligibility and initiates a withdrawal.
// Ineligible users are refused with NOT_ELIGIBLE and the engine's reasons
// before the coordinator is consulted. On success a pending transaction is
// recorded in the ledger and the WPS callback handle is returned; the caller
// drives validation and processing through it, then reports the outcome via
// CompleteWithdrawal. An empty withdrawalType defaults to "salary".
func (s *SDK) HandleWithdrawalRequest(amount float64, withdrawalType string) *WithdrawResult {
	sess := s.sessions.Get()
	if !sess.Authenticated {
		return &WithdrawResult{
			Success: false,
			Error:   "User not authenticated",
			Code:    domain.CodeNotAuthenticated,
		}
	}
	if withdrawalType == "" {
		withdrawalType = "salary"
	}

	eligibilityResult := s.engine.CheckEligibility(sess.User)
	if !eligibilityResult.IsEligible {
		return &WithdrawResult{
			Success: false,
			Error:   "User not eligible for withdrawal",
			Code:    domain.CodeNotEligible,
			Reasons: eligibilityResult.Reasons,
		}
	}

	result := s.coordinator.InitiateWithdrawal(
		sess.User, eligibilityResult.Limits, amount, withdrawalType)
	if !result.Success {
		return &WithdrawResult{
			Success: false,
			Error:   result.Error,
			Code:    result.Code,
		}
	}

	s.ledger.Add(ledger.Entry{
		UserID:    sess.User.ID,
		RequestID: result.Request.ID,
		Amount:    result.Request.Amount,
		Type:      result.Request.Type,
		Currency:  result.Request.Currency,
	})
	s.logger.Info("withdrawal initiated",
		"requestId", result.Request.ID, "amount", amount, "userId", sess.User.ID)

	return &WithdrawResult{
		Success: true,
		Message: result.Message,
		Request: result.Request,
		Handle:  result.Handle,
	}
}

// CompleteWithdrawal records the terminal outcome of a processed request in
// the ledger and in the coordinator's tracking.
func (s *SDK) CompleteWithdrawal(requestID string, result *provider.ProcessingResult) *CompleteResult {
	status := wd.StatusFailed
	if result != nil && result.Success {
		status = wd.StatusCompleted
	}
	s.coordinator.CompleteRequest(requestID, status)

	entry, ok := s.ledger.UpdateStatusByRequest(requestID, status)
	if !ok {
		return &CompleteResult{
			Success: false,
			Error:   domain.ErrNotFound.Error(),
		}
	}
	s.logger.Info("withdrawal completed", "requestId", requestID, "status", status)
	return &CompleteResult{Success: true, Entry: entry}
}

// WithdrawalStatus looks up a request initiated by this SDK instance.
func (s *SDK) WithdrawalStatus(requestID string) (wd.Request, bool) {
	return s.coordinator.WithdrawalStatus(requestID)
}

// ExitSDK clears the session. Always succeeds; idempotent.
func (s *SDK) ExitSDK() *ExitResult {
	s.sessions.Clear()
	s.logger.Info("user exited SDK")
	return &ExitResult{Success: true, Message: "Successfully exited SDK"}
}
