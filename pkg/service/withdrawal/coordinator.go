// Package withdrawal provides the business logic for initiating early-access
// withdrawals: validating a requested amount against the user's computed
// limits, building the request snapshot, and handing the caller a bound
// callback handle for the WPS protocol steps.
package withdrawal

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peydey/sdk-go/pkg/domain"
	"github.com/peydey/sdk-go/pkg/domain/user"
	wd "github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/money"
	"github.com/peydey/sdk-go/pkg/provider"
)

// Result is the outcome of an initiation attempt. On success Request and
// Handle are set; on failure Code and Error describe the first failing check.
type Result struct {
	Success bool             `json:"success"`
	Error   string           `json:"error,omitempty"`
	Code    domain.Code      `json:"code,omitempty"`
	Message string           `json:"message,omitempty"`
	Request *wd.Request      `json:"withdrawalRequest,omitempty"`
	Handle  *AuthorityHandle `json:"-"`
}

// Coordinator validates withdrawal requests and binds them to the WPS
// authority. It keeps every initiated request so its status can be looked up
// later.
type Coordinator struct {
	mu        sync.Mutex
	authority provider.Authority
	requests  map[string]*wd.Request
	logger    *slog.Logger
}

// NewCoordinator creates a Coordinator delegating protocol calls to authority.
func NewCoordinator(authority provider.Authority, logger *slog.Logger) *Coordinator {
	return &Coordinator{
		authority: authority,
		requests:  make(map[string]*wd.Request),
		logger:    logger,
	}
}

// InitiateWithdrawal validates amount against the user's limits and, on
// success, returns the request snapshot together with a handle bound to it.
// Checks run in order and the first failure wins: positive amount, available
// balance, 25%-of-earned-salary cap. The balance and salary-cap checks are
// evaluated independently even though they coincide by construction.
func (c *Coordinator) InitiateWithdrawal(
	u *user.Record,
	limits wd.Limits,
	amount float64,
	withdrawalType string,
) *Result {
	if amount <= 0 {
		return &Result{
			Success: false,
			Error:   "Invalid withdrawal amount",
			Code:    domain.CodeInvalidAmount,
		}
	}
	if amount > limits.AvailableBalance {
		return &Result{
			Success: false,
			Error: fmt.Sprintf("Amount exceeds available balance of AED %s",
				strconv.FormatFloat(limits.AvailableBalance, 'f', -1, 64)),
			Code: domain.CodeExceedsBalance,
		}
	}
	if exceedsSalaryCap(amount, u.EarnedSalary) {
		return &Result{
			Success: false,
			Error:   "Amount exceeds 25% of earned salary limit",
			Code:    domain.CodeExceedsSalaryLimit,
		}
	}

	req := &wd.Request{
		ID:        fmt.Sprintf("wd_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8]),
		UserID:    u.ID,
		Amount:    amount,
		Type:      withdrawalType,
		Status:    wd.StatusPending,
		Currency:  money.AED,
		CreatedAt: time.Now(),
		User:      u.Snapshot(),
	}

	c.mu.Lock()
	c.requests[req.ID] = req
	c.mu.Unlock()

	c.logger.Info("withdrawal request created",
		"requestId", req.ID, "userId", req.UserID, "amount", amount)

	return &Result{
		Success: true,
		Message: "Withdrawal request created. Proceed with WPS validation.",
		Request: req,
		Handle:  c.newHandle(req),
	}
}

// WithdrawalStatus returns the tracked request for the given id, or false if
// the coordinator never initiated it.
func (c *Coordinator) WithdrawalStatus(requestID string) (wd.Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	req, ok := c.requests[requestID]
	if !ok {
		return wd.Request{}, false
	}
	return *req, true
}

// CompleteRequest records the terminal status of a tracked request.
func (c *Coordinator) CompleteRequest(requestID string, status wd.Status) {
	c.setStatus(requestID, status)
}

func (c *Coordinator) setStatus(requestID string, status wd.Status) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if req, ok := c.requests[requestID]; ok {
		req.Status = status
	}
}

// exceedsSalaryCap evaluates the 25%-of-earned-salary check independently of
// the available-balance figure, in fils to keep the comparison exact.
func exceedsSalaryCap(amount, earnedSalary float64) bool {
	requested, err := money.New(amount, money.AEDCurrency)
	if err != nil {
		return true
	}
	earned, err := money.New(earnedSalary, money.AEDCurrency)
	if err != nil {
		return true
	}
	salaryCap, err := earned.Multiply(0.25)
	if err != nil {
		return true
	}
	exceeds, err := salaryCap.LessThan(requested)
	return err != nil || exceeds
}
