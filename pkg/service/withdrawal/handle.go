package withdrawal

import (
	"context"
	"sync"

	"github.com/peydey/sdk-go/pkg/domain"
	wd "github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/provider"
)

// AuthorityHandle is the exposed-callback pair of the withdrawal protocol.
// It is bound to one specific request at creation: both calls always operate
// on a private copy of that request, so no id confusion is possible and
// later mutation of the live request cannot reach the authority.
//
// The caller drives the protocol explicitly: ValidateUser first, then
// ProcessWithdrawal with the validation result. The handle guards against
// double processing; once a call has produced a receipt, further attempts
// fail with domain.CodeAlreadyProcessed.
type AuthorityHandle struct {
	RequestID string

	mu          sync.Mutex
	processed   bool
	request     wd.Request
	authority   provider.Authority
	coordinator *Coordinator
}

func (c *Coordinator) newHandle(req *wd.Request) *AuthorityHandle {
	return &AuthorityHandle{
		RequestID:   req.ID,
		request:     *req,
		authority:   c.authority,
		coordinator: c,
	}
}

// ValidateUser asks the WPS authority to validate the user for the bound
// request. It may be called any number of times; it never changes the
// request's status.
func (h *AuthorityHandle) ValidateUser(
	ctx context.Context,
	creds provider.Credentials,
) (*provider.ValidationResult, error) {
	req := h.boundRequest()
	return h.authority.ValidateUser(ctx, creds, &req)
}

// ProcessWithdrawal asks the WPS authority to execute the bound request.
// The first call that yields a receipt transitions the request to its
// terminal status and consumes the handle; subsequent calls fail with
// domain.CodeAlreadyProcessed instead of producing a second receipt.
func (h *AuthorityHandle) ProcessWithdrawal(
	ctx context.Context,
	validation *provider.ValidationResult,
) (*provider.ProcessingResult, error) {
	h.mu.Lock()
	if h.processed {
		h.mu.Unlock()
		return &provider.ProcessingResult{
			Success: false,
			Error:   domain.ErrAlreadyProcessed.Error(),
			Code:    domain.CodeAlreadyProcessed,
		}, nil
	}
	req := h.request
	h.mu.Unlock()

	result, err := h.authority.ProcessWithdrawal(ctx, &req, validation)
	if err != nil {
		return nil, err
	}

	if result.Success {
		h.mu.Lock()
		h.processed = true
		h.request.Status = wd.StatusCompleted
		h.mu.Unlock()
		h.coordinator.setStatus(h.RequestID, wd.StatusCompleted)
	}
	return result, nil
}

func (h *AuthorityHandle) boundRequest() wd.Request {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.request
}
