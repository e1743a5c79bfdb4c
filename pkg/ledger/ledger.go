// Package ledger keeps an append-only in-memory log of withdrawal
// transactions per user. Entries are created pending, updated on the
// processing outcome, and never deleted.
package ledger

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/money"
)

// DefaultHistoryLimit bounds history queries that pass no explicit limit.
const DefaultHistoryLimit = 10

// Entry is one recorded withdrawal transaction.
type Entry struct {
	ID        string            `json:"id"`
	UserID    string            `json:"userId"`
	RequestID string            `json:"requestId,omitempty"`
	Amount    float64           `json:"amount"`
	Type      string            `json:"withdrawalType,omitempty"`
	Status    withdrawal.Status `json:"status"`
	Currency  money.Code        `json:"currency"`
	Timestamp time.Time         `json:"timestamp"`
	UpdatedAt time.Time         `json:"updatedAt,omitempty"`
}

// Ledger is a mutex-serialized transaction log. Entries are kept newest
// first so retrieval never needs to sort.
type Ledger struct {
	mu      sync.Mutex
	entries []Entry
	now     func() time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Add records a transaction. It assigns the id and timestamp and defaults
// the status to pending and the currency to AED; caller-supplied fields are
// kept. The stored entry is returned.
func (l *Ledger) Add(e Entry) Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.ID = fmt.Sprintf("txn_%d_%s", l.now().UnixMilli(), uuid.NewString()[:8])
	e.Timestamp = l.now()
	if e.Status == "" {
		e.Status = withdrawal.StatusPending
	}
	if e.Currency == "" {
		e.Currency = money.AED
	}

	l.entries = append([]Entry{e}, l.entries...)
	return e
}

// History returns the user's transactions, most recent first, truncated to
// limit. A non-positive limit falls back to DefaultHistoryLimit.
func (l *Ledger) History(userID string, limit int) []Entry {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, 0, limit)
	for _, e := range l.entries {
		if e.UserID != userID {
			continue
		}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out
}

// UpdateStatus sets the status of the entry with the given id and stamps
// UpdatedAt. The second return is false if the id is unknown.
func (l *Ledger) UpdateStatus(id string, status withdrawal.Status) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries[i].Status = status
			l.entries[i].UpdatedAt = l.now()
			return l.entries[i], true
		}
	}
	return Entry{}, false
}

// UpdateStatusByRequest sets the status of the entry recorded for the given
// withdrawal request id. The second return is false if no entry references
// that request.
func (l *Ledger) UpdateStatusByRequest(requestID string, status withdrawal.Status) (Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].RequestID == requestID {
			l.entries[i].Status = status
			l.entries[i].UpdatedAt = l.now()
			return l.entries[i], true
		}
	}
	return Entry{}, false
}

// FormatDate renders a timestamp as a human-readable long date with a time
// component, e.g. "January 2, 2026, 3:04 PM". Deterministic for a given
// timestamp; presentation only, not a compatibility contract.
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006, 3:04 PM")
}
