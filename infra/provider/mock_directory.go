package provider

import (
	"context"
	"sync"
	"time"

	"github.com/peydey/sdk-go/pkg/domain/user"
	"github.com/peydey/sdk-go/pkg/provider"
)

// MockDirectory is an in-memory user directory keyed by Emirates ID. It
// ships seeded with the demo employee so the quick-start flow works out of
// the box.
type MockDirectory struct {
	mu      sync.Mutex
	users   map[string]user.Record
	latency time.Duration
}

// NewMockDirectory creates a directory seeded with the demo user, delaying
// each lookup by latency. Tests pass zero.
func NewMockDirectory(latency time.Duration) *MockDirectory {
	d := &MockDirectory{
		users:   make(map[string]user.Record),
		latency: latency,
	}
	d.Register(DemoUser())
	return d
}

// Register adds or replaces a directory record.
func (d *MockDirectory) Register(r user.Record) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[r.EmiratesID] = r
}

// Lookup resolves credentials to a copy of the matching record. Both the
// Emirates ID and the phone number must match.
func (d *MockDirectory) Lookup(
	ctx context.Context,
	creds provider.LookupCredentials,
) (*user.Record, error) {
	if d.latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(d.latency):
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.users[creds.EmiratesID]
	if !ok || r.PhoneNumber != creds.PhoneNumber {
		return nil, user.ErrUserNotFound
	}
	record := r
	return &record, nil
}

// DemoUser is the employee record the mock directory is seeded with.
func DemoUser() user.Record {
	return user.Record{
		ID:             "user_001",
		Name:           "Muhammad Abdul Majid",
		EmiratesID:     "784-1968-6570305-0",
		PhoneNumber:    "+971523213841",
		Email:          "muhammad@example.com",
		MonthlySalary:  3000,
		EarnedSalary:   1500,
		AccountAgeDays: 45,
		HasActiveLoans: false,
		CreditScore:    720,
		EmployerName:   "Emirates NBD",
		WPSPartner:     "Alfardan Exchange",
	}
}
