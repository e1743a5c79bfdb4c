package provider

import (
	"context"

	"github.com/peydey/sdk-go/pkg/domain/user"
)

// LookupCredentials identify a user against the employer directory.
type LookupCredentials struct {
	EmiratesID  string `json:"emiratesId"`
	PhoneNumber string `json:"phoneNumber"`
}

// Directory resolves onboarding credentials to an employee record.
// Returns user.ErrUserNotFound when no record matches.
type Directory interface {
	Lookup(ctx context.Context, creds LookupCredentials) (*user.Record, error)
}
