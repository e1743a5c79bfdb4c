// Package user defines the employee record the SDK operates on.
package user

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUserNotFound is returned when a user cannot be found in the
	// directory.
	ErrUserNotFound = errors.New("user not found")
)

var validate = validator.New()

// Record represents an employee known to the payroll partner.
// A Record is immutable after onboarding; derived figures such as limits are
// computed per query, never stored on the record.
type Record struct {
	ID             string  `json:"id" validate:"required"`
	Name           string  `json:"name" validate:"required"`
	EmiratesID     string  `json:"emiratesId" validate:"required"`
	PhoneNumber    string  `json:"phoneNumber"`
	Email          string  `json:"email" validate:"omitempty,email"`
	MonthlySalary  float64 `json:"monthlySalary" validate:"gte=0"`
	EarnedSalary   float64 `json:"earnedSalary" validate:"gte=0"`
	AccountAgeDays int     `json:"accountAge" validate:"gte=0"`
	HasActiveLoans bool    `json:"hasActiveLoans"`
	CreditScore    int     `json:"creditScore" validate:"gte=0"`
	EmployerName   string  `json:"employerName"`
	WPSPartner     string  `json:"wpsPartner"`
}

// Validate reports whether the record satisfies its field constraints.
func (r *Record) Validate() error {
	return validate.Struct(r)
}

// Snapshot holds the display fields copied onto an in-flight withdrawal
// request, so later mutation of the live record cannot corrupt it.
type Snapshot struct {
	Name        string `json:"name"`
	EmiratesID  string `json:"emiratesId"`
	PhoneNumber string `json:"phoneNumber"`
	Employer    string `json:"employerName"`
	WPSPartner  string `json:"wpsPartner"`
}

// Snapshot copies the record's display fields.
func (r *Record) Snapshot() Snapshot {
	return Snapshot{
		Name:        r.Name,
		EmiratesID:  r.EmiratesID,
		PhoneNumber: r.PhoneNumber,
		Employer:    r.EmployerName,
		WPSPartner:  r.WPSPartner,
	}
}
