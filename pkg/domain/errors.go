package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrNotAuthenticated is returned when an operation requires an active session
	ErrNotAuthenticated = errors.New("user not authenticated")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrInvalidAmount is returned when a monetary amount is zero or negative
	// where a positive amount is required
	ErrInvalidAmount = errors.New("invalid withdrawal amount")
	// ErrAlreadyProcessed is returned when a withdrawal request is processed
	// a second time
	ErrAlreadyProcessed = errors.New("withdrawal request already processed")
)
