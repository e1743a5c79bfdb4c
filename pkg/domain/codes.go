package domain

// Code classifies a failed operation so integrators can branch on the
// outcome without parsing messages. Codes are stable wire values.
type Code string

const (
	// CodeAuthFailed means the user directory lookup found no matching user.
	CodeAuthFailed Code = "AUTH_FAILED"
	// CodeOnboardingError means onboarding failed for an unexpected reason.
	CodeOnboardingError Code = "ONBOARDING_ERROR"
	// CodeNotAuthenticated means the operation requires an active session.
	CodeNotAuthenticated Code = "NOT_AUTHENTICATED"
	// CodeNotEligible means the user fails eligibility rules; the result
	// carries the individual reasons.
	CodeNotEligible Code = "NOT_ELIGIBLE"
	// CodeInvalidAmount means the requested amount is zero or negative.
	CodeInvalidAmount Code = "INVALID_AMOUNT"
	// CodeExceedsBalance means the requested amount exceeds the available balance.
	CodeExceedsBalance Code = "EXCEEDS_BALANCE"
	// CodeExceedsSalaryLimit means the requested amount exceeds 25% of earned salary.
	CodeExceedsSalaryLimit Code = "EXCEEDS_SALARY_LIMIT"
	// CodeInvalidMethod means the credential method is not in the WPS allow-list.
	CodeInvalidMethod Code = "INVALID_METHOD"
	// CodeValidationFailed means the WPS credential check failed, or processing
	// was attempted with a failed validation result.
	CodeValidationFailed Code = "VALIDATION_FAILED"
	// CodeAlreadyProcessed means a withdrawal request was processed a second time.
	CodeAlreadyProcessed Code = "ALREADY_PROCESSED"
)

// String returns the wire value of the code.
func (c Code) String() string { return string(c) }
