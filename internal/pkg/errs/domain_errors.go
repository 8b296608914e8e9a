package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Device errors
	ErrDeviceNotFound      = errors.New("device not found")
	ErrInvalidAPIKey       = errors.New("invalid api key or device mismatch")
	ErrAPIKeyRequired      = errors.New("api key required")
	ErrAuthUnavailable     = errors.New("authentication service unavailable")
	ErrDeviceKeyGeneration = errors.New("device key generation failed")

	// Threshold errors
	ErrThresholdNotFound = errors.New("threshold set not found")

	// Alert errors
	ErrAlertNotFound = errors.New("alert not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrRateLimited             = errors.New("rate limit exceeded")
)
