package lookupload

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := loader.Load(ctx, cfg)
//	if errors.Is(err, lookupload.ErrInitialization) {
//	    // credential problem, nothing was written
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownCategory indicates a requested category is not in the lookup table.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrInitialization indicates the database client could not be created.
	// No document has been written when this is returned.
	ErrInitialization = errors.New("initialization failed")

	// ErrCredentialsNotFound indicates the service-account key file does not exist.
	ErrCredentialsNotFound = errors.New("credentials file not found")

	// ErrInvalidCredentials indicates the service-account key could not be used.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrConnectionFailed indicates the database could not be reached.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrPermissionDenied indicates the credential was rejected for a write.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailed indicates a document write failed.
	ErrWriteFailed = errors.New("write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Order matters: credential errors also wrap ErrInitialization, and
	// permission/connection errors also wrap ErrWriteFailed.
	switch {
	case errors.Is(err, ErrInvalidConfig), errors.Is(err, ErrUnknownCategory):
		return ExitConfigError
	case errors.Is(err, ErrInitialization),
		errors.Is(err, ErrCredentialsNotFound),
		errors.Is(err, ErrInvalidCredentials):
		return ExitInitError
	case errors.Is(err, ErrPermissionDenied):
		return ExitPermissionDenied
	case errors.Is(err, ErrConnectionFailed):
		return ExitConnectionError
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteFailed
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "accepts ") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "invalid argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
