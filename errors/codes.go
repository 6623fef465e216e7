package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Authorization errors
const (
	// ErrCodeForbidden indicates an advisor denied the invocation.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"
	// ErrCodeInvalidToken indicates a credential could not be verified.
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// Configuration errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Invocation errors
const (
	// ErrCodeNotFound indicates the requested method or resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
