// Package errors provides unified error handling for guardkit.
// It implements a structured error type with machine-readable error codes
// covering authorization denials, configuration failures, and invocation
// errors raised by guarded views.
package errors
