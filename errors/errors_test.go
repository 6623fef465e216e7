package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestDenied(t *testing.T) {
	err := Denied("alice", "account:write")
	if err.Code != ErrCodeForbidden {
		t.Errorf("expected code %s, got %s", ErrCodeForbidden, err.Code)
	}
	if err.Details["subject"] != "alice" {
		t.Errorf("expected subject detail, got %v", err.Details["subject"])
	}
	if err.Details["permission"] != "account:write" {
		t.Errorf("expected permission detail, got %v", err.Details["permission"])
	}
	if !IsDenied(err) {
		t.Error("expected IsDenied to be true")
	}
}

func TestDeniedEmptyFields(t *testing.T) {
	err := Denied("", "")
	if _, ok := err.Details["subject"]; ok {
		t.Error("expected no subject detail for empty subject")
	}
	if _, ok := err.Details["permission"]; ok {
		t.Error("expected no permission detail for empty permission")
	}
}

func TestIsDeniedThroughWrapping(t *testing.T) {
	err := fmt.Errorf("call failed: %w", Denied("bob", "report:read"))
	if !IsDenied(err) {
		t.Error("expected IsDenied to see through wrapping")
	}
	if IsDenied(errors.New("plain")) {
		t.Error("expected plain error to not be a denial")
	}
}

func TestErrorString(t *testing.T) {
	err := Validation("advisors cannot be nil")
	want := "INVALID_INPUT: advisors cannot be nil"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	withCause := Internal(errors.New("boom"))
	if withCause.Error() != "INTERNAL_ERROR: An unexpected error occurred. (cause: boom)" {
		t.Errorf("unexpected error string: %q", withCause.Error())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := Internal(cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"denial", Denied("a", "b"), ErrCodeForbidden},
		{"validation", Validation("bad"), ErrCodeInvalidInput},
		{"missing field", MissingField("policy"), ErrCodeMissingField},
		{"not found", NotFound("method", "Withdraw"), ErrCodeNotFound},
		{"plain error", errors.New("x"), ErrCodeInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Errorf("CodeOf = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := Forbidden("").WithDetail("method", "Account.Withdraw")
	if err.Details["method"] != "Account.Withdraw" {
		t.Errorf("expected method detail, got %v", err.Details["method"])
	}
	if err.Message == "" {
		t.Error("expected default forbidden message")
	}
}
