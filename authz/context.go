package authz

import "context"

// contextKey is an unexported type to prevent collisions with other packages.
type contextKey struct{}

// subjectKey is the single key used to store the calling subject in context.
var subjectKey = contextKey{}

// WithSubject stores the calling subject in the context. Advice retrieves
// it with SubjectFrom when consulting a Checker.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFrom retrieves the calling subject from the context.
// Returns the empty string when no subject has been set; checkers treat an
// unknown subject as having no permissions.
func SubjectFrom(ctx context.Context) string {
	if v, ok := ctx.Value(subjectKey).(string); ok {
		return v
	}
	return ""
}
