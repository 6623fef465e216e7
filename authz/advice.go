package authz

import (
	"context"

	"github.com/kbukum/guardkit/advisor"
	"github.com/kbukum/guardkit/errors"
)

// Advisor order constants. Lower orders run closer to the caller, so the
// pre-call check is the first thing between the caller and the target.
const (
	OrderPre    = 100
	OrderPost   = 200
	OrderFilter = 300
)

// PreAdvice denies a call before it reaches the target when the subject
// lacks the permission the policy requires for the method.
type PreAdvice struct {
	checker Checker
	policy  Policy
}

// NewPreAdvice builds the before-call advice for checker and policy.
func NewPreAdvice(checker Checker, policy Policy) *PreAdvice {
	return &PreAdvice{checker: checker, policy: policy}
}

// Name implements advisor.Advisor.
func (a *PreAdvice) Name() string { return "authz.pre" }

// Order implements advisor.Advisor.
func (a *PreAdvice) Order() int { return OrderPre }

// Before implements advisor.Before.
func (a *PreAdvice) Before(ctx context.Context, inv *advisor.Invocation) error {
	perm, ok := a.policy.PermissionFor(inv.Method, PhaseBefore)
	if !ok {
		return nil
	}
	subject := SubjectFrom(ctx)
	if !a.checker.HasPermission(subject, perm) {
		return errors.Denied(subject, perm).WithDetail("method", inv.Method)
	}
	return nil
}

var _ advisor.Before = (*PreAdvice)(nil)

// PostAdvice denies a call after the target ran, based on the result.
type PostAdvice struct {
	checker Checker
	policy  Policy
}

// NewPostAdvice builds the after-call advice for checker and policy.
func NewPostAdvice(checker Checker, policy Policy) *PostAdvice {
	return &PostAdvice{checker: checker, policy: policy}
}

// Name implements advisor.Advisor.
func (a *PostAdvice) Name() string { return "authz.post" }

// Order implements advisor.Advisor.
func (a *PostAdvice) Order() int { return OrderPost }

// After implements advisor.After.
func (a *PostAdvice) After(ctx context.Context, inv *advisor.Invocation, result any) error {
	perm, ok := a.policy.PermissionFor(inv.Method, PhaseAfter)
	if !ok {
		return nil
	}
	subject := SubjectFrom(ctx)
	if !a.checker.HasPermission(subject, perm) {
		return errors.Denied(subject, perm).WithDetail("method", inv.Method)
	}
	return nil
}

var _ advisor.After = (*PostAdvice)(nil)

// ElementPredicate decides whether the subject may see one element of a
// filtered result. The element's meaning is a collaborator concern.
type ElementPredicate func(ctx context.Context, subject string, element any) bool

// FilterAdvice removes elements the subject may not see from slice-valued
// results of methods the policy marks with PhaseFilter. Non-slice results
// pass through untouched.
type FilterAdvice struct {
	policy Policy
	keep   ElementPredicate
}

// NewFilterAdvice builds the result-filtering advice. keep decides element
// visibility for methods matched by a PhaseFilter rule.
func NewFilterAdvice(policy Policy, keep ElementPredicate) *FilterAdvice {
	return &FilterAdvice{policy: policy, keep: keep}
}

// Name implements advisor.Advisor.
func (a *FilterAdvice) Name() string { return "authz.filter" }

// Order implements advisor.Advisor.
func (a *FilterAdvice) Order() int { return OrderFilter }

// FilterResult implements advisor.ResultFilter.
func (a *FilterAdvice) FilterResult(ctx context.Context, inv *advisor.Invocation, result any) (any, error) {
	if _, ok := a.policy.PermissionFor(inv.Method, PhaseFilter); !ok {
		return result, nil
	}
	elements, ok := result.([]any)
	if !ok {
		return result, nil
	}
	subject := SubjectFrom(ctx)
	kept := make([]any, 0, len(elements))
	for _, e := range elements {
		if a.keep(ctx, subject, e) {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

var _ advisor.ResultFilter = (*FilterAdvice)(nil)
