package advisor

import "context"

// Advisor is an ordered, opaque authorization rule unit. Implementations
// additionally implement one or more of Before, After, ArgsFilter, and
// ResultFilter to take part in the corresponding interception phases.
// Advisors are immutable once constructed and may be shared across chains.
type Advisor interface {
	// Name identifies the advisor in logs and error details.
	Name() string

	// Order is the advisor's total-order priority. Lower values run
	// earlier on the way into a call and later on the way out.
	Order() int
}

// Invocation describes one method call on a guarded view. Advisors receive
// the same Invocation at every phase of a call; ArgsFilter advisors may
// rewrite Args in place before the target method runs.
type Invocation struct {
	// Target is the unwrapped object the call is forwarded to.
	Target any
	// Method is the invoked method's name, in "Type.Method" form.
	Method string
	// Args are the call arguments, excluding any injected context.
	Args []any
}

// Before is implemented by advisors that intercept a call before it reaches
// the target. Returning a non-nil error denies the call; the error
// propagates to the caller untranslated.
type Before interface {
	Advisor
	Before(ctx context.Context, inv *Invocation) error
}

// After is implemented by advisors that inspect the call's primary result
// after the target has run. Returning a non-nil error denies the result.
type After interface {
	Advisor
	After(ctx context.Context, inv *Invocation, result any) error
}

// ArgsFilter is implemented by advisors that rewrite call arguments before
// the target runs.
type ArgsFilter interface {
	Advisor
	FilterArgs(ctx context.Context, inv *Invocation) error
}

// ResultFilter is implemented by advisors that replace the call's primary
// result after the target has run.
type ResultFilter interface {
	Advisor
	FilterResult(ctx context.Context, inv *Invocation, result any) (any, error)
}

// Base carries the name and order shared by simple advisors. Embed it and
// implement the role interfaces you need.
type Base struct {
	AdvisorName  string
	AdvisorOrder int
}

// Name implements Advisor.
func (b Base) Name() string { return b.AdvisorName }

// Order implements Advisor.
func (b Base) Order() int { return b.AdvisorOrder }

// beforeFunc adapts an ordinary function to a Before advisor.
type beforeFunc struct {
	Base
	fn func(ctx context.Context, inv *Invocation) error
}

func (a beforeFunc) Before(ctx context.Context, inv *Invocation) error {
	return a.fn(ctx, inv)
}

// BeforeFunc wraps fn as a Before advisor with the given name and order.
func BeforeFunc(name string, order int, fn func(ctx context.Context, inv *Invocation) error) Before {
	return beforeFunc{Base{name, order}, fn}
}

// afterFunc adapts an ordinary function to an After advisor.
type afterFunc struct {
	Base
	fn func(ctx context.Context, inv *Invocation, result any) error
}

func (a afterFunc) After(ctx context.Context, inv *Invocation, result any) error {
	return a.fn(ctx, inv, result)
}

// AfterFunc wraps fn as an After advisor with the given name and order.
func AfterFunc(name string, order int, fn func(ctx context.Context, inv *Invocation, result any) error) After {
	return afterFunc{Base{name, order}, fn}
}

// resultFilterFunc adapts an ordinary function to a ResultFilter advisor.
type resultFilterFunc struct {
	Base
	fn func(ctx context.Context, inv *Invocation, result any) (any, error)
}

func (a resultFilterFunc) FilterResult(ctx context.Context, inv *Invocation, result any) (any, error) {
	return a.fn(ctx, inv, result)
}

// ResultFilterFunc wraps fn as a ResultFilter advisor with the given name and order.
func ResultFilterFunc(name string, order int, fn func(ctx context.Context, inv *Invocation, result any) (any, error)) ResultFilter {
	return resultFilterFunc{Base{name, order}, fn}
}
