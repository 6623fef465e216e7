package guard

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/guardkit/advisor"
	"github.com/kbukum/guardkit/authz"
	"github.com/kbukum/guardkit/errors"
	"github.com/kbukum/guardkit/logger"
)

// wrapMode classifies how a type is wrapped whole, cached per reflect.Type.
type wrapMode int

const (
	modePass wrapMode = iota // no exported behavior, returned unchanged
	modeFunc                 // func value, rewrapped into the same func type
	modeView                 // has exported methods, wrapped as *View
)

func (m wrapMode) String() string {
	switch m {
	case modeFunc:
		return "func"
	case modeView:
		return "view"
	default:
		return "pass"
	}
}

// state is the factory's swappable configuration. Proxy loads it once per
// call, so SetAdvisors and SetVisitor replace it wholesale without locking
// readers.
type state struct {
	base    []advisor.Advisor
	chain   *advisor.Chain
	visitor Visitor
}

// Factory builds guarded views. It is safe for concurrent use; Proxy can be
// called from any goroutine, including reentrantly from visitors and the
// return-object advisor.
type Factory struct {
	id           string
	log          *logger.Logger
	tracer       trace.Tracer
	guardReturns []string

	state atomic.Pointer[state]
	modes sync.Map // reflect.Type -> wrapMode
}

// Option configures a Factory at construction.
type Option func(*factoryOptions)

type factoryOptions struct {
	advisors     []advisor.Advisor
	log          *logger.Logger
	visitor      Visitor
	guardReturns []string
}

// WithAdvisors sets the factory's initial advisor chain.
func WithAdvisors(advisors ...advisor.Advisor) Option {
	return func(o *factoryOptions) { o.advisors = advisors }
}

// WithLogger sets the factory's logger. The default logger discards
// everything.
func WithLogger(log *logger.Logger) Option {
	return func(o *factoryOptions) { o.log = log }
}

// WithVisitor replaces the default visitor chain; see Defaults.
func WithVisitor(v Visitor) Option {
	return func(o *factoryOptions) { o.visitor = v }
}

// WithGuardReturns adds "Type.Method" patterns whose results are
// recursively proxied by the return-object advisor. Patterns use
// authz.MatchMethod wildcard semantics.
func WithGuardReturns(patterns ...string) Option {
	return func(o *factoryOptions) { o.guardReturns = append(o.guardReturns, patterns...) }
}

// New builds a factory. With no options it carries no advisors beyond the
// implicit return-object advisor and traverses with Defaults.
func New(opts ...Option) *Factory {
	options := factoryOptions{}
	for _, opt := range opts {
		opt(&options)
	}
	if options.log == nil {
		options.log = logger.Nop()
	}
	if options.visitor == nil {
		options.visitor = Defaults()
	}

	f := &Factory{
		id:           uuid.NewString(),
		log:          options.log.WithComponent("guard"),
		tracer:       otel.Tracer("guardkit/guard"),
		guardReturns: options.guardReturns,
	}
	f.state.Store(f.newState(options.advisors, options.visitor))
	return f
}

// WithDefaults builds a factory enforcing policy with checker: a before-call
// permission check and an after-call result check, on the default visitor
// chain.
func WithDefaults(checker authz.Checker, policy authz.Policy, opts ...Option) *Factory {
	base := []Option{WithAdvisors(
		authz.NewPreAdvice(checker, policy),
		authz.NewPostAdvice(checker, policy),
	)}
	return New(append(base, opts...)...)
}

// newState builds a state whose chain is the caller's advisors plus the
// factory's own return-object advisor, sorted by order.
func (f *Factory) newState(base []advisor.Advisor, visitor Visitor) *state {
	full := make([]advisor.Advisor, 0, len(base)+1)
	full = append(full, base...)
	full = append(full, &returnObjectAdvisor{factory: f})
	return &state{
		base:    base,
		chain:   advisor.NewChain(full...),
		visitor: visitor,
	}
}

// ID returns the factory's unique identifier, used in logs.
func (f *Factory) ID() string { return f.id }

// Advisors returns an ordered snapshot of the effective advisor chain,
// including the return-object advisor.
func (f *Factory) Advisors() []advisor.Advisor {
	return f.state.Load().chain.Advisors()
}

// SetAdvisors replaces the caller-supplied advisors wholesale; the
// return-object advisor is always re-appended. A nil slice is rejected and
// the prior chain stays in effect. Views built before the call keep the
// chain they were built with.
func (f *Factory) SetAdvisors(advisors []advisor.Advisor) error {
	if advisors == nil {
		return errors.Validation("advisors cannot be nil")
	}
	old := f.state.Load()
	f.state.Store(f.newState(advisors, old.visitor))
	f.log.Debug("advisors replaced", logger.Fields(logger.FieldFactoryID, f.id, "count", len(advisors)))
	return nil
}

// SetVisitor replaces the traversal strategy wholesale. A nil visitor is
// rejected and the prior strategy stays in effect.
func (f *Factory) SetVisitor(v Visitor) error {
	if v == nil {
		return errors.Validation("visitor cannot be nil")
	}
	old := f.state.Load()
	f.state.Store(&state{base: old.base, chain: old.chain, visitor: v})
	return nil
}

// Proxy returns a guarded view of target. Nil passes through. The visitor
// chain gets first refusal: containers, async values, and type descriptors
// come back rebuilt with guarded contents. Anything else is wrapped whole:
// func values as a func of the same type, values with exported methods as a
// *View, and methodless values unchanged.
func (f *Factory) Proxy(target any) any {
	if isNil(target) {
		return target
	}
	st := f.state.Load()
	if out, ok := st.visitor.Visit(f, target); ok {
		return out
	}

	t := reflect.TypeOf(target)
	mode := f.wrapModeFor(t)
	switch mode {
	case modeFunc:
		return f.wrapFunc(target, st.chain.Advisors())
	case modeView:
		return f.newView(target, st.chain.Advisors())
	default:
		f.log.Trace("target passed through", logger.Fields(
			logger.FieldFactoryID, f.id,
			logger.FieldTarget, t.String(),
			logger.FieldMode, mode.String(),
		))
		return target
	}
}

func (f *Factory) wrapModeFor(t reflect.Type) wrapMode {
	if cached, ok := f.modes.Load(t); ok {
		return cached.(wrapMode)
	}
	mode := classify(t)
	f.modes.Store(t, mode)
	f.log.Debug("wrap mode resolved", logger.Fields(
		logger.FieldFactoryID, f.id,
		logger.FieldTarget, t.String(),
		logger.FieldMode, mode.String(),
	))
	return mode
}

// isNil treats typed nil pointers, maps, and the like as nil; wrapping a
// nil target would only defer the nil dereference into the view.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

func classify(t reflect.Type) wrapMode {
	if t.Kind() == reflect.Func {
		return modeFunc
	}
	if t.NumMethod() > 0 {
		return modeView
	}
	return modePass
}
