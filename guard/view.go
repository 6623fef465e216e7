package guard

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/guardkit/advisor"
	"github.com/kbukum/guardkit/errors"
	"github.com/kbukum/guardkit/logger"
)

// View is a guarded wrapper over a value with exported methods. Calls go
// through Invoke (or a func obtained from Func) and run the advisor chain
// the view was built with; advisor changes on the factory after
// construction do not reach existing views.
type View struct {
	factory  *Factory
	target   any
	typeName string
	advisors []advisor.Advisor
	methods  map[string]reflect.Value
}

func (f *Factory) newView(target any, advisors []advisor.Advisor) *View {
	t := reflect.TypeOf(target)
	v := reflect.ValueOf(target)
	methods := make(map[string]reflect.Value, t.NumMethod())
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		methods[m.Name] = v.Method(i)
	}
	return &View{
		factory:  f,
		target:   target,
		typeName: baseTypeName(t),
		advisors: advisors,
		methods:  methods,
	}
}

// baseTypeName names the concrete type behind target with pointers
// stripped, so Account and *Account both invoke as "Account.Method".
func baseTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}

// Target returns the unwrapped value the view guards.
func (v *View) Target() any { return v.target }

// TypeName returns the guarded type's name as used in method patterns.
func (v *View) TypeName() string { return v.typeName }

// Methods returns the names of the invocable methods, sorted.
func (v *View) Methods() []string {
	names := make([]string, 0, len(v.methods))
	for name := range v.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String implements fmt.Stringer for logs and debugging.
func (v *View) String() string {
	return fmt.Sprintf("guard.View(%s)", v.typeName)
}

// Invoke calls the named method on the guarded target through the advisor
// chain. It returns the method's results, excluding a trailing error return
// which is surfaced as Invoke's own error. If the target method does not
// declare a leading context.Context parameter, ctx still drives the
// advisors.
func (v *View) Invoke(ctx context.Context, method string, args ...any) ([]any, error) {
	fn, ok := v.methods[method]
	if !ok {
		return nil, errors.NotFound("method", v.typeName+"."+method)
	}

	qualified := v.typeName + "." + method
	ctx, span := v.factory.tracer.Start(ctx, "guard.Invoke", trace.WithAttributes(
		attribute.String("guard.factory_id", v.factory.id),
		attribute.String("guard.method", qualified),
	))
	defer span.End()

	outs, err := v.factory.invoke(ctx, v.target, qualified, fn, v.advisors, args)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		v.factory.log.Debug("invocation denied", logger.Fields(
			logger.FieldFactoryID, v.factory.id,
			logger.FieldMethod, qualified,
			logger.FieldError, err.Error(),
		))
		return nil, err
	}
	return outs, nil
}

// Func returns the named method as a guarded func value of the method's own
// type, suitable for passing to code that expects the plain func. The
// returned func runs the advisor chain on every call; when the method has
// no error return, a denial panics with the denial error.
func (v *View) Func(method string) (any, error) {
	fn, ok := v.methods[method]
	if !ok {
		return nil, errors.NotFound("method", v.typeName+"."+method)
	}
	qualified := v.typeName + "." + method
	return makeGuardedFunc(v.factory, v.target, qualified, fn, v.advisors), nil
}
