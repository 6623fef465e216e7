package guard

import (
	"context"
	"fmt"
	"reflect"

	"github.com/kbukum/guardkit/advisor"
	"github.com/kbukum/guardkit/errors"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// invoke runs one guarded call: the advisor chain around fn, with inv.Args
// as the (filterable) arguments. It returns fn's results with the primary
// result replaced by whatever the result filters produced, and the trailing
// error return split out.
func (f *Factory) invoke(ctx context.Context, target any, qualified string, fn reflect.Value, advisors []advisor.Advisor, args []any) ([]any, error) {
	inv := &advisor.Invocation{Target: target, Method: qualified, Args: args}

	var outs []any
	call := func(ctx context.Context) (any, error) {
		rets, err := callMethod(ctx, fn, inv.Args)
		if err != nil {
			return nil, err
		}
		outs = rets
		if len(rets) > 0 {
			return rets[0], nil
		}
		return nil, nil
	}

	result, err := runAdvisors(ctx, advisors, inv, call)
	if err != nil {
		return nil, err
	}
	switch {
	case len(outs) > 0:
		outs[0] = result
	case result != nil:
		outs = []any{result}
	}
	return outs, nil
}

// runAdvisors executes the chain as an onion around call. Going in, each
// advisor filters arguments and then gets its before-call veto; coming
// back out, each advisor checks and then rewrites the primary result.
// Lower orders sit closer to the caller, so they run first on the way in
// and last on the way out.
func runAdvisors(ctx context.Context, advisors []advisor.Advisor, inv *advisor.Invocation, call func(ctx context.Context) (any, error)) (any, error) {
	if len(advisors) == 0 {
		return call(ctx)
	}
	a := advisors[0]

	if af, ok := a.(advisor.ArgsFilter); ok {
		if err := af.FilterArgs(ctx, inv); err != nil {
			return nil, err
		}
	}
	if b, ok := a.(advisor.Before); ok {
		if err := b.Before(ctx, inv); err != nil {
			return nil, err
		}
	}

	result, err := runAdvisors(ctx, advisors[1:], inv, call)
	if err != nil {
		return nil, err
	}

	if aft, ok := a.(advisor.After); ok {
		if err := aft.After(ctx, inv, result); err != nil {
			return nil, err
		}
	}
	if rf, ok := a.(advisor.ResultFilter); ok {
		result, err = rf.FilterResult(ctx, inv, result)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// callMethod invokes fn with args, injecting ctx when fn declares a leading
// context.Context parameter. Returns fn's results as a slice, with a
// trailing error return split out.
func callMethod(ctx context.Context, fn reflect.Value, args []any) ([]any, error) {
	ft := fn.Type()

	in := make([]reflect.Value, 0, ft.NumIn())
	param := 0
	if ft.NumIn() > 0 && ft.In(0) == ctxType {
		in = append(in, reflect.ValueOf(ctx))
		param = 1
	}

	fixed := ft.NumIn() - param
	if ft.IsVariadic() {
		if len(args) < fixed-1 {
			return nil, errors.InvalidInput("args", fmt.Sprintf("got %d, want at least %d", len(args), fixed-1))
		}
	} else if len(args) != fixed {
		return nil, errors.InvalidInput("args", fmt.Sprintf("got %d, want %d", len(args), fixed))
	}

	for i, arg := range args {
		var pt reflect.Type
		if ft.IsVariadic() && param+i >= ft.NumIn()-1 {
			pt = ft.In(ft.NumIn() - 1).Elem()
		} else {
			pt = ft.In(param + i)
		}
		v, err := coerce(arg, pt)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	rets := fn.Call(in)

	var callErr error
	n := len(rets)
	if n > 0 && ft.Out(n-1).Implements(errType) {
		if e := rets[n-1].Interface(); e != nil {
			callErr = e.(error)
		}
		rets = rets[:n-1]
	}
	if callErr != nil {
		return nil, callErr
	}

	outs := make([]any, len(rets))
	for i, r := range rets {
		outs[i] = r.Interface()
	}
	return outs, nil
}

// coerce turns an any-typed argument into a reflect.Value assignable to t.
// Guarded views passed where the unwrapped type is expected are unwrapped;
// this lets results of one guarded call feed arguments of another.
func coerce(arg any, t reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Zero(t), nil
	}
	if view, ok := arg.(*View); ok {
		if !reflect.TypeOf(arg).AssignableTo(t) {
			arg = view.target
		}
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if v.Type().ConvertibleTo(t) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, errors.InvalidInput("args", fmt.Sprintf("%s is not assignable to %s", v.Type(), t))
}

// makeGuardedFunc builds a func value of fn's own type that runs the
// advisor chain on every call. Denials surface through the func's error
// return; a func without one panics with the denial error.
func makeGuardedFunc(f *Factory, target any, qualified string, fn reflect.Value, advisors []advisor.Advisor) any {
	ft := fn.Type()
	wrapper := reflect.MakeFunc(ft, func(in []reflect.Value) []reflect.Value {
		ctx := context.Background()
		if ft.NumIn() > 0 && ft.In(0) == ctxType {
			ctx = in[0].Interface().(context.Context)
			in = in[1:]
		}

		args := make([]any, 0, len(in))
		for i, v := range in {
			if ft.IsVariadic() && i == len(in)-1 {
				for j := 0; j < v.Len(); j++ {
					args = append(args, v.Index(j).Interface())
				}
				continue
			}
			args = append(args, v.Interface())
		}

		outs, err := f.invoke(ctx, target, qualified, fn, advisors, args)
		return assembleOut(ft, outs, err)
	})
	return wrapper.Interface()
}

// wrapFunc rewraps a func value into a guarded func of the same type.
func (f *Factory) wrapFunc(target any, advisors []advisor.Advisor) any {
	v := reflect.ValueOf(target)
	name := v.Type().Name()
	if name == "" {
		name = "func"
	}
	return makeGuardedFunc(f, target, name+".Call", v, advisors)
}

// assembleOut maps invoke's results back onto ft's declared return values.
func assembleOut(ft reflect.Type, outs []any, err error) []reflect.Value {
	n := ft.NumOut()
	errIdx := -1
	if n > 0 && ft.Out(n-1).Implements(errType) {
		errIdx = n - 1
	}

	rets := make([]reflect.Value, n)
	for i := 0; i < n; i++ {
		rets[i] = reflect.Zero(ft.Out(i))
	}

	fail := func(err error) []reflect.Value {
		if errIdx < 0 {
			panic(err)
		}
		for i := 0; i < n; i++ {
			rets[i] = reflect.Zero(ft.Out(i))
		}
		rets[errIdx] = reflect.ValueOf(err)
		return rets
	}

	if err != nil {
		return fail(err)
	}
	for i, out := range outs {
		if i == errIdx {
			break
		}
		v, cerr := coerce(out, ft.Out(i))
		if cerr != nil {
			return fail(cerr)
		}
		rets[i] = v
	}
	return rets
}
