package async

import "context"

// Future is an asynchronous computation that eventually yields one value.
// Await blocks until the value is available, the computation fails, or ctx
// is cancelled.
type Future interface {
	Await(ctx context.Context) (any, error)
}

// FutureFunc is an adapter to use ordinary functions as Futures.
type FutureFunc func(ctx context.Context) (any, error)

// Await calls f(ctx).
func (f FutureFunc) Await(ctx context.Context) (any, error) {
	return f(ctx)
}

var _ Future = FutureFunc(nil)

// Resolved returns a Future that immediately yields v.
func Resolved(v any) Future {
	return FutureFunc(func(context.Context) (any, error) { return v, nil })
}

// Go runs fn on its own goroutine and returns a Future for its result.
// Await honors ctx cancellation even if fn is still running.
func Go(fn func() (any, error)) Future {
	done := make(chan struct{})
	var (
		val any
		err error
	)
	go func() {
		defer close(done)
		val, err = fn()
	}()
	return FutureFunc(func(ctx context.Context) (any, error) {
		select {
		case <-done:
			return val, err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
}

// MapFuture returns a Future that yields fn(v) for the source's value v.
// Errors and cancellation pass through untouched; fn runs at Await time on
// the awaiting goroutine.
func MapFuture(src Future, fn func(any) any) Future {
	return FutureFunc(func(ctx context.Context) (any, error) {
		v, err := src.Await(ctx)
		if err != nil {
			return nil, err
		}
		return fn(v), nil
	})
}
