package async

import "context"

// Stream provides pull-based sequential access to an asynchronous sequence
// of values.
type Stream interface {
	// Next returns the next value. Returns (nil, false, nil) when the
	// stream has completed, and ctx.Err() when ctx is cancelled first.
	Next(ctx context.Context) (any, bool, error)
	// Close releases any resources held by the stream.
	Close() error
}

// sliceStream yields a fixed set of values.
type sliceStream struct {
	items []any
	next  int
}

func (s *sliceStream) Next(ctx context.Context) (any, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if s.next >= len(s.items) {
		return nil, false, nil
	}
	v := s.items[s.next]
	s.next++
	return v, true, nil
}

func (s *sliceStream) Close() error { return nil }

// FromSlice creates a Stream yielding the given values in order.
func FromSlice(items ...any) Stream {
	return &sliceStream{items: items}
}

// chanStream reads values from a channel until it is closed.
type chanStream struct {
	ch     <-chan any
	cancel context.CancelFunc
}

func (s *chanStream) Next(ctx context.Context) (any, bool, error) {
	select {
	case v, open := <-s.ch:
		if !open {
			return nil, false, nil
		}
		return v, true, nil
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}

func (s *chanStream) Close() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// FromChan creates a Stream reading from ch until ch is closed. The
// optional cancel function is invoked by Close to stop the producer.
func FromChan(ch <-chan any, cancel context.CancelFunc) Stream {
	return &chanStream{ch: ch, cancel: cancel}
}

// mappedStream transforms each value of a source stream.
type mappedStream struct {
	src Stream
	fn  func(any) any
}

func (s *mappedStream) Next(ctx context.Context) (any, bool, error) {
	v, ok, err := s.src.Next(ctx)
	if err != nil || !ok {
		return nil, ok, err
	}
	return s.fn(v), true, nil
}

func (s *mappedStream) Close() error { return s.src.Close() }

// MapStream returns a Stream yielding fn(v) for each source value v.
// Completion, errors, and cancellation pass through exactly; fn runs at
// pull time on the consuming goroutine, adding no buffering or scheduling.
func MapStream(src Stream, fn func(any) any) Stream {
	return &mappedStream{src: src, fn: fn}
}

// Collect pulls all values from s and returns them as a slice.
func Collect(ctx context.Context, s Stream) ([]any, error) {
	defer s.Close()
	var out []any
	for {
		v, ok, err := s.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}
