package guard

import (
	"github.com/kbukum/guardkit/async"
)

// asyncVisitor maps guarding over deferred values without disturbing their
// completion, errors, or cancellation. Futures and streams wrap lazily at
// resolution time; any-typed channels are pumped through a goroutine that
// guards each element and closes the output when the source closes.
type asyncVisitor struct{}

func (asyncVisitor) Visit(f *Factory, target any) (any, bool) {
	switch v := target.(type) {
	case async.Future:
		return async.MapFuture(v, f.Proxy), true
	case async.Stream:
		return async.MapStream(v, f.Proxy), true
	case chan any:
		out := make(chan any)
		go pump(f, v, out)
		return out, true
	case <-chan any:
		out := make(chan any)
		go pump(f, v, out)
		return (<-chan any)(out), true
	}
	return nil, false
}

// pump forwards guarded values from src into out and closes out when src
// closes. out is unbuffered so the source's own buffer is the only
// buffering between producer and consumer. A consumer that abandons out
// while src stays open leaves the goroutine blocked on the send; raw
// channels carry no cancellation protocol. Wrap the channel with
// async.FromChan when the consumer needs to walk away early.
func pump(f *Factory, src <-chan any, out chan<- any) {
	defer close(out)
	for v := range src {
		out <- f.Proxy(v)
	}
}
