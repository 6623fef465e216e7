package guard

import (
	"testing"
	"time"
)

func TestOfFirstNonDeclineWins(t *testing.T) {
	decline := VisitorFunc(func(*Factory, any) (any, bool) { return nil, false })
	first := VisitorFunc(func(_ *Factory, v any) (any, bool) { return "first", true })
	second := VisitorFunc(func(_ *Factory, v any) (any, bool) { return "second", true })

	out, ok := Of(decline, nil, first, second).Visit(nil, "x")
	if !ok || out != "first" {
		t.Fatalf("expected first to win, got %v (ok=%v)", out, ok)
	}
}

func TestOfEmptyDeclines(t *testing.T) {
	if _, ok := Of().Visit(nil, "x"); ok {
		t.Fatal("empty composition must decline")
	}
}

func TestSetVisitorReplacesStrategy(t *testing.T) {
	f := New()
	passEverything := VisitorFunc(func(_ *Factory, v any) (any, bool) { return v, true })
	if err := f.SetVisitor(passEverything); err != nil {
		t.Fatalf("SetVisitor failed: %v", err)
	}
	a := &account{}
	if got := f.Proxy(a); got != any(a) {
		t.Fatalf("custom visitor should pass targets through, got %T", got)
	}
}

func TestSetVisitorNilRejected(t *testing.T) {
	f := New()
	if err := f.SetVisitor(nil); err == nil {
		t.Fatal("expected error for nil visitor")
	}
	asView(t, f.Proxy(&account{}))
}

func TestSkipValueTypesPreset(t *testing.T) {
	now := time.Now()

	skip := New(WithVisitor(DefaultsSkipValueTypes()))
	if got := skip.Proxy(now); got != any(now) {
		t.Fatalf("expected time through under skip preset, got %T", got)
	}
	if got := skip.Proxy(42); got != 42 {
		t.Fatalf("expected int through, got %v", got)
	}
	asView(t, skip.Proxy(&account{}))

	// Under the plain defaults, times have methods and get wrapped.
	asView(t, New().Proxy(now))
}
