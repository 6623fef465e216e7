package advisor

import (
	"context"
	"testing"
)

func noop(name string, order int) Advisor {
	return BeforeFunc(name, order, func(context.Context, *Invocation) error { return nil })
}

func orders(advisors []Advisor) []int {
	out := make([]int, len(advisors))
	for i, a := range advisors {
		out[i] = a.Order()
	}
	return out
}

func TestChainSortsByOrder(t *testing.T) {
	c := NewChain(noop("a", 30), noop("b", 10), noop("c", 20))
	got := orders(c.Advisors())
	want := []int{10, 20, 30}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected orders %v, got %v", want, got)
		}
	}
}

func TestChainSetResorts(t *testing.T) {
	c := NewChain()
	sets := [][]Advisor{
		{noop("a", 30), noop("b", 10), noop("c", 20)},
		{noop("c", 20), noop("a", 30), noop("b", 10)},
		{noop("b", 10), noop("c", 20), noop("a", 30)},
	}
	for _, s := range sets {
		if err := c.Set(s); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got := orders(c.Advisors())
		if got[0] != 10 || got[1] != 20 || got[2] != 30 {
			t.Fatalf("expected [10 20 30] regardless of input order, got %v", got)
		}
	}
}

func TestChainStableForEqualOrders(t *testing.T) {
	c := NewChain(noop("first", 5), noop("second", 5), noop("third", 5))
	got := c.Advisors()
	names := []string{"first", "second", "third"}
	for i, want := range names {
		if got[i].Name() != want {
			t.Errorf("position %d: expected %s, got %s", i, want, got[i].Name())
		}
	}
}

func TestChainSetNil(t *testing.T) {
	c := NewChain(noop("a", 1))
	if err := c.Set(nil); err == nil {
		t.Fatal("expected error for nil advisors")
	}
	if c.Len() != 1 {
		t.Error("failed Set must leave the prior chain intact")
	}
}

func TestChainSetEmpty(t *testing.T) {
	c := NewChain(noop("a", 1))
	if err := c.Set([]Advisor{}); err != nil {
		t.Fatalf("empty set should be allowed: %v", err)
	}
	if c.Len() != 0 {
		t.Error("expected empty chain after Set with empty slice")
	}
}

func TestChainSnapshotIsolation(t *testing.T) {
	c := NewChain(noop("a", 1), noop("b", 2))
	snap := c.Advisors()
	snap[0] = noop("mutated", 99)
	if c.Advisors()[0].Name() != "a" {
		t.Error("mutating the snapshot must not affect the chain")
	}
}

func TestChainIgnoresNilAdvisors(t *testing.T) {
	c := NewChain(noop("a", 1), nil)
	if c.Len() != 1 {
		t.Errorf("expected nil advisors filtered, got len %d", c.Len())
	}
}
