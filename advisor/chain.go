package advisor

import (
	"sort"

	"github.com/kbukum/guardkit/errors"
)

// Chain is an ordered set of advisors, always kept fully sorted by Order
// ascending. Sorting is stable, so advisors with equal Order keep their
// insertion order. Chain itself is not safe for concurrent mutation;
// replace it wholesale during a quiescent setup phase.
type Chain struct {
	advisors []Advisor
}

// NewChain builds a chain from the given advisors, sorted by Order.
func NewChain(advisors ...Advisor) *Chain {
	c := &Chain{}
	c.replace(advisors)
	return c
}

// Set replaces the chain contents wholesale and re-sorts by Order.
// A nil slice is a configuration error; the prior chain is left intact.
func (c *Chain) Set(advisors []Advisor) error {
	if advisors == nil {
		return errors.Validation("advisors cannot be nil")
	}
	c.replace(advisors)
	return nil
}

// Advisors returns a read-only snapshot of the chain, ordered by priority.
func (c *Chain) Advisors() []Advisor {
	out := make([]Advisor, len(c.advisors))
	copy(out, c.advisors)
	return out
}

// Len returns the number of advisors in the chain.
func (c *Chain) Len() int { return len(c.advisors) }

func (c *Chain) replace(advisors []Advisor) {
	sorted := make([]Advisor, 0, len(advisors))
	for _, a := range advisors {
		if a != nil {
			sorted = append(sorted, a)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order() < sorted[j].Order()
	})
	c.advisors = sorted
}
