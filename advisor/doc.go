// Package advisor defines the authorization advisor contract and the
// priority-ordered chain the proxy factory attaches to every guarded view.
//
// An Advisor is an opaque rule unit: the engine never interprets what an
// advisor decides, only when it runs and in what order. Advisors declare a
// numeric order (lower runs first, i.e. closer to the caller) and opt into
// one or more interception roles by implementing the Before, After,
// ArgsFilter, or ResultFilter interfaces.
//
// A Chain keeps its advisors fully sorted at all times. Replacement is
// wholesale: Set swaps the entire contents and re-sorts, so an observer
// never sees a partially ordered chain.
package advisor
