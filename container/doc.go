// Package container defines the structural capability interfaces the proxy
// engine uses to classify values, together with ready-made implementations
// and read-only wrappers.
//
// Classification is capability-based, not nominal: a value is an
// ordered sequence because it exposes List, a sorted set because it exposes
// SortedSet, and so on. Mutability is a separate capability — the engine
// prefers refilling a container in place, and a container "rejects
// mutation" simply by not implementing the Mutable* interface. In that case
// the engine falls back to an unmodifiable copy built from the types here.
//
// All element types are deliberately type-erased (any): the engine replaces
// elements with guarded views whose concrete types differ from the
// originals.
package container
