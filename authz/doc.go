// Package authz provides the authorization collaborators the proxy engine
// composes but never interprets.
//
// It defines a Checker interface that projects implement according to their
// needs — whether that's a simple in-memory map, a database-backed system,
// or claims carried in a signed token. A Policy maps guarded method names
// to required permissions, and the advice types (PreAdvice, PostAdvice,
// FilterAdvice) adapt Checker + Policy into advisors the proxy factory can
// attach to guarded views.
//
// The package also provides wildcard pattern matching for "resource:action"
// permission schemes and "Type.Method" method patterns, and context helpers
// for propagating the calling subject.
package authz
