// Package guard builds authorization-enforcing wrappers ("guarded views")
// around arbitrary values at runtime.
//
// A Factory wraps a target so that every method invocation runs through an
// ordered chain of advisors before (and after) it reaches the target. The
// target's type does not need to cooperate: func values are rewrapped into
// funcs of the same type, and any value with exported methods becomes a
// *View driven through Invoke. Values the factory cannot guard (methodless
// non-funcs) pass through unchanged.
//
//	checker := authz.NewMapChecker(map[string][]string{"teller": {"account:read"}})
//	policy := authz.NewPolicy(authz.Rule{Method: "Account.*", Permission: "account:write"})
//	factory := guard.WithDefaults(checker, policy)
//
//	view := factory.Proxy(&Account{}).(*guard.View)
//	ctx := authz.WithSubject(context.Background(), "teller")
//	_, err := view.Invoke(ctx, "Withdraw", 100)  // denied
//
// Before wrapping a value directly, the factory offers it to a visitor
// chain that may instead descend into it: containers are rebuilt with
// guarded elements (in place when the container is mutable, as an
// unmodifiable copy otherwise), iterators and lazy sequences wrap at pull
// time, and async futures/streams map their payloads without touching
// completion or cancellation. Visitors recursively call Factory.Proxy on
// nested values, so arbitrarily nested object graphs come back guarded at
// every level.
package guard
