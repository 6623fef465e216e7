package guard

import (
	"context"

	"github.com/kbukum/guardkit/advisor"
	"github.com/kbukum/guardkit/authz"
)

// OrderReturnObject places the return-object advisor innermost, so results
// are re-guarded before any other advisor inspects them on the way out.
const OrderReturnObject = 1000

// ReturnGuard marks targets whose method results must themselves be
// guarded. GuardReturns receives the qualified "Type.Method" name of the
// call that produced the result.
type ReturnGuard interface {
	GuardReturns(method string) bool
}

// returnObjectAdvisor recursively proxies method results. Every factory
// chain carries one; it fires when the target opts in via ReturnGuard or
// the method matches one of the factory's guard-return patterns.
type returnObjectAdvisor struct {
	factory *Factory
}

func (a *returnObjectAdvisor) Name() string { return "guard.return-object" }

func (a *returnObjectAdvisor) Order() int { return OrderReturnObject }

func (a *returnObjectAdvisor) FilterResult(_ context.Context, inv *advisor.Invocation, result any) (any, error) {
	if result == nil || !a.guards(inv) {
		return result, nil
	}
	return a.factory.Proxy(result), nil
}

func (a *returnObjectAdvisor) guards(inv *advisor.Invocation) bool {
	if rg, ok := inv.Target.(ReturnGuard); ok && rg.GuardReturns(inv.Method) {
		return true
	}
	for _, pattern := range a.factory.guardReturns {
		if authz.MatchMethod(pattern, inv.Method) {
			return true
		}
	}
	return false
}

var _ advisor.ResultFilter = (*returnObjectAdvisor)(nil)
