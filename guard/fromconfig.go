package guard

import (
	"github.com/kbukum/guardkit/advisor"
	"github.com/kbukum/guardkit/authz"
	"github.com/kbukum/guardkit/config"
	"github.com/kbukum/guardkit/logger"
)

// FromConfig assembles a factory from configuration: a map-backed checker
// over the configured subject permissions, before/after advice from the
// policy rules, the selected visitor preset, and the configured
// guard-return patterns. keep enables result filtering for PhaseFilter
// rules; pass nil when no filter rules are configured. Options are applied
// last and may override anything the configuration set.
func FromConfig(cfg *config.Config, keep authz.ElementPredicate, opts ...Option) *Factory {
	checker := authz.NewMapChecker(cfg.Policy.Permissions)
	policy := authz.NewPolicy(cfg.Policy.Rules...)

	advisors := []advisor.Advisor{
		authz.NewPreAdvice(checker, policy),
		authz.NewPostAdvice(checker, policy),
	}
	if keep != nil {
		advisors = append(advisors, authz.NewFilterAdvice(policy, keep))
	}

	visitor := Defaults()
	if cfg.Proxy.Preset == config.PresetSkipValueTypes {
		visitor = DefaultsSkipValueTypes()
	}

	base := []Option{
		WithAdvisors(advisors...),
		WithVisitor(visitor),
		WithGuardReturns(cfg.Proxy.GuardReturns...),
		WithLogger(logger.New(&cfg.Logging, "guardkit")),
	}
	return New(append(base, opts...)...)
}
