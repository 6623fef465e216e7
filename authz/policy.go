package authz

// Phase identifies when a policy rule is enforced relative to the call.
type Phase string

const (
	// PhaseBefore checks the permission before the target method runs.
	PhaseBefore Phase = "before"
	// PhaseAfter checks the permission after the target method ran.
	PhaseAfter Phase = "after"
	// PhaseFilter filters elements out of the method's result.
	PhaseFilter Phase = "filter"
)

// Rule binds a method pattern to a required permission at one phase.
type Rule struct {
	// Method is a "Type.Method" pattern; see MatchMethod for wildcards.
	Method string `yaml:"method" mapstructure:"method" validate:"required"`
	// Permission is the permission a subject must hold.
	Permission string `yaml:"permission" mapstructure:"permission" validate:"required"`
	// Phase defaults to PhaseBefore.
	Phase Phase `yaml:"phase" mapstructure:"phase" validate:"omitempty,oneof=before after filter"`
}

// Policy is an ordered set of rules mapping guarded method names to
// required permissions. The first rule whose method pattern matches wins.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from the given rules, kept in order.
func NewPolicy(rules ...Rule) Policy {
	normalized := make([]Rule, len(rules))
	copy(normalized, rules)
	for i := range normalized {
		if normalized[i].Phase == "" {
			normalized[i].Phase = PhaseBefore
		}
	}
	return Policy{rules: normalized}
}

// PermissionFor returns the permission required for method at the given
// phase, or false when no rule matches.
func (p Policy) PermissionFor(method string, phase Phase) (string, bool) {
	for _, r := range p.rules {
		if r.Phase == phase && MatchMethod(r.Method, method) {
			return r.Permission, true
		}
	}
	return "", false
}

// Rules returns a copy of the policy's rules.
func (p Policy) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	copy(out, p.rules)
	return out
}
