package guard

// Visitor decides whether a target should be handled structurally instead
// of being wrapped whole. Visit returns the replacement value and true when
// it handles the target, or declines with false so the next visitor (or the
// factory's whole-value wrapping) can take over.
//
// Visitors may call f.Proxy on nested values but must never call f.Proxy on
// the value passed to them; that would recurse forever.
type Visitor interface {
	Visit(f *Factory, target any) (any, bool)
}

// VisitorFunc adapts a plain function to the Visitor interface.
type VisitorFunc func(f *Factory, target any) (any, bool)

func (fn VisitorFunc) Visit(f *Factory, target any) (any, bool) {
	return fn(f, target)
}

type multiVisitor struct {
	visitors []Visitor
}

// Of composes visitors into one that tries each in order and returns the
// first non-declined result. Nil entries are skipped. An empty composition
// declines everything.
func Of(visitors ...Visitor) Visitor {
	vs := make([]Visitor, 0, len(visitors))
	for _, v := range visitors {
		if v != nil {
			vs = append(vs, v)
		}
	}
	return &multiVisitor{visitors: vs}
}

func (m *multiVisitor) Visit(f *Factory, target any) (any, bool) {
	for _, v := range m.visitors {
		if out, ok := v.Visit(f, target); ok {
			return out, true
		}
	}
	return nil, false
}

// Defaults returns the standard visitor chain: guarded type descriptors
// first, then async values, then containers. Everything else falls through
// to whole-value wrapping.
func Defaults() Visitor {
	return Of(typeVisitor{}, asyncVisitor{}, containerVisitor{})
}

// DefaultsSkipValueTypes behaves like Defaults but additionally passes
// value types (strings, numbers, bools, time-like scalars) through
// unwrapped. Useful when targets mix domain objects with plain data.
func DefaultsSkipValueTypes() Visitor {
	return Of(typeVisitor{}, valueTypeVisitor{}, asyncVisitor{}, containerVisitor{})
}
