package container

// optionalValue is an immutable Optional holding at most one value.
type optionalValue struct {
	v  any
	ok bool
}

// Get implements Optional.
func (o optionalValue) Get() (any, bool) { return o.v, o.ok }

// Some builds an Optional holding v.
func Some(v any) Optional { return optionalValue{v: v, ok: true} }

// None builds an empty Optional.
func None() Optional { return optionalValue{} }
