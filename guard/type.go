package guard

import "reflect"

// Type describes a constructible type to the guard layer. An unbound Type
// is just a named constructor; proxying it through a factory returns a
// bound copy whose instances come back already guarded.
type Type struct {
	name    string
	ctor    func() any
	factory *Factory
}

// NewType builds an unbound type descriptor around a constructor.
func NewType(name string, ctor func() any) *Type {
	return &Type{name: name, ctor: ctor}
}

// Name returns the descriptor's type name.
func (t *Type) Name() string { return t.name }

// Guarded reports whether the descriptor is bound to a factory.
func (t *Type) Guarded() bool { return t.factory != nil }

// New constructs an instance. On a bound descriptor the instance is proxied
// before it is returned.
func (t *Type) New() any {
	return t.Wrap(t.ctor())
}

// Wrap guards an existing instance through the bound factory; unbound
// descriptors return v unchanged.
func (t *Type) Wrap(v any) any {
	if t.factory == nil {
		return v
	}
	return t.factory.Proxy(v)
}

func (t *Type) bind(f *Factory) *Type {
	return &Type{name: t.name, ctor: t.ctor, factory: f}
}

// typeVisitor binds type descriptors to the factory instead of wrapping
// them, so a proxied descriptor manufactures guarded instances. A bare
// reflect.Type becomes a bound descriptor around reflect.New.
type typeVisitor struct{}

func (typeVisitor) Visit(f *Factory, target any) (any, bool) {
	switch t := target.(type) {
	case *Type:
		return t.bind(f), true
	case reflect.Type:
		desc := NewType(baseTypeName(t), func() any {
			return reflect.New(t).Interface()
		})
		return desc.bind(f), true
	}
	return nil, false
}
