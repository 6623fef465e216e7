package guard

import (
	"reflect"
	"time"
)

// valueTypeVisitor passes plain data values through without wrapping.
// Scalars carry no behavior worth guarding, and wrapping them would only
// break callers expecting the concrete type back.
type valueTypeVisitor struct{}

func (valueTypeVisitor) Visit(_ *Factory, target any) (any, bool) {
	if target == nil {
		return nil, false
	}
	switch target.(type) {
	case time.Time, time.Duration, []byte, error:
		return target, true
	}
	switch reflect.TypeOf(target).Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return target, true
	}
	return nil, false
}
