package object

import (
	"fmt"
	"reflect"
)

// Cloneable is the hook recognized for opaque parameter values that know how
// to produce an independent (or safely shareable, for immutable types) copy
// of themselves during Clone.
type Cloneable interface {
	CloneValue() any
}

// Clone reconstructs an object of the same type from c's current top-level
// parameters: a fresh, unfitted instance with no framework-managed mutable
// state shared with c.
//
// Nested composable values are cloned recursively. Slices and maps receive a
// best-effort value copy (elements cloned by the same rule); plain scalars
// are copied by value; opaque values implementing Cloneable use their hook.
// Other references (pointers to non-composable types, channels, functions)
// are retained as-is; only composable nesting is guaranteed independent.
//
// Instance-level tag overrides are not carried over: a clone is a freshly
// constructed object, and construction never installs overrides.
//
// After construction the result is checked against c with Equal; a mismatch
// fails with CloneError instead of returning a subtly different object.
func Clone(c Composable) (Composable, error) {
	s, err := SchemaOf(c)
	if err != nil {
		return nil, err
	}

	out := s.New()
	if reflect.TypeOf(out) != reflect.TypeOf(c) {
		return nil, &CloneError{
			TypeName: s.Name,
			Reason:   fmt.Sprintf("constructor produced %T", out),
		}
	}

	src := reflect.ValueOf(c).Elem()
	dst := reflect.ValueOf(out).Elem()

	for _, d := range s.Params {
		cv, err := cloneValue(src.FieldByIndex(d.index).Interface())
		if err != nil {
			return nil, err
		}

		setCloned(dst.FieldByIndex(d.index), cv)
	}

	if !Equal(c, out) {
		return nil, &CloneError{
			TypeName: s.Name,
			Reason:   "reconstructed object does not equal the original",
		}
	}

	return out, nil
}

// MustClone is Clone panicking on error, for composition sites where a
// failed clone is a programming error.
func MustClone(c Composable) Composable {
	out, err := Clone(c)
	if err != nil {
		panic(err)
	}

	return out
}

func cloneValue(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return v, nil
	}

	if comp, ok := asComposable(v); ok {
		return Clone(comp)
	}

	if cl, ok := v.(Cloneable); ok {
		return cl.CloneValue(), nil
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v, nil
		}

		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())

		for i := 0; i < rv.Len(); i++ {
			cv, err := cloneValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}

			setCloned(out.Index(i), cv)
		}

		return out.Interface(), nil

	case reflect.Map:
		if rv.IsNil() {
			return v, nil
		}

		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			cv, err := cloneValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}

			if cv == nil {
				out.SetMapIndex(iter.Key(), reflect.Zero(rv.Type().Elem()))
			} else {
				out.SetMapIndex(iter.Key(), reflect.ValueOf(cv))
			}
		}

		return out.Interface(), nil

	default:
		// Value copy for scalars and plain structs; shared reference for
		// pointers, channels and functions.
		return v, nil
	}
}

// setCloned assigns a cloned value into dst, falling back to the zero value
// for nil and leaving dst untouched when the clone's type cannot be
// assigned (a misbehaving Cloneable hook).
func setCloned(dst reflect.Value, cv any) {
	if cv == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return
	}

	rv := reflect.ValueOf(cv)
	if rv.Type().AssignableTo(dst.Type()) {
		dst.Set(rv)
	}
}
