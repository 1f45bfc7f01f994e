package object

import "reflect"

// Composable is implemented by every framework-managed object.
//
// A type joins the framework by embedding Base (by value) in its struct and
// being used through a pointer:
//
//	type Ridge struct {
//	    object.Base
//	    Alpha  float64 `param:"alpha"`
//	    Solver string  `param:"solver"`
//	}
//
// The unexported method keeps the interface sealed: only Base-embedding types
// satisfy it, so the rest of the package can rely on Base being present.
type Composable interface {
	base() *Base
}

// Base is the embeddable framework state of a composable object. It carries
// the object's identity (the *Base pointer is unique per instance) and any
// instance-level tag overrides installed with SetTag.
//
// Base itself is never a parameter; schema derivation skips it.
type Base struct {
	overrides []Tag
}

func (b *Base) base() *Base { return b }

// Tag is a single metadata key/value pair. Class-level tags are declared at
// registration with WithTag; instance-level overrides are installed with
// SetTag and shadow class-level tags of the same key.
type Tag struct {
	Key   string
	Value any
}

// asComposable reports whether v holds a usable composable value. A typed nil
// pointer inside an interface satisfies a naive type assertion but has no
// identity and no fields, so it is rejected here.
func asComposable(v any) (Composable, bool) {
	c, ok := v.(Composable)
	if !ok {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil, false
	}

	return c, true
}
