package object

import (
	"fmt"
	"reflect"
	"sync"
)

// registry caches schemas per composable type. Registered entries carry the
// type's constructor and class-level tags; unregistered types get a derived
// schema with zero-value defaults on first use. The lock makes lazy
// population safe for concurrent readers.
type registry struct {
	mu      sync.RWMutex
	schemas map[reflect.Type]*Schema
}

var defaultRegistry = &registry{schemas: map[reflect.Type]*Schema{}}

// RegisterOption configures a Register call.
type RegisterOption func(*registerOptions)

type registerOptions struct {
	name string
	tags []Tag
}

// WithName overrides the registered type name used by renderings and error
// messages. The default is the Go type name.
func WithName(name string) RegisterOption {
	return func(o *registerOptions) { o.name = name }
}

// WithTag declares a class-level tag for the registered type. Tags keep the
// order of the WithTag calls; a subclass overrides individual keys while
// inheriting the rest from its embedded ancestors.
func WithTag(key string, value any) RegisterOption {
	return func(o *registerOptions) { o.tags = append(o.tags, Tag{Key: key, Value: value}) }
}

// Register declares a composable type: its constructor (whose result also
// supplies the declared parameter defaults) and its class-level tags. The
// schema is computed here, once, not lazily at first use.
//
// Registering a type again replaces its schema. Register ancestors before
// descendants: a descendant snapshots its embedded ancestors' tag layers at
// registration time. Register panics on non-introspectable types since
// registration happens at init time and a broken declaration is a
// programming error.
func Register(ctor func() Composable, opts ...RegisterOption) *Schema {
	s, err := defaultRegistry.register(ctor, opts...)
	if err != nil {
		panic(fmt.Sprintf("object: %v", err))
	}

	return s
}

// SchemaOf returns the schema of c's type, deriving and caching it when the
// type was never registered.
func SchemaOf(c Composable) (*Schema, error) {
	if c == nil {
		return nil, &ReflectionError{Reason: "nil composable"}
	}

	return defaultRegistry.schemaFor(reflect.TypeOf(c))
}

// ResetRegistry drops every cached schema, including registered ones. It is
// an explicit invalidation hook for tests that manage their own
// registrations; library consumers normally never call it.
func ResetRegistry() {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()

	defaultRegistry.schemas = map[reflect.Type]*Schema{}
}

func (r *registry) register(ctor func() Composable, opts ...RegisterOption) (*Schema, error) {
	if ctor == nil {
		return nil, &ReflectionError{Reason: "nil constructor"}
	}

	proto := ctor()
	if proto == nil {
		return nil, &ReflectionError{Reason: "constructor returned nil"}
	}

	var o registerOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := reflect.TypeOf(proto)

	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := deriveSchema(t, o.name, o.tags, r.resolveLocked)
	if err != nil {
		return nil, err
	}

	s.ctor = ctor
	s.fillDefaults()
	r.schemas[t] = s

	return s, nil
}

func (r *registry) schemaFor(t reflect.Type) (*Schema, error) {
	r.mu.RLock()
	s, ok := r.schemas[t]
	r.mu.RUnlock()

	if ok {
		return s, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.resolveLocked(t)
}

// resolveLocked returns the cached schema for t or derives one with
// zero-value defaults. Callers must hold the write lock; ancestor resolution
// recurses through here without re-locking.
func (r *registry) resolveLocked(t reflect.Type) (*Schema, error) {
	if s, ok := r.schemas[t]; ok {
		return s, nil
	}

	s, err := deriveSchema(t, "", nil, r.resolveLocked)
	if err != nil {
		return nil, err
	}

	s.fillDefaults()
	r.schemas[t] = s

	return s, nil
}
