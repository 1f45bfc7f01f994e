package object

import "reflect"

// Descriptor describes a single declared parameter of a composable type.
// The declared set is immutable metadata: accessors change parameter values,
// never the descriptors.
type Descriptor struct {
	// Name is the parameter name used in paths and renderings.
	Name string

	// Type is the static type of the parameter's struct field.
	Type reflect.Type

	// Default is the parameter's declared default: the field value of a
	// freshly constructed instance from the type's constructor (or the zero
	// value when the type was never registered with one).
	Default any

	// index is the field index path into the struct, usable with
	// reflect.Value.FieldByIndex. Parameters inherited from an embedded
	// ancestor have the embedding hop(s) as leading elements.
	index []int
}

// TagLayer is one layer of class-level tag declarations: the type's own
// registered tags, or those of one embedded ancestor. Layers are resolved
// first-match-wins, most-derived first.
type TagLayer struct {
	// Owner is the name of the type that declared this layer.
	Owner string

	Tags []Tag
}

// Schema is the reflected parameter and tag metadata of a composable type.
// It is computed once, at registration (or on first use), and shared.
type Schema struct {
	// Name is the type's render and registry name.
	Name string

	// Type is the underlying struct type (without the pointer).
	Type reflect.Type

	// Params holds the declared parameters in order: the type's own
	// declarations first, then inherited ones from embedded ancestors in
	// field declaration order, de-duplicated keeping the most-derived
	// declaration.
	Params []Descriptor

	// Layers holds class-level tag layers, most-derived first.
	Layers []TagLayer

	ctor func() Composable
}

// New constructs a fresh instance of the schema's type using the registered
// constructor, falling back to the zero value for unregistered types.
func (s *Schema) New() Composable {
	if s.ctor != nil {
		return s.ctor()
	}

	return reflect.New(s.Type).Interface().(Composable)
}

// Param returns the descriptor for name.
func (s *Schema) Param(name string) (Descriptor, bool) {
	for _, d := range s.Params {
		if d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}

// ParamNames returns the declared parameter names in declaration order.
func (s *Schema) ParamNames() []string {
	names := make([]string, len(s.Params))
	for i, d := range s.Params {
		names[i] = d.Name
	}

	return names
}
