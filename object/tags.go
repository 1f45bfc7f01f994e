package object

import (
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// TagMap is an insertion-ordered key -> value mapping of resolved tags.
type TagMap = orderedmap.OrderedMap[string, any]

// GetTag resolves key on c: instance override first, then the type's own
// class-level declaration, then embedded ancestors' declarations
// (most-derived first). A key that resolves nowhere fails with
// TagNotFoundError; use GetTagOr for a fallback value.
func GetTag(c Composable, key string) (any, error) {
	for _, t := range c.base().overrides {
		if t.Key == key {
			return t.Value, nil
		}
	}

	s, err := SchemaOf(c)
	if err != nil {
		return nil, err
	}

	for _, layer := range s.Layers {
		for _, t := range layer.Tags {
			if t.Key == key {
				return t.Value, nil
			}
		}
	}

	return nil, &TagNotFoundError{Key: key, TypeName: s.Name}
}

// GetTagOr resolves key on c, returning def when the key resolves nowhere.
func GetTagOr(c Composable, key string, def any) any {
	v, err := GetTag(c, key)
	if err != nil {
		return def
	}

	return v
}

// GetTags returns the fully resolved tag mapping: class-level declarations
// overridden by instance-level ones. Iteration order is stable: class
// declaration order (a key keeps the position of its base-most declaration),
// then instance-only keys in override order.
func GetTags(c Composable) (*TagMap, error) {
	s, err := SchemaOf(c)
	if err != nil {
		return nil, err
	}

	out := orderedmap.New[string, any]()

	// Base-most layer first so positions follow declaration order; later
	// (more derived) layers overwrite values in place.
	for i := len(s.Layers) - 1; i >= 0; i-- {
		for _, t := range s.Layers[i].Tags {
			out.Set(t.Key, t.Value)
		}
	}

	for _, t := range c.base().overrides {
		out.Set(t.Key, t.Value)
	}

	return out, nil
}

// SetTag installs an instance-level tag override on c and returns c. It
// never mutates class-level declarations; the override shadows them for this
// object only.
func SetTag(c Composable, key string, value any) Composable {
	b := c.base()

	for i := range b.overrides {
		if b.overrides[i].Key == key {
			b.overrides[i].Value = value
			return c
		}
	}

	b.overrides = append(b.overrides, Tag{Key: key, Value: value})

	return c
}

// HasTag reports whether key resolves on c at any layer.
func HasTag(c Composable, key string) bool {
	_, err := GetTag(c, key)
	return err == nil
}

// TypeNameOf returns the registered (or derived) name of c's type, which is
// also the name used by Render.
func TypeNameOf(c Composable) string {
	s, err := SchemaOf(c)
	if err != nil {
		return reflect.TypeOf(c).String()
	}

	return s.Name
}
