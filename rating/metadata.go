package rating

import (
	"fmt"
	"sort"
	"unicode"
)

// Metadata is an immutable string-keyed container for supplementary rating
// system information (sources, reference dates, regulatory notes). Keys must
// be valid identifiers: a letter or underscore followed by letters, digits
// or underscores.
type Metadata struct {
	keys   []string
	values map[string]any
}

// NewMetadata builds a metadata container from a map. Keys are stored
// sorted. All invalid keys are reported together.
func NewMetadata(m map[string]any) (*Metadata, error) {
	var bad []string

	keys := make([]string, 0, len(m))
	for k := range m {
		if !validMetadataKey(k) {
			bad = append(bad, k)
			continue
		}

		keys = append(keys, k)
	}

	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, &MetadataError{Keys: bad, Reason: "not a valid identifier"}
	}

	sort.Strings(keys)

	values := make(map[string]any, len(m))
	for k, v := range m {
		values[k] = v
	}

	return &Metadata{keys: keys, values: values}, nil
}

// MustMetadata is NewMetadata that panics on invalid keys. Intended for
// package-level metadata literals.
func MustMetadata(m map[string]any) *Metadata {
	md, err := NewMetadata(m)
	if err != nil {
		panic(err)
	}

	return md
}

// Len reports the number of metadata entries.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Has reports whether the key is present.
func (m *Metadata) Has(key string) bool {
	if m == nil {
		return false
	}

	_, ok := m.values[key]

	return ok
}

// Value returns the value stored under key.
func (m *Metadata) Value(key string) (any, error) {
	if m.Has(key) {
		return m.values[key], nil
	}

	return nil, &MetadataError{Keys: []string{key}, Reason: "not present"}
}

// Keys returns the keys in sorted order.
func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}

	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Map returns a fresh key-to-value map.
func (m *Metadata) Map() map[string]any {
	if m == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}

	return out
}

// Subset returns a new container restricted to the given keys. All
// requested keys must be present.
func (m *Metadata) Subset(keys ...string) (*Metadata, error) {
	var missing []string

	sub := make(map[string]any, len(keys))
	for _, k := range keys {
		if !m.Has(k) {
			missing = append(missing, k)
			continue
		}

		sub[k] = m.values[k]
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &MetadataError{Keys: missing, Reason: "not present"}
	}

	return NewMetadata(sub)
}

// Add returns a new container with the given entries merged in; existing
// keys take the new value.
func (m *Metadata) Add(extra map[string]any) (*Metadata, error) {
	merged := m.Map()
	for k, v := range extra {
		merged[k] = v
	}

	return NewMetadata(merged)
}

// CloneValue returns the container itself: metadata is immutable and safe
// to share between an object and its clone.
func (m *Metadata) CloneValue() any { return m }

func (m *Metadata) String() string {
	return fmt.Sprintf("Metadata%v", m.Keys())
}

func validMetadataKey(key string) bool {
	if key == "" {
		return false
	}

	for i, r := range key {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}

	return true
}
