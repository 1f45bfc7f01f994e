package object

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// paramTag is the struct tag key declaring a field as a parameter. The tag
// value is the parameter name; an empty value derives the name from the field
// name ("MaxIter" -> "max_iter"); "-" excludes the field.
const paramTag = "param"

var (
	baseType       = reflect.TypeOf(Base{})
	composableType = reflect.TypeOf((*Composable)(nil)).Elem()
)

// schemaResolver resolves the schema of an embedded ancestor type during
// derivation. The registry supplies itself here so recursive derivation
// happens under a single lock acquisition.
type schemaResolver func(ptr reflect.Type) (*Schema, error)

// deriveSchema computes the Schema for a pointer-to-struct composable type.
// ownTags become the type's own (most-derived) tag layer; defaults are filled
// in by the caller once a prototype exists.
func deriveSchema(t reflect.Type, name string, ownTags []Tag, resolve schemaResolver) (*Schema, error) {
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		return nil, &ReflectionError{Type: t, Reason: "composable objects must be pointers to structs"}
	}

	st := t.Elem()
	if name == "" {
		name = st.Name()
	}

	s := &Schema{Name: name, Type: st}
	if len(ownTags) > 0 {
		s.Layers = append(s.Layers, TagLayer{Owner: name, Tags: ownTags})
	}

	seen := map[string]bool{}

	var ancestors []int

	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)

		if f.Anonymous {
			if f.Type == baseType {
				continue
			}

			if f.Type.Kind() == reflect.Ptr && f.Type.Implements(composableType) {
				return nil, &ReflectionError{
					Type:   t,
					Reason: fmt.Sprintf("ancestor %s must be embedded by value, not by pointer", f.Type),
				}
			}

			if f.Type.Kind() == reflect.Struct && reflect.PointerTo(f.Type).Implements(composableType) {
				ancestors = append(ancestors, i)
				continue
			}
		}

		tag, ok := f.Tag.Lookup(paramTag)
		if !ok || tag == "-" {
			continue
		}

		if f.PkgPath != "" {
			return nil, &ReflectionError{
				Type:   t,
				Reason: fmt.Sprintf("parameter field %s must be exported", f.Name),
			}
		}

		pname := tag
		if pname == "" {
			pname = snakeCase(f.Name)
		}

		if err := validParamName(pname); err != nil {
			return nil, &ReflectionError{Type: t, Reason: err.Error()}
		}

		if seen[pname] {
			return nil, &ReflectionError{
				Type:   t,
				Reason: fmt.Sprintf("duplicate parameter name %q", pname),
			}
		}

		seen[pname] = true
		s.Params = append(s.Params, Descriptor{Name: pname, Type: f.Type, index: []int{i}})
	}

	// Inherited parameters follow the type's own, in embed declaration order.
	// A name declared by the type itself (or a nearer ancestor) wins.
	for _, i := range ancestors {
		f := st.Field(i)

		anc, err := resolve(reflect.PointerTo(f.Type))
		if err != nil {
			return nil, err
		}

		for _, d := range anc.Params {
			if seen[d.Name] {
				continue
			}

			seen[d.Name] = true
			idx := append([]int{i}, d.index...)
			s.Params = append(s.Params, Descriptor{Name: d.Name, Type: d.Type, index: idx})
		}

		s.Layers = append(s.Layers, anc.Layers...)
	}

	return s, nil
}

// fillDefaults records each parameter's declared default from a freshly
// constructed prototype.
func (s *Schema) fillDefaults() {
	pv := reflect.ValueOf(s.New()).Elem()
	for i := range s.Params {
		s.Params[i].Default = pv.FieldByIndex(s.Params[i].index).Interface()
	}
}

func validParamName(name string) error {
	if name == "" {
		return fmt.Errorf("parameter names must not be empty")
	}

	if strings.Contains(name, DefaultSeparator) {
		return fmt.Errorf("parameter name %q contains the path separator %q", name, DefaultSeparator)
	}

	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_' && i > 0:
		case r >= '0' && r <= '9' && i > 0:
		default:
			return fmt.Errorf("parameter name %q is not a lower_snake identifier", name)
		}
	}

	return nil
}

// snakeCase converts a Go field name to a snake_case parameter name,
// keeping acronym runs intact: "MaxIter" -> "max_iter", "PDScale" -> "pd_scale".
func snakeCase(s string) string {
	runes := []rune(s)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if prevLower || nextLower {
				b.WriteRune('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
