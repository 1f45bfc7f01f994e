package object

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultSeparator joins path segments addressing nested parameters, as in
// "step__alpha". Parameter names may not contain it.
const DefaultSeparator = "__"

// ParamMap is an insertion-ordered name -> value mapping. Iteration order is
// the declared parameter order, never runtime map order.
type ParamMap = orderedmap.OrderedMap[string, any]

// Accessor performs parameter access with a configurable path separator.
// The zero value uses DefaultSeparator; a custom separator must be non-empty
// and must not occur inside any declared parameter name.
type Accessor struct {
	Separator string
}

func (a Accessor) sep() string {
	if a.Separator == "" {
		return DefaultSeparator
	}

	return a.Separator
}

// GetParams returns c's parameters with the default accessor. See
// Accessor.GetParams.
func GetParams(c Composable, deep bool) (*ParamMap, error) {
	return Accessor{}.GetParams(c, deep)
}

// SetParams applies values to c with the default accessor. See
// Accessor.SetParams.
func SetParams(c Composable, values map[string]any) error {
	return Accessor{}.SetParams(c, values)
}

// GetParams returns c's parameters in declaration order. When deep is true,
// every parameter value that is itself composable additionally contributes
// its own parameters under "name<sep>subname" paths, recursively, immediately
// after the parent entry. Revisiting an object already on the current path
// fails with CycleError.
func (a Accessor) GetParams(c Composable, deep bool) (*ParamMap, error) {
	out := orderedmap.New[string, any]()
	if err := a.collect(c, "", out, map[*Base]bool{}, deep); err != nil {
		return nil, err
	}

	return out, nil
}

func (a Accessor) collect(c Composable, prefix string, out *ParamMap, visiting map[*Base]bool, deep bool) error {
	id := c.base()
	if visiting[id] {
		return &CycleError{Path: strings.TrimSuffix(prefix, a.sep())}
	}

	visiting[id] = true
	defer delete(visiting, id)

	s, err := SchemaOf(c)
	if err != nil {
		return err
	}

	if err := a.checkSeparator(s); err != nil {
		return err
	}

	v := reflect.ValueOf(c).Elem()

	for _, d := range s.Params {
		val := v.FieldByIndex(d.index).Interface()
		out.Set(prefix+d.Name, val)

		if !deep {
			continue
		}

		if nested, ok := asComposable(val); ok {
			if err := a.collect(nested, prefix+d.Name+a.sep(), out, visiting, true); err != nil {
				return err
			}
		}
	}

	return nil
}

// assignment is a fully validated, fully converted pending mutation.
type assignment struct {
	target reflect.Value
	desc   Descriptor
	value  reflect.Value
}

// SetParams sets the named parameters on c and returns nil, or applies
// nothing at all. Paths may address nested parameters ("step__alpha");
// every intermediate segment must resolve to a composable value. Unknown
// paths are collected into one UnknownParameterError; values that cannot be
// converted to the parameter's type fail with an error naming the path.
// Validation and conversion complete before the first mutation.
func (a Accessor) SetParams(c Composable, values map[string]any) error {
	paths := make([]string, 0, len(values))
	for p := range values {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	var (
		unknown []string
		assigns []assignment
		convErr error
	)

	for _, path := range paths {
		as, ok, err := a.resolve(c, path, values[path])
		if !ok {
			unknown = append(unknown, path)
			continue
		}

		if err != nil {
			var rerr *ReflectionError
			if errors.As(err, &rerr) {
				return err
			}

			if convErr == nil {
				convErr = fmt.Errorf("object: set %q: %w", path, err)
			}

			continue
		}

		assigns = append(assigns, as)
	}

	if len(unknown) > 0 {
		return &UnknownParameterError{Paths: unknown}
	}

	if convErr != nil {
		return convErr
	}

	for _, as := range assigns {
		as.target.FieldByIndex(as.desc.index).Set(as.value)
	}

	return nil
}

// resolve walks a path down to its owning object and converts the value to
// the parameter's type. ok is false when the path does not name a declared
// parameter (including intermediate segments that are not composable).
func (a Accessor) resolve(c Composable, path string, value any) (assignment, bool, error) {
	segs := strings.Split(path, a.sep())
	target := c

	for _, seg := range segs[:len(segs)-1] {
		s, err := SchemaOf(target)
		if err != nil {
			return assignment{}, true, err
		}

		if err := a.checkSeparator(s); err != nil {
			return assignment{}, true, err
		}

		d, ok := s.Param(seg)
		if !ok {
			return assignment{}, false, nil
		}

		val := reflect.ValueOf(target).Elem().FieldByIndex(d.index).Interface()

		nested, ok := asComposable(val)
		if !ok {
			return assignment{}, false, nil
		}

		target = nested
	}

	s, err := SchemaOf(target)
	if err != nil {
		return assignment{}, true, err
	}

	if err := a.checkSeparator(s); err != nil {
		return assignment{}, true, err
	}

	d, ok := s.Param(segs[len(segs)-1])
	if !ok {
		return assignment{}, false, nil
	}

	rv, err := convertValue(value, d.Type)
	if err != nil {
		return assignment{}, true, err
	}

	return assignment{target: reflect.ValueOf(target).Elem(), desc: d, value: rv}, true, nil
}

// checkSeparator rejects a custom separator that occurs inside a declared
// parameter name of s, which would make every path over s ambiguous. Names
// can never contain DefaultSeparator; derivation already rejects those.
func (a Accessor) checkSeparator(s *Schema) error {
	sep := a.sep()
	if sep == DefaultSeparator {
		return nil
	}

	for _, d := range s.Params {
		if strings.Contains(d.Name, sep) {
			return &ReflectionError{
				Type:   reflect.PointerTo(s.Type),
				Reason: fmt.Sprintf("parameter name %q contains the path separator %q", d.Name, sep),
			}
		}
	}

	return nil
}

// convertValue produces a value of type t from v: direct assignment when
// possible, numeric conversion between number kinds, and otherwise a
// mapstructure decode (maps into config structs, string-keyed coercions).
func convertValue(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil is not assignable to %s", t)
		}
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}

	if isNumeric(rv.Kind()) && isNumeric(t.Kind()) && rv.Type().ConvertibleTo(t) {
		return rv.Convert(t), nil
	}

	out := reflect.New(t)

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: out.Interface()})
	if err != nil {
		return reflect.Value{}, err
	}

	if err := dec.Decode(v); err != nil {
		return reflect.Value{}, fmt.Errorf("cannot assign %T to %s: %w", v, t, err)
	}

	return out.Elem(), nil
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
