package object

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// DefaultMaxWidth is the line width renderings are wrapped to, analogous to
// common source-formatting widths.
const DefaultMaxWidth = 88

// spewCfg formats opaque parameter values. SortKeys makes map-valued
// parameters render identically across runs regardless of map iteration
// order.
var spewCfg = spew.ConfigState{
	Indent:                  " ",
	SortKeys:                true,
	SpewKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Renderer produces deterministic, human-readable representations. The zero
// value renders with DefaultMaxWidth and omits parameters equal to their
// declared default.
type Renderer struct {
	// MaxWidth is the maximum line width; 0 means DefaultMaxWidth.
	MaxWidth int

	// ShowAll renders every parameter, including those equal to their
	// declared default.
	ShowAll bool
}

// Render renders c with the zero Renderer.
func Render(c Composable) string {
	return Renderer{}.Render(c)
}

func (r Renderer) width() int {
	if r.MaxWidth <= 0 {
		return DefaultMaxWidth
	}

	return r.MaxWidth
}

// Render returns c's representation: "Name(param=value, ...)" with
// parameters in declaration order and, by default, only those differing from
// their declared default. When the one-line form exceeds MaxWidth the
// arguments wrap one per line, aligned under the opening parenthesis.
// Identical object state always renders identically.
func (r Renderer) Render(c Composable) string {
	return r.render(c, 0, map[*Base]bool{})
}

type renderEntry struct {
	name string
	val  any
}

func (r Renderer) render(c Composable, offset int, visiting map[*Base]bool) string {
	s, err := SchemaOf(c)
	if err != nil {
		return fmt.Sprintf("%T(<unreflectable>)", c)
	}

	id := c.base()
	if visiting[id] {
		return s.Name + "(...)"
	}

	visiting[id] = true
	defer delete(visiting, id)

	v := reflect.ValueOf(c).Elem()

	var entries []renderEntry

	for _, d := range s.Params {
		val := v.FieldByIndex(d.index).Interface()
		if !r.ShowAll && paramEqual(val, d.Default) {
			continue
		}

		entries = append(entries, renderEntry{name: d.Name, val: val})
	}

	flat := r.renderFlat(s.Name, entries, visiting)
	if offset+len(flat) <= r.width() || len(entries) == 0 {
		return flat
	}

	// One argument per line, continuation lines aligned under the opening
	// parenthesis.
	indent := offset + len(s.Name) + 1
	pad := strings.Repeat(" ", indent)

	var b strings.Builder

	b.WriteString(s.Name)
	b.WriteString("(")

	for i, e := range entries {
		if i > 0 {
			b.WriteString(pad)
		}

		b.WriteString(e.name)
		b.WriteString("=")
		b.WriteString(r.formatValue(e.val, indent+len(e.name)+1, visiting))

		if i < len(entries)-1 {
			b.WriteString(",\n")
		}
	}

	b.WriteString(")")

	return b.String()
}

// renderFlat renders the one-line form, with nested objects forced onto one
// line as well; the caller decides whether it fits.
func (r Renderer) renderFlat(name string, entries []renderEntry, visiting map[*Base]bool) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.name + "=" + r.flatValue(e.val, visiting)
	}

	return name + "(" + strings.Join(parts, ", ") + ")"
}

func (r Renderer) flatValue(v any, visiting map[*Base]bool) string {
	if nested, ok := asComposable(v); ok {
		id := nested.base()
		if visiting[id] {
			return TypeNameOf(nested) + "(...)"
		}

		visiting[id] = true
		defer delete(visiting, id)

		s, err := SchemaOf(nested)
		if err != nil {
			return fmt.Sprintf("%T(<unreflectable>)", nested)
		}

		nv := reflect.ValueOf(nested).Elem()

		var entries []renderEntry

		for _, d := range s.Params {
			val := nv.FieldByIndex(d.index).Interface()
			if !r.ShowAll && paramEqual(val, d.Default) {
				continue
			}

			entries = append(entries, renderEntry{name: d.Name, val: val})
		}

		return r.renderFlat(s.Name, entries, visiting)
	}

	return formatScalar(v)
}

func (r Renderer) formatValue(v any, offset int, visiting map[*Base]bool) string {
	if nested, ok := asComposable(v); ok {
		return r.render(nested, offset, visiting)
	}

	return formatScalar(v)
}

func formatScalar(v any) string {
	if v == nil {
		return "nil"
	}

	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return "nil"
	}

	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case fmt.Stringer:
		return x.String()
	default:
		return spewCfg.Sprintf("%v", v)
	}
}

// paramEqual compares a current parameter value against a declared default
// using the same predicate as Equal.
func paramEqual(val, def any) bool {
	return valueEqual(val, def, map[basePair]bool{})
}
