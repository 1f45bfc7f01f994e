package object

import "reflect"

// Equal is the canonical "same configuration" predicate: a and b are equal
// when they have the same dynamic type and every declared parameter compares
// equal. Composable values, including elements of slice- and map-valued
// parameters, are compared recursively by the same rule; everything else is
// compared with reflect.DeepEqual.
//
// Pairs already under comparison on the current path are taken as equal, so
// Equal terminates on cyclic parameter graphs.
func Equal(a, b Composable) bool {
	return equal(a, b, map[basePair]bool{})
}

type basePair struct{ a, b *Base }

func equal(a, b Composable, seen map[basePair]bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}

	pair := basePair{a.base(), b.base()}
	if seen[pair] {
		return true
	}

	seen[pair] = true

	s, err := SchemaOf(a)
	if err != nil {
		return false
	}

	va := reflect.ValueOf(a).Elem()
	vb := reflect.ValueOf(b).Elem()

	for _, d := range s.Params {
		x := va.FieldByIndex(d.index).Interface()
		y := vb.FieldByIndex(d.index).Interface()

		if !valueEqual(x, y, seen) {
			return false
		}
	}

	return true
}

// valueEqual compares one parameter value. Composables compare by
// configuration, recursively; slices and maps compare element-wise so
// composable elements also compare by configuration (mirroring how Clone
// descends into them); anything else falls back to reflect.DeepEqual.
func valueEqual(x, y any, seen map[basePair]bool) bool {
	cx, okx := asComposable(x)
	cy, oky := asComposable(y)

	if okx != oky {
		return false
	}

	if okx {
		return equal(cx, cy, seen)
	}

	if x == nil || y == nil {
		return reflect.DeepEqual(x, y)
	}

	rx := reflect.ValueOf(x)
	ry := reflect.ValueOf(y)

	if rx.Type() != ry.Type() {
		return false
	}

	switch rx.Kind() {
	case reflect.Slice:
		if rx.IsNil() != ry.IsNil() || rx.Len() != ry.Len() {
			return false
		}

		for i := 0; i < rx.Len(); i++ {
			if !valueEqual(rx.Index(i).Interface(), ry.Index(i).Interface(), seen) {
				return false
			}
		}

		return true

	case reflect.Map:
		if rx.IsNil() != ry.IsNil() || rx.Len() != ry.Len() {
			return false
		}

		iter := rx.MapRange()
		for iter.Next() {
			yv := ry.MapIndex(iter.Key())
			if !yv.IsValid() {
				return false
			}

			if !valueEqual(iter.Value().Interface(), yv.Interface(), seen) {
				return false
			}
		}

		return true

	default:
		return reflect.DeepEqual(x, y)
	}
}
