package rating

import (
	"fmt"
	"sort"
	"strconv"
)

// Grade is a single rating grade, such as "Aaa", "Acceptable" or "7".
type Grade string

// GradeValue pairs a grade with its numeric value on a scale.
type GradeValue struct {
	Grade Grade
	Value float64
}

// Scale is an immutable ordered mapping from grades to numeric values.
// All accessors return copies; Subset and Add return new scales. Scales may
// therefore be shared freely between rating systems and their clones.
type Scale struct {
	order  []Grade
	values map[Grade]float64
}

// NewScale builds a scale from grade/value pairs, preserving their order.
// Duplicate grades are rejected.
func NewScale(pairs ...GradeValue) (*Scale, error) {
	s := &Scale{
		order:  make([]Grade, 0, len(pairs)),
		values: make(map[Grade]float64, len(pairs)),
	}

	for _, p := range pairs {
		if _, dup := s.values[p.Grade]; dup {
			return nil, &InputError{Reason: fmt.Sprintf("duplicate grade %q", p.Grade)}
		}

		s.order = append(s.order, p.Grade)
		s.values[p.Grade] = p.Value
	}

	return s, nil
}

// ScaleFromMap builds a scale from a map, ordering grades naturally
// (numeric grades by value, the rest lexically after them).
func ScaleFromMap(m map[Grade]float64) *Scale {
	order := make([]Grade, 0, len(m))
	for g := range m {
		order = append(order, g)
	}

	sortGrades(order)

	values := make(map[Grade]float64, len(m))
	for g, v := range m {
		values[g] = v
	}

	return &Scale{order: order, values: values}
}

// Len reports the number of grades on the scale.
func (s *Scale) Len() int {
	if s == nil {
		return 0
	}

	return len(s.order)
}

// Has reports whether the grade is on the scale.
func (s *Scale) Has(g Grade) bool {
	if s == nil {
		return false
	}

	_, ok := s.values[g]

	return ok
}

// Value returns the numeric value of a grade.
func (s *Scale) Value(g Grade) (float64, error) {
	if s.Has(g) {
		return s.values[g], nil
	}

	return 0, &UnknownGradeError{Missing: []Grade{g}, Available: s.Grades()}
}

// Position returns the zero-indexed position of a grade on the scale.
func (s *Scale) Position(g Grade) (int, error) {
	if s != nil {
		for i, have := range s.order {
			if have == g {
				return i, nil
			}
		}
	}

	return 0, &UnknownGradeError{Missing: []Grade{g}, Available: s.Grades()}
}

// Grades returns the grades in scale order.
func (s *Scale) Grades() []Grade {
	if s == nil {
		return nil
	}

	out := make([]Grade, len(s.order))
	copy(out, s.order)

	return out
}

// Values returns the numeric values in scale order.
func (s *Scale) Values() []float64 {
	if s == nil {
		return nil
	}

	out := make([]float64, 0, len(s.order))
	for _, g := range s.order {
		out = append(out, s.values[g])
	}

	return out
}

// Pairs returns the grade/value pairs in scale order.
func (s *Scale) Pairs() []GradeValue {
	if s == nil {
		return nil
	}

	out := make([]GradeValue, 0, len(s.order))
	for _, g := range s.order {
		out = append(out, GradeValue{Grade: g, Value: s.values[g]})
	}

	return out
}

// Map returns a fresh grade-to-value map.
func (s *Scale) Map() map[Grade]float64 {
	if s == nil {
		return map[Grade]float64{}
	}

	out := make(map[Grade]float64, len(s.values))
	for g, v := range s.values {
		out[g] = v
	}

	return out
}

// Subset returns a new scale restricted to the given grades, in the order
// given. All requested grades must be present.
func (s *Scale) Subset(grades ...Grade) (*Scale, error) {
	var missing []Grade

	pairs := make([]GradeValue, 0, len(grades))
	for _, g := range grades {
		if !s.Has(g) {
			missing = append(missing, g)
			continue
		}

		pairs = append(pairs, GradeValue{Grade: g, Value: s.values[g]})
	}

	if len(missing) > 0 {
		return nil, &UnknownGradeError{Missing: missing, Available: s.Grades()}
	}

	return NewScale(pairs...)
}

// Add returns a new scale with the given grades merged in. Existing grades
// keep their position and take the new value; new grades are appended in
// natural order.
func (s *Scale) Add(m map[Grade]float64) *Scale {
	out := &Scale{
		order:  s.Grades(),
		values: s.Map(),
	}

	var added []Grade

	for g, v := range m {
		if !s.Has(g) {
			added = append(added, g)
		}

		out.values[g] = v
	}

	sortGrades(added)
	out.order = append(out.order, added...)

	return out
}

// CloneValue returns the scale itself: scales are immutable and safe to
// share between an object and its clone.
func (s *Scale) CloneValue() any { return s }

func (s *Scale) String() string {
	return fmt.Sprintf("Scale%v", s.Grades())
}

func sortGrades(grades []Grade) {
	sort.Slice(grades, func(i, j int) bool { return naturalLess(grades[i], grades[j]) })
}

// naturalLess orders numeric grades by value ("2" before "10") and ahead of
// non-numeric grades, which compare lexically.
func naturalLess(a, b Grade) bool {
	na, aerr := strconv.ParseFloat(string(a), 64)
	nb, berr := strconv.ParseFloat(string(b), 64)

	switch {
	case aerr == nil && berr == nil:
		return na < nb
	case aerr == nil:
		return true
	case berr == nil:
		return false
	default:
		return a < b
	}
}
