package rating

import (
	"fmt"
	"strings"
)

// InputError reports invalid input to a scale or system constructor.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "rating: invalid input: " + e.Reason
}

// ValidationError reports a rating system that violates its configuration:
// missing or extra grades, absent required metadata, or values outside
// acceptable ranges. Every problem found is reported, not just the first.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	var b strings.Builder

	b.WriteString("rating: validation failed:")
	for _, p := range e.Problems {
		b.WriteString("\n  - ")
		b.WriteString(p)
	}

	return b.String()
}

// UnknownGradeError reports grades absent from a scale, together with the
// grades that are available.
type UnknownGradeError struct {
	Missing   []Grade
	Available []Grade
}

func (e *UnknownGradeError) Error() string {
	return fmt.Sprintf("rating: grades not found: %v (available: %v)", e.Missing, e.Available)
}

// MetadataError reports invalid or missing metadata keys.
type MetadataError struct {
	Keys   []string
	Reason string
}

func (e *MetadataError) Error() string {
	if len(e.Keys) == 0 {
		return "rating: metadata: " + e.Reason
	}

	return fmt.Sprintf("rating: metadata keys %v: %s", e.Keys, e.Reason)
}
