package rating

import (
	"fmt"

	"predictably-core/object"
)

// Config describes what a one-dimensional rating system must provide: the
// exact grade set of its scale and the metadata fields that must accompany
// it.
type Config struct {
	Name             string   `json:"name"              yaml:"name"              mapstructure:"name"`
	Description      string   `json:"description"       yaml:"description"       mapstructure:"description"`
	ReferenceURL     string   `json:"reference_url"     yaml:"reference_url"     mapstructure:"reference_url"`
	RequiredGrades   []Grade  `json:"required_grades"   yaml:"required_grades"   mapstructure:"required_grades"`
	RequiredMetadata []string `json:"required_metadata" yaml:"required_metadata" mapstructure:"required_metadata"`
}

// CloneValue returns a deep copy so a cloned system cannot share slice
// backing arrays with the original.
func (c Config) CloneValue() any {
	out := c
	out.RequiredGrades = copySlice(c.RequiredGrades)
	out.RequiredMetadata = copySlice(c.RequiredMetadata)

	return out
}

// copySlice preserves nil-ness so a clone deep-equals its original.
func copySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}

	out := make([]T, len(src))
	copy(out, src)

	return out
}

func (c Config) String() string {
	return fmt.Sprintf("Config(name=%q, grades=%d)", c.Name, len(c.RequiredGrades))
}

// System is a one-dimensional rating system: a configuration, a rating
// scale that must carry exactly the configured grades, and metadata that
// must carry at least the configured fields.
type System struct {
	object.Base

	Config Config    `param:"config"`
	Scale  *Scale    `param:"rating_scale"`
	Meta   *Metadata `param:"metadata"`
}

// NewSystem builds and validates a rating system.
func NewSystem(cfg Config, scale *Scale, meta *Metadata) (*System, error) {
	s := &System{Config: cfg, Scale: scale, Meta: meta}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks the scale and metadata against the configuration and
// reports every violation found.
func (s *System) Validate() error {
	var problems []string

	problems = append(problems, gradeSetProblems("rating scale", s.Config.RequiredGrades, s.Scale)...)
	problems = append(problems, metadataProblems(s.Config.RequiredMetadata, s.Meta)...)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}

// Grades returns the grades of the rating scale in scale order.
func (s *System) Grades() []Grade { return s.Scale.Grades() }

// IsValidGrade reports whether the grade is on the rating scale.
func (s *System) IsValidGrade(g Grade) bool { return s.Scale.Has(g) }

// GradeValue returns the numeric value of a grade on the rating scale.
func (s *System) GradeValue(g Grade) (float64, error) { return s.Scale.Value(g) }

// GradePosition returns the zero-indexed position of a grade on the rating
// scale, with position 0 the least severe grade.
func (s *System) GradePosition(g Grade) (int, error) { return s.Scale.Position(g) }

// gradeSetProblems checks that the scale carries exactly the required
// grades, no more and no fewer.
func gradeSetProblems(label string, required []Grade, scale *Scale) []string {
	var problems []string

	var missing []Grade
	for _, g := range required {
		if !scale.Has(g) {
			missing = append(missing, g)
		}
	}

	want := make(map[Grade]bool, len(required))
	for _, g := range required {
		want[g] = true
	}

	var extra []Grade
	for _, g := range scale.Grades() {
		if !want[g] {
			extra = append(extra, g)
		}
	}

	if len(missing) > 0 {
		problems = append(problems,
			fmt.Sprintf("%s is missing required grades %v", label, missing))
	}

	if len(extra) > 0 {
		problems = append(problems,
			fmt.Sprintf("%s carries grades %v not in the required set %v", label, extra, required))
	}

	return problems
}

func metadataProblems(required []string, meta *Metadata) []string {
	var missing []string
	for _, k := range required {
		if !meta.Has(k) {
			missing = append(missing, k)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	return []string{fmt.Sprintf(
		"metadata is missing required fields %v (available: %v)", missing, meta.Keys())}
}
