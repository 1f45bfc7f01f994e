package rating

import (
	"fmt"
	"sort"

	"predictably-core/object"
)

// Dimension names used by two-dimensional rating systems.
const (
	DimensionPD  = "pd"
	DimensionLGD = "lgd"
)

// TwoDimensionalConfig describes a PD/LGD rating system: the exact grade
// set per dimension and the metadata fields that must accompany it.
type TwoDimensionalConfig struct {
	Name                    string             `json:"name"                      yaml:"name"                      mapstructure:"name"`
	Description             string             `json:"description"               yaml:"description"               mapstructure:"description"`
	ReferenceURL            string             `json:"reference_url"             yaml:"reference_url"             mapstructure:"reference_url"`
	RequiredGradeDimensions map[string][]Grade `json:"required_grade_dimensions" yaml:"required_grade_dimensions" mapstructure:"required_grade_dimensions"`
	RequiredMetadata        []string           `json:"required_metadata"         yaml:"required_metadata"         mapstructure:"required_metadata"`
}

// CloneValue returns a deep copy so a cloned system cannot share the
// dimension map or slice backing arrays with the original.
func (c TwoDimensionalConfig) CloneValue() any {
	out := c
	out.RequiredMetadata = copySlice(c.RequiredMetadata)

	if c.RequiredGradeDimensions != nil {
		out.RequiredGradeDimensions = make(map[string][]Grade, len(c.RequiredGradeDimensions))
		for dim, grades := range c.RequiredGradeDimensions {
			out.RequiredGradeDimensions[dim] = copySlice(grades)
		}
	}

	return out
}

func (c TwoDimensionalConfig) String() string {
	dims := make([]string, 0, len(c.RequiredGradeDimensions))
	for dim := range c.RequiredGradeDimensions {
		dims = append(dims, dim)
	}

	sort.Strings(dims)

	return fmt.Sprintf("TwoDimensionalConfig(name=%q, dimensions=%v)", c.Name, dims)
}

// PDLGDSystem is a two-dimensional rating system that rates probability of
// default and loss given default on separate scales. Scale values are
// probabilities and rates, so every value must lie in [0, 1].
type PDLGDSystem struct {
	object.Base

	Config   TwoDimensionalConfig `param:"config"`
	PDScale  *Scale               `param:"pd_scale"`
	LGDScale *Scale               `param:"lgd_scale"`
	Meta     *Metadata            `param:"metadata"`
}

// NewPDLGDSystem builds and validates a PD/LGD rating system.
func NewPDLGDSystem(cfg TwoDimensionalConfig, pd, lgd *Scale, meta *Metadata) (*PDLGDSystem, error) {
	s := &PDLGDSystem{Config: cfg, PDScale: pd, LGDScale: lgd, Meta: meta}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks both scales and the metadata against the configuration
// and reports every violation found.
func (s *PDLGDSystem) Validate() error {
	var problems []string

	if _, ok := s.Config.RequiredGradeDimensions[DimensionPD]; !ok {
		problems = append(problems, `configuration does not define the "pd" dimension`)
	}

	if _, ok := s.Config.RequiredGradeDimensions[DimensionLGD]; !ok {
		problems = append(problems, `configuration does not define the "lgd" dimension`)
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	problems = append(problems,
		gradeSetProblems("pd scale", s.Config.RequiredGradeDimensions[DimensionPD], s.PDScale)...)
	problems = append(problems,
		gradeSetProblems("lgd scale", s.Config.RequiredGradeDimensions[DimensionLGD], s.LGDScale)...)
	problems = append(problems, metadataProblems(s.Config.RequiredMetadata, s.Meta)...)
	problems = append(problems, probabilityProblems("pd scale", s.PDScale)...)
	problems = append(problems, probabilityProblems("lgd scale", s.LGDScale)...)

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}

	return nil
}

// PDGrades returns the probability-of-default grades in scale order.
func (s *PDLGDSystem) PDGrades() []Grade { return s.PDScale.Grades() }

// LGDGrades returns the loss-given-default grades in scale order.
func (s *PDLGDSystem) LGDGrades() []Grade { return s.LGDScale.Grades() }

// IsValidPDGrade reports whether the grade is on the PD scale.
func (s *PDLGDSystem) IsValidPDGrade(g Grade) bool { return s.PDScale.Has(g) }

// IsValidLGDGrade reports whether the grade is on the LGD scale.
func (s *PDLGDSystem) IsValidLGDGrade(g Grade) bool { return s.LGDScale.Has(g) }

// PDValue returns the probability of default for a PD grade.
func (s *PDLGDSystem) PDValue(g Grade) (float64, error) { return s.PDScale.Value(g) }

// LGDValue returns the loss given default for an LGD grade.
func (s *PDLGDSystem) LGDValue(g Grade) (float64, error) { return s.LGDScale.Value(g) }

// ExpectedLoss computes PD * LGD * EAD for a pair of grades and an exposure
// at default. The exposure must be non-negative.
func (s *PDLGDSystem) ExpectedLoss(pd, lgd Grade, ead float64) (float64, error) {
	if ead < 0 {
		return 0, &InputError{Reason: fmt.Sprintf("exposure at default must be non-negative, got %v", ead)}
	}

	var missing []Grade
	if !s.PDScale.Has(pd) {
		missing = append(missing, pd)
	}

	if !s.LGDScale.Has(lgd) {
		missing = append(missing, lgd)
	}

	if len(missing) > 0 {
		available := append(s.PDGrades(), s.LGDGrades()...)
		return 0, &UnknownGradeError{Missing: missing, Available: available}
	}

	return s.PDScale.values[pd] * s.LGDScale.values[lgd] * ead, nil
}

func probabilityProblems(label string, scale *Scale) []string {
	var problems []string

	for _, p := range scale.Pairs() {
		if p.Value < 0 || p.Value > 1 {
			problems = append(problems, fmt.Sprintf(
				"%s grade %q has value %v outside [0, 1]", label, p.Grade, p.Value))
		}
	}

	return problems
}
