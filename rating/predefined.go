package rating

// Pre-built industry standard rating systems. Each configuration pins the
// grade set and required metadata of a published standard; the caller
// supplies the institution-specific scale values and metadata.

// UniformClassificationConfig is the federal financial institution
// regulatory asset classification system used by FDIC, OCC, and the
// Federal Reserve: five categories from Acceptable to Loss.
var UniformClassificationConfig = Config{
	Name: "Uniform Classification System",
	Description: "Federal financial institution regulatory asset classification system used by " +
		"FDIC, OCC, and Federal Reserve. Provides standardized approach to classifying " +
		"credit risk in bank loan portfolios with five categories from Acceptable " +
		"(minimal risk) to Loss (uncollectible).",
	ReferenceURL: "https://www.fdic.gov/regulations/safety/manual/section3-1.pdf",
	RequiredGrades: []Grade{
		"Acceptable", "Special Mention", "Substandard", "Doubtful", "Loss",
	},
	RequiredMetadata: []string{"institution", "examination_date"},
}

// MoodysConfig is Moody's long-term credit rating scale with notching:
// 21 grades from Aaa down to C.
var MoodysConfig = Config{
	Name: "Moody's Long-term Credit Rating Scale (Notched)",
	Description: "Moody's long-term credit rating scale with notching provides 21 distinct " +
		"rating grades from Aaa (highest quality, minimal credit risk) to C " +
		"(lowest quality, typically in default). Notched ratings (1, 2, 3) " +
		"provide finer distinctions within major rating categories.",
	ReferenceURL: "https://www.moodys.com/sites/products/productattachments/ap075378_1_1408_ki.pdf",
	RequiredGrades: []Grade{
		"Aaa",
		"Aa1", "Aa2", "Aa3",
		"A1", "A2", "A3",
		"Baa1", "Baa2", "Baa3",
		"Ba1", "Ba2", "Ba3",
		"B1", "B2", "B3",
		"Caa1", "Caa2", "Caa3",
		"Ca",
		"C",
	},
	RequiredMetadata: []string{"rating_date", "issuer"},
}

// MoodysUnnotchedConfig is Moody's long-term credit rating scale without
// notching: 9 broad categories from Aaa down to C.
var MoodysUnnotchedConfig = Config{
	Name: "Moody's Long-term Credit Rating Scale (Un-notched)",
	Description: "Moody's long-term credit rating scale without notching provides 9 broad " +
		"rating categories from Aaa (highest quality, minimal credit risk) to C " +
		"(lowest quality, typically in default). This scale groups ratings into " +
		"major categories without the finer distinctions of notched ratings.",
	ReferenceURL: "https://www.moodys.com/sites/products/productattachments/ap075378_1_1408_ki.pdf",
	RequiredGrades: []Grade{
		"Aaa", "Aa", "A", "Baa", "Ba", "B", "Caa", "Ca", "C",
	},
	RequiredMetadata: []string{"rating_date", "issuer"},
}

// FCSConfig is the two-dimensional rating system used by Farm Credit
// System institutions: a 14-point PD scale (1-14) and a 6-point LGD scale
// (A-F).
var FCSConfig = TwoDimensionalConfig{
	Name: "Farm Credit System Rating Scale",
	Description: "Two-dimensional rating system used by Farm Credit System institutions " +
		"for agricultural lending. Uses a 14-point PD scale (1-14, where 1 represents " +
		"lowest default probability) and a 6-point LGD scale (A-F, where A represents " +
		"lowest loss given default). This system allows for comprehensive risk " +
		"assessment covering both default probability and loss severity.",
	ReferenceURL: "https://www.fca.gov/template-fca/about/regulations-guidance",
	RequiredGradeDimensions: map[string][]Grade{
		DimensionPD: {
			"1", "2", "3", "4", "5", "6", "7",
			"8", "9", "10", "11", "12", "13", "14",
		},
		DimensionLGD: {"A", "B", "C", "D", "E", "F"},
	},
	RequiredMetadata: []string{"institution", "model_version", "calibration_date"},
}

// UniformClassificationSystem builds a Uniform Classification System from
// institution-specific scale values and metadata.
func UniformClassificationSystem(scale map[Grade]float64, metadata map[string]any) (*System, error) {
	return predefinedSystem(UniformClassificationConfig, scale, metadata)
}

// MoodysRatingSystem builds a notched Moody's rating system from
// institution-specific scale values and metadata.
func MoodysRatingSystem(scale map[Grade]float64, metadata map[string]any) (*System, error) {
	return predefinedSystem(MoodysConfig, scale, metadata)
}

// MoodysRatingSystemUnnotched builds an un-notched Moody's rating system
// from institution-specific scale values and metadata.
func MoodysRatingSystemUnnotched(scale map[Grade]float64, metadata map[string]any) (*System, error) {
	return predefinedSystem(MoodysUnnotchedConfig, scale, metadata)
}

// FCSRatingSystem builds a Farm Credit System rating system from
// institution-specific PD and LGD scale values and metadata.
func FCSRatingSystem(pd, lgd map[Grade]float64, metadata map[string]any) (*PDLGDSystem, error) {
	meta, err := NewMetadata(metadata)
	if err != nil {
		return nil, err
	}

	cfg := FCSConfig.CloneValue().(TwoDimensionalConfig)

	return NewPDLGDSystem(cfg,
		scaleInConfigOrder(cfg.RequiredGradeDimensions[DimensionPD], pd),
		scaleInConfigOrder(cfg.RequiredGradeDimensions[DimensionLGD], lgd),
		meta)
}

func predefinedSystem(cfg Config, scale map[Grade]float64, metadata map[string]any) (*System, error) {
	meta, err := NewMetadata(metadata)
	if err != nil {
		return nil, err
	}

	cfg = cfg.CloneValue().(Config)

	return NewSystem(cfg, scaleInConfigOrder(cfg.RequiredGrades, scale), meta)
}

// scaleInConfigOrder orders the supplied grades the way the configuration
// declares them, so renderings and Pairs follow the standard's severity
// order rather than a sorted one. Grades outside the configured set are
// appended and left for validation to reject.
func scaleInConfigOrder(required []Grade, m map[Grade]float64) *Scale {
	pairs := make([]GradeValue, 0, len(m))
	seen := make(map[Grade]bool, len(required))

	for _, g := range required {
		seen[g] = true

		if v, ok := m[g]; ok {
			pairs = append(pairs, GradeValue{Grade: g, Value: v})
		}
	}

	var rest []Grade
	for g := range m {
		if !seen[g] {
			rest = append(rest, g)
		}
	}

	sortGrades(rest)
	for _, g := range rest {
		pairs = append(pairs, GradeValue{Grade: g, Value: m[g]})
	}

	s, _ := NewScale(pairs...)

	return s
}
