package rating_test

import (
	"strconv"

	"predictably-core/rating"
)

// Shared builders for the examination-style systems exercised across the
// test files.

func ucsScaleMap() map[rating.Grade]float64 {
	return map[rating.Grade]float64{
		"Acceptable":      0.01,
		"Special Mention": 0.05,
		"Substandard":     0.15,
		"Doubtful":        0.50,
		"Loss":            0.95,
	}
}

func ucsMetaMap() map[string]any {
	return map[string]any{
		"institution":      "ABC Bank",
		"examination_date": "2024-01-01",
	}
}

func pdScaleMap() map[rating.Grade]float64 {
	m := make(map[rating.Grade]float64, 14)
	for i := 1; i <= 14; i++ {
		m[rating.Grade(strconv.Itoa(i))] = float64(i) / 100
	}

	return m
}

func lgdScaleMap() map[rating.Grade]float64 {
	return map[rating.Grade]float64{
		"A": 0.1, "B": 0.2, "C": 0.3, "D": 0.4, "E": 0.5, "F": 0.6,
	}
}

func fcsMetaMap() map[string]any {
	return map[string]any{
		"institution":      "Farm Credit East",
		"model_version":    "2.1.0",
		"calibration_date": "2024-01-01",
	}
}

func moodysScaleMap() map[rating.Grade]float64 {
	m := make(map[rating.Grade]float64, len(rating.MoodysConfig.RequiredGrades))
	for i, g := range rating.MoodysConfig.RequiredGrades {
		m[g] = float64(i+1) / 100
	}

	return m
}

func mustUCS() *rating.System {
	s, err := rating.UniformClassificationSystem(ucsScaleMap(), ucsMetaMap())
	if err != nil {
		panic(err)
	}

	return s
}

func mustFCS() *rating.PDLGDSystem {
	s, err := rating.FCSRatingSystem(pdScaleMap(), lgdScaleMap(), fcsMetaMap())
	if err != nil {
		panic(err)
	}

	return s
}
