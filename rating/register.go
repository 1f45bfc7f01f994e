package rating

import "predictably-core/object"

func init() {
	object.Register(func() object.Composable { return &System{} },
		object.WithName("RatingSystem"),
		object.WithTag("object_type", "rating_system"),
		object.WithTag("dimensionality", 1),
		object.WithTag("risk_measures", []string{"rating"}),
	)

	object.Register(func() object.Composable { return &PDLGDSystem{} },
		object.WithName("PDLGDRatingSystem"),
		object.WithTag("object_type", "rating_system"),
		object.WithTag("dimensionality", 2),
		object.WithTag("risk_measures", []string{"pd", "lgd"}),
	)
}
