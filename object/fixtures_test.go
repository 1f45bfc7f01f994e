package object_test

import (
	"predictably-core/object"
)

// Ridge is a leaf estimator-like fixture with scalar parameters and some
// non-parameter state.
type Ridge struct {
	object.Base
	Alpha   float64 `param:"alpha"`
	Solver  string  `param:"solver"`
	MaxIter int     `param:""` // name derived from the field: max_iter

	fitted bool
}

// ElasticRidge plays the subclass: it embeds Ridge and adds a parameter and
// a tag override.
type ElasticRidge struct {
	Ridge
	L1Ratio float64 `param:"l1_ratio"`
}

// Scaler is a second leaf type for heterogeneous composition.
type Scaler struct {
	object.Base
	Center bool `param:"center"`
}

// Pipeline nests another composable object as a parameter value.
type Pipeline struct {
	object.Base
	Step object.Composable `param:"step"`
	Name string            `param:"name"`
}

// Ensemble carries slice parameters, including a slice of composables.
type Ensemble struct {
	object.Base
	Weights []float64           `param:"weights"`
	Models  []object.Composable `param:"models"`
}

// Stack holds two composable parameters, allowing diamond-shaped graphs.
type Stack struct {
	object.Base
	First  object.Composable `param:"first"`
	Second object.Composable `param:"second"`
}

// Chain can be wired into a cyclic parameter graph.
type Chain struct {
	object.Base
	Next  object.Composable `param:"next"`
	Label string            `param:"label"`
}

// counter is an opaque mutable value with a clone hook.
type counter struct{ n int }

func (c *counter) CloneValue() any { return &counter{n: c.n} }

// Tracker holds an opaque value, exercising the Cloneable hook.
type Tracker struct {
	object.Base
	Hits *counter `param:"hits"`
}

func newRidge() *Ridge {
	return &Ridge{Alpha: 1, Solver: "auto", MaxIter: 100}
}

func init() {
	object.Register(func() object.Composable { return newRidge() },
		object.WithTag("capability", "linear"),
		object.WithTag("handles_missing", false),
	)
	object.Register(func() object.Composable {
		return &ElasticRidge{Ridge: *newRidge(), L1Ratio: 0.5}
	},
		object.WithTag("handles_missing", true),
	)
	object.Register(func() object.Composable { return &Scaler{Center: true} })
	object.Register(func() object.Composable { return &Pipeline{} })
	object.Register(func() object.Composable { return &Ensemble{} })
	object.Register(func() object.Composable { return &Stack{} })
	object.Register(func() object.Composable { return &Chain{} })
	object.Register(func() object.Composable { return &Tracker{} })
}
