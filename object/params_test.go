package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predictably-core/object"
)

func paramKeys(pm *object.ParamMap) []string {
	var keys []string
	for pair := pm.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

func TestGetParamsShallow(t *testing.T) {
	t.Parallel()

	r := &Ridge{Alpha: 0.1, Solver: "svd", MaxIter: 50}

	pm, err := object.GetParams(r, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "solver", "max_iter"}, paramKeys(pm))

	alpha, ok := pm.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, 0.1, alpha)

	solver, ok := pm.Get("solver")
	require.True(t, ok)
	assert.Equal(t, "svd", solver)
}

func TestGetParamsDeep(t *testing.T) {
	t.Parallel()

	p := &Pipeline{Step: &Ridge{Alpha: 0.5, Solver: "auto", MaxIter: 100}, Name: "reg"}

	pm, err := object.GetParams(p, true)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"step", "step__alpha", "step__solver", "step__max_iter", "name"},
		paramKeys(pm))

	nestedAlpha, ok := pm.Get("step__alpha")
	require.True(t, ok)
	assert.Equal(t, 0.5, nestedAlpha)
}

func TestGetParamsDeepTwoLevels(t *testing.T) {
	t.Parallel()

	inner := &Pipeline{Step: &Scaler{Center: true}, Name: "inner"}
	outer := &Pipeline{Step: inner, Name: "outer"}

	pm, err := object.GetParams(outer, true)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{
			"step",
			"step__step",
			"step__step__center",
			"step__name",
			"name",
		},
		paramKeys(pm))
}

func TestGetParamsCycle(t *testing.T) {
	t.Parallel()

	p := &Chain{Label: "p"}
	q := &Chain{Label: "q"}
	p.Next = q
	q.Next = p

	_, err := object.GetParams(p, true)
	require.Error(t, err)

	var cerr *object.CycleError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "next__next", cerr.Path)

	// A diamond is not a cycle: the same object reachable twice on separate
	// paths is fine.
	shared := &Scaler{Center: true}
	st := &Stack{First: shared, Second: shared}
	_, err = object.GetParams(st, true)
	assert.NoError(t, err)
}

func TestSetParamsTopLevel(t *testing.T) {
	t.Parallel()

	r := newRidge()
	require.NoError(t, object.SetParams(r, map[string]any{
		"alpha":  2.5,
		"solver": "svd",
	}))

	assert.Equal(t, 2.5, r.Alpha)
	assert.Equal(t, "svd", r.Solver)
	assert.Equal(t, 100, r.MaxIter)
}

func TestSetParamsNumericCoercion(t *testing.T) {
	t.Parallel()

	r := newRidge()
	require.NoError(t, object.SetParams(r, map[string]any{"alpha": 2}))
	assert.Equal(t, 2.0, r.Alpha)

	require.NoError(t, object.SetParams(r, map[string]any{"max_iter": int64(250)}))
	assert.Equal(t, 250, r.MaxIter)
}

func TestSetParamsNested(t *testing.T) {
	t.Parallel()

	step := newRidge()
	p := &Pipeline{Step: step, Name: "reg"}

	require.NoError(t, object.SetParams(p, map[string]any{
		"step__alpha": 0.01,
		"name":        "sparse",
	}))

	assert.Equal(t, 0.01, step.Alpha)
	assert.Equal(t, "sparse", p.Name)
}

func TestSetParamsReplaceNestedObject(t *testing.T) {
	t.Parallel()

	p := &Pipeline{Step: newRidge(), Name: "reg"}
	s := &Scaler{Center: false}

	require.NoError(t, object.SetParams(p, map[string]any{"step": s}))
	assert.Same(t, s, p.Step)
}

func TestSetParamsUnknownPath(t *testing.T) {
	t.Parallel()

	r := newRidge()
	before, err := object.GetParams(r, true)
	require.NoError(t, err)

	err = object.SetParams(r, map[string]any{"bogus_path": 1})
	require.Error(t, err)

	var uerr *object.UnknownParameterError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, []string{"bogus_path"}, uerr.Paths)

	after, err := object.GetParams(r, true)
	require.NoError(t, err)
	assert.Equal(t, paramKeys(before), paramKeys(after))
	assert.Equal(t, 1.0, r.Alpha)
}

func TestSetParamsAllOrNothing(t *testing.T) {
	t.Parallel()

	r := newRidge()

	err := object.SetParams(r, map[string]any{
		"alpha": 9.9,
		"nope":  1,
		"other": 2,
	})
	require.Error(t, err)

	var uerr *object.UnknownParameterError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, []string{"nope", "other"}, uerr.Paths)

	// The valid assignment must not have been applied.
	assert.Equal(t, 1.0, r.Alpha)
}

func TestSetParamsIntermediateNotComposable(t *testing.T) {
	t.Parallel()

	p := &Pipeline{Step: newRidge(), Name: "reg"}

	err := object.SetParams(p, map[string]any{"name__x": 1})
	require.Error(t, err)

	var uerr *object.UnknownParameterError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, []string{"name__x"}, uerr.Paths)
}

func TestSetParamsBadValue(t *testing.T) {
	t.Parallel()

	r := newRidge()

	err := object.SetParams(r, map[string]any{"alpha": "not a number", "solver": "svd"})
	require.Error(t, err)
	assert.ErrorContains(t, err, `"alpha"`)

	// No partial mutation, even for the valid assignment.
	assert.Equal(t, "auto", r.Solver)
}

func TestSetParamsInherited(t *testing.T) {
	t.Parallel()

	e := &ElasticRidge{Ridge: *newRidge(), L1Ratio: 0.5}

	require.NoError(t, object.SetParams(e, map[string]any{
		"l1_ratio": 0.9,
		"alpha":    3.0,
	}))

	assert.Equal(t, 0.9, e.L1Ratio)
	assert.Equal(t, 3.0, e.Alpha)
}

func TestAccessorCustomSeparator(t *testing.T) {
	t.Parallel()

	a := object.Accessor{Separator: "."}
	p := &Pipeline{Step: newRidge(), Name: "reg"}

	pm, err := a.GetParams(p, true)
	require.NoError(t, err)
	assert.Contains(t, paramKeys(pm), "step.alpha")

	require.NoError(t, a.SetParams(p, map[string]any{"step.alpha": 7.0}))
	assert.Equal(t, 7.0, p.Step.(*Ridge).Alpha)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := &Pipeline{Step: &Ridge{Alpha: 1, Solver: "auto", MaxIter: 100}, Name: "x"}
	b := &Pipeline{Step: &Ridge{Alpha: 1, Solver: "auto", MaxIter: 100}, Name: "x"}
	c := &Pipeline{Step: &Ridge{Alpha: 2, Solver: "auto", MaxIter: 100}, Name: "x"}

	assert.True(t, object.Equal(a, b))
	assert.False(t, object.Equal(a, c))
	assert.False(t, object.Equal(a, &Scaler{}))

	// Round-trip via parameters: same type constructed from the reported
	// parameter values is indistinguishable.
	pm, err := object.GetParams(a, false)
	require.NoError(t, err)

	rebuilt := &Pipeline{}
	values := map[string]any{}
	for pair := pm.Oldest(); pair != nil; pair = pair.Next() {
		values[pair.Key] = pair.Value
	}
	require.NoError(t, object.SetParams(rebuilt, values))
	assert.True(t, object.Equal(a, rebuilt))
}

func TestAccessorSeparatorInsideParamName(t *testing.T) {
	t.Parallel()

	// "_" occurs in "max_iter", so every path over Ridge would be ambiguous.
	a := object.Accessor{Separator: "_"}

	_, err := a.GetParams(newRidge(), false)

	var rerr *object.ReflectionError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorContains(t, err, `"max_iter"`)

	r := newRidge()
	err = a.SetParams(r, map[string]any{"alpha": 2.0})
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 1.0, r.Alpha)
}

func TestEqualCollectionElementsByConfiguration(t *testing.T) {
	t.Parallel()

	a := &Ensemble{Weights: []float64{1}, Models: []object.Composable{newRidge()}}
	b := &Ensemble{Weights: []float64{1}, Models: []object.Composable{newRidge()}}

	// Non-parameter state on a slice element does not affect equality.
	b.Models[0].(*Ridge).fitted = true
	object.SetTag(b.Models[0], "capability", "patched")
	assert.True(t, object.Equal(a, b))

	// A parameter difference on the element still does.
	b.Models[0].(*Ridge).Alpha = 9
	assert.False(t, object.Equal(a, b))
}

func TestEqualMapElementsByConfiguration(t *testing.T) {
	t.Parallel()

	type ModelBook struct {
		object.Base
		ByName map[string]object.Composable `param:"by_name"`
	}

	object.Register(func() object.Composable { return &ModelBook{} })

	a := &ModelBook{ByName: map[string]object.Composable{"r": newRidge()}}
	b := &ModelBook{ByName: map[string]object.Composable{"r": newRidge()}}

	b.ByName["r"].(*Ridge).fitted = true
	assert.True(t, object.Equal(a, b))

	b.ByName["r"].(*Ridge).Solver = "svd"
	assert.False(t, object.Equal(a, b))

	c := &ModelBook{ByName: map[string]object.Composable{"other": newRidge()}}
	assert.False(t, object.Equal(a, c))
}

func TestEqualCyclicGraphs(t *testing.T) {
	t.Parallel()

	p1 := &Chain{Label: "a"}
	q1 := &Chain{Label: "b"}
	p1.Next, q1.Next = q1, p1

	p2 := &Chain{Label: "a"}
	q2 := &Chain{Label: "b"}
	p2.Next, q2.Next = q2, p2

	assert.True(t, object.Equal(p1, p2))

	q2.Label = "c"
	assert.False(t, object.Equal(p1, p2))
}
