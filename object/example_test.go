package object_test

import (
	"fmt"

	"predictably-core/object"
)

func ExampleGetParams() {
	p := &Pipeline{
		Step: &Ridge{Alpha: 0.5, Solver: "auto", MaxIter: 100},
		Name: "reg",
	}

	pm, _ := object.GetParams(p, true)
	for pair := pm.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Println(pair.Key)
	}

	// Output:
	// step
	// step__alpha
	// step__solver
	// step__max_iter
	// name
}

func ExampleSetParams() {
	p := &Pipeline{Step: newRidge(), Name: "reg"}

	if err := object.SetParams(p, map[string]any{
		"step__alpha": 2.5,
		"name":        "sparse",
	}); err != nil {
		fmt.Println(err)
	}

	fmt.Println(p.Step.(*Ridge).Alpha, p.Name)

	err := object.SetParams(p, map[string]any{"bogus_path": 1})
	fmt.Println(err)

	// Output:
	// 2.5 sparse
	// object: unknown parameter path(s): bogus_path
}

func ExampleRender() {
	step := newRidge()
	step.Alpha = 2
	p := &Pipeline{Step: step, Name: "dense"}

	fmt.Println(object.Render(p))

	// Output:
	// Pipeline(step=Ridge(alpha=2), name="dense")
}

func ExampleClone() {
	r := &Ridge{Alpha: 0.3, Solver: "svd", MaxIter: 10}

	clone := object.MustClone(r)
	fmt.Println(object.Equal(r, clone), clone == object.Composable(r))

	// Output:
	// true false
}

func ExampleSetTag() {
	e := &ElasticRidge{Ridge: *newRidge(), L1Ratio: 0.5}
	object.SetTag(e, "capability", "elastic")

	tm, _ := object.GetTags(e)
	for pair := tm.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Printf("%s=%v\n", pair.Key, pair.Value)
	}

	// Output:
	// capability=elastic
	// handles_missing=true
}