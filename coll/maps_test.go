package coll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clonecap"
	"github.com/roach88/clonecap/coll"
)

func TestIndependentMapIsolation(t *testing.T) {
	clone := coll.IndependentMap(
		clonecap.IndependentScalar[clonecap.AnySpeed, string](),
		coll.IndependentSlice(clonecap.IndependentScalar[clonecap.AnySpeed, int]()),
	)

	src := map[string][]int{"a": {1}, "b": {2, 3}}
	dup := clone(src)
	require.Equal(t, src, dup)

	src["c"] = []int{4}
	assert.NotContains(t, dup, "c")

	src["a"][0] = 10
	assert.Equal(t, []int{1}, dup["a"], "values must be cloned, not shared")
}

func TestIndependentMapNil(t *testing.T) {
	clone := coll.IndependentMap(
		clonecap.IndependentScalar[clonecap.AnySpeed, int](),
		clonecap.IndependentScalar[clonecap.AnySpeed, int](),
	)
	assert.Nil(t, clone(nil))
}

func TestIndependentSetIsolation(t *testing.T) {
	clone := coll.IndependentSet(clonecap.IndependentScalar[clonecap.AnySpeed, string]())

	src := map[string]struct{}{"x": {}, "y": {}}
	dup := clone(src)
	require.Equal(t, src, dup)

	delete(src, "x")
	assert.Contains(t, dup, "x")
	assert.Nil(t, clone(nil))
}
