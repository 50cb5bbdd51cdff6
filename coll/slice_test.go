package coll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clonecap"
	"github.com/roach88/clonecap/coll"
)

func TestIndependentSliceIsolation(t *testing.T) {
	clone := coll.IndependentSlice(clonecap.IndependentScalar[clonecap.AnySpeed, int]())

	src := []int{1, 2, 3}
	dup := clone(src)
	require.Equal(t, []int{1, 2, 3}, dup)

	src = append(src, 4)
	assert.Equal(t, []int{1, 2, 3}, dup, "appending to the source must not grow the clone")
	assert.Len(t, dup, 3)

	src[0] = 99
	assert.Equal(t, 1, dup[0], "mutating the source must not be visible through the clone")
}

func TestIndependentSliceClonesElements(t *testing.T) {
	elemClone := coll.IndependentSlice(clonecap.IndependentScalar[clonecap.AnySpeed, int]())
	clone := coll.IndependentSlice(elemClone)

	src := [][]int{{1}, {2, 3}}
	dup := clone(src)

	src[0][0] = 100
	assert.Equal(t, 1, dup[0][0], "inner slices must be cloned, not shared")
}

func TestIndependentSliceNil(t *testing.T) {
	clone := coll.IndependentSlice(clonecap.IndependentScalar[clonecap.AnySpeed, int]())

	assert.Nil(t, clone(nil))
	assert.NotNil(t, clone([]int{}), "empty is preserved as empty, not nil")
}

func TestMixedSliceSharesBacking(t *testing.T) {
	clone := coll.MixedSlice[clonecap.NearInstant, int]()

	src := []int{1, 2, 3}
	dup := clone(src)

	src[1] = 20
	assert.Equal(t, 20, dup[1], "header copy shares the backing array")

	// Growth past capacity splits the two, which is the partial-sharing
	// contract rather than a violation of it.
	src = append(src, 4)
	src[0] = 10
	assert.Equal(t, 1, dup[0])
}

func TestIndependentBytes(t *testing.T) {
	clone := coll.IndependentBytes()

	src := []byte("abc")
	dup := clone(src)
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), dup)
	assert.Nil(t, clone(nil))
}

func TestIndependentOwnedString(t *testing.T) {
	clone := coll.IndependentOwnedString()
	assert.Equal(t, "hello", clone("hello"))
	assert.Equal(t, "", clone(""))
}
