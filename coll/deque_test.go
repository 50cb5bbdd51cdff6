package coll_test

import (
	"testing"

	"github.com/gammazero/deque/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clonecap"
	"github.com/roach88/clonecap/coll"
)

func TestIndependentDequeIsolation(t *testing.T) {
	clone := coll.IndependentDeque(clonecap.IndependentScalar[clonecap.AnySpeed, int]())

	src := new(deque.Deque[int])
	src.PushBack(1)
	src.PushBack(2)
	src.PushBack(3)

	dup := clone(src)
	require.NotSame(t, src, dup)
	require.Equal(t, 3, dup.Len())
	for i := 0; i < 3; i++ {
		assert.Equal(t, src.At(i), dup.At(i))
	}

	src.PushFront(0)
	assert.Equal(t, 3, dup.Len(), "pushing to the source must not grow the clone")
	assert.Equal(t, 1, dup.Front())
}

func TestIndependentDequeNilAndEmpty(t *testing.T) {
	clone := coll.IndependentDeque(clonecap.IndependentScalar[clonecap.AnySpeed, int]())

	assert.Nil(t, clone(nil))

	dup := clone(new(deque.Deque[int]))
	require.NotNil(t, dup)
	assert.Equal(t, 0, dup.Len())
}
