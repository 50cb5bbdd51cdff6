package clonecap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clonecap"
)

func TestMirroredPointerSharesReferent(t *testing.T) {
	n := 10
	clone := clonecap.MirroredPointer[clonecap.NearInstant, int]()

	p := clone(&n)
	*p = 99

	assert.Equal(t, 99, n, "mutation through the mirrored clone must reach the source")
}

func TestIndependentPointerIsolates(t *testing.T) {
	elem := clonecap.IndependentScalar[clonecap.ConstantTime, int]()
	clone := clonecap.IndependentPointer(elem)

	n := 10
	p := clone(&n)
	require.NotNil(t, p)
	require.Equal(t, 10, *p)

	*p = 99
	assert.Equal(t, 10, n, "the clone must have its own backing allocation")

	n = 55
	assert.Equal(t, 99, *p)
}

func TestIndependentPointerNil(t *testing.T) {
	calls := 0
	elem := clonecap.Independent[clonecap.ConstantTime, int](func(v int) int {
		calls++
		return v
	})
	clone := clonecap.IndependentPointer(elem)

	assert.Nil(t, clone(nil))
	assert.Zero(t, calls, "nil must not invoke the element operation")
}
