package clonecap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/clonecap"
)

func TestIndependentArrayDeepElements(t *testing.T) {
	intBox := clonecap.IndependentPointer(clonecap.IndependentScalar[clonecap.ConstantTime, int]())
	clone := clonecap.IndependentArray(intBox, func(a *[3]*int) []*int { return a[:] })

	a, b, c := 1, 2, 3
	src := [3]*int{&a, &b, &c}
	dup := clone(src)

	*dup[0] = 100
	assert.Equal(t, 1, a, "elements must be independently backed")
	assert.Equal(t, 100, *dup[0])
	assert.Equal(t, 2, *dup[1])
}

func TestIndependentArrayScalars(t *testing.T) {
	clone := clonecap.IndependentArray(
		clonecap.IndependentScalar[clonecap.AnySpeed, string](),
		func(a *[2]string) []string { return a[:] },
	)

	assert.Equal(t, [2]string{"x", "y"}, clone([2]string{"x", "y"}))
}

func TestMirroredArray(t *testing.T) {
	clone := clonecap.MirroredArray(
		clonecap.MirroredPointer[clonecap.ConstantTime, int](),
		func(a *[2]*int) []*int { return a[:] },
	)

	m, n := 1, 2
	dup := clone([2]*int{&m, &n})

	*dup[1] = 22
	assert.Equal(t, 22, n, "mirrored elements stay coupled")
}
