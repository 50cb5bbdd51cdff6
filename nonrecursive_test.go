package clonecap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clonecap"
)

// token is a leaf type whose clone cost carries no type-parameter
// dependence; it opts into the non-recursive marker at its definition site.
type token struct {
	id  uint64
	hot bool
}

func (token) NonRecursiveClone() {}

func (tk token) IndependentClone() token { return tk }

func fastToken() clonecap.Independent[clonecap.NearInstant, token] {
	return clonecap.MethodIndependent[clonecap.NearInstant, token]()
}

func TestPromoteIndependentAgreesWithFastest(t *testing.T) {
	samples := []token{
		{},
		{id: 1},
		{id: 42, hot: true},
	}

	fastest := fastToken()
	constant := clonecap.PromoteIndependent[clonecap.ConstantTime](fastest)
	log := clonecap.PromoteIndependent[clonecap.LogTime](fastest)
	slow := clonecap.PromoteIndependent[clonecap.AnySpeed](fastest)

	for _, sample := range samples {
		want := fastest(sample)
		assert.Equal(t, want, constant(sample))
		assert.Equal(t, want, log(sample))
		assert.Equal(t, want, slow(sample))
	}
}

func TestPromotionChainsCompose(t *testing.T) {
	fastest := fastToken()

	// NearInstant -> ConstantTime -> LogTime -> AnySpeed, one step at a
	// time, must agree with the direct promotion.
	constant := clonecap.PromoteIndependent[clonecap.ConstantTime](fastest)
	log := clonecap.PromoteIndependentConstant[clonecap.LogTime](constant)
	slow := clonecap.PromoteIndependentLog(log)

	direct := clonecap.PromoteIndependent[clonecap.AnySpeed](fastest)

	sample := token{id: 9000, hot: true}
	require.Equal(t, direct(sample), slow(sample))
}

func TestPromoteMirroredAndMixed(t *testing.T) {
	mirroredFast := clonecap.MirroredStateless[clonecap.NearInstant, token]()
	mixedFast := clonecap.MixedShallow[clonecap.NearInstant, token]()

	sample := token{id: 3}

	assert.Equal(t, sample, clonecap.PromoteMirrored[clonecap.AnySpeed](mirroredFast)(sample))
	assert.Equal(t, sample, clonecap.PromoteMirroredConstant[clonecap.LogTime](clonecap.PromoteMirrored[clonecap.ConstantTime](mirroredFast))(sample))
	assert.Equal(t, sample, clonecap.PromoteMirroredLog(clonecap.PromoteMirrored[clonecap.LogTime](mirroredFast))(sample))

	assert.Equal(t, sample, clonecap.PromoteMixed[clonecap.ConstantTime](mixedFast)(sample))
	assert.Equal(t, sample, clonecap.PromoteMixedConstant[clonecap.AnySpeed](clonecap.PromoteMixed[clonecap.ConstantTime](mixedFast))(sample))
	assert.Equal(t, sample, clonecap.PromoteMixedLog(clonecap.PromoteMixed[clonecap.LogTime](mixedFast))(sample))
}
