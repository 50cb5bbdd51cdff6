package clonecap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/clonecap"
)

func TestTierName(t *testing.T) {
	assert.Equal(t, "near-instant", clonecap.TierName[clonecap.NearInstant]())
	assert.Equal(t, "constant-time", clonecap.TierName[clonecap.ConstantTime]())
	assert.Equal(t, "log-time", clonecap.TierName[clonecap.LogTime]())
	assert.Equal(t, "any-speed", clonecap.TierName[clonecap.AnySpeed]())
}

// The tier set is closed at compile time; what can be verified here is that
// the four tags are distinct types usable as capability parameters.
func TestTiersAreDistinctTypeArguments(t *testing.T) {
	near := clonecap.IndependentScalar[clonecap.NearInstant, int]()
	constant := clonecap.IndependentScalar[clonecap.ConstantTime, int]()
	log := clonecap.IndependentScalar[clonecap.LogTime, int]()
	slow := clonecap.IndependentScalar[clonecap.AnySpeed, int]()

	assert.Equal(t, 7, near(7))
	assert.Equal(t, 7, constant(7))
	assert.Equal(t, 7, log(7))
	assert.Equal(t, 7, slow(7))
}
