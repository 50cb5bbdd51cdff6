// Package clonetest provides reusable conformance checks for clone
// capabilities. Each check encodes one of the library's testable contract
// properties - isolation for independent clones, coupling for mirrored
// clones, agreement between a fast capability and its promoted forms - so
// that a type's capability implementation can be validated with a few lines
// of test code.
//
// Checks take an observe function projecting a value onto an owned,
// comparable snapshot of its publicly observable state. Observe must not
// return live views (a slice into the value's backing store would itself
// mutate under the test's hands). Constructors passed as build must be
// deterministic: two calls produce observably identical values.
package clonetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/clonecap"
)

// Isolation checks the independent-clone contract: after cloning, mutating
// the source must not change the clone's observable state, and mutating the
// clone must not change the source's.
func Isolation[S clonecap.Speed, T any](
	t *testing.T,
	clone clonecap.Independent[S, T],
	build func() T,
	mutate func(T),
	observe func(T) any,
) {
	t.Helper()

	// Source mutation must not leak into the clone.
	src := build()
	dup := clone(src)
	before := observe(dup)
	mutate(src)
	require.Equal(t, before, observe(dup),
		"mutating the source changed the independent clone (tier %s)", clonecap.TierName[S]())

	// Clone mutation must not leak into the source.
	src = build()
	dup = clone(src)
	pristine := observe(src)
	mutate(dup)
	require.Equal(t, pristine, observe(src),
		"mutating the independent clone changed the source (tier %s)", clonecap.TierName[S]())
}

// Coupling checks the mirrored-clone contract: after cloning, a mutation
// through either value must be observable through the other.
func Coupling[S clonecap.Speed, T any](
	t *testing.T,
	clone clonecap.Mirrored[S, T],
	build func() T,
	mutate func(T),
	observe func(T) any,
) {
	t.Helper()

	src := build()
	dup := clone(src)
	mutate(src)
	require.Equal(t, observe(src), observe(dup),
		"mutation through the source is not visible through the mirrored clone (tier %s)", clonecap.TierName[S]())

	mutate(dup)
	require.Equal(t, observe(dup), observe(src),
		"mutation through the mirrored clone is not visible through the source (tier %s)", clonecap.TierName[S]())
}

// Agreement checks tier soundness: two capabilities for the same type -
// typically a fastest-tier implementation and one mechanically promoted
// from it - must produce observably identical clones for every sample.
func Agreement[S1, S2 clonecap.Speed, T any](
	t *testing.T,
	fast clonecap.Independent[S1, T],
	slow clonecap.Independent[S2, T],
	samples []T,
	observe func(T) any,
) {
	t.Helper()

	for _, sample := range samples {
		require.Equal(t, observe(fast(sample)), observe(slow(sample)),
			"capabilities at tiers %s and %s disagree", clonecap.TierName[S1](), clonecap.TierName[S2]())
	}
}

// MirroredAgreement is Agreement for the mirrored family.
func MirroredAgreement[S1, S2 clonecap.Speed, T any](
	t *testing.T,
	fast clonecap.Mirrored[S1, T],
	slow clonecap.Mirrored[S2, T],
	samples []T,
	observe func(T) any,
) {
	t.Helper()

	for _, sample := range samples {
		require.Equal(t, observe(fast(sample)), observe(slow(sample)),
			"capabilities at tiers %s and %s disagree", clonecap.TierName[S1](), clonecap.TierName[S2]())
	}
}
