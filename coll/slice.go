package coll

import (
	"bytes"
	"strings"

	"github.com/roach88/clonecap"
)

// IndependentSlice derives an independent capability for []E: a fresh
// backing array with an independent clone of every element. Appending to or
// mutating one slice afterwards cannot be observed through the other.
// A nil slice clones to nil.
func IndependentSlice[E any](elem clonecap.Independent[clonecap.AnySpeed, E]) clonecap.Independent[clonecap.AnySpeed, []E] {
	return func(src []E) []E {
		if src == nil {
			return nil
		}
		out := make([]E, len(src))
		for i := range src {
			out[i] = elem(src[i])
		}
		return out
	}
}

// MixedSlice returns the mixed capability for []E: a header copy. The two
// slices share the backing array until one of them grows past its capacity,
// which is the canonical partial-sharing clone in Go. The copy itself is a
// three-word move, so the capability is available at every tier.
func MixedSlice[S clonecap.Speed, E any]() clonecap.Mixed[S, []E] {
	return func(src []E) []E { return src }
}

// IndependentBytes returns the independent capability for owned byte
// sequences. Unlike a string, a []byte is mutable, so an owned copy is
// required for independence.
func IndependentBytes() clonecap.Independent[clonecap.AnySpeed, []byte] {
	return func(src []byte) []byte {
		return bytes.Clone(src)
	}
}

// IndependentOwnedString returns an independent capability for strings that
// copies the bytes instead of sharing them. Strings are already covered at
// NearInstant by the scalar constructors; this variant exists for callers
// that need the clone to stop retaining the source's backing memory, such
// as a small string cut from a large buffer.
func IndependentOwnedString() clonecap.Independent[clonecap.AnySpeed, string] {
	return func(src string) string {
		return strings.Clone(src)
	}
}
