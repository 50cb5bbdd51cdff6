package clonecap

// Scalar matches Go's scalar kinds: value types whose copy is a fixed-size
// bit copy with no mutable state behind it. Strings qualify because a Go
// string copy duplicates only the immutable header; the bytes it points at
// cannot be mutated through the string interface.
//
// Approximation terms are used throughout so that named types with a scalar
// underlying type (identifiers, flags, durations) are covered as well.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Unit matches zero-sized marker types.
type Unit interface {
	~struct{}
}

// IndependentScalar returns an independent capability for a scalar type.
// A scalar has no mutable state to share, so the copy is honest at every
// tier; the single body is what makes the tiers agree by construction.
func IndependentScalar[S Speed, T Scalar]() Independent[S, T] {
	return func(v T) T { return v }
}

// MirroredScalar returns a mirrored capability for a scalar type. With no
// mutable state at all, the mirrored contract holds vacuously.
func MirroredScalar[S Speed, T Scalar]() Mirrored[S, T] {
	return func(v T) T { return v }
}

// MixedScalar returns a mixed capability for a scalar type. Provided for
// callers that want to keep a uniform mixed-semantics pipeline; the copy
// in fact shares nothing.
func MixedScalar[S Speed, T Scalar]() Mixed[S, T] {
	return func(v T) T { return v }
}

// IndependentUnit returns an independent capability for a zero-sized marker
// type. There is nothing to copy and nothing to share.
func IndependentUnit[S Speed, T Unit]() Independent[S, T] {
	return func(v T) T { return v }
}

// MirroredUnit returns a mirrored capability for a zero-sized marker type.
func MirroredUnit[S Speed, T Unit]() Mirrored[S, T] {
	return func(v T) T { return v }
}
