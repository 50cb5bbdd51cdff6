package clonecap

// The constructors in this file adopt Go's built-in shallow copy under a
// caller-chosen semantics and tier. They are the manual-classification
// escape hatch for types the library cannot inspect: structs of scalars,
// capture-free function values, immutable records. The claim is entirely
// the caller's; nothing is verified.

// IndependentCopy claims that a shallow copy of T is an independent clone.
//
// The claim is honest exactly when T contains no pointers, slices, maps,
// channels, or captured state - or when everything reachable through them
// is immutable. A struct of scalars qualifies; a struct holding a slice
// does not. Function values qualify only when they capture nothing mutable.
func IndependentCopy[S Speed, T any]() Independent[S, T] {
	return func(v T) T { return v }
}

// MirroredStateless claims that T has no semantically-important mutable
// state, which makes a shallow copy a mirrored clone vacuously: with
// nothing to mutate, "mutating one is visible through the other" cannot be
// violated. This is the trivial realization of mirroring the Mirrored
// contract mentions.
func MirroredStateless[S Speed, T any]() Mirrored[S, T] {
	return func(v T) T { return v }
}

// MixedShallow adopts the shallow copy as a mixed clone for any type. The
// copy shares whatever the shallow copy shares - referents of pointers,
// slice backing arrays, closure captures - and owns the rest. This is the
// honest classification for closures and copy-on-write style values, and
// the fallback when neither pure semantics applies.
func MixedShallow[S Speed, T any]() Mixed[S, T] {
	return func(v T) T { return v }
}
