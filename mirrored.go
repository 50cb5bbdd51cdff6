package clonecap

// Mirrored produces clones that share all semantically-important mutable
// state with their source.
//
// Mutating one mirrored clone must be observable through every other.
// Different mirrored clones should act identically through their public
// interfaces, with narrow exceptions such as the memory addresses of
// per-clone storage: callers may not assume that two mirrored clones hand
// out pointers to the same location, only that the values behave the same.
//
// Mirroring is typically realized by copying a handle to shared,
// reference-counted or garbage-collected state, or trivially by cloning a
// value with no mutable state at all. Per-clone mutable data is permissible
// when mutating it cannot make the clones behave observably differently.
//
// Exceptions must be documented per type; debug accesses are conventionally
// exempt. The tier parameter S bounds the cost of the operation.
type Mirrored[S Speed, T any] func(T) T

// MirroredCloner is implemented by types that provide their own mirrored
// clone. See Mirrored for the contract the method must honor.
type MirroredCloner[T any] interface {
	MirroredClone() T
}

// MethodMirrored adopts T's MirroredClone method as a capability at tier S.
// The caller asserts that the method's cost is bounded by S.
func MethodMirrored[S Speed, T MirroredCloner[T]]() Mirrored[S, T] {
	return func(v T) T {
		return v.MirroredClone()
	}
}
