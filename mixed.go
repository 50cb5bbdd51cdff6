package clonecap

// Mixed produces clones that may share some but not all semantically-
// important mutable state with their source. The exact sharing is
// implementation-dependent and must be documented per type.
//
// Mixed is for cases where neither the Independent nor the Mirrored
// guarantee applies and the author wants to say so explicitly, rather than
// falling back to an undifferentiated clone. It is not a catch-all
// abstraction over the other two families; a tool that erases the
// distinction between the three semantics is deliberately not provided.
type Mixed[S Speed, T any] func(T) T

// MixedCloner is implemented by types that provide their own mixed clone.
type MixedCloner[T any] interface {
	MixedClone() T
}

// MethodMixed adopts T's MixedClone method as a capability at tier S.
// The caller asserts that the method's cost is bounded by S.
func MethodMixed[S Speed, T MixedCloner[T]]() Mixed[S, T] {
	return func(v T) T {
		return v.MixedClone()
	}
}
