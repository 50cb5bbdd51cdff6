package clonecap

// Independent produces clones that share no semantically-important mutable
// state with their source.
//
// An independent clone and its source must appear, through their public
// interfaces, to act completely independently: mutating or discarding one
// must have no observable effect on the other. The two may still reference
// the same immutable data, as long as neither side can change that data's
// value through the type's interface.
//
// Implementations backed by copy-on-write or reference counting must give
// the clone a fully independent backing allocation, not a shared one with a
// bumped count; the count used to decide when to copy is itself shared
// mutable state.
//
// Exceptions are permitted and must be documented per type. Debug and
// inspection accesses are conventionally exempt, as is shared state that is
// written but never read back through the public interface.
//
// The tier parameter S bounds the cost of the operation. An implementation
// claiming tier S must honor S's contract; see Speed.
type Independent[S Speed, T any] func(T) T

// IndependentCloner is implemented by types that provide their own
// independent clone. See Independent for the contract the method must honor.
type IndependentCloner[T any] interface {
	IndependentClone() T
}

// MethodIndependent adopts T's IndependentClone method as a capability at
// tier S. Tier placement for a named type is a deliberate, manual
// classification: the caller asserts that the method's cost is bounded by S.
func MethodIndependent[S Speed, T IndependentCloner[T]]() Independent[S, T] {
	return func(v T) T {
		return v.IndependentClone()
	}
}
