package clonecap

// NonRecursive marks a named type whose clone cost does not depend on any
// type parameter it carries. A handle type that copies a pointer qualifies;
// a container that clones its elements does not.
//
// A type opts in at its definition site by declaring the no-op method:
//
//	func (UserID) NonRecursiveClone() {}
//
// The marker licenses the Promote functions below: a non-recursive type
// needs a capability only at its fastest honest tier, and the slower tiers
// are derived mechanically, so the tiers agree by construction rather than
// by duplicated hand-written implementations.
//
// The marker must never be attached to a type whose clone cost genuinely
// depends on a contained parameter. Doing so would let a caller believe an
// O(n) clone is O(1) - a violation of the tier contract, not of the type
// system. Composite combinators (pairs, arrays, Option, Result, handles,
// collections) therefore take one element capability per tier instead of
// promoting.
type NonRecursive interface {
	NonRecursiveClone()
}

// PromoteIndependent widens a NearInstant independent capability of a
// non-recursive type to any slower tier.
func PromoteIndependent[S ConstantOrSlower, T NonRecursive](fastest Independent[NearInstant, T]) Independent[S, T] {
	return Independent[S, T](fastest)
}

// PromoteIndependentConstant widens a ConstantTime independent capability of
// a non-recursive type to LogTime or AnySpeed.
func PromoteIndependentConstant[S LogOrSlower, T NonRecursive](fastest Independent[ConstantTime, T]) Independent[S, T] {
	return Independent[S, T](fastest)
}

// PromoteIndependentLog widens a LogTime independent capability of a
// non-recursive type to AnySpeed.
func PromoteIndependentLog[T NonRecursive](fastest Independent[LogTime, T]) Independent[AnySpeed, T] {
	return Independent[AnySpeed, T](fastest)
}

// PromoteMirrored widens a NearInstant mirrored capability of a
// non-recursive type to any slower tier.
func PromoteMirrored[S ConstantOrSlower, T NonRecursive](fastest Mirrored[NearInstant, T]) Mirrored[S, T] {
	return Mirrored[S, T](fastest)
}

// PromoteMirroredConstant widens a ConstantTime mirrored capability of a
// non-recursive type to LogTime or AnySpeed.
func PromoteMirroredConstant[S LogOrSlower, T NonRecursive](fastest Mirrored[ConstantTime, T]) Mirrored[S, T] {
	return Mirrored[S, T](fastest)
}

// PromoteMirroredLog widens a LogTime mirrored capability of a
// non-recursive type to AnySpeed.
func PromoteMirroredLog[T NonRecursive](fastest Mirrored[LogTime, T]) Mirrored[AnySpeed, T] {
	return Mirrored[AnySpeed, T](fastest)
}

// PromoteMixed widens a NearInstant mixed capability of a non-recursive
// type to any slower tier.
func PromoteMixed[S ConstantOrSlower, T NonRecursive](fastest Mixed[NearInstant, T]) Mixed[S, T] {
	return Mixed[S, T](fastest)
}

// PromoteMixedConstant widens a ConstantTime mixed capability of a
// non-recursive type to LogTime or AnySpeed.
func PromoteMixedConstant[S LogOrSlower, T NonRecursive](fastest Mixed[ConstantTime, T]) Mixed[S, T] {
	return Mixed[S, T](fastest)
}

// PromoteMixedLog widens a LogTime mixed capability of a non-recursive type
// to AnySpeed.
func PromoteMixedLog[T NonRecursive](fastest Mixed[LogTime, T]) Mixed[AnySpeed, T] {
	return Mixed[AnySpeed, T](fastest)
}
