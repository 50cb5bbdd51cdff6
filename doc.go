// Package clonecap classifies clone operations as compile-time capabilities.
//
// A clone capability answers two independent questions about copying a value:
// what the copy shares with its source, and how expensive producing the copy
// may be. The package separates those questions into three capability
// families and four speed tiers, so that generic code can demand "a clone no
// slower than X, with semantics Y" and have the demand checked by the
// compiler rather than by convention.
//
// # Capability Families
//
// Each family is a defined function type carrying a phantom tier parameter:
//
//   - Independent[S, T]: the clone shares no semantically-important mutable
//     state with its source. Mutating or discarding one must never be
//     observable through the other.
//   - Mirrored[S, T]: the clone shares all semantically-important mutable
//     state with its source. Mutating one is observable through every other
//     mirrored clone.
//   - Mixed[S, T]: partial or unspecified sharing, documented per type.
//
// A capability value is obtained from a constructor (for leaf types), from a
// combinator (for composite types, built out of element capabilities at the
// same tier), or by adopting a type's own clone method at a deliberately
// chosen tier.
//
// # Speed Tiers
//
// The tier set is sealed: exactly NearInstant, ConstantTime, LogTime, and
// AnySpeed implement Speed, and no external package can add a fifth. The
// tags form a total order; a capability claiming a fast tier is always a
// valid capability at every slower tier. The ordering exists purely at the
// type level. Nothing is checked, counted, or timed at runtime.
//
// # Promotion
//
// A named type whose clone cost does not depend on any type parameter it
// carries may opt into the NonRecursive marker by defining the
// NonRecursiveClone method. The nine Promote functions then derive its
// slower-tier capabilities mechanically from its fastest one. Composite
// types must not carry the marker; their combinators take one element
// capability per tier instead, so a container never claims a faster tier
// than its elements justify.
//
// # Coverage Packages
//
// Coverage is additive and opt-in by import, mirroring build-time feature
// gates:
//
//   - clonecap (this package): scalars, zero-sized markers, pointers,
//     atomics, pairs and wider products, fixed-size arrays, Option and
//     Result wrappers, and a few leaf value types.
//   - clonecap/share: shared-state containers - strong and weak handles,
//     borrow-tracked cells, and lock-guarded values with poison tracking.
//   - clonecap/coll: collections - slices, maps, sets, deques, ordered
//     sets and maps, linked lists, and binary heaps. Collection clones are
//     always AnySpeed; rebuilding a collection is never claimed to be
//     constant- or log-time.
//   - clonecap/clonetest: reusable conformance checks for capability
//     implementations.
//
// # Failure Model
//
// Clone operations never return errors. The failure modes that exist are
// fatal and local to the offending call: cloning through an exclusively
// borrowed cell panics with a borrow violation, cloning through a poisoned
// lock panics with the poison error, and cloning through a lock the caller
// already holds deadlocks. A dead weak handle is not a failure; it clones to
// a fresh, equally dead weak handle. Debugging aids are conventionally
// exempt from the sharing guarantees; the exemption is documentation-level,
// not type-level.
package clonecap
