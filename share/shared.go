package share

import (
	"weak"

	"github.com/roach88/clonecap"
)

// Shared is a strong handle to a shared value. Copying the handle shares
// the referent; every copy reads and writes the same backing value. It is
// the canonical mirrored-clonable container.
//
// The zero Shared holds no value; Get returns nil.
type Shared[T any] struct {
	p *T
}

// NewShared allocates a backing value for v and returns a handle to it.
func NewShared[T any](v T) Shared[T] {
	return Shared[T]{p: &v}
}

// Get returns a pointer to the shared backing value, or nil for the zero
// handle. Mutations through the pointer are visible to every copy of the
// handle.
func (s Shared[T]) Get() *T {
	return s.p
}

// Downgrade returns a weak handle to the same backing value. The weak
// handle does not keep the value alive.
func (s Shared[T]) Downgrade() Weak[T] {
	if s.p == nil {
		return Weak[T]{}
	}
	return Weak[T]{p: weak.Make(s.p)}
}

// NonRecursiveClone marks Shared as non-recursive: cloning the handle is a
// pointer copy whose cost does not depend on T.
func (Shared[T]) NonRecursiveClone() {}

// Weak is a weak handle to a value owned through Shared handles. It resolves
// to the value while at least one strong handle (or other strong reference)
// keeps it alive, and stops resolving once the value has been collected.
//
// The zero Weak never resolves.
type Weak[T any] struct {
	p weak.Pointer[T]
}

// Upgrade attempts to recover a strong handle. It reports false once the
// referent has been collected.
func (w Weak[T]) Upgrade() (Shared[T], bool) {
	p := w.p.Value()
	if p == nil {
		return Shared[T]{}, false
	}
	return Shared[T]{p: p}, true
}

// NonRecursiveClone marks Weak as non-recursive.
func (Weak[T]) NonRecursiveClone() {}

// MirroredHandle returns the mirrored capability for Shared[T]: a handle
// copy. All mutable state stays shared, the cost is a pointer copy at any
// tier.
func MirroredHandle[S clonecap.Speed, T any]() clonecap.Mirrored[S, Shared[T]] {
	return func(s Shared[T]) Shared[T] { return s }
}

// MirroredWeak returns the mirrored capability for Weak[T]: a handle copy.
func MirroredWeak[S clonecap.Speed, T any]() clonecap.Mirrored[S, Weak[T]] {
	return func(w Weak[T]) Weak[T] { return w }
}

// IndependentHandle derives an independent capability for Shared[T] from an
// independent capability for T. The clone gets a freshly allocated backing
// value - never the source's backing with more handles on it - so the two
// handles share nothing afterwards. The zero handle clones to the zero
// handle. Allocation keeps this off the NearInstant tier.
func IndependentHandle[S clonecap.ConstantOrSlower, T any](elem clonecap.Independent[S, T]) clonecap.Independent[S, Shared[T]] {
	return func(s Shared[T]) Shared[T] {
		if s.p == nil {
			return Shared[T]{}
		}
		return NewShared(elem(*s.p))
	}
}

// IndependentWeak derives an independent capability for Weak[T]. A
// resolvable source yields a weak handle to a fresh independent clone of
// the referent; since nothing strong retains that clone, the new handle may
// stop resolving as soon as the collector runs. An unresolvable source is
// not an error: it yields a fresh, equally unresolvable weak handle without
// invoking the element operation.
func IndependentWeak[S clonecap.ConstantOrSlower, T any](elem clonecap.Independent[S, T]) clonecap.Independent[S, Weak[T]] {
	return func(w Weak[T]) Weak[T] {
		strong, ok := w.Upgrade()
		if !ok {
			return Weak[T]{}
		}
		return NewShared(elem(*strong.p)).Downgrade()
	}
}
