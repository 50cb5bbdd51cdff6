package clonecap

import "sync/atomic"

// Atomic cells are handled through their pointer form: the sync/atomic
// types are not copyable, so a capability for them produces a freshly
// allocated cell. Independent cloning of a value-carrying atomic is a
// single atomic load plus a store into the new cell - NearInstant, no
// blocking. A bare atomic has no mirrored clone: copying it cannot share
// state, only duplicate it. To mirror an atomic, share it behind a handle
// (see clonecap/share).

// IndependentAtomic derives an independent capability for any pointer-form
// atomic cell *C with Load/Store of V. The value kinds (Bool, Int32, Int64,
// Uint32, Uint64, Uintptr) are independent because the loaded value is a
// scalar; for atomic.Pointer and atomic.Value use the Mixed constructors
// below, since the loaded value there is a shared referent.
func IndependentAtomic[S Speed, C any, V Scalar, A interface {
	~*C
	Load() V
	Store(V)
}]() Independent[S, A] {
	return func(src A) A {
		out := A(new(C))
		out.Store(src.Load())
		return out
	}
}

// IndependentAtomicBool returns the independent capability for *atomic.Bool.
func IndependentAtomicBool[S Speed]() Independent[S, *atomic.Bool] {
	return IndependentAtomic[S, atomic.Bool, bool, *atomic.Bool]()
}

// IndependentAtomicInt32 returns the independent capability for *atomic.Int32.
func IndependentAtomicInt32[S Speed]() Independent[S, *atomic.Int32] {
	return IndependentAtomic[S, atomic.Int32, int32, *atomic.Int32]()
}

// IndependentAtomicInt64 returns the independent capability for *atomic.Int64.
func IndependentAtomicInt64[S Speed]() Independent[S, *atomic.Int64] {
	return IndependentAtomic[S, atomic.Int64, int64, *atomic.Int64]()
}

// IndependentAtomicUint32 returns the independent capability for *atomic.Uint32.
func IndependentAtomicUint32[S Speed]() Independent[S, *atomic.Uint32] {
	return IndependentAtomic[S, atomic.Uint32, uint32, *atomic.Uint32]()
}

// IndependentAtomicUint64 returns the independent capability for *atomic.Uint64.
func IndependentAtomicUint64[S Speed]() Independent[S, *atomic.Uint64] {
	return IndependentAtomic[S, atomic.Uint64, uint64, *atomic.Uint64]()
}

// IndependentAtomicUintptr returns the independent capability for *atomic.Uintptr.
func IndependentAtomicUintptr[S Speed]() Independent[S, *atomic.Uintptr] {
	return IndependentAtomic[S, atomic.Uintptr, uintptr, *atomic.Uintptr]()
}

// MixedAtomicPointer returns a mixed capability for *atomic.Pointer[E].
// The new cell is independent storage, but the pointer it holds still
// refers to the source's referent - partial sharing by construction.
func MixedAtomicPointer[S Speed, E any]() Mixed[S, *atomic.Pointer[E]] {
	return func(src *atomic.Pointer[E]) *atomic.Pointer[E] {
		out := new(atomic.Pointer[E])
		out.Store(src.Load())
		return out
	}
}

// MixedAtomicValue returns a mixed capability for *atomic.Value. The cell
// is fresh; the payload it holds is shared with the source. An empty source
// clones to an empty cell (atomic.Value cannot store nil).
func MixedAtomicValue[S Speed]() Mixed[S, *atomic.Value] {
	return func(src *atomic.Value) *atomic.Value {
		out := new(atomic.Value)
		if v := src.Load(); v != nil {
			out.Store(v)
		}
		return out
	}
}
