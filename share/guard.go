package share

import (
	"sync"

	"github.com/roach88/clonecap"
)

// Guarded couples a value with the mutex that guards it, so the value can
// only be reached with the lock held. Guards track poisoning: if a holder
// panics while inside With, the guard is marked poisoned and every later
// access panics with PoisonError rather than handing out data that may be
// mid-mutation.
//
// Guards do not detect self-deadlock. Calling With - or cloning the guard -
// from a goroutine that already holds the lock blocks forever. That is a
// documented property of the ConstantTime tier's "may block" contract, not
// something the library works around.
type Guarded[T any] struct {
	mu       sync.Mutex
	poisoned bool
	v        T
}

// NewGuarded returns an unlocked guard holding v.
func NewGuarded[T any](v T) *Guarded[T] {
	return &Guarded[T]{v: v}
}

// With runs f with the lock held and exclusive access to the value.
// It panics with PoisonError if a previous holder panicked; if f itself
// panics, the guard is poisoned and the panic is re-raised.
func (g *Guarded[T]) With(f func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.poisoned {
		panic(&PoisonError{})
	}
	defer func() {
		if r := recover(); r != nil {
			g.poisoned = true
			panic(r)
		}
	}()
	f(&g.v)
}

// RWGuarded couples a value with a reader/writer lock. Read takes the read
// lock, Write the write lock; poisoning follows the same rules as Guarded
// but only writers can poison, since readers have no way to leave the value
// half-mutated.
type RWGuarded[T any] struct {
	mu       sync.RWMutex
	poisoned bool
	v        T
}

// NewRWGuarded returns an unlocked guard holding v.
func NewRWGuarded[T any](v T) *RWGuarded[T] {
	return &RWGuarded[T]{v: v}
}

// Read runs f with the read lock held. It panics with PoisonError if a
// previous writer panicked.
func (g *RWGuarded[T]) Read(f func(T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.poisoned {
		panic(&PoisonError{})
	}
	f(g.v)
}

// Write runs f with the write lock held and exclusive access to the value.
// It panics with PoisonError if the guard is poisoned; if f panics, the
// guard is poisoned and the panic is re-raised.
func (g *RWGuarded[T]) Write(f func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.poisoned {
		panic(&PoisonError{})
	}
	defer func() {
		if r := recover(); r != nil {
			g.poisoned = true
			panic(r)
		}
	}()
	f(&g.v)
}

// IndependentGuarded derives an independent capability for *Guarded[T]:
// acquire the lock, clone the guarded value, release, and return a fresh
// unlocked guard with an independent backing value.
//
// Acquiring the lock puts this at ConstantTime or slower and makes the
// clone subject to the guard's fatal conditions: PoisonError on a poisoned
// source, and deadlock if the calling goroutine already holds the lock.
func IndependentGuarded[S clonecap.ConstantOrSlower, T any](elem clonecap.Independent[S, T]) clonecap.Independent[S, *Guarded[T]] {
	return func(src *Guarded[T]) *Guarded[T] {
		var out *Guarded[T]
		src.With(func(v *T) {
			out = NewGuarded(elem(*v))
		})
		return out
	}
}

// IndependentRWGuarded derives an independent capability for *RWGuarded[T].
// Cloning takes the read lock, so concurrent readers are not excluded; the
// same fatal conditions as IndependentGuarded apply.
func IndependentRWGuarded[S clonecap.ConstantOrSlower, T any](elem clonecap.Independent[S, T]) clonecap.Independent[S, *RWGuarded[T]] {
	return func(src *RWGuarded[T]) *RWGuarded[T] {
		var out *RWGuarded[T]
		src.Read(func(v T) {
			out = NewRWGuarded(elem(v))
		})
		return out
	}
}
