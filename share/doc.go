// Package share provides shared-state containers and their clone
// capabilities: the strong handle Shared, the weak handle Weak, the
// borrow-tracked Cell, and the lock-guarded Guarded and RWGuarded.
//
// These containers are the library's only forms of intentional sharing.
// Mirrored cloning of a handle copies the handle, never the referent, and
// is NearInstant; independent cloning gives the clone a fresh backing value
// and is at least ConstantTime because it must allocate, and for the
// guarded containers must also acquire the lock.
//
// The library's fatal conditions live here: cloning through an
// exclusively borrowed Cell panics with BorrowError, cloning through a
// poisoned guard panics with PoisonError, and cloning through a lock the
// calling goroutine already holds deadlocks. None of these are recoverable
// error returns; see the package-level types for details.
//
// Importing this package corresponds to the allocation-aware feature gate;
// the guard types additionally belong to the platform-aware gate.
package share
