package share

import "fmt"

// BorrowError is the panic value raised when a clone (or any shared access)
// reaches a Cell that is currently borrowed in a conflicting mode. It is a
// reentrancy violation by the calling goroutine, not a recoverable
// condition, so it is delivered as a panic rather than an error return.
type BorrowError struct {
	// Op is the access that was attempted: "read" or "write".
	Op string

	// Held describes the conflicting borrow: "exclusive" or "shared".
	Held string
}

// Error implements the error interface.
func (e *BorrowError) Error() string {
	return fmt.Sprintf("share: %s access to a cell with an active %s borrow", e.Op, e.Held)
}

// PoisonError is the panic value raised when an access reaches a Guarded or
// RWGuarded whose previous holder panicked while holding the lock. The
// guarded value may be mid-mutation, so the guard refuses to hand out
// possibly-inconsistent data.
type PoisonError struct{}

// Error implements the error interface.
func (e *PoisonError) Error() string {
	return "share: guard is poisoned; a previous holder panicked while holding the lock"
}
