package share

import "github.com/roach88/clonecap"

// Cell is a borrow-tracked container for interior mutation within a single
// goroutine. Reads take a shared borrow, writes take an exclusive borrow,
// and a conflicting borrow panics with BorrowError instead of silently
// observing a half-written value.
//
// Cell is not safe for concurrent use; it tracks borrows, it does not lock.
// For cross-goroutine guarding use Guarded or RWGuarded.
type Cell[T any] struct {
	// borrows is the borrow state: 0 free, >0 that many shared borrows,
	// -1 exclusively borrowed.
	borrows int
	v       T
}

// NewCell returns a Cell holding v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{v: v}
}

// Read runs f with a shared borrow of the value. It panics with
// BorrowError if the cell is exclusively borrowed, including when called
// from within an Update on the same cell.
func (c *Cell[T]) Read(f func(T)) {
	if c.borrows < 0 {
		panic(&BorrowError{Op: "read", Held: "exclusive"})
	}
	c.borrows++
	defer func() { c.borrows-- }()
	f(c.v)
}

// Update runs f with an exclusive borrow of the value. It panics with
// BorrowError if any borrow is active.
func (c *Cell[T]) Update(f func(*T)) {
	if c.borrows != 0 {
		held := "shared"
		if c.borrows < 0 {
			held = "exclusive"
		}
		panic(&BorrowError{Op: "write", Held: held})
	}
	c.borrows = -1
	defer func() { c.borrows = 0 }()
	f(&c.v)
}

// IndependentCell derives an independent capability for *Cell[T] from an
// independent capability for T. The clone is a fresh, unborrowed cell
// holding an independent clone of the source's value.
//
// Cloning takes a shared borrow of the source, so cloning a cell that is
// exclusively borrowed at the time - a reentrancy violation - panics with
// BorrowError. That is the documented fatal condition, not something the
// combinator works around.
func IndependentCell[S clonecap.ConstantOrSlower, T any](elem clonecap.Independent[S, T]) clonecap.Independent[S, *Cell[T]] {
	return func(src *Cell[T]) *Cell[T] {
		var out *Cell[T]
		src.Read(func(v T) {
			out = NewCell(elem(v))
		})
		return out
	}
}
