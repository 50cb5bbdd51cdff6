package coll

import "github.com/roach88/clonecap"

// Heap is a binary min-heap ordered by a caller-supplied less function.
// The standard container/heap operates on an interface over an untyped
// backing store, so the package provides its own minimal generic heap.
type Heap[E any] struct {
	less  func(a, b E) bool
	items []E
}

// NewHeap returns an empty heap ordered by less.
func NewHeap[E any](less func(a, b E) bool) *Heap[E] {
	return &Heap[E]{less: less}
}

// Push adds v to the heap.
func (h *Heap[E]) Push(v E) {
	h.items = append(h.items, v)
	// Sift up.
	for i := len(h.items) - 1; i > 0; {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// Pop removes and returns the minimum element. It reports false on an
// empty heap.
func (h *Heap[E]) Pop() (E, bool) {
	if len(h.items) == 0 {
		var zero E
		return zero, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	// Sift down.
	for i := 0; ; {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < len(h.items) && h.less(h.items[left], h.items[smallest]) {
			smallest = left
		}
		if right < len(h.items) && h.less(h.items[right], h.items[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
	return top, true
}

// Len returns the number of elements.
func (h *Heap[E]) Len() int {
	return len(h.items)
}

// IndependentHeap derives an independent capability for *Heap[E]: a fresh
// heap with the same ordering function and independent clones of the
// elements in the same internal layout. A nil heap clones to nil.
func IndependentHeap[E any](elem clonecap.Independent[clonecap.AnySpeed, E]) clonecap.Independent[clonecap.AnySpeed, *Heap[E]] {
	return func(src *Heap[E]) *Heap[E] {
		if src == nil {
			return nil
		}
		out := &Heap[E]{less: src.less}
		if src.items != nil {
			out.items = make([]E, len(src.items))
			for i := range src.items {
				out.items[i] = elem(src.items[i])
			}
		}
		return out
	}
}
