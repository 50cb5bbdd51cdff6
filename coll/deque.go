package coll

import (
	"github.com/gammazero/deque/v2"

	"github.com/roach88/clonecap"
)

// IndependentDeque derives an independent capability for a double-ended
// queue. The clone is a fresh deque holding independent clones of the
// elements in the same front-to-back order. A nil deque clones to nil.
func IndependentDeque[E any](elem clonecap.Independent[clonecap.AnySpeed, E]) clonecap.Independent[clonecap.AnySpeed, *deque.Deque[E]] {
	return func(src *deque.Deque[E]) *deque.Deque[E] {
		if src == nil {
			return nil
		}
		out := new(deque.Deque[E])
		for i := 0; i < src.Len(); i++ {
			out.PushBack(elem(src.At(i)))
		}
		return out
	}
}
