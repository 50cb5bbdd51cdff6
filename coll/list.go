package coll

import (
	"iter"

	"github.com/roach88/clonecap"
)

// List is a doubly linked list with a typed element. The standard
// container/list stores any and cannot carry an element capability, so the
// package provides its own minimal generic list. The zero List is empty and
// ready to use.
type List[E any] struct {
	front, back *listNode[E]
	n           int
}

type listNode[E any] struct {
	v          E
	prev, next *listNode[E]
}

// PushBack appends v to the end of the list.
func (l *List[E]) PushBack(v E) {
	node := &listNode[E]{v: v, prev: l.back}
	if l.back != nil {
		l.back.next = node
	} else {
		l.front = node
	}
	l.back = node
	l.n++
}

// PushFront prepends v to the start of the list.
func (l *List[E]) PushFront(v E) {
	node := &listNode[E]{v: v, next: l.front}
	if l.front != nil {
		l.front.prev = node
	} else {
		l.back = node
	}
	l.front = node
	l.n++
}

// Len returns the number of elements.
func (l *List[E]) Len() int {
	return l.n
}

// Front returns a pointer to the first element, or nil if the list is
// empty. Mutating through the pointer mutates the list.
func (l *List[E]) Front() *E {
	if l.front == nil {
		return nil
	}
	return &l.front.v
}

// All iterates the elements front to back.
func (l *List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for node := l.front; node != nil; node = node.next {
			if !yield(node.v) {
				return
			}
		}
	}
}

// IndependentList derives an independent capability for *List[E]: a fresh
// list of independent element clones in the same order. A nil list clones
// to nil.
func IndependentList[E any](elem clonecap.Independent[clonecap.AnySpeed, E]) clonecap.Independent[clonecap.AnySpeed, *List[E]] {
	return func(src *List[E]) *List[E] {
		if src == nil {
			return nil
		}
		out := new(List[E])
		for v := range src.All() {
			out.PushBack(elem(v))
		}
		return out
	}
}
