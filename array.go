package clonecap

// Go's type system cannot abstract over array lengths, so fixed-size array
// coverage takes the array type and a slice-view adapter instead of one
// implementation per length. The combinator receives the array by value -
// already a fresh copy - and fixes each element up in place through the
// view, then returns the copy. The adapter is always the same one-liner:
//
//	clonecap.IndependentArray[clonecap.ConstantTime](
//		elem,
//		func(a *[4]int) []int { return a[:] },
//	)
//
// A fixed-size array is at least ConstantTime under the independent
// semantics: the length is a compile-time constant, but the element walk
// still runs, so NearInstant cannot be claimed through this combinator.

// IndependentArray derives an independent capability for a fixed-size array
// type A with element type E, given the element capability at the same tier
// and a slice view over the array.
func IndependentArray[S ConstantOrSlower, A any, E any](elem Independent[S, E], view func(*A) []E) Independent[S, A] {
	return arrayWise[A, E](elem, view)
}

// MirroredArray derives a mirrored capability for a fixed-size array type A
// with element type E at the same tier.
func MirroredArray[S ConstantOrSlower, A any, E any](elem Mirrored[S, E], view func(*A) []E) Mirrored[S, A] {
	return arrayWise[A, E](elem, view)
}

func arrayWise[A any, E any](elem func(E) E, view func(*A) []E) func(A) A {
	return func(src A) A {
		s := view(&src)
		for i := range s {
			s[i] = elem(s[i])
		}
		return src
	}
}
