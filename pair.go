package clonecap

// Product shapes are covered by one generic implementation per field count,
// with higher arities built by nesting rather than by duplicating the same
// body a dozen times. A combinator preserves the tier: the product is
// exactly as fast as its slowest field, because every field capability is
// demanded at the same tier S.

// Pair is a two-field product type.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is a three-field product type.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad is a four-field product type. Wider shapes nest: a five-field
// product is a Pair of a Quad and the fifth field.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func pairWise[A, B any](fa func(A) A, fb func(B) B) func(Pair[A, B]) Pair[A, B] {
	return func(p Pair[A, B]) Pair[A, B] {
		return Pair[A, B]{First: fa(p.First), Second: fb(p.Second)}
	}
}

func tripleWise[A, B, C any](fa func(A) A, fb func(B) B, fc func(C) C) func(Triple[A, B, C]) Triple[A, B, C] {
	return func(p Triple[A, B, C]) Triple[A, B, C] {
		return Triple[A, B, C]{First: fa(p.First), Second: fb(p.Second), Third: fc(p.Third)}
	}
}

func quadWise[A, B, C, D any](fa func(A) A, fb func(B) B, fc func(C) C, fd func(D) D) func(Quad[A, B, C, D]) Quad[A, B, C, D] {
	return func(p Quad[A, B, C, D]) Quad[A, B, C, D] {
		return Quad[A, B, C, D]{
			First:  fa(p.First),
			Second: fb(p.Second),
			Third:  fc(p.Third),
			Fourth: fd(p.Fourth),
		}
	}
}

// IndependentPair derives an independent capability for Pair[A, B] from
// field capabilities at the same tier.
func IndependentPair[S Speed, A, B any](a Independent[S, A], b Independent[S, B]) Independent[S, Pair[A, B]] {
	return pairWise[A, B](a, b)
}

// MirroredPair derives a mirrored capability for Pair[A, B] from field
// capabilities at the same tier.
func MirroredPair[S Speed, A, B any](a Mirrored[S, A], b Mirrored[S, B]) Mirrored[S, Pair[A, B]] {
	return pairWise[A, B](a, b)
}

// IndependentTriple derives an independent capability for Triple[A, B, C].
func IndependentTriple[S Speed, A, B, C any](a Independent[S, A], b Independent[S, B], c Independent[S, C]) Independent[S, Triple[A, B, C]] {
	return tripleWise[A, B, C](a, b, c)
}

// MirroredTriple derives a mirrored capability for Triple[A, B, C].
func MirroredTriple[S Speed, A, B, C any](a Mirrored[S, A], b Mirrored[S, B], c Mirrored[S, C]) Mirrored[S, Triple[A, B, C]] {
	return tripleWise[A, B, C](a, b, c)
}

// IndependentQuad derives an independent capability for Quad[A, B, C, D].
func IndependentQuad[S Speed, A, B, C, D any](a Independent[S, A], b Independent[S, B], c Independent[S, C], d Independent[S, D]) Independent[S, Quad[A, B, C, D]] {
	return quadWise[A, B, C, D](a, b, c, d)
}

// MirroredQuad derives a mirrored capability for Quad[A, B, C, D].
func MirroredQuad[S Speed, A, B, C, D any](a Mirrored[S, A], b Mirrored[S, B], c Mirrored[S, C], d Mirrored[S, D]) Mirrored[S, Quad[A, B, C, D]] {
	return quadWise[A, B, C, D](a, b, c, d)
}
