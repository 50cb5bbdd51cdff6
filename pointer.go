package clonecap

// MirroredPointer returns a mirrored capability for a pointer type. Copying
// the pointer shares the referent wholesale, which is exactly the mirrored
// contract: every mutation through one copy is visible through the other.
// Pointer copies carry no cost dependence on the referent, so the
// capability is available at every tier.
func MirroredPointer[S Speed, E any]() Mirrored[S, *E] {
	return func(p *E) *E { return p }
}

// MixedPointer returns a mixed capability for a pointer type, for callers
// classifying a pointer field whose referent is only partially shared in
// practice. The operation is the same pointer copy as MirroredPointer.
func MixedPointer[S Speed, E any]() Mixed[S, *E] {
	return func(p *E) *E { return p }
}

// IndependentPointer derives an independent capability for *E from an
// independent capability for E. The clone gets a freshly allocated referent
// holding an independent clone of the source's referent, so the two
// pointers share nothing afterwards. A nil pointer clones to nil without
// invoking the element operation.
//
// Allocation keeps this off the NearInstant tier; the composite is as slow
// as its element, and at least ConstantTime.
func IndependentPointer[S ConstantOrSlower, E any](elem Independent[S, E]) Independent[S, *E] {
	return func(p *E) *E {
		if p == nil {
			return nil
		}
		out := elem(*p)
		return &out
	}
}
