package clonecap

// Option is an optional value: either present with a value of T, or absent.
// The zero value is absent.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns a present Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func optionWise[T any](elem func(T) T) func(Option[T]) Option[T] {
	return func(o Option[T]) Option[T] {
		if !o.present {
			// Absent values pass through untouched; the element
			// operation is never invoked.
			return o
		}
		return Some(elem(o.value))
	}
}

// IndependentOption derives an independent capability for Option[T] from
// the element capability at the same tier. An absent option clones to an
// absent option without invoking the element operation.
func IndependentOption[S Speed, T any](elem Independent[S, T]) Independent[S, Option[T]] {
	return optionWise[T](elem)
}

// MirroredOption derives a mirrored capability for Option[T] from the
// element capability at the same tier.
func MirroredOption[S Speed, T any](elem Mirrored[S, T]) Mirrored[S, Option[T]] {
	return optionWise[T](elem)
}
