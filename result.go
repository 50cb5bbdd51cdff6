package clonecap

// Result is a fallible value: either success with a value of T, or failure
// with an error value of E. The zero value is a failure holding E's zero.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok returns a successful Result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, value: v}
}

// Err returns a failed Result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether the result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value returns the success value and whether the result is a success.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Failure returns the error value and whether the result is a failure.
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, !r.ok
}

func resultWise[T, E any](val func(T) T, errv func(E) E) func(Result[T, E]) Result[T, E] {
	return func(r Result[T, E]) Result[T, E] {
		if r.ok {
			return Ok[T, E](val(r.value))
		}
		// Failure path: only the error value is cloned.
		return Err[T, E](errv(r.err))
	}
}

// IndependentResult derives an independent capability for Result[T, E] from
// per-path capabilities at the same tier. Exactly one path's operation runs
// per clone: the success value for successes, the error value for failures.
func IndependentResult[S Speed, T, E any](val Independent[S, T], errv Independent[S, E]) Independent[S, Result[T, E]] {
	return resultWise[T, E](val, errv)
}

// MirroredResult derives a mirrored capability for Result[T, E] from
// per-path capabilities at the same tier.
func MirroredResult[S Speed, T, E any](val Mirrored[S, T], errv Mirrored[S, E]) Mirrored[S, Result[T, E]] {
	return resultWise[T, E](val, errv)
}
