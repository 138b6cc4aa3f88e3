package expect

// The plain forms read x and copy whatever they propagate. The Move forms
// take a pointer and move the payload out of the source instead; the source
// keeps its state with a zero payload.

// AndThen replaces the value with u when x holds one. It does not call
// anything: use Map or FlatMap to derive the new value from the old one.
func AndThen[U, T, E any](x Expected[T, E], u U) Expected[U, E] {
	if x.s.hasErr {
		return Err[U](x.s.copyError())
	}
	return Of[U, E](u)
}

func AndThenMove[U, T, E any](x *Expected[T, E], u U) Expected[U, E] {
	if x.s.hasErr {
		return Err[U](x.s.takeError())
	}
	return Of[U, E](u)
}

// Map applies fn to the value and wraps the result. Errors pass through.
func Map[U, T, E any](x Expected[T, E], fn func(T) U) Expected[U, E] {
	if x.s.hasErr {
		return Err[U](x.s.copyError())
	}
	return Of[U, E](fn(x.s.val))
}

func MapMove[U, T, E any](x *Expected[T, E], fn func(T) U) Expected[U, E] {
	if x.s.hasErr {
		return Err[U](x.s.takeError())
	}
	return Of[U, E](fn(x.s.takeValue()))
}

// FlatMap applies fn to the value and returns its result as is.
func FlatMap[U, T, E any](x Expected[T, E], fn func(T) Expected[U, E]) Expected[U, E] {
	if x.s.hasErr {
		return Err[U](x.s.copyError())
	}
	return fn(x.s.val)
}

func FlatMapMove[U, T, E any](x *Expected[T, E], fn func(T) Expected[U, E]) Expected[U, E] {
	if x.s.hasErr {
		return Err[U](x.s.takeError())
	}
	return fn(x.s.takeValue())
}

// MapError applies fn to the error and wraps the result. Values pass through.
func MapError[E2, T, E any](x Expected[T, E], fn func(E) E2) Expected[T, E2] {
	if x.s.hasErr {
		return Err[T](fn(x.s.err))
	}
	return Of[T, E2](x.s.copyValue())
}

func MapErrorMove[E2, T, E any](x *Expected[T, E], fn func(E) E2) Expected[T, E2] {
	if x.s.hasErr {
		return Err[T](fn(x.s.takeError()))
	}
	return Of[T, E2](x.s.takeValue())
}
