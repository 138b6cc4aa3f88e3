package expect

import "cmp"

// Two containers are equal only when they are in the same state and their
// live members are equal. For ordering, every value state sorts before
// every error state.

func Equal[T, E comparable](a, b Expected[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc compares containers of possibly different types with eqv for
// values and eqe for errors.
func EqualFunc[T1, E1, T2, E2 any](a Expected[T1, E1], b Expected[T2, E2],
	eqv func(T1, T2) bool, eqe func(E1, E2) bool) bool {

	switch {
	case a.s.hasErr != b.s.hasErr:
		return false
	case a.s.hasErr:
		return eqe(a.s.err, b.s.err)
	default:
		return eqv(a.s.val, b.s.val)
	}
}

// EqualValue reports whether x holds a value equal to v.
func EqualValue[T comparable, E any](x Expected[T, E], v T) bool {
	return x.s.hasValue() && x.s.val == v
}

// EqualError reports whether x holds an error equal to u's.
func EqualError[T any, E comparable](x Expected[T, E], u Unexpected[E]) bool {
	return x.s.hasErr && x.s.err == u.err
}

func Compare[T, E cmp.Ordered](a, b Expected[T, E]) int {
	return CompareFunc(a, b, cmp.Compare[T], cmp.Compare[E])
}

func CompareFunc[T, E any](a, b Expected[T, E], cmpv func(T, T) int, cmpe func(E, E) int) int {
	return compareSlots(&a.s, &b.s, cmpv, cmpe)
}

// CompareValue orders x against a bare value; an error state sorts after v.
func CompareValue[T cmp.Ordered, E any](x Expected[T, E], v T) int {
	if x.s.hasErr {
		return +1
	}
	return cmp.Compare(x.s.val, v)
}

// CompareError orders x against an error; a value state sorts before u.
func CompareError[T any, E cmp.Ordered](x Expected[T, E], u Unexpected[E]) int {
	if !x.s.hasErr {
		return -1
	}
	return cmp.Compare(x.s.err, u.err)
}

func EqualVoid[E comparable](a, b Void[E]) bool {
	return EqualVoidFunc(a, b, func(x, y E) bool { return x == y })
}

func EqualVoidFunc[E1, E2 any](a Void[E1], b Void[E2], eqe func(E1, E2) bool) bool {
	switch {
	case a.s.hasErr != b.s.hasErr:
		return false
	case a.s.hasErr:
		return eqe(a.s.err, b.s.err)
	default:
		return true
	}
}

func EqualVoidError[E comparable](v Void[E], u Unexpected[E]) bool {
	return v.s.hasErr && v.s.err == u.err
}

func CompareVoid[E cmp.Ordered](a, b Void[E]) int {
	return CompareVoidFunc(a, b, cmp.Compare[E])
}

func CompareVoidFunc[E any](a, b Void[E], cmpe func(E, E) int) int {
	return compareSlots(&a.s, &b.s, func(Unit, Unit) int { return 0 }, cmpe)
}

func compareSlots[T, E any](a, b *slot[T, E], cmpv func(T, T) int, cmpe func(E, E) int) int {
	switch {
	case a.hasValue() && b.hasValue():
		return cmpv(a.val, b.val)
	case a.hasErr && b.hasErr:
		return cmpe(a.err, b.err)
	case a.hasValue():
		return -1
	default:
		return +1
	}
}
