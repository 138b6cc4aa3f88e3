package expect

import "hash/maphash"

// A value hashes as hash(v)+1 and an error as hash(e). The +1 is there on
// purpose: when T and E share a representation, a zero-valued success and a
// zero-valued error would otherwise always collide.

func Hash[T, E comparable](seed maphash.Seed, x Expected[T, E]) uint64 {
	return HashFunc(x,
		func(v T) uint64 { return maphash.Comparable(seed, v) },
		func(e E) uint64 { return maphash.Comparable(seed, e) })
}

func HashFunc[T, E any](x Expected[T, E], hv func(T) uint64, he func(E) uint64) uint64 {
	if x.s.hasErr {
		return he(x.s.err)
	}
	return hv(x.s.val) + 1
}

func HashUnexpected[E comparable](seed maphash.Seed, u Unexpected[E]) uint64 {
	return maphash.Comparable(seed, u.err)
}

func HashVoid[E comparable](seed maphash.Seed, v Void[E]) uint64 {
	if v.s.hasErr {
		return maphash.Comparable(seed, v.s.err)
	}
	return maphash.Comparable(seed, Unit{}) + 1
}
