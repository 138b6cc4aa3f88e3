package expect

import (
	"cmp"
	"fmt"
	"reflect"
)

// Unexpected wraps an error payload so that constructing an Expected from it
// is never ambiguous with constructing one from a value. The zero
// Unexpected holds E's zero value, which owns nothing.
type Unexpected[E any] struct {
	err  E
	live bool
}

// MakeUnexpected wraps err. It panics with ErrNestedExpected when E is an
// Expected, Void or Unexpected type.
func MakeUnexpected[E any](err E) Unexpected[E] {
	if traitsOf[E]().nested {
		panic(fmt.Errorf("%w: %v", ErrNestedExpected, reflect.TypeFor[E]()))
	}
	return Unexpected[E]{err: err, live: true}
}

// ConvertUnexpected builds an Unexpected[E] from a copy of u's error.
func ConvertUnexpected[E, E2 any](u Unexpected[E2], conv func(E2) E) Unexpected[E] {
	return MakeUnexpected(conv(copyPayload(&u.err)))
}

// ConvertUnexpectedMove builds an Unexpected[E] from u's error, moving it out.
func ConvertUnexpectedMove[E, E2 any](u *Unexpected[E2], conv func(E2) E) Unexpected[E] {
	return MakeUnexpected(conv(u.TakeErr()))
}

// AssignUnexpected replaces dst's error with the converted error of src.
func AssignUnexpected[E, E2 any](dst *Unexpected[E], src Unexpected[E2], conv func(E2) E) {
	dst.Set(conv(copyPayload(&src.err)))
}

func (u Unexpected[E]) container() {}

func (u Unexpected[E]) Err() E {
	return u.err
}

func (u *Unexpected[E]) ErrPtr() *E {
	return &u.err
}

// TakeErr moves the error out, leaving E's zero value behind.
func (u *Unexpected[E]) TakeErr() E {
	e := u.err
	var zero E
	u.err = zero
	u.live = false
	return e
}

// Set replaces the error, destroying the previous one unless it was moved out.
func (u *Unexpected[E]) Set(err E) {
	destroyPayload(&u.err, teardown[E](u.live))
	u.err = err
	u.live = true
}

// Clone copies the wrapper, cloning the error when E implements Cloner.
func (u Unexpected[E]) Clone() Unexpected[E] {
	return Unexpected[E]{err: copyPayload(&u.err), live: u.live}
}

func (u Unexpected[E]) String() string {
	return fmt.Sprintf("unexpected(%v)", u.err)
}

func EqualUnexpected[E comparable](a, b Unexpected[E]) bool {
	return a.err == b.err
}

func EqualUnexpectedFunc[E1, E2 any](a Unexpected[E1], b Unexpected[E2], eq func(E1, E2) bool) bool {
	return eq(a.err, b.err)
}

func CompareUnexpected[E cmp.Ordered](a, b Unexpected[E]) int {
	return cmp.Compare(a.err, b.err)
}

func CompareUnexpectedFunc[E any](a, b Unexpected[E], compare func(E, E) int) int {
	return compare(a.err, b.err)
}
