package expect

import "fmt"

// Expected holds either a value of type T or an error of type E.
//
// The zero value holds T's zero value. Copying an Expected with Go
// assignment is a shallow copy; use Clone and CopyFrom when the payloads
// implement Cloner or Destroyer.
type Expected[T, E any] struct {
	s slot[T, E]
}

// Default returns an Expected holding T's zero value.
func Default[T, E any]() Expected[T, E] {
	return Expected[T, E]{}
}

// Of returns an Expected holding v.
func Of[T, E any](v T) Expected[T, E] {
	var x Expected[T, E]
	x.s.constructValue(v)
	return x
}

// Err returns an Expected holding the error e.
func Err[T, E any](e E) Expected[T, E] {
	var x Expected[T, E]
	x.s.constructError(e)
	return x
}

// FromUnexpected returns an Expected holding a copy of u's error.
func FromUnexpected[T, E any](u Unexpected[E]) Expected[T, E] {
	return Err[T](copyPayload(&u.err))
}

// FromUnexpectedMove returns an Expected holding u's error, moving it out of u.
func FromUnexpectedMove[T, E any](u *Unexpected[E]) Expected[T, E] {
	return Err[T](u.TakeErr())
}

// FromUnexpectedFunc returns an Expected holding u's error converted by conv.
func FromUnexpectedFunc[T, E, E2 any](u Unexpected[E2], conv func(E2) E) Expected[T, E] {
	return Err[T](conv(copyPayload(&u.err)))
}

// From bridges Go's (value, error) convention: a non-nil err selects the
// error state and v is dropped.
func From[T any](v T, err error) Expected[T, error] {
	if !IsNil(err) {
		return Err[T](err)
	}
	return Of[T, error](v)
}

// Unpack is the reverse of From.
func Unpack[T any](x Expected[T, error]) (T, error) {
	if x.s.hasErr {
		var zero T
		return zero, x.s.err
	}
	return x.s.val, nil
}

// Convert builds an Expected[T, E] from copies of src's payloads.
func Convert[T, E, T2, E2 any](src Expected[T2, E2], fv func(T2) T, fe func(E2) E) Expected[T, E] {
	var x Expected[T, E]
	constructFromExpected(&x.s, &src.s,
		func(v T2) T { return fv(copyPayload(&v)) },
		func(e E2) E { return fe(copyPayload(&e)) })
	return x
}

// ConvertMove builds an Expected[T, E] by moving src's live payload out.
// src is untouched if a conversion panics.
func ConvertMove[T, E, T2, E2 any](src *Expected[T2, E2], fv func(T2) T, fe func(E2) E) Expected[T, E] {
	var x Expected[T, E]
	constructFromExpected(&x.s, &src.s, fv, fe)
	src.s.release()
	return x
}

// AssignConverted replaces dst with copies of src's payloads converted by
// fv and fe. dst is untouched if a conversion panics.
func AssignConverted[T, E, T2, E2 any](dst *Expected[T, E], src Expected[T2, E2], fv func(T2) T, fe func(E2) E) {
	assignFromExpected(&dst.s, &src.s,
		func(v T2) T { return fv(copyPayload(&v)) },
		func(e E2) E { return fe(copyPayload(&e)) })
}

// MoveConverted replaces dst with src's live payload, moved out and converted.
// Both are untouched if a conversion panics. Moving x into itself is a no-op.
func MoveConverted[T, E, T2, E2 any](dst *Expected[T, E], src *Expected[T2, E2], fv func(T2) T, fe func(E2) E) {
	if any(dst) == any(src) {
		return
	}
	assignFromExpected(&dst.s, &src.s, fv, fe)
	src.s.release()
}

// SetUnexpectedFunc replaces dst with the converted error of u.
func SetUnexpectedFunc[T, E, E2 any](dst *Expected[T, E], u Unexpected[E2], conv func(E2) E) {
	e := conv(copyPayload(&u.err))
	dst.s.assignError(e)
}

func (x Expected[T, E]) container() {}

// Clone returns a deep copy. It panics with ErrNotCopyable if T or E is
// move-only.
func (x Expected[T, E]) Clone() Expected[T, E] {
	return Expected[T, E]{s: x.s.copyConstruct()}
}

// Move transfers the live payload into a new Expected. x keeps its state
// with a zero payload.
func (x *Expected[T, E]) Move() Expected[T, E] {
	return Expected[T, E]{s: x.s.moveConstruct()}
}

// CopyFrom makes x a deep copy of o. If cloning panics x is unchanged.
func (x *Expected[T, E]) CopyFrom(o *Expected[T, E]) {
	x.s.copyAssign(&o.s)
}

// MoveFrom moves o's live payload into x.
func (x *Expected[T, E]) MoveFrom(o *Expected[T, E]) {
	x.s.moveAssign(&o.s)
}

// SetValue replaces whatever x holds with v.
func (x *Expected[T, E]) SetValue(v T) {
	x.s.assignValue(v)
}

// SetErr replaces whatever x holds with the error e.
func (x *Expected[T, E]) SetErr(e E) {
	x.s.assignError(e)
}

func (x *Expected[T, E]) SetUnexpected(u Unexpected[E]) {
	e := copyPayload(&u.err)
	x.s.assignError(e)
}

// SetUnexpectedMove replaces whatever x holds with u's error, moving it out of u.
func (x *Expected[T, E]) SetUnexpectedMove(u *Unexpected[E]) {
	x.s.assignError(u.TakeErr())
}

func (x *Expected[T, E]) Swap(o *Expected[T, E]) {
	x.s.swap(&o.s)
}

// Destroy tears down the live payload. x keeps its state and holds the
// payload's zero value afterwards.
func (x *Expected[T, E]) Destroy() {
	x.s.destroy()
}

func (x Expected[T, E]) HasValue() bool {
	return x.s.hasValue()
}

func (x Expected[T, E]) HasError() bool {
	return x.s.hasErr
}

// Ok reports whether x holds a value.
func (x Expected[T, E]) Ok() bool {
	return x.s.hasValue()
}

// Value returns the held value, or a *BadAccessError[E] when x holds an error.
func (x Expected[T, E]) Value() (T, error) {
	if x.s.hasErr {
		var zero T
		return zero, badAccess(x.s.reportError())
	}
	return x.s.val, nil
}

// MustValue returns the held value and panics with a *BadAccessError[E]
// when x holds an error.
func (x Expected[T, E]) MustValue() T {
	v, err := x.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// TakeValue moves the held value out of x.
func (x *Expected[T, E]) TakeValue() (T, error) {
	if x.s.hasErr {
		var zero T
		return zero, badAccess(x.s.reportError())
	}
	return x.s.takeValue(), nil
}

// Deref returns the value without checking the state. On an error state it
// returns T's zero value.
func (x Expected[T, E]) Deref() T {
	return x.s.val
}

// Ptr returns a pointer to the value slot without checking the state.
// Storing through it does not install an owned payload; use SetValue for
// payloads that implement Destroyer.
func (x *Expected[T, E]) Ptr() *T {
	return &x.s.val
}

// Err returns the held error, or E's zero value when x holds a value.
func (x Expected[T, E]) Err() E {
	return x.s.err
}

func (x *Expected[T, E]) TakeErr() E {
	return x.s.takeError()
}

func (x Expected[T, E]) ValueOr(def T) T {
	if x.s.hasErr {
		return def
	}
	return x.s.val
}

func (x *Expected[T, E]) TakeValueOr(def T) T {
	if x.s.hasErr {
		return def
	}
	return x.s.takeValue()
}

func (x Expected[T, E]) ErrorOr(def E) E {
	if x.s.hasErr {
		return x.s.err
	}
	return def
}

func (x *Expected[T, E]) TakeErrorOr(def E) E {
	if x.s.hasErr {
		return x.s.takeError()
	}
	return def
}

// Unexpected returns the held error wrapped, and false when x holds a value.
func (x Expected[T, E]) Unexpected() (Unexpected[E], bool) {
	if x.s.hasErr {
		return Unexpected[E]{err: x.s.copyError(), live: true}, true
	}
	return Unexpected[E]{}, false
}

func (x Expected[T, E]) String() string {
	if x.s.hasErr {
		return fmt.Sprintf("unexpected(%v)", x.s.err)
	}
	return fmt.Sprintf("expected(%v)", x.s.val)
}
