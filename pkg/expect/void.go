package expect

import "fmt"

// Unit is the placeholder payload of a successful Void.
type Unit struct{}

// Void is an Expected without a success payload: it either succeeded or
// holds an error of type E. The zero value is a success.
type Void[E any] struct {
	s slot[Unit, E]
}

func OkVoid[E any]() Void[E] {
	return Void[E]{}
}

func ErrVoid[E any](e E) Void[E] {
	var v Void[E]
	v.s.constructError(e)
	return v
}

func VoidFromUnexpected[E any](u Unexpected[E]) Void[E] {
	return ErrVoid(copyPayload(&u.err))
}

// VoidFromUnexpectedMove moves u's error into a new Void.
func VoidFromUnexpectedMove[E any](u *Unexpected[E]) Void[E] {
	return ErrVoid(u.TakeErr())
}

// VoidFrom converts src, discarding its value on success.
func VoidFrom[E, T2, E2 any](src Expected[T2, E2], fe func(E2) E) Void[E] {
	var v Void[E]
	if src.s.hasErr {
		constructErrorFromExpected(&v.s, &src.s, func(e E2) E { return fe(copyPayload(&e)) })
		return v
	}
	v.s.constructValue(Unit{})
	return v
}

func VoidFromVoid[E, E2 any](src Void[E2], fe func(E2) E) Void[E] {
	var v Void[E]
	constructFromExpected(&v.s, &src.s,
		func(u Unit) Unit { return u },
		func(e E2) E { return fe(copyPayload(&e)) })
	return v
}

// VoidFromError bridges a plain Go error: nil is a success.
func VoidFromError(err error) Void[error] {
	if IsNil(err) {
		return OkVoid[error]()
	}
	return ErrVoid(err)
}

func (v Void[E]) container() {}

func (v Void[E]) Clone() Void[E] {
	return Void[E]{s: v.s.copyConstruct()}
}

func (v *Void[E]) Move() Void[E] {
	return Void[E]{s: v.s.moveConstruct()}
}

func (v *Void[E]) CopyFrom(o *Void[E]) {
	v.s.copyAssign(&o.s)
}

func (v *Void[E]) MoveFrom(o *Void[E]) {
	v.s.moveAssign(&o.s)
}

// SetValue makes v a success, destroying any held error.
func (v *Void[E]) SetValue() {
	v.s.assignValue(Unit{})
}

func (v *Void[E]) SetErr(e E) {
	v.s.assignError(e)
}

func (v *Void[E]) SetUnexpected(u Unexpected[E]) {
	e := copyPayload(&u.err)
	v.s.assignError(e)
}

func (v *Void[E]) SetUnexpectedMove(u *Unexpected[E]) {
	v.s.assignError(u.TakeErr())
}

func (v *Void[E]) Swap(o *Void[E]) {
	v.s.swap(&o.s)
}

func (v *Void[E]) Destroy() {
	v.s.destroy()
}

func (v Void[E]) HasValue() bool {
	return v.s.hasValue()
}

func (v Void[E]) HasError() bool {
	return v.s.hasErr
}

func (v Void[E]) Ok() bool {
	return v.s.hasValue()
}

// Value returns nil on success and a *BadAccessError[E] otherwise.
func (v Void[E]) Value() error {
	if v.s.hasErr {
		return badAccess(v.s.reportError())
	}
	return nil
}

func (v Void[E]) MustValue() {
	if err := v.Value(); err != nil {
		panic(err)
	}
}

// Err returns the held error, or E's zero value on success.
func (v Void[E]) Err() E {
	return v.s.err
}

func (v *Void[E]) TakeErr() E {
	return v.s.takeError()
}

func (v Void[E]) ErrorOr(def E) E {
	if v.s.hasErr {
		return v.s.err
	}
	return def
}

func (v *Void[E]) TakeErrorOr(def E) E {
	if v.s.hasErr {
		return v.s.takeError()
	}
	return def
}

func (v Void[E]) Unexpected() (Unexpected[E], bool) {
	if v.s.hasErr {
		return Unexpected[E]{err: v.s.copyError(), live: true}, true
	}
	return Unexpected[E]{}, false
}

func (v Void[E]) String() string {
	if v.s.hasErr {
		return fmt.Sprintf("unexpected(%v)", v.s.err)
	}
	return "expected()"
}

func AndThenVoid[U, E any](v Void[E], u U) Expected[U, E] {
	if v.s.hasErr {
		return Err[U](v.s.copyError())
	}
	return Of[U, E](u)
}

func AndThenVoidMove[U, E any](v *Void[E], u U) Expected[U, E] {
	if v.s.hasErr {
		return Err[U](v.s.takeError())
	}
	return Of[U, E](u)
}

// MapVoid calls fn on success and wraps its result.
func MapVoid[U, E any](v Void[E], fn func() U) Expected[U, E] {
	if v.s.hasErr {
		return Err[U](v.s.copyError())
	}
	return Of[U, E](fn())
}

func MapVoidMove[U, E any](v *Void[E], fn func() U) Expected[U, E] {
	if v.s.hasErr {
		return Err[U](v.s.takeError())
	}
	return Of[U, E](fn())
}

func FlatMapVoid[U, E any](v Void[E], fn func() Expected[U, E]) Expected[U, E] {
	if v.s.hasErr {
		return Err[U](v.s.copyError())
	}
	return fn()
}

func FlatMapVoidMove[U, E any](v *Void[E], fn func() Expected[U, E]) Expected[U, E] {
	if v.s.hasErr {
		return Err[U](v.s.takeError())
	}
	return fn()
}

// ThenVoid chains another payload-less step.
func ThenVoid[E any](v Void[E], fn func() Void[E]) Void[E] {
	if v.s.hasErr {
		return ErrVoid(v.s.copyError())
	}
	return fn()
}

func ThenVoidMove[E any](v *Void[E], fn func() Void[E]) Void[E] {
	if v.s.hasErr {
		return ErrVoid(v.s.takeError())
	}
	return fn()
}

func MapErrorVoid[E2, E any](v Void[E], fn func(E) E2) Void[E2] {
	if v.s.hasErr {
		return ErrVoid(fn(v.s.err))
	}
	return OkVoid[E2]()
}

func MapErrorVoidMove[E2, E any](v *Void[E], fn func(E) E2) Void[E2] {
	if v.s.hasErr {
		return ErrVoid(fn(v.s.takeError()))
	}
	return OkVoid[E2]()
}
