package expect

import (
	"fmt"
	"reflect"
)

// slot is the storage behind Expected and Void: one value member, one error
// member and the discriminant. The discriminant selects the current member;
// the other one always holds its zero value. The zero slot holds a zero value.
//
// live is set while the current member owns its payload and must be torn
// down. It is cleared once the member is destroyed or moved out, and it is
// clear in the zero slot, whose zero value owns nothing.
//
// Behaviour is layered the same way for every operation: destruction,
// construction, copy construction, move construction, copy assignment and
// move assignment. Each layer picks the trivial path (plain assignment or
// zeroing) or the hooked path (Destroy/Clone) from the payload traits.
type slot[T, E any] struct {
	val    T
	err    E
	hasErr bool
	live   bool
}

func (s *slot[T, E]) hasValue() bool {
	return !s.hasErr
}

// destruction

// teardown is the Destroy hook to run for a member: none unless it is live.
func teardown[P any](live bool) hookMode {
	if !live {
		return hookNone
	}
	return traitsOf[P]().destroy
}

// destroy tears down the live member. The discriminant is left alone, so
// the slot stays in its state with a zero payload that is no longer live.
func (s *slot[T, E]) destroy() {
	if s.hasErr {
		destroyPayload(&s.err, teardown[E](s.live))
	} else {
		destroyPayload(&s.val, teardown[T](s.live))
	}
	s.live = false
}

// construction
//
// constructValue and constructError require the live member to be destroyed
// (or never constructed). The discriminant is written after the payload.

func (s *slot[T, E]) constructValue(v T) {
	s.val = v
	s.hasErr = false
	s.live = true
}

func (s *slot[T, E]) constructError(e E) {
	s.err = e
	s.hasErr = true
	s.live = true
}

func constructFromExpected[T, E, T2, E2 any](dst *slot[T, E], src *slot[T2, E2],
	fv func(T2) T, fe func(E2) E) {

	if src.hasErr {
		constructErrorFromExpected(dst, src, fe)
		return
	}
	dst.constructValue(fv(src.val))
}

func constructErrorFromExpected[T, E, T2, E2 any](dst *slot[T, E], src *slot[T2, E2], fe func(E2) E) {
	dst.constructError(fe(src.err))
}

// assignValue replaces the live member with v. v must not share ownership
// with the current payload: the old payload is destroyed first.
func (s *slot[T, E]) assignValue(v T) {
	s.destroy()
	s.constructValue(v)
}

func (s *slot[T, E]) assignError(e E) {
	s.destroy()
	s.constructError(e)
}

// assignFromExpected converts src before touching dst, so a panicking
// conversion leaves dst as it was.
func assignFromExpected[T, E, T2, E2 any](dst *slot[T, E], src *slot[T2, E2],
	fv func(T2) T, fe func(E2) E) {

	if src.hasErr {
		assignErrorFromExpected(dst, src, fe)
		return
	}
	v := fv(src.val)
	dst.assignValue(v)
}

func assignErrorFromExpected[T, E, T2, E2 any](dst *slot[T, E], src *slot[T2, E2], fe func(E2) E) {
	e := fe(src.err)
	dst.assignError(e)
}

// copy construction
//
// Copying is disabled for the whole slot as soon as either payload type is
// move-only, whichever member happens to be live.

func (s *slot[T, E]) checkCopyable() {
	if traitsOf[T]().moveOnly() {
		panic(fmt.Errorf("%w: %v", ErrNotCopyable, reflect.TypeFor[T]()))
	}
	if traitsOf[E]().moveOnly() {
		panic(fmt.Errorf("%w: %v", ErrNotCopyable, reflect.TypeFor[E]()))
	}
}

func (s *slot[T, E]) copyConstruct() slot[T, E] {
	s.checkCopyable()
	if s.hasErr {
		return slot[T, E]{err: copyPayload(&s.err), hasErr: true, live: s.live}
	}
	return slot[T, E]{val: copyPayload(&s.val), live: s.live}
}

func (s *slot[T, E]) copyValue() T {
	return copyPayload(&s.val)
}

func (s *slot[T, E]) copyError() E {
	return copyPayload(&s.err)
}

// reportError is the error carried by a BadAccessError: a copy, or the zero
// value when E is move-only.
func (s *slot[T, E]) reportError() E {
	if traitsOf[E]().moveOnly() {
		var zero E
		return zero
	}
	return s.copyError()
}

func copyPayload[T any](p *T) T {
	t := traitsOf[T]()
	if t.moveOnly() {
		panic(fmt.Errorf("%w: %v", ErrNotCopyable, reflect.TypeFor[T]()))
	}
	return clonePayload(p, t.clone)
}

// move construction
//
// The live member is transferred without running Destroy and zeroed in the
// source. The source keeps its discriminant; its member is no longer live.

func (s *slot[T, E]) moveConstruct() slot[T, E] {
	out := *s
	s.release()
	return out
}

// release zeroes the current member without tearing it down.
func (s *slot[T, E]) release() {
	if s.hasErr {
		s.takeError()
	} else {
		s.takeValue()
	}
}

// takeValue and takeError move a member out. On the dead member they return
// its zero value and leave the live one alone.
func (s *slot[T, E]) takeValue() T {
	v := s.val
	var zero T
	s.val = zero
	if !s.hasErr {
		s.live = false
	}
	return v
}

func (s *slot[T, E]) takeError() E {
	e := s.err
	var zero E
	s.err = zero
	if s.hasErr {
		s.live = false
	}
	return e
}

// copy assignment: copy first, then destroy, then commit.

func (s *slot[T, E]) copyAssign(o *slot[T, E]) {
	s.checkCopyable()
	if s == o {
		return
	}
	tmp := o.copyConstruct()
	s.destroy()
	*s = tmp
}

// move assignment: nothing in a move can fail, so the destination is torn
// down before the source is touched.

func (s *slot[T, E]) moveAssign(o *slot[T, E]) {
	if s == o {
		return
	}
	s.destroy()
	*s = o.moveConstruct()
}

func (s *slot[T, E]) swap(o *slot[T, E]) {
	*s, *o = *o, *s
}
