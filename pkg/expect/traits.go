package expect

import (
	"reflect"
	"sync"
)

// Destroyer is implemented by payloads that must release something when they
// stop being the live member of a container.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by payloads whose copy is more than a Go assignment.
type Cloner[T any] interface {
	Clone() T
}

// Traits describes how a container treats its payload types. Traits are
// derived from the static types: an interface-typed payload such as error is
// trivial even if the dynamic value happens to implement Destroyer.
type Traits struct {
	// TrivialDestroy is true when neither payload implements Destroyer, so
	// tearing down a member only zeroes it.
	TrivialDestroy bool
	// TrivialCopy is true when neither payload implements Cloner, so a copy
	// is a plain assignment.
	TrivialCopy bool
	// Copyable is false when a payload implements Destroyer but not Cloner.
	// Such payloads are move-only; copying them panics with ErrNotCopyable.
	Copyable bool
}

// TraitsOf reports the traits of Expected[T, E].
func TraitsOf[T, E any]() Traits {
	v, e := traitsOf[T](), traitsOf[E]()
	return Traits{
		TrivialDestroy: v.destroy == hookNone && e.destroy == hookNone,
		TrivialCopy:    v.clone == hookNone && e.clone == hookNone,
		Copyable:       !v.moveOnly() && !e.moveOnly(),
	}
}

type hookMode uint8

const (
	hookNone    hookMode = iota
	hookValue            // method set of T
	hookPointer          // method set of *T only
)

type payloadTraits struct {
	destroy hookMode
	clone   hookMode
	nested  bool // T is an Expected, Void or Unexpected
}

func (p payloadTraits) moveOnly() bool {
	return p.destroy != hookNone && p.clone == hookNone
}

// container is implemented by Expected, Void and Unexpected.
type container interface {
	container()
}

var (
	destroyerType = reflect.TypeFor[Destroyer]()
	containerType = reflect.TypeFor[container]()
	traitsCache   sync.Map // reflect.Type -> payloadTraits
)

func traitsOf[T any]() payloadTraits {
	t := reflect.TypeFor[T]()
	if v, ok := traitsCache.Load(t); ok {
		return v.(payloadTraits)
	}
	p := payloadTraits{
		destroy: hookFor(t, destroyerType),
		clone:   hookFor(t, reflect.TypeFor[Cloner[T]]()),
		nested:  t.Implements(containerType),
	}
	traitsCache.Store(t, p)
	return p
}

func hookFor(t, iface reflect.Type) hookMode {
	switch {
	case t.Implements(iface):
		return hookValue
	case t.Kind() != reflect.Interface && reflect.PointerTo(t).Implements(iface):
		return hookPointer
	default:
		return hookNone
	}
}

// destroyPayload runs the Destroy hook selected by mode and zeroes *p.
func destroyPayload[T any](p *T, mode hookMode) {
	switch mode {
	case hookValue:
		if d, ok := any(*p).(Destroyer); ok && !IsNil(d) {
			d.Destroy()
		}
	case hookPointer:
		any(p).(Destroyer).Destroy()
	}
	var zero T
	*p = zero
}

// clonePayload copies *p with the Clone hook selected by mode.
func clonePayload[T any](p *T, mode hookMode) T {
	switch mode {
	case hookValue:
		if c, ok := any(*p).(Cloner[T]); ok && !IsNil(c) {
			return c.Clone()
		}
	case hookPointer:
		return any(p).(Cloner[T]).Clone()
	}
	return *p
}
