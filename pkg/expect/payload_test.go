package expect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// ledger records every Destroy and Clone issued to the payloads that share it.
type ledger struct {
	destroyed []int
	cloned    int
}

// resource is copyable with hooks on the value method set. A resource with
// explode set panics when cloned.
type resource struct {
	id      int
	l       *ledger
	explode bool
}

func (r resource) Destroy() {
	if r.l != nil {
		r.l.destroyed = append(r.l.destroyed, r.id)
	}
}

func (r resource) Clone() resource {
	if r.explode {
		panic(fmt.Sprintf("clone of resource %d failed", r.id))
	}
	if r.l != nil {
		r.l.cloned++
	}
	return r
}

// handle is move-only: Destroy without Clone, on the pointer method set.
type handle struct {
	id int
	l  *ledger
}

func (h *handle) Destroy() {
	if h.l != nil {
		h.l.destroyed = append(h.l.destroyed, h.id)
	}
}

// buffer needs a deep copy but nothing on teardown.
type buffer struct {
	data []byte
}

func (b *buffer) Clone() buffer {
	return buffer{data: append([]byte(nil), b.data...)}
}

type point struct {
	X, Y int
}

// recoverError runs fn and returns the error it panicked with.
func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

var errBoom = errors.New("boom")

// conn panics when Destroy reaches a payload that does not own an open
// connection: a zero value, a moved-out member or one already torn down.
type conn struct {
	id   int
	open *bool
	l    *ledger
}

func openConn(id int, l *ledger) conn {
	open := true
	return conn{id: id, open: &open, l: l}
}

func (c conn) Destroy() {
	if c.open == nil || !*c.open {
		panic(fmt.Sprintf("Destroy on conn %d that is not open", c.id))
	}
	*c.open = false
	c.l.destroyed = append(c.l.destroyed, c.id)
}
