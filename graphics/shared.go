package graphics

import (
	"io"

	"github.com/gogpu/gldraw/internal/logging"
)

// Shared is a reference-counted handle to a Context.
//
// The creator holds the first reference. Every additional holder calls
// Retain and later Release; the wrapped Context is closed (when it
// implements io.Closer) once the count drops to zero. The count is not
// synchronized: a Shared lives on the thread that owns the window.
type Shared struct {
	Context

	refs   int
	closed bool
}

// Share wraps ctx in a Shared holding one reference.
func Share(ctx Context) *Shared {
	if ctx == nil {
		panic("graphics: Share of nil Context")
	}
	return &Shared{Context: ctx, refs: 1}
}

// Retain adds a reference and returns s, so it can be passed inline:
//
//	shape.Init(gfx.Retain())
func (s *Shared) Retain() *Shared {
	if s.closed {
		panic("graphics: Retain of released context")
	}
	s.refs++
	return s
}

// Release drops a reference. The last Release closes the Context and
// returns the close error, if any.
func (s *Shared) Release() error {
	if s.closed {
		panic("graphics: Release of released context")
	}
	s.refs--
	if s.refs > 0 {
		return nil
	}
	s.closed = true
	logging.Logger().Debug("graphics: last context reference released")
	if c, ok := s.Context.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Refs returns the current number of references.
func (s *Shared) Refs() int {
	return s.refs
}

// Released reports whether the last reference has been dropped.
func (s *Shared) Released() bool {
	return s.closed
}
