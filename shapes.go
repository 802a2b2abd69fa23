package gldraw

import (
	"errors"
	"io"
	"iter"
	"time"

	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/platform"
)

// Shapes is an ordered collection of shapes. Every dispatch visits the
// shapes in insertion order and stops at the first error, which is
// returned unchanged.
//
// The zero value is an empty collection ready to use.
type Shapes struct {
	shapes []Shape
	refs   []*graphics.Shared
}

// Add appends s. It panics if s is nil.
func (s *Shapes) Add(shape Shape) {
	if shape == nil {
		panic("gldraw: Shapes.Add called with nil shape")
	}
	s.shapes = append(s.shapes, shape)
}

// Len returns the number of shapes.
func (s *Shapes) Len() int {
	return len(s.shapes)
}

// All iterates over the shapes in insertion order.
func (s *Shapes) All() iter.Seq2[int, Shape] {
	return func(yield func(int, Shape) bool) {
		for i, shape := range s.shapes {
			if !yield(i, shape) {
				return
			}
		}
	}
}

// InitAll initializes every shape with its own reference to gfx, in
// insertion order, and returns the first error unchanged. A shape whose
// Init failed counts as initialized. The references are released by Close.
func (s *Shapes) InitAll(gfx *graphics.Shared) error {
	for _, shape := range s.shapes {
		ref := gfx.Retain()
		s.refs = append(s.refs, ref)
		if err := shape.Init(ref); err != nil {
			return err
		}
	}
	return nil
}

// UpdateAll updates every shape in insertion order and returns the first
// error unchanged.
func (s *Shapes) UpdateAll(elapsed time.Duration) error {
	for _, shape := range s.shapes {
		if err := shape.Update(elapsed); err != nil {
			return err
		}
	}
	return nil
}

// InputAll forwards ev to every shape in insertion order and returns the
// first error unchanged.
func (s *Shapes) InputAll(ev platform.Event) error {
	for _, shape := range s.shapes {
		if err := shape.Input(ev); err != nil {
			return err
		}
	}
	return nil
}

// DrawAll draws every shape in insertion order and returns the first error
// unchanged.
func (s *Shapes) DrawAll() error {
	for _, shape := range s.shapes {
		if err := shape.Draw(); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the initialized shapes that implement io.Closer in reverse
// insertion order, then releases the context references handed out by
// InitAll. Shapes never initialized are not touched. Every initialized
// shape is visited; the errors are joined.
func (s *Shapes) Close() error {
	var errs []error
	for i := min(len(s.refs), len(s.shapes)) - 1; i >= 0; i-- {
		if c, ok := s.shapes[i].(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	for i := len(s.refs) - 1; i >= 0; i-- {
		if err := s.refs[i].Release(); err != nil {
			errs = append(errs, err)
		}
	}
	s.refs = nil
	return errors.Join(errs...)
}
