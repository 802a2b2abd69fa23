package gldraw

import (
	"time"

	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/platform"
)

// Shape is a renderable participant of the loop.
//
// Init is called exactly once, before any other method. Update is called
// once per iteration with the time since the previous one, Input zero or
// more times per iteration with the events received, and Draw once per
// iteration after both. Draw must not change simulation state.
//
// Shapes that also implement io.Closer are closed when the collection is.
type Shape interface {
	Init(gfx *graphics.Shared) error
	Update(elapsed time.Duration) error
	Input(ev platform.Event) error
	Draw() error
}

// BaseShape provides no-op Update and Input methods. Embed it in shapes
// that are static or ignore input.
type BaseShape struct{}

func (BaseShape) Update(time.Duration) error { return nil }

func (BaseShape) Input(platform.Event) error { return nil }
