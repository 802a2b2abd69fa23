// Package shapes contains ready-made gldraw shapes.
package shapes

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/gldraw"
	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/platform"
)

// Background clears the frame to a solid color and keeps the viewport in
// step with the framebuffer size. Add it first.
type Background struct {
	gldraw.BaseShape

	Color f32.Vec4

	gfx *graphics.Shared
}

// NewBackground returns a background of the given color.
func NewBackground(r, g, b, a float32) *Background {
	return &Background{Color: f32.Vec4{r, g, b, a}}
}

func (bg *Background) Init(gfx *graphics.Shared) error {
	bg.gfx = gfx
	return nil
}

func (bg *Background) Input(ev platform.Event) error {
	if r, ok := ev.(platform.ResizeEvent); ok {
		bg.gfx.Viewport(0, 0, int32(r.Width), int32(r.Height))
	}
	return nil
}

func (bg *Background) Draw() error {
	c := bg.Color
	bg.gfx.ClearColor(c[0], c[1], c[2], c[3])
	bg.gfx.Clear(graphics.ColorBufferBit | graphics.DepthBufferBit)
	return nil
}
