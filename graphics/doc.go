// Package graphics defines the immediate-mode graphics capability set that
// gldraw consumes, independent of any particular driver.
//
// # Drivers
//
// A driver implements [Context] and registers a [Factory] under a name,
// following the database/sql driver pattern:
//
//	import _ "github.com/gogpu/gldraw/backend/opengl" // registers "opengl"
//
//	gfx, err := graphics.Open("opengl")
//
// Two drivers ship with gldraw:
//   - backend/opengl: OpenGL 3.3 core through go-gl. Needs a current context.
//   - backend/headless: pure Go, validates WGSL stages with naga and records
//     draw calls. Useful in tests and on machines without a GPU.
//
// # Sharing
//
// A single [Context] is handed to every shape at init time. [Shared] wraps it
// with a reference count so that the driver is closed only after its last
// holder has released it.
package graphics
