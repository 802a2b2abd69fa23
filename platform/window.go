// Package platform defines the window contract the render loop drives.
//
// A driver opens a Window with a current-able graphics context, reports
// input as Event values and presents frames with SwapBuffers. Drivers
// register themselves by name, usually from an init function, and callers
// select one with Open:
//
//	import _ "github.com/gogpu/gldraw/platform/glfw"
//
//	win, err := platform.Open("glfw", platform.WindowConfig{Title: "demo", Width: 800, Height: 600})
package platform

import "time"

// WindowConfig describes the window to open.
type WindowConfig struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
}

// Window is an on-screen surface owning a graphics context.
//
// All methods must be called from the thread that opened the window.
type Window interface {
	// MakeCurrent binds the window's graphics context to the calling thread.
	MakeCurrent()

	// SetInputCapture turns event delivery on or off. While off, PollEvents
	// still services the window system but queues nothing. It starts off.
	SetInputCapture(on bool)

	// SetCursorLocked hides the cursor and confines it to the window when
	// on.
	SetCursorLocked(on bool)

	// SetSwapInterval sets how many vertical blanks SwapBuffers waits for.
	SetSwapInterval(n int)

	// PollEvents processes pending window-system events without blocking
	// and queues the resulting Events.
	PollEvents()

	// Events returns the queued events in arrival order and empties the
	// queue.
	Events() []Event

	ShouldClose() bool
	SetShouldClose(v bool)

	// SwapBuffers presents the back buffer. It may block until vsync.
	SwapBuffers()

	// Time returns a monotonic clock reading since the window system was
	// initialized.
	Time() time.Duration

	// Size returns the framebuffer size in pixels.
	Size() (width, height int)

	// Destroy closes the window and releases its context. It is safe to
	// call more than once.
	Destroy()
}
