// Package platformtest provides a scripted platform.Window for tests.
package platformtest

import (
	"fmt"
	"testing"
	"time"

	"github.com/gogpu/gldraw/platform"
)

// Window is a platform.Window driven by a script instead of a window
// system. Each PollEvents is one loop iteration: it advances the clock by
// Step, consumes the next batch of Script, queuing it only while input
// capture is on, and, once CloseAfter polls have
// happened, asks to close at the following ShouldClose check.
type Window struct {
	// Script holds the events queued by successive PollEvents calls.
	Script [][]platform.Event

	// CloseAfter makes ShouldClose report true after that many polls.
	// Zero means never.
	CloseAfter int

	// Step is the clock advance per poll. It defaults to 16ms.
	Step time.Duration

	// Width and Height are reported by Size.
	Width, Height int

	// Calls holds one line per call in call order, e.g. "SwapBuffers".
	Calls []string

	Polls     int
	Swaps     int
	Destroyed bool

	now         time.Duration
	queue       []platform.Event
	capture     bool
	shouldClose bool
}

var _ platform.Window = (*Window)(nil)

// New returns a window that closes after closeAfter iterations.
func New(closeAfter int) *Window {
	return &Window{CloseAfter: closeAfter, Width: 800, Height: 600}
}

// Register registers a driver under name that hands out w, and removes it
// when the test ends.
func Register(tb testing.TB, name string, w *Window) {
	tb.Helper()
	platform.Register(name, func(cfg platform.WindowConfig) (platform.Window, error) {
		if cfg.Width > 0 && cfg.Height > 0 {
			w.Width, w.Height = cfg.Width, cfg.Height
		}
		return w, nil
	})
	tb.Cleanup(func() { platform.Unregister(name) })
}

func (w *Window) record(format string, args ...any) {
	w.Calls = append(w.Calls, fmt.Sprintf(format, args...))
}

func (w *Window) MakeCurrent() { w.record("MakeCurrent") }

func (w *Window) SetInputCapture(on bool) {
	w.record("SetInputCapture %t", on)
	w.capture = on
}

func (w *Window) SetCursorLocked(on bool) { w.record("SetCursorLocked %t", on) }

func (w *Window) SetSwapInterval(n int) { w.record("SetSwapInterval %d", n) }

func (w *Window) PollEvents() {
	w.record("PollEvents")
	w.Polls++
	step := w.Step
	if step == 0 {
		step = 16 * time.Millisecond
	}
	w.now += step
	if len(w.Script) > 0 {
		if w.capture {
			w.queue = append(w.queue, w.Script[0]...)
		}
		w.Script = w.Script[1:]
	}
	if w.CloseAfter > 0 && w.Polls >= w.CloseAfter {
		w.shouldClose = true
	}
}

func (w *Window) Events() []platform.Event {
	evs := w.queue
	w.queue = nil
	return evs
}

func (w *Window) ShouldClose() bool { return w.shouldClose }

func (w *Window) SetShouldClose(v bool) {
	w.record("SetShouldClose %t", v)
	w.shouldClose = v
}

func (w *Window) SwapBuffers() {
	w.record("SwapBuffers")
	w.Swaps++
}

func (w *Window) Time() time.Duration { return w.now }

func (w *Window) Size() (int, int) { return w.Width, w.Height }

func (w *Window) Destroy() {
	if w.Destroyed {
		return
	}
	w.record("Destroy")
	w.Destroyed = true
}
