// Package glfw is the GLFW window driver. It opens an OpenGL 3.3 core
// profile context and translates GLFW callbacks into platform events.
//
// Importing the package registers the driver under the name "glfw" and
// locks the main goroutine to the main OS thread, as GLFW requires.
package glfw

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/gldraw/internal/logging"
	"github.com/gogpu/gldraw/platform"
)

// Name is the registry name of this driver.
const Name = "glfw"

func init() {
	runtime.LockOSThread()
	platform.Register(Name, Open)
}

// windows counts open windows; GLFW is terminated when it drops to zero.
var windows int

// Window is a GLFW window with a current-able OpenGL context.
type Window struct {
	win     *glfw.Window
	events  []platform.Event
	capture bool
}

var _ platform.Window = (*Window)(nil)

// Open initializes GLFW if needed and creates a window. A fullscreen
// window takes the primary monitor at its current video mode.
func Open(cfg platform.WindowConfig) (platform.Window, error) {
	if windows == 0 {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("%w: %w", platform.ErrInit, err)
		}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := cfg.Width, cfg.Height
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if monitor != nil {
			if mode := monitor.GetVideoMode(); mode != nil {
				width, height = mode.Width, mode.Height
			}
		}
	}

	win, err := glfw.CreateWindow(width, height, cfg.Title, monitor, nil)
	if err != nil {
		if windows == 0 {
			glfw.Terminate()
		}
		return nil, fmt.Errorf("%w: %w", platform.ErrWindowCreation, err)
	}
	windows++

	w := &Window{win: win}
	w.installCallbacks()
	logging.Logger().Debug("glfw: window created",
		"width", width, "height", height, "fullscreen", cfg.Fullscreen)
	return w, nil
}

// push queues ev while input capture is on and drops it otherwise.
func (w *Window) push(ev platform.Event) {
	if !w.capture {
		return
	}
	w.events = append(w.events, ev)
}

func (w *Window) installCallbacks() {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		w.push(platform.KeyEvent{
			Key:      platform.Key(key),
			Scancode: scancode,
			Action:   platform.Action(action),
			Mods:     platform.Modifier(mods),
		})
	})
	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		w.push(platform.MouseButtonEvent{
			Button: platform.MouseButton(button),
			Action: platform.Action(action),
			Mods:   platform.Modifier(mods),
		})
	})
	w.win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.push(platform.CursorEvent{X: x, Y: y})
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		w.push(platform.ScrollEvent{DX: dx, DY: dy})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(platform.ResizeEvent{Width: width, Height: height})
	})
	w.win.SetCloseCallback(func(*glfw.Window) {
		w.push(platform.CloseEvent{})
	})
}

func (w *Window) MakeCurrent() {
	w.win.MakeContextCurrent()
}

// SetInputCapture gates the installed callbacks. Turning it off also drops
// the events queued since the last Events call.
func (w *Window) SetInputCapture(on bool) {
	w.capture = on
	if !on {
		w.events = nil
	}
}

func (w *Window) SetCursorLocked(on bool) {
	mode := glfw.CursorNormal
	if on {
		mode = glfw.CursorDisabled
	}
	w.win.SetInputMode(glfw.CursorMode, mode)
}

// SetSwapInterval applies to the current context.
func (w *Window) SetSwapInterval(n int) {
	glfw.SwapInterval(n)
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Events() []platform.Event {
	evs := w.events
	w.events = nil
	return evs
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) Time() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

func (w *Window) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	windows--
	if windows == 0 {
		glfw.Terminate()
		logging.Logger().Debug("glfw: terminated")
	}
}
