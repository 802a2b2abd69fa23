package gldraw

import (
	"errors"
	"fmt"

	"github.com/gogpu/gldraw/graphics"
	"github.com/gogpu/gldraw/internal/logging"
	"github.com/gogpu/gldraw/platform"
)

// ErrLoopNotReady is returned by Run on a loop that has already run.
var ErrLoopNotReady = errors.New("gldraw: loop is not ready")

// State is the lifecycle stage of a Loop.
type State int

const (
	StateReady State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Loop drives a window and a collection of shapes frame by frame.
type Loop struct {
	win    platform.Window
	gfx    *graphics.Shared
	shapes *Shapes

	state  State
	frames uint64
	closed bool
}

// NewLoop prepares win for rendering and initializes every shape with a
// shared reference to gfx. The loop takes ownership of gfx and shapes; the
// caller keeps ownership of win until Close.
//
// If a shape fails to initialize, the shapes initialized so far are closed,
// gfx is released and the shape's error is returned unchanged.
func NewLoop(win platform.Window, gfx graphics.Context, shapes *Shapes, opts ...Option) (*Loop, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	win.MakeCurrent()
	win.SetInputCapture(o.inputCapture)
	win.SetCursorLocked(o.cursorLock)
	win.SetSwapInterval(o.swapInterval)

	shared := graphics.Share(gfx)
	if err := shapes.InitAll(shared); err != nil {
		closeErr := shapes.Close()
		if relErr := shared.Release(); relErr != nil {
			closeErr = errors.Join(closeErr, relErr)
		}
		if closeErr != nil {
			logging.Logger().Warn("gldraw: cleanup after failed init", "err", closeErr)
		}
		return nil, err
	}

	logging.Logger().Debug("gldraw: shapes initialized", "count", shapes.Len())
	return &Loop{win: win, gfx: shared, shapes: shapes}, nil
}

// Open opens a window and a graphics context as described by cfg and
// returns a loop over shapes. The loop owns the window.
func Open(cfg Config, shapes *Shapes, opts ...Option) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	win, err := platform.Open(cfg.Platform, platform.WindowConfig{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
	})
	if err != nil {
		return nil, err
	}
	win.MakeCurrent()

	gfx, err := graphics.Open(cfg.Backend)
	if err != nil {
		win.Destroy()
		return nil, err
	}

	opts = append([]Option{WithSwapInterval(cfg.SwapInterval)}, opts...)
	loop, err := NewLoop(win, gfx, shapes, opts...)
	if err != nil {
		win.Destroy()
		return nil, err
	}
	return loop, nil
}

// Run renders frames until the window is asked to close or a shape returns
// an error, which Run returns unchanged. A loop runs once; later calls
// return ErrLoopNotReady.
func (l *Loop) Run() error {
	if l.state != StateReady {
		return ErrLoopNotReady
	}
	l.state = StateRunning
	defer func() { l.state = StateStopped }()

	log := logging.Logger()
	log.Info("gldraw: loop started", "shapes", l.shapes.Len())

	t0 := l.win.Time()
	for !l.win.ShouldClose() {
		t1 := l.win.Time()
		elapsed := t1 - t0

		l.win.PollEvents()
		if err := l.shapes.UpdateAll(elapsed); err != nil {
			return err
		}
		for _, ev := range l.win.Events() {
			log.Debug("gldraw: received event", "type", fmt.Sprintf("%T", ev), "event", ev)
			if err := l.shapes.InputAll(ev); err != nil {
				return err
			}
		}
		if err := l.shapes.DrawAll(); err != nil {
			return err
		}
		l.win.SwapBuffers()

		l.frames++
		t0 = t1
	}

	log.Info("gldraw: loop stopped", "frames", l.frames)
	return nil
}

// Frames returns the number of completed iterations.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// State returns the loop's lifecycle stage.
func (l *Loop) State() State {
	return l.state
}

// Window returns the window the loop renders to.
func (l *Loop) Window() platform.Window {
	return l.win
}

// Close closes the shapes, releases the loop's context reference and
// destroys the window. Calling Close more than once is a no-op.
func (l *Loop) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true
	l.state = StateStopped

	err := l.shapes.Close()
	if relErr := l.gfx.Release(); relErr != nil {
		err = errors.Join(err, relErr)
	}
	l.win.Destroy()
	return err
}
