package gldraw

// Option configures a Loop during creation.
//
// Example:
//
//	loop, err := gldraw.NewLoop(win, gfx, scene, gldraw.WithSwapInterval(0))
type Option func(*loopOptions)

type loopOptions struct {
	swapInterval int
	inputCapture bool
	cursorLock   bool
}

func defaultOptions() loopOptions {
	return loopOptions{
		swapInterval: 1,
		inputCapture: true,
	}
}

// WithSwapInterval sets how many vertical blanks each frame waits for.
// The default of 1 syncs to the display; 0 disables vsync.
func WithSwapInterval(n int) Option {
	return func(o *loopOptions) {
		o.swapInterval = n
	}
}

// WithInputCapture controls whether window events reach the shapes'
// Input. It is on by default.
func WithInputCapture(on bool) Option {
	return func(o *loopOptions) {
		o.inputCapture = on
	}
}

// WithCursorLock hides the cursor and keeps it inside the window.
// It is off by default.
func WithCursorLock(on bool) Option {
	return func(o *loopOptions) {
		o.cursorLock = on
	}
}
