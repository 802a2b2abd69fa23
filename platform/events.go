package platform

// Event is one input or window notification. Drivers deliver the concrete
// types below; shapes type-switch on them and ignore what they don't know.
type Event interface{}

// Key identifies a physical key. Values match GLFW key codes.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = 32
	KeyA       Key = 65
	KeyD       Key = 68
	KeyR       Key = 82
	KeyS       Key = 83
	KeyW       Key = 87
	KeyEscape  Key = 256
	KeyEnter   Key = 257
	KeyTab     Key = 258
	KeyRight   Key = 262
	KeyLeft    Key = 263
	KeyDown    Key = 264
	KeyUp      Key = 265
)

// Action is what happened to a key or button.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return "unknown"
}

// Modifier is a bit set of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// MouseButton identifies a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     Modifier
}

type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   Modifier
}

// CursorEvent carries the cursor position in window coordinates.
type CursorEvent struct {
	X, Y float64
}

type ScrollEvent struct {
	DX, DY float64
}

// ResizeEvent carries the new framebuffer size in pixels.
type ResizeEvent struct {
	Width, Height int
}

// CloseEvent is queued when the user asks to close the window.
type CloseEvent struct{}
