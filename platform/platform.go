package platform

import "github.com/pkg/errors"

// Initialization failures; backends annotate these with the underlying cause
var (
	ErrWindowCreation  = errors.New("window creation failed")
	ErrSurfaceCreation = errors.New("renderer creation failed")
)

// Platform creates windows and owns the backend subsystem
type Platform interface {
	// CreateWindow opens a window with a logical drawing area of width x height
	CreateWindow(title string, x, y, width, height int) (Window, error)

	// Shutdown releases the subsystem; called once after every window is destroyed
	Shutdown()
}

// Window is an open window that delivers events and key state
type Window interface {
	// CreateSurface returns the drawing surface bound to this window
	CreateSurface() (Surface, error)

	// PollEvent returns the next pending event without blocking
	// ok is false when the queue is empty
	PollEvent() (ev Event, ok bool)

	// KeyState returns a snapshot of currently held keys
	KeyState() KeyState

	Destroy()
}

// Surface is a double-buffered drawing target
type Surface interface {
	// Clear fills the back buffer with c
	Clear(c Color)

	// SetDrawColor selects the color used by FillRect
	SetDrawColor(c Color)

	// FillRect fills r in field units with the current draw color
	FillRect(r Rect)

	// Present swaps the back buffer to the screen
	Present()

	Destroy()
}

// Color is an 8-bit RGBA color
type Color struct {
	R, G, B, A uint8
}

// Rect is an axis-aligned rectangle; X, Y is the top-left corner
type Rect struct {
	X, Y, W, H int
}

// EventType classifies a polled event
type EventType uint8

const (
	EventNone EventType = iota
	EventQuit
	EventKey
	EventResize
)

// Event is a polled window event
type Event struct {
	Type EventType
	Key  Key
}

// IsQuit reports whether the event asks the session to end
func (e Event) IsQuit() bool {
	return e.Type == EventQuit
}
