package platform

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pong/parameter"
)

// Terminal is a Platform backed by a tcell screen
// The logical field is projected onto whatever cell grid the terminal offers
type Terminal struct {
	newScreen  func() (tcell.Screen, error)
	probe      func() error
	now        func() time.Time
	hold       holdWindows
}

// holdWindows bound how long a key stays held after its last event
type holdWindows struct {
	initial time.Duration
	repeat  time.Duration
}

var defaultHoldWindows = holdWindows{
	initial: parameter.KeyInitialHoldWindow,
	repeat:  parameter.KeyRepeatHoldWindow,
}

// NewTerminal returns a backend that draws on the controlling terminal
func NewTerminal() *Terminal {
	return &Terminal{
		newScreen:  tcell.NewScreen,
		probe:      probeTTY,
		now:        time.Now,
		hold:       defaultHoldWindows,
	}
}

// NewTerminalWithScreen returns a backend bound to an existing screen, typically
// tcell's SimulationScreen. now drives held-key expiry
func NewTerminalWithScreen(screen tcell.Screen, now func() time.Time) *Terminal {
	return &Terminal{
		newScreen:  func() (tcell.Screen, error) { return screen, nil },
		probe:      func() error { return nil },
		now:        now,
		hold:       defaultHoldWindows,
	}
}

// CreateWindow initializes the screen. x and y are ignored, a terminal cannot be positioned
func (t *Terminal) CreateWindow(title string, x, y, width, height int) (Window, error) {
	if width <= 0 || height <= 0 {
		return nil, initFailure(ErrWindowCreation, fmt.Errorf("invalid logical size %dx%d", width, height))
	}
	if err := t.probe(); err != nil {
		return nil, initFailure(ErrWindowCreation, err)
	}

	screen, err := t.newScreen()
	if err != nil {
		return nil, initFailure(ErrWindowCreation, err)
	}
	if err := screen.Init(); err != nil {
		return nil, initFailure(ErrWindowCreation, err)
	}

	screen.SetTitle(title)
	screen.HideCursor()
	screen.DisableMouse()

	cols, rows := screen.Size()
	log.Printf("terminal window %q: field %dx%d on %dx%d cells", title, width, height, cols, rows)

	return &terminalWindow{
		screen:  screen,
		now:     t.now,
		hold:    t.hold,
		fieldW:  float64(width),
		fieldH:  float64(height),
		pressed: make(map[Key]keyPress),
	}, nil
}

// Shutdown is a no-op: tcell keeps no process-wide state beyond the screen
func (t *Terminal) Shutdown() {}

type terminalWindow struct {
	screen tcell.Screen
	now    func() time.Time
	hold   holdWindows

	fieldW, fieldH float64

	pressed map[Key]keyPress

	surface     *terminalSurface
	destroyOnce sync.Once
}

func (w *terminalWindow) CreateSurface() (Surface, error) {
	cols, rows := w.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil, initFailure(ErrSurfaceCreation, fmt.Errorf("terminal reports %dx%d cells", cols, rows))
	}

	w.surface = &terminalSurface{
		screen: w.screen,
		fieldW: w.fieldW,
		fieldH: w.fieldH,
		cols:   cols,
		rows:   rows,
		draw:   tcell.StyleDefault,
	}
	return w.surface, nil
}

func (w *terminalWindow) PollEvent() (Event, bool) {
	if !w.screen.HasPendingEvent() {
		return Event{}, false
	}

	switch ev := w.screen.PollEvent().(type) {
	case nil:
		// Screen finalized
		return Event{Type: EventQuit}, true

	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return Event{Type: EventQuit}, true
		}
		key := translateKey(ev)
		if key != KeyUnknown {
			w.press(key)
		}
		return Event{Type: EventKey, Key: key}, true

	case *tcell.EventResize:
		if w.surface != nil {
			w.surface.resize()
		}
		return Event{Type: EventResize}, true
	}

	return Event{Type: EventNone}, true
}

// keyPress is the last event seen for a key
// repeating is set once a second event arrives while the key is still held
type keyPress struct {
	at        time.Time
	repeating bool
}

func (w *terminalWindow) press(key Key) {
	now := w.now()
	prev, held := w.pressed[key]
	w.pressed[key] = keyPress{
		at:        now,
		repeating: held && w.within(prev, now),
	}
}

// within reports whether p still counts as held at now
// A single press waits out the initial auto-repeat delay; a repeating key only bridges the
// gap between two repeats
func (w *terminalWindow) within(p keyPress, now time.Time) bool {
	window := w.hold.initial
	if p.repeating {
		window = w.hold.repeat
	}
	return now.Sub(p.at) <= window
}

// KeyState reports keys still inside their hold window; stale entries are dropped
func (w *terminalWindow) KeyState() KeyState {
	now := w.now()
	state := make(KeyState, len(w.pressed))
	for key, p := range w.pressed {
		if w.within(p, now) {
			state[key] = true
		} else {
			delete(w.pressed, key)
		}
	}
	return state
}

func (w *terminalWindow) Destroy() {
	w.destroyOnce.Do(func() {
		w.screen.Fini()
	})
}

func translateKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'w':
			return KeyW
		case 's':
			return KeyS
		case 'i':
			return KeyI
		case 'k':
			return KeyK
		}
	}
	return KeyUnknown
}

type terminalSurface struct {
	screen tcell.Screen

	fieldW, fieldH float64
	cols, rows     int

	draw tcell.Style
}

func (s *terminalSurface) resize() {
	s.cols, s.rows = s.screen.Size()
	s.screen.Sync()
}

func (s *terminalSurface) Clear(c Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(c)))
}

func (s *terminalSurface) SetDrawColor(c Color) {
	s.draw = tcell.StyleDefault.Background(tcellColor(c))
}

func (s *terminalSurface) FillRect(r Rect) {
	x0, x1 := project(r.X, r.W, s.fieldW, s.cols)
	y0, y1 := project(r.Y, r.H, s.fieldH, s.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, s.draw)
		}
	}
}

func (s *terminalSurface) Present() {
	s.screen.Show()
}

func (s *terminalSurface) Destroy() {
	s.screen.Clear()
}

// project maps the field span [pos, pos+size) onto a half-open cell range clipped to the grid
// A non-empty span always covers at least one cell so thin walls stay visible
func project(pos, size int, field float64, cells int) (lo, hi int) {
	if size <= 0 || cells <= 0 || field <= 0 {
		return 0, 0
	}
	scale := float64(cells) / field
	lo = int(math.Floor(float64(pos) * scale))
	hi = int(math.Ceil(float64(pos+size) * scale))
	if hi <= lo {
		hi = lo + 1
	}
	return clampCell(lo, cells), clampCell(hi, cells)
}

func clampCell(v, cells int) int {
	if v < 0 {
		return 0
	}
	if v > cells {
		return cells
	}
	return v
}

func tcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
