package platform

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pong/parameter"
)

type simClock struct {
	now time.Time
}

func (c *simClock) Now() time.Time { return c.now }

func openSim(t *testing.T) (tcell.SimulationScreen, Window, *simClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	clock := &simClock{now: time.Unix(1000, 0)}

	w, err := NewTerminalWithScreen(screen, clock.Now).CreateWindow("Pong 2", 100, 100, 1024, 768)
	require.NoError(t, err)
	t.Cleanup(w.Destroy)
	return screen, w, clock
}

func drain(w Window) []Event {
	var events []Event
	for {
		ev, ok := w.PollEvent()
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}

func TestTerminal_InvalidSize(t *testing.T) {
	_, err := NewTerminalWithScreen(tcell.NewSimulationScreen("UTF-8"), time.Now).CreateWindow("x", 0, 0, 0, 768)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWindowCreation)

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
	assert.Contains(t, err.Error(), "window creation failed: invalid logical size")
}

func TestTerminal_PollEmpty(t *testing.T) {
	_, w, _ := openSim(t)

	_, ok := w.PollEvent()
	assert.False(t, ok)
}

func TestTerminal_KeyEventsMapToKeys(t *testing.T) {
	screen, w, _ := openSim(t)

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'K', tcell.ModNone)
	events := drain(w)

	require.Len(t, events, 2)
	assert.Equal(t, Event{Type: EventKey, Key: KeyW}, events[0])
	assert.Equal(t, Event{Type: EventKey, Key: KeyK}, events[1])

	keys := w.KeyState()
	assert.True(t, keys.Held(KeyW))
	assert.True(t, keys.Held(KeyK))
	assert.False(t, keys.Held(KeyS))
}

// A held key sends one press, silence for the initial repeat delay, then repeats every ~33ms
func TestTerminal_HeldAcrossInitialRepeatDelay(t *testing.T) {
	for _, delay := range []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 660 * time.Millisecond} {
		t.Run(delay.String(), func(t *testing.T) {
			screen, w, clock := openSim(t)
			start := clock.now

			screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
			drain(w)

			for elapsed := time.Duration(0); elapsed < delay; elapsed += 16 * time.Millisecond {
				clock.now = start.Add(elapsed)
				require.True(t, w.KeyState().Held(KeyW), "released at +%v before first repeat", elapsed)
			}

			// Auto-repeat runs for a while, each frame still sees the key
			last := start.Add(delay)
			for i := 0; i < 10; i++ {
				clock.now = last
				screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
				drain(w)
				clock.now = last.Add(16 * time.Millisecond)
				require.True(t, w.KeyState().Held(KeyW), "released between repeats %d", i)
				last = last.Add(33 * time.Millisecond)
			}

			// Physical release: no more repeats, the short window expires
			clock.now = last.Add(parameter.KeyRepeatHoldWindow)
			assert.False(t, w.KeyState().Held(KeyW))
		})
	}
}

func TestTerminal_TapExpiresAfterInitialWindow(t *testing.T) {
	screen, w, clock := openSim(t)
	start := clock.now

	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	drain(w)

	clock.now = start.Add(parameter.KeyInitialHoldWindow)
	assert.True(t, w.KeyState().Held(KeyS))

	clock.now = start.Add(parameter.KeyInitialHoldWindow + time.Millisecond)
	assert.False(t, w.KeyState().Held(KeyS))

	// A later press starts a fresh initial window rather than a repeat
	screen.InjectKey(tcell.KeyRune, 's', tcell.ModNone)
	drain(w)
	clock.now = clock.now.Add(parameter.KeyRepeatHoldWindow + 100*time.Millisecond)
	assert.True(t, w.KeyState().Held(KeyS))
}

func TestTerminal_EscapeIsHeldKey(t *testing.T) {
	screen, w, _ := openSim(t)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	drain(w)

	assert.True(t, w.KeyState().Held(KeyEscape))
}

func TestTerminal_CtrlCQuits(t *testing.T) {
	screen, w, _ := openSim(t)

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	events := drain(w)

	require.Len(t, events, 1)
	assert.True(t, events[0].IsQuit())
}

func TestTerminal_UnboundKeyIgnored(t *testing.T) {
	screen, w, _ := openSim(t)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	events := drain(w)

	require.Len(t, events, 1)
	assert.Equal(t, KeyUnknown, events[0].Key)
	assert.Empty(t, w.KeyState())
}

func TestTerminalSurface_FillRectProjectsField(t *testing.T) {
	screen, w, _ := openSim(t)
	screen.SetSize(128, 48)

	s, err := w.CreateSurface()
	require.NoError(t, err)

	blue := Color{B: 255, A: 255}
	white := Color{R: 255, G: 255, B: 255, A: 255}

	s.Clear(blue)
	s.SetDrawColor(white)
	s.FillRect(Rect{X: 0, Y: 0, W: 1024, H: 15})
	s.FillRect(Rect{X: 505, Y: 377, W: 15, H: 15})
	s.Present()

	bgAt := func(x, y int) tcell.Color {
		_, _, style, _ := screen.GetContent(x, y)
		_, bg, _ := style.Decompose()
		return bg
	}

	// Top wall covers the first row end to end
	assert.Equal(t, tcellColor(white), bgAt(0, 0))
	assert.Equal(t, tcellColor(white), bgAt(127, 0))
	assert.Equal(t, tcellColor(blue), bgAt(0, 1))

	// Ball square at field (505,377) lands on cells 63..64 x 23..24
	assert.Equal(t, tcellColor(white), bgAt(63, 23))
	assert.Equal(t, tcellColor(blue), bgAt(62, 23))
	assert.Equal(t, tcellColor(blue), bgAt(65, 23))
}

func TestProject(t *testing.T) {
	tests := []struct {
		name       string
		pos, size  int
		field      float64
		cells      int
		wantLo, hi int
	}{
		{"full width", 0, 1024, 1024, 80, 0, 80},
		{"thin bar keeps a cell", 0, 15, 768, 25, 0, 1},
		{"bottom wall", 753, 15, 768, 25, 24, 25},
		{"clipped left", -10, 15, 1024, 80, 0, 1},
		{"past edge", 1020, 30, 1024, 80, 79, 80},
		{"empty", 10, 0, 1024, 80, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := project(tt.pos, tt.size, tt.field, tt.cells)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}
