package engine

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/pong/platform"
)

// fakePlatform records the lifecycle calls made by the loop controller
type fakePlatform struct {
	window      *fakeWindow
	windowErr   error
	surfaceErr  error
	shutdowns   int
	createTitle string
	createSize  [2]int
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{window: &fakeWindow{keys: platform.KeyState{}}}
}

func (p *fakePlatform) CreateWindow(title string, x, y, width, height int) (platform.Window, error) {
	if p.windowErr != nil {
		return nil, errors.Wrap(p.windowErr, platform.ErrWindowCreation.Error())
	}
	p.createTitle = title
	p.createSize = [2]int{width, height}
	p.window.surfaceErr = p.surfaceErr
	return p.window, nil
}

func (p *fakePlatform) Shutdown() { p.shutdowns++ }

type fakeWindow struct {
	events     []platform.Event
	keys       platform.KeyState
	surface    fakeSurface
	surfaceErr error
	destroys   int

	// beforePoll runs at the start of each input drain
	beforePoll func(w *fakeWindow)
	polls      int
}

func (w *fakeWindow) CreateSurface() (platform.Surface, error) {
	if w.surfaceErr != nil {
		return nil, w.surfaceErr
	}
	return &w.surface, nil
}

func (w *fakeWindow) PollEvent() (platform.Event, bool) {
	if w.polls == 0 && w.beforePoll != nil {
		w.beforePoll(w)
	}
	w.polls++
	if len(w.events) == 0 {
		w.polls = 0
		return platform.Event{}, false
	}
	ev := w.events[0]
	w.events = w.events[1:]
	return ev, true
}

func (w *fakeWindow) KeyState() platform.KeyState { return w.keys }

func (w *fakeWindow) Destroy() { w.destroys++ }

type fakeSurface struct {
	clears   int
	fills    []platform.Rect
	presents int
	destroys int
}

func (s *fakeSurface) Clear(platform.Color)        { s.clears++ }
func (s *fakeSurface) SetDrawColor(platform.Color) {}
func (s *fakeSurface) FillRect(r platform.Rect)    { s.fills = append(s.fills, r) }
func (s *fakeSurface) Present()                    { s.presents++ }
func (s *fakeSurface) Destroy()                    { s.destroys++ }
