//go:build sdl

package platform

import (
	"log"
	"sync"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL is a Platform backed by a native SDL2 window and accelerated renderer
// SDL must be driven from the main OS thread; callers lock it before CreateWindow
type SDL struct {
	initOnce sync.Once
	initErr  error
}

func NewSDL() *SDL {
	return &SDL{}
}

func (p *SDL) CreateWindow(title string, x, y, width, height int) (Window, error) {
	p.initOnce.Do(func() {
		p.initErr = sdl.Init(sdl.INIT_VIDEO)
	})
	if p.initErr != nil {
		return nil, initFailure(ErrWindowCreation, p.initErr)
	}

	window, err := sdl.CreateWindow(title, int32(x), int32(y), int32(width), int32(height), 0)
	if err != nil {
		return nil, initFailure(ErrWindowCreation, err)
	}

	log.Printf("sdl window %q at (%d,%d) size %dx%d", title, x, y, width, height)
	return &sdlWindow{window: window}, nil
}

func (p *SDL) Shutdown() {
	sdl.Quit()
}

type sdlWindow struct {
	window      *sdl.Window
	destroyOnce sync.Once
}

func (w *sdlWindow) CreateSurface() (Surface, error) {
	renderer, err := sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, initFailure(ErrSurfaceCreation, err)
	}
	return &sdlSurface{renderer: renderer}, nil
}

func (w *sdlWindow) PollEvent() (Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return Event{}, false
	}

	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_CLOSE {
			return Event{Type: EventQuit}, true
		}
		if e.Event == sdl.WINDOWEVENT_RESIZED {
			return Event{Type: EventResize}, true
		}
	case *sdl.KeyboardEvent:
		return Event{Type: EventKey, Key: scancodeKey(e.Keysym.Scancode)}, true
	}
	return Event{Type: EventNone}, true
}

func (w *sdlWindow) KeyState() KeyState {
	raw := sdl.GetKeyboardState()
	state := make(KeyState, len(sdlScancodes))
	for key, code := range sdlScancodes {
		if int(code) < len(raw) && raw[code] != 0 {
			state[key] = true
		}
	}
	return state
}

func (w *sdlWindow) Destroy() {
	w.destroyOnce.Do(func() {
		if err := w.window.Destroy(); err != nil {
			log.Printf("sdl window destroy: %v", err)
		}
	})
}

var sdlScancodes = map[Key]sdl.Scancode{
	KeyEscape: sdl.SCANCODE_ESCAPE,
	KeyW:      sdl.SCANCODE_W,
	KeyS:      sdl.SCANCODE_S,
	KeyI:      sdl.SCANCODE_I,
	KeyK:      sdl.SCANCODE_K,
}

func scancodeKey(code sdl.Scancode) Key {
	for key, c := range sdlScancodes {
		if c == code {
			return key
		}
	}
	return KeyUnknown
}

type sdlSurface struct {
	renderer    *sdl.Renderer
	draw        Color
	destroyOnce sync.Once
}

func (s *sdlSurface) Clear(c Color) {
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	s.renderer.Clear()
	s.renderer.SetDrawColor(s.draw.R, s.draw.G, s.draw.B, s.draw.A)
}

func (s *sdlSurface) SetDrawColor(c Color) {
	s.draw = c
	s.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (s *sdlSurface) FillRect(r Rect) {
	s.renderer.FillRect(&sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)})
}

func (s *sdlSurface) Present() {
	s.renderer.Present()
}

func (s *sdlSurface) Destroy() {
	s.destroyOnce.Do(func() {
		if err := s.renderer.Destroy(); err != nil {
			log.Printf("sdl renderer destroy: %v", err)
		}
	})
}
