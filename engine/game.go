package engine

import (
	"log"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/parameter"
	"github.com/lixenwraith/pong/platform"
	"github.com/lixenwraith/pong/render"
)

// Game is the loop controller of one session
// It owns the window resources from Open until Close
type Game struct {
	platform platform.Platform
	window   platform.Window
	surface  platform.Surface

	keys     *input.KeyTable
	renderer *render.Renderer
	pacer    *FramePacer

	State   *GameState
	Variant Variant

	frames    uint64
	closeOnce sync.Once
}

// Open creates the window and surface and spawns the initial state
// On failure everything acquired so far is released and the returned error matches
// platform.ErrWindowCreation or platform.ErrSurfaceCreation
func Open(p platform.Platform, cfg Config, clock Clock) (*Game, error) {
	window, err := p.CreateWindow(cfg.Title, cfg.WindowX, cfg.WindowY,
		int(parameter.FieldWidth), int(parameter.FieldHeight))
	if err != nil {
		p.Shutdown()
		return nil, err
	}

	surface, err := window.CreateSurface()
	if err != nil {
		window.Destroy()
		p.Shutdown()
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	g := &Game{
		platform: p,
		window:   window,
		surface:  surface,
		keys:     input.DefaultKeyTable(),
		renderer: render.NewRenderer(surface),
		pacer:    NewFramePacer(clock, parameter.FrameBudget, parameter.MaxDeltaTime),
		State:    NewGameState(SpawnBalls(cfg.Variant, rng), clock.Now()),
		Variant:  cfg.Variant,
	}

	for _, b := range g.keys.Bindings {
		log.Printf("binding %s -> %s", b.Key, b.Intent)
	}
	for i, b := range g.State.Balls {
		log.Printf("spawn ball %d at (%.0f, %.0f) velocity (%.0f, %.0f)",
			i, b.Position.X, b.Position.Y, b.Velocity.X, b.Velocity.Y)
	}
	return g, nil
}

// Run executes frames until the state stops
func (g *Game) Run() StopReason {
	for g.State.Running() {
		g.Frame()
	}
	return g.State.StopReason()
}

// Frame runs one full iteration: input, pacing, simulation, render
// A stop requested during input still completes the iteration
func (g *Game) Frame() {
	g.handleInput()

	dt, now := g.pacer.Wait(g.State.LastFrame)
	g.State.LastFrame = now

	Simulate(g.State, dt)

	g.renderer.RenderFrame(g.State.Left, g.State.Right, g.State.Balls)
	g.frames++
}

// handleInput drains pending events then applies the held-key snapshot
func (g *Game) handleInput() {
	for {
		ev, ok := g.window.PollEvent()
		if !ok {
			break
		}
		if ev.IsQuit() {
			g.State.Stop(StopQuitEvent)
		}
	}

	cmd := g.keys.Resolve(g.window.KeyState())
	if cmd.Quit {
		g.State.Stop(StopEscape)
	}
	g.State.Left.Direction = cmd.Left
	g.State.Right.Direction = cmd.Right
}

// Frames returns the number of completed iterations
func (g *Game) Frames() uint64 {
	return g.frames
}

// Close releases the surface, the window and the subsystem, in that order
// Safe to call more than once
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		g.surface.Destroy()
		g.window.Destroy()
		g.platform.Shutdown()
	})
}
