package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arcade/components"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/events"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/render"
	"github.com/lixenwraith/arcade/render/renderers"
	"github.com/lixenwraith/arcade/systems"
	"github.com/lixenwraith/arcade/vmath"
)

// ErrUnknownGame is returned for a game name with no session behind it
var ErrUnknownGame = errors.New("unknown game")

// Options selects and tunes a session
type Options struct {
	Game   string
	Bounds vmath.Size

	// Seed drives the session random source; 0 seeds from the clock
	Seed uint64

	Player  components.PlayerConfig
	Shooter systems.ShooterConfig
	Arena   systems.ArenaConfig

	// Clock is the source for game time; nil uses the system clock
	Clock TimeProvider
}

// DefaultOptions returns stock tuning for game on the standard screen
func DefaultOptions(game string) Options {
	return Options{
		Game:    game,
		Bounds:  vmath.Size{Width: constants.ScreenWidth, Height: constants.ScreenHeight},
		Player:  components.DefaultPlayerConfig(),
		Shooter: systems.DefaultShooterConfig(),
		Arena:   systems.DefaultArenaConfig(),
	}
}

// GameContext holds one session with its clock, event routing and render pipeline.
// Everything except the frame counter belongs to the frame loop goroutine
type GameContext struct {
	Name   string
	Bounds vmath.Size

	Session      systems.Session
	Clock        *PausableClock
	Queue        *events.EventQueue
	Router       *events.Router[*GameContext]
	Orchestrator *render.Orchestrator

	// arena is set when Session is the zombie arena
	arena *systems.Arena

	frameNumber atomic.Int64
}

// NewGameContext builds the session named in opts with its renderers registered
func NewGameContext(opts Options) (*GameContext, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))

	g := &GameContext{
		Name:         opts.Game,
		Bounds:       opts.Bounds,
		Clock:        NewPausableClock(opts.Clock),
		Queue:        events.NewEventQueue(),
		Orchestrator: render.NewOrchestrator(),
	}
	g.Router = events.NewRouter[*GameContext](g.Queue)

	switch opts.Game {
	case systems.GameShooter:
		s := systems.NewShooter(opts.Bounds, opts.Shooter, rng, g.Queue)
		renderers.RegisterShooter(g.Orchestrator, s)
		g.Session = s
	case systems.GameArena:
		a := systems.NewArena(opts.Bounds, opts.Arena, opts.Player, rng, g.Queue)
		renderers.RegisterArena(g.Orchestrator, a)
		g.Session = a
		g.arena = a
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, opts.Game)
	}

	return g, nil
}

// Update advances the session one frame at game time and dispatches its events
func (g *GameContext) Update(in input.State) {
	g.Session.Step(g.Clock.Now(), in)
	g.Router.DispatchAll(g)
}

// Draw renders the current state onto s
func (g *GameContext) Draw(s render.Surface) error {
	ctx := render.RenderContext{
		GameTime:    g.Clock.Now(),
		FrameNumber: g.frameNumber.Add(1),
		IsPaused:    g.Clock.IsPaused(),
	}
	return g.Orchestrator.RenderFrame(ctx, s)
}

// GetFrameNumber returns the number of frames drawn
func (g *GameContext) GetFrameNumber() int64 {
	return g.frameNumber.Load()
}

// TogglePause freezes both game time and the session. Ignored after game over
func (g *GameContext) TogglePause() bool {
	if g.Session.GameOver() {
		return g.Session.Paused()
	}
	paused := g.Clock.Toggle()
	g.Session.SetPaused(paused)
	return paused
}

// Restart resets the session and resumes time
func (g *GameContext) Restart() {
	g.Clock.Resume()
	g.Session.Reset()
	g.Queue.Push(events.GameEvent{Type: events.EventRestart})
}

// ToggleAutoFire flips arena auto-fire; reports false for games without it
func (g *GameContext) ToggleAutoFire() bool {
	if g.arena == nil {
		return false
	}
	g.arena.AutoFire = !g.arena.AutoFire
	return g.arena.AutoFire
}

// Apply performs the session-level part of an intent.
// Quit and mute belong to the host and are left untouched
func (g *GameContext) Apply(intent input.Intent) {
	switch intent {
	case input.IntentPause:
		g.TogglePause()
	case input.IntentRestart:
		g.Restart()
	case input.IntentToggleAutoFire:
		g.ToggleAutoFire()
	}
}
