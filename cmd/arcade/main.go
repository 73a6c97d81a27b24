package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arcade/audio"
	"github.com/lixenwraith/arcade/config"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/engine"
	"github.com/lixenwraith/arcade/events"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arcade: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags.Sources())
	if err != nil {
		return err
	}
	if err := flags.Apply(cfg); err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	game, err := engine.NewGameContext(cfg.Options(cfg.Game))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Crashed goroutines restore the terminal before printing the panic
	core.SetCrashHandler(func(any) { screen.Fini() })
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	sounds := setupAudio(cfg)
	defer sounds.Cleanup()

	game.Router.Register(audio.NewSoundHandler[*engine.GameContext](sounds))
	game.Router.Register(events.HandlerFunc[*engine.GameContext]{
		Types: []events.EventType{events.EventLevelUp, events.EventGameOver, events.EventRestart},
		Fn: func(g *engine.GameContext, ev events.GameEvent) {
			slog.Info("game event", "game", g.Name, "event", ev.Type.String(), "value", ev.Value, "score", g.Session.Score())
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	surface := render.NewTerminalSurface(screen, game.Bounds)
	held := input.NewHeldKeys(0)

	loop := engine.NewFrameLoop(cfg.FrameInterval(), func() error {
		game.Update(held.Snapshot(time.Now()))
		return game.Draw(surface)
	})

	// Runs on the loop goroutine
	handle := func(ev tcell.Event) {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch intent := held.HandleKey(ev, time.Now()); intent {
			case input.IntentNone:
			case input.IntentQuit:
				quit()
			case input.IntentToggleMute:
				slog.Debug("mute toggled", "muted", sounds.ToggleMute())
			default:
				game.Apply(intent)
			}
		case *tcell.EventMouse:
			col, row := ev.Position()
			held.Pointer(surface.CellToWorld(col, row), ev.Buttons()&tcell.Button1 != 0)
		case *tcell.EventResize:
			surface.Sync()
			screen.Sync()
		}
	}

	// PollEvent returns nil once the screen is finalized
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if err := loop.Post(ctx, func() { handle(ev) }); err != nil {
				return
			}
		}
	})

	slog.Info("arcade started", "game", cfg.Game, "fps", cfg.FPS, "seed", cfg.Seed, "audio", sounds.IsInitialized())
	if err := loop.Run(ctx); err != nil {
		return err
	}
	slog.Info("arcade stopped", "frames", game.GetFrameNumber(), "score", game.Session.Score())
	return nil
}

// setupAudio returns a sound manager; when audio cannot start it stays silent
func setupAudio(cfg *config.Config) *audio.SoundManager {
	audioCfg := audio.LoadAudioConfig()
	if !cfg.Audio {
		audioCfg.Enabled = false
	}

	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		slog.Warn("audio unavailable, continuing without sound", "error", err)
	}
	return sounds
}
