package config

import (
	"flag"

	"github.com/lixenwraith/arcade/engine"
)

// Flags are the command-line overrides shared by the hosts.
// Only flags given explicitly override loaded values
type Flags struct {
	fs *flag.FlagSet

	EnvFile string
	Tuning  string
	Game    string
	Listen  string
	FPS     int
	Seed    uint64
	Debug   bool
	NoAudio bool
}

// RegisterFlags declares the shared flags on fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.EnvFile, "env", DefaultEnvFile, "dotenv file")
	fs.StringVar(&f.Tuning, "tuning", "", "YAML tuning file")
	fs.StringVar(&f.Game, "game", "", "game to play: shooter, arena")
	fs.StringVar(&f.Listen, "listen", "", "server listen address")
	fs.IntVar(&f.FPS, "fps", 0, "frames per second")
	fs.Uint64Var(&f.Seed, "seed", 0, "random seed, 0 for clock")
	fs.BoolVar(&f.Debug, "debug", false, "enable debug logging")
	fs.BoolVar(&f.NoAudio, "no-audio", false, "disable sound")
	return f
}

// Sources returns the load sources named by the flags
func (f *Flags) Sources() Sources {
	return Sources{EnvFile: f.EnvFile, TuningPath: f.Tuning}
}

// Apply overrides cfg with explicitly set flags and revalidates
func (f *Flags) Apply(c *Config) error {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "game":
			c.Game = f.Game
		case "listen":
			c.Listen = f.Listen
		case "fps":
			c.FPS = f.FPS
		case "seed":
			c.Seed = f.Seed
		case "debug":
			c.Debug = f.Debug
		case "no-audio":
			c.Audio = !f.NoAudio
		}
	})
	return c.Validate()
}

// Options builds session options for game from the loaded tuning
func (c *Config) Options(game string) engine.Options {
	opts := engine.DefaultOptions(game)
	opts.Seed = c.Seed
	opts.Player = c.Player
	opts.Shooter = c.Shooter
	opts.Arena = c.Arena
	return opts
}

