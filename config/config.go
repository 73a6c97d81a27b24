// Package config resolves host settings and game tuning from defaults,
// a .env file, ARCADE_* environment variables and a YAML tuning file
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/arcade/components"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/systems"
)

// ErrInvalidConfig wraps every validation and parse failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables
const (
	EnvGame   = "ARCADE_GAME"
	EnvFPS    = "ARCADE_FPS"
	EnvSeed   = "ARCADE_SEED"
	EnvListen = "ARCADE_LISTEN"
	EnvDebug  = "ARCADE_DEBUG"
	EnvTuning = "ARCADE_TUNING"
	EnvAudio  = "ARCADE_AUDIO"
)

const (
	DefaultEnvFile = ".env"
	DefaultListen  = ":8080"
	maxFPS         = 240
)

// Config is the resolved host configuration
type Config struct {
	Game       string
	FPS        int
	Seed       uint64
	Listen     string
	Debug      bool
	TuningPath string
	Audio      bool

	Player  components.PlayerConfig
	Shooter systems.ShooterConfig
	Arena   systems.ArenaConfig
}

// Tuning is the YAML tuning file layout. Absent keys keep their defaults
type Tuning struct {
	Player  components.PlayerConfig `yaml:"player"`
	Shooter systems.ShooterConfig   `yaml:"shooter"`
	Arena   systems.ArenaConfig     `yaml:"arena"`
}

// Sources names where Load reads from
type Sources struct {
	// EnvFile is the dotenv file; a missing file is not an error
	EnvFile string

	// TuningPath overrides ARCADE_TUNING when set
	TuningPath string

	// Getenv reads the process environment; nil uses os.LookupEnv
	Getenv func(key string) (string, bool)
}

// Default returns built-in settings
func Default() *Config {
	return &Config{
		Game:    systems.GameArena,
		FPS:     constants.FPS,
		Listen:  DefaultListen,
		Audio:   true,
		Player:  components.DefaultPlayerConfig(),
		Shooter: systems.DefaultShooterConfig(),
		Arena:   systems.DefaultArenaConfig(),
	}
}

// Load resolves configuration in order: defaults, .env, environment, tuning file
func Load(src Sources) (*Config, error) {
	cfg := Default()

	dotenv := map[string]string{}
	if src.EnvFile != "" {
		m, err := godotenv.Read(src.EnvFile)
		switch {
		case err == nil:
			dotenv = m
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, src.EnvFile, err)
		}
	}

	getenv := src.Getenv
	if getenv == nil {
		getenv = os.LookupEnv
	}
	lookup := func(key string) (string, bool) {
		if v, ok := getenv(key); ok && v != "" {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok && v != ""
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}

	if src.TuningPath != "" {
		cfg.TuningPath = src.TuningPath
	}
	if cfg.TuningPath != "" {
		if err := cfg.LoadTuning(cfg.TuningPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvGame); ok {
		c.Game = v
	}
	if v, ok := lookup(EnvListen); ok {
		c.Listen = v
	}
	if v, ok := lookup(EnvTuning); ok {
		c.TuningPath = v
	}
	if v, ok := lookup(EnvFPS); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvFPS, v, err)
		}
		c.FPS = n
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvSeed, v, err)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvDebug, v, err)
		}
		c.Debug = b
	}
	if v, ok := lookup(EnvAudio); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvAudio, v, err)
		}
		c.Audio = b
	}
	return nil
}

// LoadTuning overlays a YAML tuning file onto the current tuning.
// Unknown keys are rejected
func (c *Config) LoadTuning(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning: %w", err)
	}
	defer f.Close()

	t := Tuning{Player: c.Player, Shooter: c.Shooter, Arena: c.Arena}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: tuning %s: %v", ErrInvalidConfig, path, err)
	}

	c.Player, c.Shooter, c.Arena = t.Player, t.Shooter, t.Arena
	return nil
}

// Tuning returns the current tuning in file layout
func (c *Config) Tuning() Tuning {
	return Tuning{Player: c.Player, Shooter: c.Shooter, Arena: c.Arena}
}

// FrameInterval returns the loop period for FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Validate checks ranges and game selection
func (c *Config) Validate() error {
	switch c.Game {
	case systems.GameShooter, systems.GameArena:
	default:
		return fmt.Errorf("%w: unknown game %q", ErrInvalidConfig, c.Game)
	}
	if c.FPS < 1 || c.FPS > maxFPS {
		return fmt.Errorf("%w: fps %d outside [1, %d]", ErrInvalidConfig, c.FPS, maxFPS)
	}

	p := c.Player
	if p.Size <= 0 || p.Speed < 0 || p.BulletSpeed <= 0 {
		return fmt.Errorf("%w: player size, speed and bullet speed must be positive", ErrInvalidConfig)
	}
	if p.MaxHealth <= 0 {
		return fmt.Errorf("%w: player max_health %d", ErrInvalidConfig, p.MaxHealth)
	}
	if p.MinShootDelay <= 0 || p.MinShootDelay > p.BaseShootDelay {
		return fmt.Errorf("%w: shoot delay floor %v above base %v", ErrInvalidConfig, p.MinShootDelay, p.BaseShootDelay)
	}

	s := c.Shooter
	if s.SpawnChance < 0 || s.SpawnChance > 1 {
		return fmt.Errorf("%w: shooter spawn_chance %v outside [0, 1]", ErrInvalidConfig, s.SpawnChance)
	}
	if s.MaxBullets < 0 || s.MaxEnemies < 0 {
		return fmt.Errorf("%w: shooter caps must not be negative", ErrInvalidConfig)
	}
	if s.PlayerWidth <= 0 || s.PlayerHeight <= 0 || s.EnemyWidth <= 0 || s.EnemyHeight <= 0 {
		return fmt.Errorf("%w: shooter sizes must be positive", ErrInvalidConfig)
	}

	a := c.Arena
	if a.MinSpawnDelay <= 0 || a.SpawnDelay < a.MinSpawnDelay {
		return fmt.Errorf("%w: arena spawn delay %v below floor %v", ErrInvalidConfig, a.SpawnDelay, a.MinSpawnDelay)
	}
	if a.OrbsPerLevel <= 0 {
		return fmt.Errorf("%w: arena orbs_per_level %d", ErrInvalidConfig, a.OrbsPerLevel)
	}
	return nil
}
