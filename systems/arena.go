package systems

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/arcade/components"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/events"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/vmath"
)

// ArenaConfig holds zombie arena progression tuning
type ArenaConfig struct {
	SpawnDelay     time.Duration `yaml:"spawn_delay"`
	SpawnDelayStep time.Duration `yaml:"spawn_delay_step"`
	MinSpawnDelay  time.Duration `yaml:"min_spawn_delay"`
	OrbsPerLevel   int           `yaml:"orbs_per_level"`
	AutoFire       bool          `yaml:"auto_fire"`
}

// DefaultArenaConfig returns the stock tuning
func DefaultArenaConfig() ArenaConfig {
	return ArenaConfig{
		SpawnDelay:     constants.ArenaSpawnDelay,
		SpawnDelayStep: constants.ArenaSpawnDelayStep,
		MinSpawnDelay:  constants.ArenaMinSpawnDelay,
		OrbsPerLevel:   constants.ArenaOrbsPerLevel,
		AutoFire:       true,
	}
}

// Arena is the zombie arena session: the player, its bullets, chasing zombies and dropped orbs
type Arena struct {
	sessionState

	cfg       ArenaConfig
	playerCfg components.PlayerConfig
	bounds    vmath.Size
	rng       *rand.Rand

	Player  *components.Player
	Bullets []components.Bullet
	Zombies []components.Zombie
	Orbs    []components.Orb

	Level         int
	OrbsCollected int
	OrbsNeeded    int

	// AutoFire shoots toward the pointer every frame without a held fire input
	AutoFire bool

	spawnDelay     time.Duration
	lastSpawn      time.Time
	zombiesSpawned int
	tierSpawns     int
}

// NewArena creates a level 1 session inside bounds; queue may be nil
func NewArena(bounds vmath.Size, cfg ArenaConfig, playerCfg components.PlayerConfig, rng *rand.Rand, queue *events.EventQueue) *Arena {
	a := &Arena{
		cfg:       cfg,
		playerCfg: playerCfg,
		bounds:    bounds,
		rng:       rng,
	}
	a.queue = queue
	a.Reset()
	return a
}

// Reset starts a fresh session, keeping the auto-fire preference
func (a *Arena) Reset() {
	a.sessionState.clear()
	center := a.bounds.Center()
	a.Player = components.NewPlayer(center.X, center.Y, a.bounds, a.playerCfg)
	a.Bullets = a.Bullets[:0]
	a.Zombies = a.Zombies[:0]
	a.Orbs = a.Orbs[:0]
	a.Level = constants.ArenaStartLevel
	a.OrbsCollected = 0
	a.OrbsNeeded = a.cfg.OrbsPerLevel
	a.AutoFire = a.cfg.AutoFire
	a.spawnDelay = a.cfg.SpawnDelay
	a.lastSpawn = time.Time{}
	a.zombiesSpawned = 0
	a.tierSpawns = 0
	a.Player.UpdateShootSpeed(a.Level)
}

// Bounds returns the playfield size
func (a *Arena) Bounds() vmath.Size { return a.bounds }

// SpawnDelay returns the current base delay between zombie spawns
func (a *Arena) SpawnDelay() time.Duration { return a.spawnDelay }

// Step implements Session
func (a *Arena) Step(now time.Time, in input.State) {
	a.Update(now, in)
}

// Update advances one frame. Frozen while paused or after game over
func (a *Arena) Update(now time.Time, in input.State) {
	if a.frozen() {
		return
	}

	a.Player.Update(in.Keys)

	if a.AutoFire || in.Firing() {
		if shots := a.Player.Shoot(in.Pointer, now, a.Level); len(shots) > 0 {
			a.Bullets = append(a.Bullets, shots...)
			a.emit(events.EventShotFired, a.Player.X, a.Player.Y, len(shots))
		}
	}

	a.moveBullets()

	target := vmath.Vec2{X: a.Player.X, Y: a.Player.Y}
	for i := range a.Zombies {
		a.Zombies[i].Update(target)
	}
	a.collectOrbs(target)

	a.checkLevelUp()

	if now.Sub(a.lastSpawn) > a.effectiveSpawnDelay() {
		a.spawnZombie()
		a.lastSpawn = now
		a.spawnDelay = max(a.cfg.MinSpawnDelay, a.spawnDelay-a.cfg.SpawnDelayStep)
	}

	a.checkCollisions(now)
}

func (a *Arena) moveBullets() {
	kept := a.Bullets[:0]
	for _, b := range a.Bullets {
		b.Update()
		if b.OffScreen(a.bounds) {
			continue
		}
		kept = append(kept, b)
	}
	a.Bullets = kept
}

func (a *Arena) collectOrbs(target vmath.Vec2) {
	kept := a.Orbs[:0]
	for _, o := range a.Orbs {
		if o.Update(target) {
			a.OrbsCollected++
			a.emit(events.EventOrbCollected, o.X, o.Y, a.OrbsCollected)
			continue
		}
		kept = append(kept, o)
	}
	a.Orbs = kept
}

// checkLevelUp advances at most one level per frame
func (a *Arena) checkLevelUp() bool {
	if a.OrbsCollected < a.OrbsNeeded {
		return false
	}
	a.Level++
	a.OrbsCollected = 0
	a.OrbsNeeded = a.Level * a.cfg.OrbsPerLevel
	a.Player.UpdateShootSpeed(a.Level)
	a.emit(events.EventLevelUp, a.Player.X, a.Player.Y, a.Level)
	return true
}

// effectiveSpawnDelay halves the delay late in the game
func (a *Arena) effectiveSpawnDelay() time.Duration {
	if a.Level >= constants.ArenaFastSpawnLevel {
		return max(constants.ArenaFastSpawnFloor, a.spawnDelay/2)
	}
	return a.spawnDelay
}

// nextKind picks the kind for the next spawn and advances the spawn counters
func (a *Arena) nextKind() components.ZombieKind {
	defer func() { a.zombiesSpawned++ }()

	switch {
	case a.Level >= constants.ArenaGreenLevel:
		return components.ZombieGreen
	case a.Level >= constants.ArenaBuffLevel:
		a.tierSpawns++
		if a.tierSpawns%constants.ArenaGreenEvery == 0 {
			return components.ZombieGreen
		}
		return components.ZombieBuff
	default:
		if (a.zombiesSpawned+1)%constants.ArenaBuffEvery == 0 {
			return components.ZombieBuff
		}
		return components.ZombieNormal
	}
}

// spawnZombie places a zombie just outside a random edge
func (a *Arena) spawnZombie() {
	var x, y float64
	off := constants.ArenaSpawnEdgeOffset

	switch a.rng.IntN(4) {
	case 0:
		x, y = a.rng.Float64()*a.bounds.Width, -off
	case 1:
		x, y = a.bounds.Width+off, a.rng.Float64()*a.bounds.Height
	case 2:
		x, y = a.rng.Float64()*a.bounds.Width, a.bounds.Height+off
	default:
		x, y = -off, a.rng.Float64()*a.bounds.Height
	}

	a.Zombies = append(a.Zombies, components.NewZombie(x, y, a.nextKind()))
}

// spawnOrbs scatters count orbs around (x, y)
func (a *Arena) spawnOrbs(x, y float64, count int) {
	half := constants.OrbScatter / 2
	for range count {
		a.Orbs = append(a.Orbs, components.Orb{
			X: x + a.rng.Float64()*constants.OrbScatter - half,
			Y: y + a.rng.Float64()*constants.OrbScatter - half,
		})
	}
}

func (a *Arena) checkCollisions(now time.Time) {
	p := a.Player
	for _, z := range a.Zombies {
		if !vmath.CirclesOverlap(p.X, p.Y, p.Radius(), z.X, z.Y, z.Size) {
			continue
		}
		if !p.DamageReady(now) {
			continue
		}
		dead := p.TakeDamage(now)
		a.emit(events.EventPlayerHit, p.X, p.Y, p.Health)
		if dead {
			a.endGame(p.X, p.Y)
			return
		}
	}

	for i := len(a.Bullets) - 1; i >= 0; i-- {
		b := a.Bullets[i]
		for j := len(a.Zombies) - 1; j >= 0; j-- {
			z := &a.Zombies[j]
			if !vmath.CirclesOverlap(b.X, b.Y, b.Size, z.X, z.Y, z.Size) {
				continue
			}
			if z.TakeDamage(b.Damage) {
				st := components.StatsFor(z.Kind)
				a.spawnOrbs(z.X, z.Y, st.Orbs)
				a.score += st.Score
				a.emit(events.EventZombieKilled, z.X, z.Y, st.Score)
				a.Zombies = append(a.Zombies[:j], a.Zombies[j+1:]...)
			}
			a.Bullets = append(a.Bullets[:i], a.Bullets[i+1:]...)
			break
		}
	}
}
