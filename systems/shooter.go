package systems

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/events"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/vmath"
)

// ShooterConfig holds space-shooter tuning, overridable from the tuning file
type ShooterConfig struct {
	PlayerWidth  float64 `yaml:"player_width"`
	PlayerHeight float64 `yaml:"player_height"`
	PlayerSpeed  float64 `yaml:"player_speed"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletSize   float64 `yaml:"bullet_size"`
	MaxBullets   int     `yaml:"max_bullets"`
	EnemyWidth   float64 `yaml:"enemy_width"`
	EnemyHeight  float64 `yaml:"enemy_height"`
	EnemySpeed   float64 `yaml:"enemy_speed"`
	MaxEnemies   int     `yaml:"max_enemies"`
	SpawnChance  float64 `yaml:"spawn_chance"`
	KillScore    int     `yaml:"kill_score"`
}

// DefaultShooterConfig returns the stock tuning
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		PlayerWidth:  constants.ShooterPlayerWidth,
		PlayerHeight: constants.ShooterPlayerHeight,
		PlayerSpeed:  constants.ShooterPlayerSpeed,
		BulletSpeed:  constants.ShooterBulletSpeed,
		BulletSize:   constants.ShooterBulletSize,
		MaxBullets:   constants.ShooterMaxBullets,
		EnemyWidth:   constants.ShooterEnemyWidth,
		EnemyHeight:  constants.ShooterEnemyHeight,
		EnemySpeed:   constants.ShooterEnemySpeed,
		MaxEnemies:   constants.ShooterMaxEnemies,
		SpawnChance:  constants.ShooterSpawnChance,
		KillScore:    constants.ShooterKillScore,
	}
}

// Ship is the space-shooter player rectangle, (X, Y) is the top-left corner
type Ship struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

func (s Ship) Rect() vmath.Rect { return vmath.Rect{X: s.X, Y: s.Y, W: s.Width, H: s.Height} }

// Shot is a space-shooter bullet; it collides as the point (X, Y)
type Shot struct {
	X, Y  float64
	Size  float64
	Speed float64
}

// Enemy descends from the top edge
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

func (e Enemy) Rect() vmath.Rect { return vmath.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height} }

// Shooter is the space-shooter world: one ship, capped shots and enemies
type Shooter struct {
	sessionState

	cfg    ShooterConfig
	bounds vmath.Size
	rng    *rand.Rand

	Player  Ship
	Bullets []Shot
	Enemies []Enemy

	// keys is the held state for the current Update
	keys input.KeyState
}

// NewShooter creates a session inside bounds; queue may be nil
func NewShooter(bounds vmath.Size, cfg ShooterConfig, rng *rand.Rand, queue *events.EventQueue) *Shooter {
	s := &Shooter{
		cfg:    cfg,
		bounds: bounds,
		rng:    rng,
	}
	s.queue = queue
	s.Reset()
	return s
}

// Reset restores the initial ship and clears bullets, enemies and score
func (s *Shooter) Reset() {
	s.sessionState.clear()
	s.Player = Ship{
		X:      s.bounds.Width / 2,
		Y:      s.bounds.Height - constants.ShooterPlayerYOffset,
		Width:  s.cfg.PlayerWidth,
		Height: s.cfg.PlayerHeight,
		Speed:  s.cfg.PlayerSpeed,
	}
	s.Bullets = s.Bullets[:0]
	s.Enemies = s.Enemies[:0]
	s.keys = input.KeyState{}
}

// Bounds returns the playfield size
func (s *Shooter) Bounds() vmath.Size { return s.bounds }

// CreateEnemy spawns at the top edge with SpawnChance while under the cap
func (s *Shooter) CreateEnemy() {
	if len(s.Enemies) >= s.cfg.MaxEnemies || s.rng.Float64() >= s.cfg.SpawnChance {
		return
	}
	s.Enemies = append(s.Enemies, Enemy{
		X:      s.rng.Float64() * (s.bounds.Width - s.cfg.EnemyWidth),
		Y:      0,
		Width:  s.cfg.EnemyWidth,
		Height: s.cfg.EnemyHeight,
		Speed:  s.cfg.EnemySpeed,
	})
}

// Shoot adds one bullet at the ship's nose while fire is held and under the cap.
// There is no cooldown: a held key fires every frame until the cap is reached
func (s *Shooter) Shoot() {
	if !s.keys.Fire() || len(s.Bullets) >= s.cfg.MaxBullets {
		return
	}
	x := s.Player.X + s.Player.Width/2
	y := s.Player.Y
	s.Bullets = append(s.Bullets, Shot{X: x, Y: y, Size: s.cfg.BulletSize, Speed: s.cfg.BulletSpeed})
	s.emit(events.EventShotFired, x, y, 1)
}

// Step implements Session
func (s *Shooter) Step(_ time.Time, in input.State) {
	s.Update(in.Keys)
}

// Update advances one frame with keys held. No-op once the game is over
func (s *Shooter) Update(keys input.KeyState) {
	if s.frozen() {
		return
	}
	if keys == nil {
		keys = input.KeyState{}
	}
	s.keys = keys

	s.movePlayer()
	s.moveBullets()
	s.moveEnemies()

	s.CreateEnemy()
	s.Shoot()
}

func (s *Shooter) movePlayer() {
	maxX := s.bounds.Width - s.Player.Width
	if s.keys.Left() && s.Player.X > 0 {
		s.Player.X -= s.Player.Speed
	}
	if s.keys.Right() && s.Player.X < maxX {
		s.Player.X += s.Player.Speed
	}
	s.Player.X = vmath.Clamp(s.Player.X, 0, maxX)
}

func (s *Shooter) moveBullets() {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Y -= b.Speed
		if b.Y < 0 {
			continue
		}
		kept = append(kept, b)
	}
	s.Bullets = kept
}

// moveEnemies walks enemies from the back so removal keeps indices valid
func (s *Shooter) moveEnemies() {
	player := s.Player.Rect()

	for i := len(s.Enemies) - 1; i >= 0; i-- {
		e := &s.Enemies[i]
		e.Y += e.Speed

		if player.Overlaps(e.Rect()) {
			s.endGame(e.X, e.Y)
		}

		if s.hitByBullet(e) {
			s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
			continue
		}

		if e.Y > s.bounds.Height {
			s.Enemies = append(s.Enemies[:i], s.Enemies[i+1:]...)
		}
	}
}

// hitByBullet removes the first bullet whose point lies inside e and scores it
func (s *Shooter) hitByBullet(e *Enemy) bool {
	rect := e.Rect()
	for j := len(s.Bullets) - 1; j >= 0; j-- {
		b := s.Bullets[j]
		if !rect.ContainsPoint(b.X, b.Y) {
			continue
		}
		s.Bullets = append(s.Bullets[:j], s.Bullets[j+1:]...)
		s.score += s.cfg.KillScore
		s.emit(events.EventEnemyDestroyed, e.X+e.Width/2, e.Y+e.Height/2, s.cfg.KillScore)
		return true
	}
	return false
}
