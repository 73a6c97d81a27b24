package components

import (
	"math"
	"time"

	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/core"
	"github.com/lixenwraith/arcade/input"
	"github.com/lixenwraith/arcade/vmath"
)

// PlayerConfig holds player tuning, overridable from the tuning file
type PlayerConfig struct {
	Size           float64       `yaml:"size"`
	Speed          float64       `yaml:"speed"`
	MaxHealth      int           `yaml:"max_health"`
	DamageCooldown time.Duration `yaml:"damage_cooldown"`
	BaseShootDelay time.Duration `yaml:"base_shoot_delay"`
	MinShootDelay  time.Duration `yaml:"min_shoot_delay"`
	BulletSpeed    float64       `yaml:"bullet_speed"`
}

// DefaultPlayerConfig returns the stock tuning
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		Size:           constants.PlayerSize,
		Speed:          constants.PlayerSpeed,
		MaxHealth:      constants.PlayerMaxHealth,
		DamageCooldown: constants.PlayerDamageCooldown,
		BaseShootDelay: constants.PlayerBaseShootDelay,
		MinShootDelay:  constants.PlayerMinShootDelay,
		BulletSpeed:    constants.BulletSpeed,
	}
}

// Player is the zombie-arena player: position, health and two independent cooldowns.
// There is no state enum; damage and shooting are gated only by their timestamps
type Player struct {
	X, Y       float64
	Size       float64
	Scale      float64
	Speed      float64
	SpeedBoost float64
	Color      core.RGB

	Health         int
	MaxHealth      int
	LastDamageTime time.Time
	DamageCooldown time.Duration

	LastShot       time.Time
	BaseShootDelay time.Duration
	MinShootDelay  time.Duration
	ShootDelay     time.Duration
	BulletSpeed    float64

	// Bounds are the read-only screen dimensions used for clamping
	Bounds vmath.Size
}

// NewPlayer creates a level 1 player at (x, y) inside bounds
func NewPlayer(x, y float64, bounds vmath.Size, cfg PlayerConfig) *Player {
	return &Player{
		X:              x,
		Y:              y,
		Size:           cfg.Size,
		Scale:          1,
		Speed:          cfg.Speed,
		SpeedBoost:     1,
		Color:          core.RGBWhite,
		Health:         cfg.MaxHealth,
		MaxHealth:      cfg.MaxHealth,
		DamageCooldown: cfg.DamageCooldown,
		BaseShootDelay: cfg.BaseShootDelay,
		MinShootDelay:  cfg.MinShootDelay,
		ShootDelay:     cfg.BaseShootDelay,
		BulletSpeed:    cfg.BulletSpeed,
		Bounds:         bounds,
	}
}

// ShootDelayForLevel halves base per level above 1, floored at min
func ShootDelayForLevel(base, min time.Duration, level int) time.Duration {
	delay := time.Duration(float64(base) / math.Pow(2, float64(level-1)))
	if delay < min {
		return min
	}
	return delay
}

// UpdateShootSpeed recomputes the shoot delay for level
func (p *Player) UpdateShootSpeed(level int) {
	p.ShootDelay = ShootDelayForLevel(p.BaseShootDelay, p.MinShootDelay, level)
}

// Radius is the scaled collision and draw radius
func (p *Player) Radius() float64 {
	return p.Size * p.Scale
}

// Update moves by speed×boost per held axis and clamps inside bounds.
// Diagonal movement is intentionally not normalized
func (p *Player) Update(keys input.KeyState) {
	boost := p.SpeedBoost
	if boost == 0 {
		boost = 1
	}
	step := p.Speed * boost

	if keys.Up() {
		p.Y -= step
	}
	if keys.Down() {
		p.Y += step
	}
	if keys.Left() {
		p.X -= step
	}
	if keys.Right() {
		p.X += step
	}

	r := p.Radius()
	p.X = vmath.Clamp(p.X, r, p.Bounds.Width-r)
	p.Y = vmath.Clamp(p.Y, r, p.Bounds.Height-r)
}

// ShootReady reports whether the shoot cooldown has elapsed at now
func (p *Player) ShootReady(now time.Time) bool {
	return now.Sub(p.LastShot) > p.ShootDelay
}

// DamageReady reports whether the damage cooldown has elapsed at now
func (p *Player) DamageReady(now time.Time) bool {
	return now.Sub(p.LastDamageTime) > p.DamageCooldown
}

// StreamsForLevel returns projectile count and damage tier for level
func StreamsForLevel(level int) (streams int, damage int, red bool) {
	switch {
	case level >= constants.RedTierLevel:
		return level - (constants.RedTierLevel - 1), constants.BulletRedDamage, true
	case level < constants.FanTierLevel:
		return 1, constants.BulletDamage, false
	default:
		return level, constants.BulletDamage, false
	}
}

// FanAngles spreads streams evenly across FanSpread centered on base
func FanAngles(base float64, streams int) []float64 {
	if streams <= 0 {
		return nil
	}
	if streams == 1 {
		return []float64{base}
	}
	start := base - constants.FanSpread/2
	step := constants.FanSpread / float64(streams-1)
	angles := make([]float64, streams)
	for i := range angles {
		angles[i] = start + float64(i)*step
	}
	return angles
}

// Shoot fires a fan toward target when the cooldown allows.
// A target on the player fires nothing but still consumes the cooldown
func (p *Player) Shoot(target vmath.Vec2, now time.Time, level int) []Bullet {
	if !p.ShootReady(now) {
		return nil
	}
	p.LastShot = now

	dir := target.Sub(vmath.Vec2{X: p.X, Y: p.Y})
	if dir.Len() == 0 {
		return []Bullet{}
	}

	streams, damage, red := StreamsForLevel(level)
	angles := FanAngles(vmath.AngleTo(p.X, p.Y, target.X, target.Y), streams)
	bullets := make([]Bullet, 0, len(angles))
	for _, a := range angles {
		bullets = append(bullets, NewBullet(p.X, p.Y, vmath.FromAngle(a, p.BulletSpeed), damage, red))
	}
	return bullets
}

// TakeDamage removes one health point when the damage cooldown allows.
// Returns true when the hit leaves the player dead
func (p *Player) TakeDamage(now time.Time) bool {
	if !p.DamageReady(now) {
		return false
	}
	p.Health--
	p.LastDamageTime = now
	return p.Health <= 0
}

// HealthRatio is health/maxHealth clamped to [0, 1]
func (p *Player) HealthRatio() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return vmath.Clamp(float64(p.Health)/float64(p.MaxHealth), 0, 1)
}
