package components

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Bullet is a player projectile moving at constant velocity
type Bullet struct {
	X, Y   float64
	DX, DY float64
	Size   float64
	Damage int
	Red    bool
}

// NewBullet creates a projectile at (x, y) with velocity v
func NewBullet(x, y float64, v vmath.Vec2, damage int, red bool) Bullet {
	return Bullet{
		X:      x,
		Y:      y,
		DX:     v.X,
		DY:     v.Y,
		Size:   constants.BulletSize,
		Damage: damage,
		Red:    red,
	}
}

// Update advances one frame
func (b *Bullet) Update() {
	b.X += b.DX
	b.Y += b.DY
}

// OffScreen reports whether the center left the bounds
func (b *Bullet) OffScreen(bounds vmath.Size) bool {
	return !bounds.Contains(b.X, b.Y)
}
