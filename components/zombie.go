package components

import "github.com/lixenwraith/arcade/vmath"

// ZombieKind selects size, speed, health and rewards
type ZombieKind uint8

const (
	ZombieNormal ZombieKind = iota
	ZombieBuff
	ZombieGreen
)

// ZombieStats is the per-kind table entry
type ZombieStats struct {
	Size   float64
	Speed  float64
	Health int
	Orbs   int
	Score  int
}

var zombieStats = [...]ZombieStats{
	ZombieNormal: {Size: 15, Speed: 1.5, Health: 2, Orbs: 2, Score: 10},
	ZombieBuff:   {Size: 45, Speed: 1.0, Health: 16, Orbs: 7, Score: 80},
	ZombieGreen:  {Size: 7, Speed: 2.0, Health: 112, Orbs: 4, Score: 10},
}

// StatsFor returns the table entry for kind
func StatsFor(kind ZombieKind) ZombieStats {
	if int(kind) >= len(zombieStats) {
		return zombieStats[ZombieNormal]
	}
	return zombieStats[kind]
}

func (k ZombieKind) String() string {
	switch k {
	case ZombieBuff:
		return "buff"
	case ZombieGreen:
		return "green"
	default:
		return "normal"
	}
}

// Zombie chases the player and dies when health drops to zero
type Zombie struct {
	X, Y      float64
	Kind      ZombieKind
	Size      float64
	Speed     float64
	Health    int
	MaxHealth int
}

// NewZombie creates a zombie of kind at (x, y)
func NewZombie(x, y float64, kind ZombieKind) Zombie {
	st := StatsFor(kind)
	return Zombie{
		X:         x,
		Y:         y,
		Kind:      kind,
		Size:      st.Size,
		Speed:     st.Speed,
		Health:    st.Health,
		MaxHealth: st.Health,
	}
}

// Update steps toward target at Speed
func (z *Zombie) Update(target vmath.Vec2) {
	dir := target.Sub(vmath.Vec2{X: z.X, Y: z.Y})
	if dir.Len() == 0 {
		return
	}
	step := dir.Normalize().Scale(z.Speed)
	z.X += step.X
	z.Y += step.Y
}

// TakeDamage subtracts damage and reports death
func (z *Zombie) TakeDamage(damage int) bool {
	z.Health -= damage
	return z.Health <= 0
}
