package components

import (
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/vmath"
)

// Orb is experience dropped by dead zombies
type Orb struct {
	X, Y float64
}

// Update pulls the orb toward target inside magnet range.
// Returns true when target is inside collection range
func (o *Orb) Update(target vmath.Vec2) bool {
	dir := target.Sub(vmath.Vec2{X: o.X, Y: o.Y})
	dist := dir.Len()

	switch {
	case dist < constants.OrbCollectionRange:
		return true
	case dist < constants.OrbMagnetRange:
		step := dir.Normalize().Scale(constants.OrbMagnetSpeed)
		o.X += step.X
		o.Y += step.Y
	}
	return false
}
