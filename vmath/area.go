package vmath

// Size holds screen or world dimensions
type Size struct {
	Width, Height float64
}

// Center returns the midpoint of the area
func (s Size) Center() Vec2 {
	return Vec2{s.Width / 2, s.Height / 2}
}

// Contains reports whether point lies inside [0,Width]x[0,Height]
func (s Size) Contains(x, y float64) bool {
	return x >= 0 && x <= s.Width && y >= 0 && y <= s.Height
}
