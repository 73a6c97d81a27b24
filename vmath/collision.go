package vmath

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Overlaps is the strict AABB test: touching edges do not collide
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// ContainsPoint is the strict point-in-rectangle test: points on the border are outside
func (r Rect) ContainsPoint(x, y float64) bool {
	return x > r.X &&
		x < r.X+r.W &&
		y > r.Y &&
		y < r.Y+r.H
}

// CirclesOverlap reports whether two circles intersect (strict)
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}
