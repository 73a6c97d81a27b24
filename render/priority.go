package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityPickups
	PriorityEntities
	PriorityProjectiles
	PriorityPlayer
	PriorityHealthBar
	PriorityUI
	PriorityOverlay
)
