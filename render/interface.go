package render

// SystemRenderer is implemented by anything with visual output
type SystemRenderer interface {
	Render(ctx RenderContext, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
