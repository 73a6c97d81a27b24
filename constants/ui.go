package constants

// Text shown by both games
const (
	TextGameOver   = "GAME OVER"
	TextScore      = "Score: %d"
	TextFinalScore = "Final Score: %d"
	TextRestart    = "Press R to restart"
	TextPaused     = "PAUSED"
	TextResume     = "Press P to Resume"
	TextLevel      = "Lv. %d"
	TextOrbs       = "Orbs: %d/%d"
)

// Overlay shading
const (
	// PauseDimFactor scales playfield colors while paused
	PauseDimFactor = 0.5

	// OverlayPanelAlpha blends gray over black behind overlay text
	OverlayPanelAlpha  = 0.35
	OverlayPanelWidth  = 360.0
	OverlayPanelHeight = 160.0
)

// Text sizes in world units
const (
	TextSizeHUD      = 20.0
	TextSizeTitle    = 48.0
	TextSizeSubtitle = 24.0
)
