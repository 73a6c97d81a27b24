package constants

import "time"

// Screen bounds shared by both games (world units)
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Game Loop Timing Constants
const (
	// FPS is the simulation and render rate
	FPS = 60

	// FrameUpdateInterval is the frame interval (~60 FPS)
	FrameUpdateInterval = time.Second / FPS
)
