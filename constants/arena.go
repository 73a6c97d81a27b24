package constants

import "time"

// Zombie Arena progression
const (
	ArenaStartLevel      = 1
	ArenaOrbsPerLevel    = 10
	ArenaSpawnDelay      = 2000 * time.Millisecond
	ArenaSpawnDelayStep  = 50 * time.Millisecond
	ArenaMinSpawnDelay   = 500 * time.Millisecond
	ArenaSpawnEdgeOffset = 20.0

	// ArenaBuffEvery spawns a buff zombie every N spawns below ArenaBuffLevel
	ArenaBuffEvery = 5

	// ArenaBuffLevel switches regular spawns to buff zombies
	ArenaBuffLevel = 5

	// ArenaGreenEvery spawns a green zombie every N spawns between buff and green levels
	ArenaGreenEvery = 15

	// ArenaGreenLevel switches regular spawns to green zombies
	ArenaGreenLevel = 10
)

// Orbs
const (
	OrbSize            = 5.0
	OrbCollectionRange = 20.0
	OrbMagnetRange     = 80.0
	OrbMagnetSpeed     = 6.0
	OrbScatter         = 30.0
)

// Late-game spawn acceleration
const (
	ArenaFastSpawnLevel = 30
	ArenaFastSpawnFloor = 250 * time.Millisecond
)
