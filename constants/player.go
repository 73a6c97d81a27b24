package constants

import (
	"math"
	"time"
)

// Player Control & Combat
const (
	// PlayerSize is the player radius before scale
	PlayerSize = 20.0

	// PlayerSpeed is movement per axis per update before speed boost
	PlayerSpeed = 5.0

	// PlayerMaxHealth is starting and maximum health
	PlayerMaxHealth = 10

	// PlayerDamageCooldown is the minimum gap between two health decrements
	PlayerDamageCooldown = 1000 * time.Millisecond

	// PlayerBaseShootDelay is the level 1 shoot delay, halved per level
	PlayerBaseShootDelay = 200 * time.Millisecond

	// PlayerMinShootDelay floors the halving progression
	PlayerMinShootDelay = 25 * time.Millisecond
)

// Projectiles
const (
	// BulletSpeed is projectile speed magnitude per frame
	BulletSpeed = 10.0

	// BulletSize is the drawn and collision radius of player bullets
	BulletSize = 3.0

	// BulletDamage is the normal tier damage
	BulletDamage = 1

	// BulletRedDamage is the high tier damage
	BulletRedDamage = 7

	// RedTierLevel is the first level firing high tier bullets
	RedTierLevel = 7

	// FanTierLevel is the first level firing multiple streams
	FanTierLevel = 3

	// FanSpread is the total arc covered by multi-stream fans (60 degrees)
	FanSpread = math.Pi / 3
)

// Health bar
const (
	HealthBarWidth  = 40.0
	HealthBarHeight = 6.0
	HealthBarOffset = 15.0

	// HealthBarGreenRatio and HealthBarOrangeRatio are strict lower bounds
	HealthBarGreenRatio  = 0.6
	HealthBarOrangeRatio = 0.3
)
