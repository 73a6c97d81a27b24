package constants

// Space-Shooter
const (
	ShooterPlayerWidth   = 50.0
	ShooterPlayerHeight  = 30.0
	ShooterPlayerSpeed   = 5.0
	ShooterPlayerYOffset = 50.0

	ShooterBulletSpeed = 7.0
	ShooterBulletSize  = 5.0
	ShooterMaxBullets  = 5

	ShooterEnemyWidth  = 40.0
	ShooterEnemyHeight = 30.0
	ShooterEnemySpeed  = 2.0
	ShooterMaxEnemies  = 5

	// ShooterSpawnChance is the per-update enemy spawn probability
	ShooterSpawnChance = 0.02

	// ShooterKillScore is awarded per destroyed enemy
	ShooterKillScore = 10
)
