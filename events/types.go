package events

// EventType represents the type of game event
type EventType int

const (
	// EventShotFired signals one or more bullets left the player
	// Trigger: Shooter.Shoot, Arena fire | Value: bullets spawned
	EventShotFired EventType = iota

	// EventEnemyDestroyed signals a space-shooter enemy was hit
	// Trigger: Shooter.Update | Value: score awarded
	EventEnemyDestroyed

	// EventZombieKilled signals a zombie reached zero health
	// Trigger: Arena collisions | Value: score awarded
	EventZombieKilled

	// EventPlayerHit signals damage accepted past the cooldown
	// Value: remaining health
	EventPlayerHit

	// EventOrbCollected signals an orb reached the player | Value: orbs collected this level
	EventOrbCollected

	// EventLevelUp signals the arena level advanced | Value: new level
	EventLevelUp

	// EventGameOver signals the session ended | Value: final score
	EventGameOver

	// EventRestart signals a session reset requested by the host
	EventRestart
)

var eventTypeNames = map[EventType]string{
	EventShotFired:      "shot_fired",
	EventEnemyDestroyed: "enemy_destroyed",
	EventZombieKilled:   "zombie_killed",
	EventPlayerHit:      "player_hit",
	EventOrbCollected:   "orb_collected",
	EventLevelUp:        "level_up",
	EventGameOver:       "game_over",
	EventRestart:        "restart",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single simulation occurrence with its world position
type GameEvent struct {
	Type  EventType
	X, Y  float64
	Value int
}
