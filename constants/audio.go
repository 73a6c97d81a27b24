package constants

import "time"

// Sound effect envelopes
const (
	ShootSoundDuration = 150 * time.Millisecond
	ShootSoundAttack   = 10 * time.Millisecond
	ShootSoundRelease  = 120 * time.Millisecond

	DeathSoundDuration = 300 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 240 * time.Millisecond

	ClickSoundDuration = 200 * time.Millisecond
	ClickSoundAttack   = 10 * time.Millisecond
	ClickSoundRelease  = 170 * time.Millisecond

	LevelUpNoteDuration = 120 * time.Millisecond
	LevelUpNoteAttack   = 5 * time.Millisecond
	LevelUpNoteRelease  = 80 * time.Millisecond

	ShootSweepDuration = 120 * time.Millisecond
	DeathSweepDuration = 250 * time.Millisecond

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)
