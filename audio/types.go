package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundShoot   SoundType = iota // Player fired
	SoundDeath                    // Enemy destroyed, zombie killed, game over
	SoundClick                    // Restart and UI toggles
	SoundLevelUp                  // Arena level advanced
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundShoot:   "shoot",
	SoundDeath:   "death",
	SoundClick:   "click",
	SoundLevelUp: "levelup",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a sound name back to its type
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// ErrAudioDisabled is returned by Initialize when the config turns audio off
var ErrAudioDisabled = errors.New("audio disabled")
