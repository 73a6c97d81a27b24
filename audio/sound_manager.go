package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/arcade/constants"
	"github.com/lixenwraith/arcade/events"
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       atomic.Bool
}

// NewSoundManager creates a new sound manager; nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Config returns the active audio configuration
func (sm *SoundManager) Config() *AudioConfig {
	return sm.config
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// IsInitialized reports whether the speaker is running
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()

	sm.initialized = false
}

// Play mixes in a one-shot effect; no-op when muted or uninitialized
func (sm *SoundManager) Play(st SoundType) {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.config)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// SetMuted silences or restores playback; muting drops queued effects
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
	if !muted {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		sm.mixer.Clear()
		speaker.Unlock()
	}
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.SetMuted(muted)
	return muted
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// eventSounds maps game events to their effect
var eventSounds = map[events.EventType]SoundType{
	events.EventShotFired:      SoundShoot,
	events.EventEnemyDestroyed: SoundDeath,
	events.EventZombieKilled:   SoundDeath,
	events.EventGameOver:       SoundDeath,
	events.EventLevelUp:        SoundLevelUp,
	events.EventRestart:        SoundClick,
}

// SoundFor returns the effect bound to an event type
func SoundFor(t events.EventType) (SoundType, bool) {
	st, ok := eventSounds[t]
	return st, ok
}

// player is the playback surface SoundHandler drives
type player interface {
	Play(st SoundType)
}

// SoundHandler plays effects for routed game events
type SoundHandler[T any] struct {
	sounds player
}

// NewSoundHandler binds a handler to any Play-capable sink
func NewSoundHandler[T any](sounds player) *SoundHandler[T] {
	return &SoundHandler[T]{sounds: sounds}
}

func (h *SoundHandler[T]) EventTypes() []events.EventType {
	types := make([]events.EventType, 0, len(eventSounds))
	for t := range eventSounds {
		types = append(types, t)
	}
	return types
}

func (h *SoundHandler[T]) HandleEvent(_ T, ev events.GameEvent) {
	if st, ok := eventSounds[ev.Type]; ok {
		h.sounds.Play(st)
	}
}
