package audio

import (
	"errors"
	"testing"

	"github.com/lixenwraith/arcade/events"
)

// TestSoundManagerUninitialized verifies calls are safe without a speaker
func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.IsInitialized() {
		t.Error("Expected manager to start uninitialized")
	}

	// None of these may panic
	sm.Play(SoundShoot)
	sm.Play(SoundType(99))
	sm.Cleanup()

	if sm.Config() == nil {
		t.Error("Expected default config")
	}
}

// TestSoundManagerDisabled verifies Initialize refuses when audio is off
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
	if sm.IsInitialized() {
		t.Error("Expected manager to stay uninitialized")
	}
}

// TestSoundManagerMute verifies mute toggling
func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.IsMuted() {
		t.Error("Expected unmuted by default")
	}
	if !sm.ToggleMute() || !sm.IsMuted() {
		t.Error("Expected muted after toggle")
	}
	if sm.ToggleMute() || sm.IsMuted() {
		t.Error("Expected unmuted after second toggle")
	}

	sm.SetMuted(true)
	sm.Play(SoundDeath)
	if !sm.IsMuted() {
		t.Error("Expected SetMuted(true) to stick")
	}
}

type playLog struct {
	played []SoundType
}

func (p *playLog) Play(st SoundType) { p.played = append(p.played, st) }

// TestSoundHandlerRouting verifies events reach the mapped effect
func TestSoundHandlerRouting(t *testing.T) {
	q := events.NewEventQueue()
	router := events.NewRouter[struct{}](q)
	log := &playLog{}
	router.Register(NewSoundHandler[struct{}](log))

	q.Push(events.GameEvent{Type: events.EventShotFired})
	q.Push(events.GameEvent{Type: events.EventPlayerHit})
	q.Push(events.GameEvent{Type: events.EventZombieKilled})
	q.Push(events.GameEvent{Type: events.EventLevelUp})
	q.Push(events.GameEvent{Type: events.EventRestart})

	if n := router.DispatchAll(struct{}{}); n != 5 {
		t.Fatalf("Expected 5 events consumed, got %d", n)
	}

	want := []SoundType{SoundShoot, SoundDeath, SoundLevelUp, SoundClick}
	if len(log.played) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log.played)
	}
	for i := range want {
		if log.played[i] != want[i] {
			t.Errorf("Play %d: expected %s, got %s", i, want[i], log.played[i])
		}
	}
}

// TestSoundFor verifies the event mapping table
func TestSoundFor(t *testing.T) {
	if st, ok := SoundFor(events.EventEnemyDestroyed); !ok || st != SoundDeath {
		t.Errorf("Expected death for enemy destroyed, got %s ok=%v", st, ok)
	}
	if _, ok := SoundFor(events.EventOrbCollected); ok {
		t.Error("Expected no sound for orb collected")
	}
}
