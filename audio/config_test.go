package audio

import (
	"testing"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}

	for st := SoundType(0); st < soundTypeCount; st++ {
		if _, ok := cfg.EffectVolumes[st]; !ok {
			t.Errorf("Expected volume for sound %s to be set", st)
		}
	}
}

// TestLoadAudioConfigDefaults verifies loading with no env vars
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "")
	t.Setenv(EnvMasterVolume, "")
	t.Setenv(EnvSFXVolumes, "")
	t.Setenv(EnvSampleRate, "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled || cfg.MasterVolume != def.MasterVolume || cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadAudioConfigFromEnv verifies env var overrides
func TestLoadAudioConfigFromEnv(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvMasterVolume, "80")
	t.Setenv(EnvSFXVolumes, `{"shoot":0.1,"levelup":0.9,"bogus":1}`)
	t.Setenv(EnvSampleRate, "48000")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false")
	}
	if cfg.MasterVolume != 0.8 {
		t.Errorf("Expected master volume 0.8, got %f", cfg.MasterVolume)
	}
	if cfg.EffectVolumes[SoundShoot] != 0.1 {
		t.Errorf("Expected shoot volume 0.1, got %f", cfg.EffectVolumes[SoundShoot])
	}
	if cfg.EffectVolumes[SoundLevelUp] != 0.9 {
		t.Errorf("Expected levelup volume 0.9, got %f", cfg.EffectVolumes[SoundLevelUp])
	}
	if cfg.EffectVolumes[SoundDeath] != 0.6 {
		t.Errorf("Expected untouched death volume 0.6, got %f", cfg.EffectVolumes[SoundDeath])
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfigInvalid verifies malformed values are ignored or clamped
func TestLoadAudioConfigInvalid(t *testing.T) {
	t.Setenv(EnvAudioEnabled, "maybe")
	t.Setenv(EnvMasterVolume, "250")
	t.Setenv(EnvSFXVolumes, "{not json")
	t.Setenv(EnvSampleRate, "-1")

	cfg := LoadAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected invalid bool to keep default Enabled=true")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected master volume clamped to 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate, got %d", cfg.SampleRate)
	}
}

// TestSoundTypeNames verifies name round trip
func TestSoundTypeNames(t *testing.T) {
	for st := SoundType(0); st < soundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("Round trip failed for %s", st)
		}
	}
	if SoundType(42).String() != "unknown" {
		t.Errorf("Expected unknown name, got %s", SoundType(42))
	}
	if _, ok := ParseSoundType("kazoo"); ok {
		t.Error("Expected parse failure for unknown name")
	}
}
