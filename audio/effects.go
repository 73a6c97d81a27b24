package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/arcade/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// oscillator generates a wave whose frequency glides exponentially from
// startFreq to endFreq over sweep samples, then holds endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	sweep     int
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end Hz over sweep
func NewSweep(start, end float64, sweep, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: start,
		endFreq:   end,
		sweep:     rate.N(sweep),
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

// freqAt returns the instantaneous frequency at the current position
func (o *oscillator) freqAt() float64 {
	if o.startFreq == o.endFreq || o.sweep <= 0 || o.startFreq <= 0 || o.endFreq <= 0 {
		return o.endFreq
	}
	progress := min(float64(o.position)/float64(o.sweep), 1)
	return o.startFreq * math.Pow(o.endFreq/o.startFreq, progress)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := waveSample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freqAt() / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack, flat sustain, linear release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.attackSamples + e.sustainSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; math.Log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateShootSound generates a short square chirp falling 1200 to 600 Hz
func CreateShootSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(1200, 600, constants.ShootSweepDuration, constants.ShootSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.ShootSoundDuration, constants.ShootSoundAttack, constants.ShootSoundRelease, rate)

	return newVolume(shaped, cfg.volumeFor(SoundShoot))
}

// CreateDeathSound generates a sawtooth groan falling 600 to 200 Hz
func CreateDeathSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(600, 200, constants.DeathSweepDuration, constants.DeathSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, constants.DeathSoundDuration, constants.DeathSoundAttack, constants.DeathSoundRelease, rate)

	return newVolume(shaped, cfg.volumeFor(SoundDeath))
}

// CreateClickSound generates a 900 Hz sine blip
func CreateClickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(900, constants.ClickSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, constants.ClickSoundDuration, constants.ClickSoundAttack, constants.ClickSoundRelease, rate)

	return newVolume(shaped, cfg.volumeFor(SoundClick))
}

// CreateLevelUpSound generates a rising C-E-G arpeggio
func CreateLevelUpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{523.25, 659.25, 783.99}
	seq := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, constants.LevelUpNoteDuration, WaveSine, rate)
		seq = append(seq, NewEnvelope(osc, constants.LevelUpNoteDuration, constants.LevelUpNoteAttack, constants.LevelUpNoteRelease, rate))
	}

	return newVolume(beep.Seq(seq...), cfg.volumeFor(SoundLevelUp))
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundShoot:
		return CreateShootSound(cfg)
	case SoundDeath:
		return CreateDeathSound(cfg)
	case SoundClick:
		return CreateClickSound(cfg)
	case SoundLevelUp:
		return CreateLevelUpSound(cfg)
	default:
		return nil
	}
}
