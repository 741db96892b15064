package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream of known length
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack ramp at the start and a release ramp at the end
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain
// math.Log2(0) is -Inf, so zero gain is made silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone returns a sine note of the given length; falls back to the oscillator if the generator rejects the frequency
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, d, WaveSine, rate)
	}
	return beep.Take(rate.N(d), sine)
}

// ===== GAME SOUNDS =====

// CreateFlipSound generates a two-note rising chime for a completed rotation
func CreateFlipSound(rate beep.SampleRate, volume float64) beep.Streamer {
	n1 := NewEnvelope(tone(rate, constant.FlipNote1Hz, constant.FlipNote1Duration),
		constant.FlipNote1Duration, constant.FlipAttack, constant.FlipNote1Release, rate)

	// Octave overtone on the second note
	n2Fund := tone(rate, constant.FlipNote2Hz, constant.FlipNote2Duration)
	n2Over := tone(rate, constant.FlipNote2Hz*2, constant.FlipNote2Duration)
	n2 := NewEnvelope(beep.Mix(newVolume(n2Fund, 0.7), newVolume(n2Over, 0.3)),
		constant.FlipNote2Duration, constant.FlipAttack, constant.FlipNote2Release, rate)

	return newVolume(beep.Seq(n1, n2), volume)
}

// CreateCrashSound generates a noise burst over a low rumble and a sub-octave thud for game over
func CreateCrashSound(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewOscillator(0, constant.CrashDuration, WaveNoise, rate)
	rumble := NewOscillator(constant.CrashRumbleHz, constant.CrashDuration, WaveSaw, rate)
	thud := NewOscillator(constant.CrashRumbleHz/2, constant.CrashDuration, WaveSquare, rate)
	mixed := beep.Mix(newVolume(noise, 0.35), newVolume(rumble, 0.4), newVolume(thud, 0.2))
	shaped := NewEnvelope(mixed, constant.CrashDuration, constant.CrashAttack, constant.CrashRelease, rate)
	return newVolume(shaped, volume)
}

// PedalGenerator produces an endless low hum that sways in pitch with the pedal stroke
type PedalGenerator struct {
	rate   beep.SampleRate
	cycle  int
	pos    int
	phase  float64
	volume float64
}

// NewPedalGenerator creates a pedal hum at the given gain
func NewPedalGenerator(rate beep.SampleRate, volume float64) *PedalGenerator {
	return &PedalGenerator{
		rate:   rate,
		cycle:  rate.N(constant.PedalCycle),
		volume: volume,
	}
}

func (g *PedalGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		stroke := float64(g.pos%g.cycle) / float64(g.cycle)
		freq := constant.PedalBaseHz + constant.PedalSwayHz*math.Sin(2*math.Pi*stroke)

		// Soft pulse once per stroke
		amp := 0.12 * (0.6 + 0.4*math.Sin(2*math.Pi*stroke))
		sample := g.volume * amp * math.Sin(2*math.Pi*g.phase)

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *PedalGenerator) Err() error { return nil }
