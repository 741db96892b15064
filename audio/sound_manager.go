package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/flip-rider/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// SoundManager plays the game's sound cues through the speaker
// Every method is safe to call before Initialize or after a failed Initialize; they do nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	pedal       *beep.Ctrl
	volume      float64
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager with a linear master volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return err
	}

	sm.pedal = &beep.Ctrl{Streamer: NewPedalGenerator(sampleRate, sm.volume), Paused: true}
	sm.mixer.Add(sm.pedal)
	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("Audio initialized at %d Hz", sampleRate)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.pedal.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// SetMuted silences or restores all cues
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
	if muted && sm.initialized {
		speaker.Lock()
		sm.pedal.Paused = true
		speaker.Unlock()
	}
}

// ToggleMute flips the mute state and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	muted := !sm.muted
	sm.mu.Unlock()

	sm.SetMuted(muted)
	return muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayFlip plays the rotation chime
func (sm *SoundManager) PlayFlip() {
	sm.play(func() beep.Streamer { return CreateFlipSound(sampleRate, sm.volume) })
}

// PlayCrash plays the game over crash
func (sm *SoundManager) PlayCrash() {
	sm.play(func() beep.Streamer { return CreateCrashSound(sampleRate, sm.volume) })
}

// StartPedal resumes the looping pedal hum
func (sm *SoundManager) StartPedal() {
	sm.setPedal(true)
}

// StopPedal pauses the pedal hum
func (sm *SoundManager) StopPedal() {
	sm.setPedal(false)
}

func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := build()
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) setPedal(on bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || (on && sm.muted) {
		return
	}

	speaker.Lock()
	sm.pedal.Paused = !on
	speaker.Unlock()
}
