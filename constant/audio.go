package constant

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default linear gain in [0, 1]
	AudioMasterVolume = 0.5
)

// Flip chime (two rising notes)
const (
	FlipNote1Hz       = 659.25
	FlipNote2Hz       = 987.77
	FlipNote1Duration = 70 * time.Millisecond
	FlipNote2Duration = 220 * time.Millisecond
	FlipAttack        = 5 * time.Millisecond
	FlipNote1Release  = 30 * time.Millisecond
	FlipNote2Release  = 160 * time.Millisecond
)

// Crash (noise burst over a low rumble)
const (
	CrashDuration = 450 * time.Millisecond
	CrashAttack   = 5 * time.Millisecond
	CrashRelease  = 380 * time.Millisecond
	CrashRumbleHz = 70.0
)

// Pedal hum (looped while accelerating)
const (
	PedalCycle  = 400 * time.Millisecond
	PedalBaseHz = 90.0
	PedalSwayHz = 30.0
)
