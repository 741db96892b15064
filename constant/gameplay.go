package constant

import "time"

// View and game-over limits, world units
const (
	ScreenWidth  = 1500
	ScreenHeight = 700

	// FallLimit is the bicycle Y beyond which the run ends
	FallLimit = float64(ScreenHeight)

	// CameraCenterY is the fixed vertical centre of the view
	CameraCenterY = 300.0

	// CameraSmoothing is the per-tick fraction of the distance the camera closes on its target
	CameraSmoothing = 0.1
)

// Loop timing
const (
	// TickRate is the fixed simulation and frame rate
	TickRate = 60

	// FrameInterval is the ticker period of the terminal loop
	FrameInterval = time.Second / TickRate

	// EventQueueSize buffers terminal events between poller and loop
	EventQueueSize = 256
)

// Held-key emulation for terminals without key release events
const (
	// HoldInitial covers the OS auto-repeat delay after the first press
	HoldInitial = 550 * time.Millisecond

	// HoldRepeat covers the gap between auto-repeated presses
	HoldRepeat = 150 * time.Millisecond
)
