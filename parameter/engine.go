package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the update and render interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps one step after a stall so physics never tunnels
	MaxFrameDelta = 0.1

	// EventQueueSize buffers terminal events between the poll goroutine and the loop
	EventQueueSize = 64
)

// Terminal key hold emulation
// Terminals report presses and auto-repeats but never releases
const (
	// KeyHoldInitial covers the delay before the first auto-repeat
	KeyHoldInitial = 550 * time.Millisecond

	// KeyHoldRepeat covers the gap between auto-repeats
	KeyHoldRepeat = 120 * time.Millisecond
)
