package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the simulation/render frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// MaxParticles caps live cosmetic particles, oldest dropped first
	MaxParticles = 4000

	// InitialBallCapacity presizes the live token list
	InitialBallCapacity = 64
)

// Config Reload
const (
	// ConfigReloadDebounce coalesces editor write bursts into one reload
	ConfigReloadDebounce = 100 * time.Millisecond
)

// Debug Log Rotation
const (
	LogDir        = "logs"
	LogFileName   = "ame.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 7
)

// Batch Simulation
const (
	// SimFrameStep is the fixed game-time step of headless runs
	SimFrameStep = FrameUpdateInterval

	// SimMaxDuration caps one headless run in game time
	SimMaxDuration = 10 * time.Minute
)
