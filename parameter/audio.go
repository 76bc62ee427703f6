package parameter

import "time"

// Audio output
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMaxVoices caps concurrently playing cues; extra cues are dropped
	AudioMaxVoices = 12

	// MinCueGap suppresses repeats of the same cue inside the window
	MinCueGap = 40 * time.Millisecond

	// AudioNoiseSeed keeps noise cues reproducible
	AudioNoiseSeed = 0x5eed
)

// Shared envelope
const (
	CueAttack  = 4 * time.Millisecond
	CueRelease = 40 * time.Millisecond
)

// Combine chime, pitch rises a whole tone per level
const (
	CombineNoteDuration = 90 * time.Millisecond
	CombineBaseFreq     = 392.0 // G4
)

// Eliminate burst
const (
	EliminateDuration = 220 * time.Millisecond
	EliminateRelease  = 180 * time.Millisecond
)

// Degrade slide
const (
	DegradeDuration = 160 * time.Millisecond
	DegradeFreq     = 220.0
)

// Destroy thud
const (
	DestroyDuration = 140 * time.Millisecond
	DestroyFreq     = 90.0
)

// Bounce tick
const (
	BounceDuration = 25 * time.Millisecond
	BounceFreq     = 1200.0
	BounceVolume   = 0.25
)

// Life cues
const (
	LifeNoteDuration = 120 * time.Millisecond
	LifeHighFreq     = 659.25 // E5
	LifeLowFreq      = 329.63 // E4
)

// Level-up bell
const (
	LevelBellDuration = 500 * time.Millisecond
	LevelBellRelease  = 450 * time.Millisecond
	LevelBellFreq     = 880.0
)

// Wind snap whoosh
const (
	SnapDuration = 120 * time.Millisecond
	SnapAttack   = 60 * time.Millisecond
	SnapRelease  = 60 * time.Millisecond
)

// Game over descent
const (
	GameOverNoteDuration = 220 * time.Millisecond
	GameOverBaseFreq     = 392.0
)
