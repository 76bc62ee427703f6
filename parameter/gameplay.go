package parameter

// Playfield
const (
	DefaultFieldWidth  = 800.0
	DefaultFieldHeight = 600.0
)

// Symbols
const (
	// DefaultMaxSymbolLevel is the highest generated recipe level
	DefaultMaxSymbolLevel = 10

	// CapstoneLevel is the reserved level of the single capstone symbol
	CapstoneLevel = 32

	// MetallicLevel is the first level drawn with a metallic mandala
	MetallicLevel = 7

	DefaultMandalaInnerRadius = 0.0
	DefaultMandalaCurveAmount = 0.35
)

// Spawning
const (
	DefaultBallCreationIntervalMs = 800
	DefaultVoidSpawnRate          = 0.25
	DefaultLifeSpawnRate          = 0.0
)

// Lives & Scoring
const (
	DefaultInitialLives       = 3
	DefaultMaxLives           = 5
	DefaultMinLevelToLoseLife = 1

	// InitialHighestLevel is the high-water mark at game start
	InitialHighestLevel = 1

	// ComboScoreMinLevel is the lowest combined level that awards level² points
	ComboScoreMinLevel = 3
)

// Trails
const (
	DefaultBallTrailLength = 120
)
