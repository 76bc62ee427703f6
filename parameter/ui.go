package parameter

import "time"

// Layout
const (
	// HUDRows is the status area below the field
	HUDRows = 1

	// MinFieldRows and MinFieldCols below which the field is not drawn
	MinFieldRows = 4
	MinFieldCols = 10
)

// Glyphs
const (
	GlyphVoid      = '◉'
	GlyphLife      = '♥'
	GlyphWildcard  = '✱'
	GlyphCapstone  = '✿'
	GlyphTrail     = '·'
	GlyphWind      = '~'
	GlyphWindDim   = '-'
	GlyphDebris    = '.'
	GlyphConstruct = '+'
	GlyphExplosion = '*'
	GlyphCelebrate = '✦'
	GlyphSnap      = 'x'
)

// TrailStride draws every nth trail point
const TrailStride = 4

// ParticleDimFade is the fade below which particles render dim
const ParticleDimFade = 0.35

// StatusMessageTimeout is how long a HUD message stays up
const StatusMessageTimeout = 2 * time.Second
