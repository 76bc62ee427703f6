package symbol

// Definition is an immutable generated symbol
type Definition struct {
	ID    ID
	Key   Key
	Level int
	Class Class

	recipe    [2]ID
	hasRecipe bool

	SizeMultiplier        float64
	EliminationPoints     int
	ExplosionRadiusUnits  float64
	ExplosionEffectLevels []int
}

// Recipe returns the unordered ingredient pair, ok false for base and special symbols
func (d Definition) Recipe() (a, b ID, ok bool) {
	return d.recipe[0], d.recipe[1], d.hasRecipe
}

func (d Definition) HasRecipe() bool { return d.hasRecipe }

func (d Definition) IsWildcard() bool { return d.Class == ClassWildcard }
func (d Definition) IsVoid() bool     { return d.Class == ClassVoid }
func (d Definition) IsLife() bool     { return d.Class == ClassLife }

// Explodes reports whether level is in the explosion effect set
func (d Definition) Explodes(level int) bool {
	for _, l := range d.ExplosionEffectLevels {
		if l == level {
			return true
		}
	}
	return false
}

// LeafType selects which sides of a mandala petal are drawn
type LeafType uint8

const (
	LeafBoth LeafType = iota
	LeafLeft
)

// FillStyle selects mandala petal fill
type FillStyle uint8

const (
	FillSolid FillStyle = iota
	FillLines
)

// Mandala is the visual descriptor paired with a definition
// Radii and distances are fractions of the token radius
type Mandala struct {
	NumPoints     int
	InnerRadius   float64
	SpikeDistance float64
	CurveAmount   float64
	Leaf          LeafType
	Fill          FillStyle
	Metallic      bool
	Wildcard      bool
}
