package symbol

import (
	"math"

	"github.com/lixenwraith/gogo-ame/parameter"
)

// Params are the configuration inputs that shape the generated table
type Params struct {
	MaxLevel           int
	MandalaInnerRadius float64
	MandalaCurveAmount float64
	EnableCapstone     bool
}

var shapeStyle = [3]struct {
	leaf LeafType
	fill FillStyle
}{
	{LeafBoth, FillSolid},
	{LeafLeft, FillSolid},
	{LeafBoth, FillLines},
}

// Generate builds a fresh table; maxLevel <= 0 yields only the special symbols
func Generate(p Params) *Table {
	t := newTable(p.MaxLevel)

	// First pass: all definitions, no recipes
	for level := 1; level <= p.MaxLevel; level++ {
		for i, shape := range NormalShapes {
			key := Key{Level: level, Shape: shape}
			effects := make([]int, level)
			for l := range effects {
				effects[l] = l + 1
			}
			t.add(Definition{
				ID:                    key.ID(),
				Key:                   key,
				Level:                 level,
				Class:                 ClassNormal,
				SizeMultiplier:        1.0,
				EliminationPoints:     10 * int(math.Pow(3, float64(level-1))),
				ExplosionRadiusUnits:  1.5 + 0.4*float64(level),
				ExplosionEffectLevels: effects,
			}, Mandala{
				NumPoints:     level + 2,
				InnerRadius:   p.MandalaInnerRadius,
				SpikeDistance: 0.8,
				CurveAmount:   p.MandalaCurveAmount,
				Leaf:          shapeStyle[i].leaf,
				Fill:          shapeStyle[i].fill,
				Metallic:      level >= parameter.MetallicLevel,
			})
		}

		wk := Key{Level: level, Shape: ShapeWildcard}
		t.add(Definition{
			ID:             wk.ID(),
			Key:            wk,
			Level:          level,
			Class:          ClassWildcard,
			SizeMultiplier: 1.0,
		}, Mandala{
			NumPoints:     level + 2,
			InnerRadius:   1.0,
			SpikeDistance: -0.5,
			CurveAmount:   0.35,
			Leaf:          LeafBoth,
			Fill:          FillLines,
			Wildcard:      true,
		})
	}

	// Second pass: level L+1 shape i is made from the other two shapes at L
	for level := 1; level < p.MaxLevel; level++ {
		for i, shape := range NormalShapes {
			a := Key{Level: level, Shape: NormalShapes[(i+1)%3]}.ID()
			b := Key{Level: level, Shape: NormalShapes[(i+2)%3]}.ID()
			t.setRecipe(Key{Level: level + 1, Shape: shape}.ID(), a, b)
		}
	}

	t.add(Definition{
		ID:                   VoidID,
		Key:                  Key{Level: 1, Shape: ShapeVoid},
		Level:                1,
		Class:                ClassVoid,
		SizeMultiplier:       1.0,
		EliminationPoints:    5,
		ExplosionRadiusUnits: 1.2,
	}, Mandala{
		NumPoints:     12,
		InnerRadius:   0.1,
		SpikeDistance: 0.7,
		CurveAmount:   0.35,
		Leaf:          LeafLeft,
		Fill:          FillSolid,
		Metallic:      true,
	})

	t.add(Definition{
		ID:             LifeID,
		Key:            Key{Level: 1, Shape: ShapeLife},
		Level:          1,
		Class:          ClassLife,
		SizeMultiplier: 1.0,
	}, Mandala{
		NumPoints:     3,
		InnerRadius:   0.2,
		SpikeDistance: 0.7,
		CurveAmount:   0.6,
		Leaf:          LeafBoth,
		Fill:          FillSolid,
	})

	if p.EnableCapstone {
		t.add(Definition{
			ID:             CapstoneID,
			Key:            Key{Level: parameter.CapstoneLevel, Shape: ShapeCapstone},
			Level:          parameter.CapstoneLevel,
			Class:          ClassCapstone,
			SizeMultiplier: 1.0,
		}, Mandala{
			NumPoints:     28,
			SpikeDistance: 0.9,
			CurveAmount:   0.35,
			Leaf:          LeafBoth,
			Fill:          FillLines,
		})
	}

	t.finish()
	return t
}
