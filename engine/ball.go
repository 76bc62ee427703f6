package engine

import (
	"time"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// RadiusFor returns the radius a new token of def gets, floored at MinBallRadius
// Void radius is randomized between the configured multipliers when variable size is on
func (w *World) RadiusFor(def symbol.Definition) float64 {
	cfg := w.Config
	r := cfg.BaseBallRadius * def.SizeMultiplier

	if def.IsVoid() {
		if cfg.EnableVariableVoidSize {
			r *= vmath.RandRange(w.Rand, cfg.VoidSizeMultiplierMin, cfg.VoidSizeMultiplierMax)
		} else {
			r *= cfg.VoidBallRadiusMultiplier
		}
	} else {
		r *= 1 + float64(def.Level-1)*cfg.SizeIncreasePerLevel
	}
	return max(r, parameter.MinBallRadius)
}

// NewBall builds an unlinked token of symbol id at pos; false when id is unknown
func (w *World) NewBall(id symbol.ID, pos vmath.Vec2, now time.Time) (*component.Ball, bool) {
	def, ok := w.Table().Lookup(id)
	if !ok {
		return nil, false
	}
	b := &component.Ball{
		ID:        w.State.NextID(),
		SymbolID:  def.ID,
		Level:     def.Level,
		Radius:    w.RadiusFor(def),
		CreatedAt: now,
	}
	b.X, b.Y = pos.X, pos.Y
	return b, true
}
