package system

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// Outcome helpers shared by collision and motion; all removals go through the frame queues

// degrade queues b for replacement by one of its recipe ingredients at pos
// The replacement inherits b's velocity plus knockback along dir and is briefly wind immune
// Returns false without side effects when b has no known recipe
func degrade(w *engine.World, b *component.Ball, pos, dir vmath.Vec2, cause string, now time.Time) bool {
	table := w.Table()
	def, ok := table.Lookup(b.SymbolID)
	if !ok {
		return false
	}
	x, y, ok := def.Recipe()
	if !ok {
		return false
	}
	pick := x
	if w.Rand.Intn(2) == 1 {
		pick = y
	}

	nb, ok := w.NewBall(pick, pos, now)
	if !ok {
		w.Log.Warn("degrade ingredient missing", zap.String("symbol", string(pick)))
		return false
	}
	if !w.State.QueueRemove(b) {
		return false
	}

	kick := vmath.V2Scale(dir, w.Config.DegradationKnockback)
	nb.VX = b.VX + kick.X
	nb.VY = b.VY + kick.Y
	nb.WindImmuneUntil = now.Add(w.Config.DegradationWindImmunity)
	nb.InPlayfield = b.InPlayfield
	nb.Manipulated = b.Manipulated
	w.State.QueueAdd(nb)

	w.EmitParticles(component.ParticleConstruct, pos,
		parameter.ConstructionParticleCount,
		parameter.ConstructionParticleSpeed,
		parameter.ParticleLifetimeMs)
	w.PushEvent(event.EventDegrade, &event.DegradePayload{
		From:  b.SymbolID,
		To:    nb.SymbolID,
		Pos:   pos,
		Cause: cause,
	})
	return true
}

// destroy queues b for removal with debris, charging a life when allowed
func destroy(w *engine.World, b *component.Ball, pos vmath.Vec2, cause string, chargeLife bool) bool {
	if !w.State.QueueRemove(b) {
		return false
	}
	w.EmitParticles(component.ParticleDebris, pos,
		parameter.DebrisParticleCount,
		parameter.DebrisParticleSpeed,
		parameter.ParticleLifetimeMs)
	w.PushEvent(event.EventDestroy, &event.BallPayload{
		BallID:   uint64(b.ID),
		SymbolID: b.SymbolID,
		Level:    b.Level,
		Pos:      pos,
		Cause:    cause,
	})
	if chargeLife && w.ShouldLoseLife(b) {
		w.LoseLife(pos)
	}
	return true
}
