package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/physics"
	"github.com/lixenwraith/gogo-ame/status"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// BeginWind starts a new curve at (x, y), replacing any active one
func (w *World) BeginWind(x, y float64) {
	if w.State.GameOver {
		return
	}
	p := vmath.Vec2{X: x, Y: y}
	w.State.Wind = component.NewWindCurve(p, w.Now())
	w.Status.Ints.Get(status.KeyWindCurves).Add(1)
	w.PushEvent(event.EventWindStart, &event.PointPayload{Pos: p})
}

// ExtendWind appends (x, y) to the curve being drawn
// With angle snapping, a turn sharper than MaxWindCurveAngle closes the curve and restarts it at the turn
func (w *World) ExtendWind(x, y float64) {
	c := w.State.Wind
	if c == nil || !c.Drawing {
		return
	}
	p := vmath.Vec2{X: x, Y: y}
	if !c.Append(p, w.Config.MinPointDistance) {
		return
	}

	cfg := w.Config
	if !cfg.EnableAngleSnapping {
		return
	}
	angle := c.TurnAngleAt(cfg.WindAngleLookback)
	if angle <= cfg.MaxWindCurveAngle {
		return
	}

	pivot := c.Points[len(c.Points)-1-cfg.WindAngleLookback]
	w.EmitParticles(component.ParticleSnap, pivot,
		parameter.AngleSnapParticleCount,
		parameter.AngleSnapParticleSpeed,
		parameter.ParticleLifetimeMs)
	w.PushEvent(event.EventWindSnap, &event.PointPayload{Pos: pivot})
	w.Log.Debug("wind snapped", zap.Float64("angle", angle))

	w.BeginWind(pivot.X, pivot.Y)
	w.State.Wind.Append(p, cfg.MinPointDistance)
}

// EndWind finalizes the curve lifetime from its drawn length
func (w *World) EndWind() {
	c := w.State.Wind
	if c == nil || !c.Drawing {
		return
	}
	c.Finalize(w.Config.WindBaseLifetime, w.Config.WindLifetimePerPixel)
	w.PushEvent(event.EventWindEnd, &event.WindEndPayload{
		Points:   len(c.Points),
		Length:   c.Length(),
		Lifetime: c.Lifetime.Milliseconds(),
	})
}

// BallAt returns the topmost token under (x, y)
func (w *World) BallAt(x, y float64) *component.Ball {
	return w.State.BallAt(vmath.Vec2{X: x, Y: y})
}

// Grab freezes the token with id under the pointer; false when it does not exist
func (w *World) Grab(id component.BallID) bool {
	st := w.State
	if st.GameOver {
		return false
	}
	b := st.Find(id)
	if b == nil {
		return false
	}
	if prev := st.Find(st.Grabbed); prev != nil {
		prev.Grabbed = false
	}
	b.Grabbed = true
	b.Manipulated = true
	physics.SetImpulse(&b.Kinetic, 0, 0)
	st.Grabbed = id
	st.pointer = b.Pos()
	st.pointerDelta = vmath.Vec2{}
	return true
}

// MoveGrabbed drags the held token to (x, y), clamped inside the field
func (w *World) MoveGrabbed(x, y float64) {
	st := w.State
	b := st.Find(st.Grabbed)
	if b == nil {
		return
	}
	p := vmath.Vec2{X: x, Y: y}
	st.pointerDelta = vmath.V2Sub(p, st.pointer)
	st.pointer = p

	cfg := w.Config
	b.X = vmath.Clamp(x, b.Radius, cfg.FieldWidth-b.Radius)
	b.Y = vmath.Clamp(y, b.Radius, cfg.FieldHeight-b.Radius)
}

// Release lets go of the held token, throwing it with the last pointer motion
func (w *World) Release() {
	st := w.State
	b := st.Find(st.Grabbed)
	st.Grabbed = 0
	if b == nil {
		return
	}
	b.Grabbed = false
	throw := vmath.V2Scale(st.pointerDelta, w.Config.ThrowMultiplier)
	physics.SetImpulse(&b.Kinetic, throw.X, throw.Y)
	st.pointerDelta = vmath.Vec2{}
}
