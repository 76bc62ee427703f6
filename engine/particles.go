package engine

import (
	"math"
	"time"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// EmitParticles spawns a radial burst of count particles at pos
// Bursts are dropped when particles are disabled; the oldest particles go first past MaxParticles
func (w *World) EmitParticles(kind component.ParticleKind, pos vmath.Vec2, count int, speed float64, lifetimeMs int) {
	if !w.Config.EnableParticles || count <= 0 {
		return
	}
	now := w.Now()
	life := time.Duration(lifetimeMs) * time.Millisecond

	for i := 0; i < count; i++ {
		angle := w.Rand.Float64() * 2 * math.Pi
		mag := speed * (0.5 + w.Rand.Float64()*0.5)
		w.State.Particles = append(w.State.Particles, component.Particle{
			Kind:     kind,
			Pos:      pos,
			Vel:      vmath.V2Scale(vmath.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}, mag),
			Size:     1 + w.Rand.Float64()*2,
			Born:     now,
			Lifetime: life,
			Friction: true,
		})
	}
	w.capParticles()
}

// EmitPopup floats a text label upward from pos
func (w *World) EmitPopup(pos vmath.Vec2, text string) {
	if !w.Config.EnableParticles {
		return
	}
	w.State.Particles = append(w.State.Particles, component.Particle{
		Kind:     component.ParticlePopup,
		Pos:      pos,
		Vel:      vmath.Vec2{Y: parameter.ScorePopupUpwardSpeed},
		Born:     w.Now(),
		Lifetime: parameter.ScorePopupLifetimeMs * time.Millisecond,
		Text:     text,
	})
	w.capParticles()
}

// EmitWindParticle drifts a single sparkle along dir
func (w *World) EmitWindParticle(pos, dir vmath.Vec2) {
	if !w.Config.EnableParticles {
		return
	}
	spread := parameter.WindParticleSpread
	jitter := vmath.Vec2{
		X: (w.Rand.Float64() - 0.5) * spread,
		Y: (w.Rand.Float64() - 0.5) * spread,
	}
	w.State.Particles = append(w.State.Particles, component.Particle{
		Kind:     component.ParticleWind,
		Pos:      vmath.V2Add(pos, jitter),
		Vel:      vmath.V2Scale(dir, parameter.WindParticleBaseSpeed*(0.5+w.Rand.Float64())),
		Size:     1,
		Born:     w.Now(),
		Lifetime: parameter.WindParticleLifetimeMs * time.Millisecond,
	})
	w.capParticles()
}

func (w *World) capParticles() {
	ps := w.State.Particles
	if over := len(ps) - parameter.MaxParticles; over > 0 {
		n := copy(ps, ps[over:])
		w.State.Particles = ps[:n]
	}
}

// Now is the frame time inside Step, the world clock otherwise
func (w *World) Now() time.Time {
	if w.stepping {
		return w.stepNow
	}
	return w.Clock.Now()
}
