package component

import (
	"time"

	"github.com/lixenwraith/gogo-ame/vmath"
)

// ParticleKind selects particle styling in the renderer
type ParticleKind uint8

const (
	ParticleDebris ParticleKind = iota
	ParticleConstruct
	ParticleExplosion
	ParticleCelebrate
	ParticleWind
	ParticleSnap
	ParticleLife
	ParticlePopup
)

// Particle is a cosmetic point with no effect on tokens
type Particle struct {
	Kind     ParticleKind
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Size     float64
	Born     time.Time
	Lifetime time.Duration
	Text     string // popup label
	Friction bool
}

// Alive reports whether the particle is within its lifetime
func (p *Particle) Alive(now time.Time) bool {
	return now.Sub(p.Born) < p.Lifetime
}

// Fade returns remaining life in [0,1]
func (p *Particle) Fade(now time.Time) float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return vmath.Clamp(1-float64(now.Sub(p.Born))/float64(p.Lifetime), 0, 1)
}
