package system

import (
	"time"

	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// ParticleSystem advances cosmetic particles and drops expired ones
type ParticleSystem struct {
	world *engine.World
}

func NewParticleSystem(world *engine.World) engine.System {
	return &ParticleSystem{world: world}
}

func (s *ParticleSystem) Name() string { return "particle" }

func (s *ParticleSystem) Priority() int { return parameter.PriorityParticle }

func (s *ParticleSystem) Update(now time.Time) {
	st := s.world.State
	live := st.Particles[:0]
	for _, p := range st.Particles {
		if !p.Alive(now) {
			continue
		}
		p.Pos = vmath.V2Add(p.Pos, p.Vel)
		if p.Friction {
			p.Vel = vmath.V2Scale(p.Vel, parameter.ParticleFriction)
		}
		live = append(live, p)
	}
	st.Particles = live
}
