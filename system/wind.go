package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/status"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// WindSystem clears the curve once it expires and sheds sparkles along a live one
type WindSystem struct {
	world *engine.World

	statCurves *atomic.Int64
}

func NewWindSystem(world *engine.World) engine.System {
	return &WindSystem{
		world:      world,
		statCurves: world.Status.Ints.Get(status.KeyWindCurves),
	}
}

func (s *WindSystem) Name() string { return "wind" }

func (s *WindSystem) Priority() int { return parameter.PriorityWind }

func (s *WindSystem) Update(now time.Time) {
	w := s.world
	curve := w.State.Wind
	if curve == nil {
		return
	}

	if curve.Expired(now) {
		w.State.Wind = nil
		w.PushEvent(event.EventWindExpired, &event.WindEndPayload{
			Points:   len(curve.Points),
			Length:   curve.Length(),
			Lifetime: curve.Lifetime.Milliseconds(),
		})
		return
	}

	if !w.Config.EnableWindSparkles || len(curve.Points) < 2 {
		return
	}
	for i := 0; i < parameter.WindParticlesPerFrame; i++ {
		seg := w.Rand.Intn(len(curve.Points) - 1)
		a, b := curve.Points[seg], curve.Points[seg+1]
		p := vmath.V2Lerp(a, b, w.Rand.Float64())
		w.EmitWindParticle(p, vmath.V2Normalize(vmath.V2Sub(b, a)))
	}
}
