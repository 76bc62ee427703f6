package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/physics"
	"github.com/lixenwraith/gogo-ame/status"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// MotionSystem integrates every live token and handles boundary contact
type MotionSystem struct {
	world *engine.World

	sideways float64 // environmental push for the current frame

	statBoundary *atomic.Int64
	statCaptured *atomic.Int64
	statDegrades *atomic.Int64
}

func NewMotionSystem(world *engine.World) engine.System {
	return &MotionSystem{
		world:        world,
		statBoundary: world.Status.Ints.Get(status.KeyBoundaryExits),
		statCaptured: world.Status.Ints.Get(status.KeyWindCaptured),
		statDegrades: world.Status.Ints.Get(status.KeyDegrades),
	}
}

func (s *MotionSystem) Name() string { return "motion" }

func (s *MotionSystem) Priority() int { return parameter.PriorityMotion }

func (s *MotionSystem) Update(now time.Time) {
	st := s.world.State
	if st.GameOver {
		return
	}
	st.BeginFrame()
	clear(st.Captured)
	s.sideways = SidewaysWind(s.world.Config, st.TotalElapsed)

	for _, b := range st.Balls {
		if st.IsQueued(b) {
			continue
		}
		s.Integrate(b, now)
	}

	st.Reconcile()
	s.statCaptured.Store(int64(len(st.Captured)))
}

// Integrate advances one token by a frame; false means it was queued for removal
// Order: trail, gravity, curve wind, sideways wind, friction, position, boundary
func (s *MotionSystem) Integrate(b *component.Ball, now time.Time) bool {
	w := s.world
	cfg := w.Config
	class := w.Table().ClassOf(b.SymbolID)
	void := class == symbol.ClassVoid

	if cfg.EnableBallTrails && (!void || cfg.EnableBallTrailsForVoid) {
		b.Trail.Push(b.Pos(), cfg.BallTrailLength)
	} else if b.Trail.Len() > 0 {
		b.Trail.Reset()
	}

	if b.Constructing && now.Sub(b.CreatedAt) > parameter.ConstructionAnimationMs*time.Millisecond {
		b.Constructing = false
	}

	if b.Grabbed {
		return true
	}

	if !b.GravityImmune(now) {
		b.Y += s.fallSpeed(b, class)
	}

	b.CapturedByWind = false
	windImmune := b.WindImmune(now)
	if !void && !windImmune {
		s.applyCurveWind(b, now)
	}

	if cfg.EnableSidewaysWind && !void && !windImmune && !(cfg.EnableZeroGravityMode && b.Level > 1) {
		b.VX += s.sideways
	}

	physics.ApplyFriction(&b.Kinetic, cfg.Friction)
	physics.Integrate(&b.Kinetic)

	return s.checkBoundary(b, now)
}

// fallSpeed is the per-frame positional fall for b
func (s *MotionSystem) fallSpeed(b *component.Ball, class symbol.Class) float64 {
	cfg := s.world.Config
	tv := cfg.TerminalVelocity

	switch {
	case class == symbol.ClassVoid:
		return cfg.VoidSpeedMultiplier * tv
	case class == symbol.ClassLife:
		return cfg.LifeSymbolFallSpeedMultiplier * tv
	case cfg.EnableZeroGravityMode && b.Level > 1:
		return cfg.TerminalVelocitySymbol
	}
	return tv * (1 + (cfg.BaseBallRadius/b.Radius-1)*cfg.GravityMassEffect)
}

// applyCurveWind couples b to the active curve when within its influence radius
func (s *MotionSystem) applyCurveWind(b *component.Ball, now time.Time) {
	w := s.world
	cfg := w.Config
	curve := w.State.Wind
	if curve == nil || !curve.Active(now) {
		return
	}
	hit, ok := curve.Closest(b.Pos())
	if !ok || hit.Distance >= cfg.WindInfluenceRadius {
		return
	}

	b.CapturedByWind = true
	w.State.Captured[b.ID] = struct{}{}

	massFactor := b.Radius / cfg.BaseBallRadius
	falloff := max(0, 1-cfg.WindForceFalloff*float64(hit.Segment)/float64(hit.Segments))

	// Coupling eases off near the path to avoid overshoot
	ramp := 1.0
	if cfg.WindArrivalDistance > 0 {
		ramp = min(1, hit.Distance/cfg.WindArrivalDistance)
	}
	pull := vmath.V2Scale(vmath.V2Sub(hit.Point, b.Pos()), cfg.WindCouplingStrength*ramp*falloff/massFactor)
	physics.ApplyImpulse(&b.Kinetic, pull.X, pull.Y)

	// Speed governor along the tangent
	along := vmath.V2Dot(b.Vel(), hit.Dir)
	if along < cfg.WindMaxSpeed {
		f := (cfg.WindMaxSpeed - along) * curve.Strength(cfg.WindBaseStrength, cfg.WindStrengthPer100px) * falloff
		physics.ApplyImpulse(&b.Kinetic, hit.Dir.X*f, hit.Dir.Y*f)
	}

	levitate := cfg.WindGravityImmunity + time.Duration(b.Level)*cfg.LevitationLevelMultiplier
	b.GravityImmuneUntil = now.Add(levitate)
}

// checkBoundary removes or degrades b on contact with the field edges
func (s *MotionSystem) checkBoundary(b *component.Ball, now time.Time) bool {
	w := s.world
	cfg := w.Config
	width, height := cfg.FieldWidth, cfg.FieldHeight

	if !b.InPlayfield && b.Y > parameter.PlayfieldLatchY {
		b.InPlayfield = true
	}

	var away, impact vmath.Vec2
	switch {
	case b.InPlayfield && b.Y-b.Radius < 0:
		away, impact = vmath.Vec2{Y: 1}, vmath.Vec2{X: b.X, Y: 0}
	case b.Y+b.Radius > height:
		away, impact = vmath.Vec2{Y: -1}, vmath.Vec2{X: b.X, Y: height}
	case b.X-b.Radius < 0:
		away, impact = vmath.Vec2{X: 1}, vmath.Vec2{X: 0, Y: b.Y}
	case b.X+b.Radius > width:
		away, impact = vmath.Vec2{X: -1}, vmath.Vec2{X: width, Y: b.Y}
	default:
		return true
	}
	s.statBoundary.Add(1)

	if cfg.EnableHardDegradation && b.Level > 1 {
		inside := vmath.Vec2{
			X: vmath.Clamp(b.X, b.Radius, width-b.Radius),
			Y: vmath.Clamp(b.Y, b.Radius, height-b.Radius),
		}
		if degrade(w, b, inside, away, "boundary", now) {
			s.statDegrades.Add(1)
			w.EmitParticles(component.ParticleDebris, impact,
				parameter.DebrisParticleCount,
				parameter.DebrisParticleSpeed,
				parameter.ParticleLifetimeMs)
			return false
		}
	}

	destroy(w, b, impact, "boundary", true)
	return false
}

// SidewaysWind is the environmental horizontal push at elapsed game time
// Two sines of different frequency keep the gusts from looking periodic
func SidewaysWind(cfg *config.Config, elapsed time.Duration) float64 {
	t := elapsed.Seconds()
	osc := (math.Sin(t*cfg.WindOscillationFrequency1) + math.Sin(t*cfg.WindOscillationFrequency2)) / 2
	return cfg.SidewaysWindStrength + osc*cfg.WindOscillationAmplitude
}
