package system

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/physics"
	"github.com/lixenwraith/gogo-ame/status"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// CollisionSystem scans all token pairs once per frame and applies the first matching rule
type CollisionSystem struct {
	world *engine.World

	statCombines     *atomic.Int64
	statEliminations *atomic.Int64
	statDegrades     *atomic.Int64
	statDestroyed    *atomic.Int64
	statBounces      *atomic.Int64
	statLifePairs    *atomic.Int64
	statImmunity     *atomic.Int64
}

func NewCollisionSystem(world *engine.World) engine.System {
	reg := world.Status
	return &CollisionSystem{
		world:            world,
		statCombines:     reg.Ints.Get(status.KeyCombines),
		statEliminations: reg.Ints.Get(status.KeyEliminations),
		statDegrades:     reg.Ints.Get(status.KeyDegrades),
		statDestroyed:    reg.Ints.Get(status.KeyDestroyed),
		statBounces:      reg.Ints.Get(status.KeyBounces),
		statLifePairs:    reg.Ints.Get(status.KeyLifePairs),
		statImmunity:     reg.Ints.Get(status.KeyImmunity),
	}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

// Resolver returns a rule selector bound to the current config and symbol table
func (s *CollisionSystem) Resolver() Resolver {
	return Resolver{Config: s.world.Config, Table: s.world.Table()}
}

// Update runs one pairwise pass over a frozen token list, then reconciles
func (s *CollisionSystem) Update(now time.Time) {
	st := s.world.State
	st.BeginFrame()
	if st.GameOver {
		return
	}

	res := s.Resolver()
	balls := st.Balls
	for i := 0; i < len(balls); i++ {
		a := balls[i]
		if st.IsQueued(a) {
			continue
		}
		for j := i + 1; j < len(balls); j++ {
			b := balls[j]
			if st.IsQueued(b) {
				continue
			}
			ok, dist := Touching(a, b)
			if !ok {
				continue
			}
			c := res.contact(a, b, dist)
			s.apply(res, res.selectContact(&c), &c, now)

			if st.IsQueued(a) {
				break
			}
		}
	}

	st.Reconcile()
}

// Resolve applies the selected rule to a touching pair outside the frame scan
// Returns RuleNone when the pair does not touch
func (s *CollisionSystem) Resolve(a, b *component.Ball, now time.Time) RuleKind {
	ok, dist := Touching(a, b)
	if !ok {
		return RuleNone
	}
	res := s.Resolver()
	c := res.contact(a, b, dist)
	kind := res.selectContact(&c)
	s.apply(res, kind, &c, now)
	return kind
}

func (s *CollisionSystem) apply(res Resolver, kind RuleKind, c *contact, now time.Time) {
	switch kind {
	case RuleVoid:
		s.applyVoid(c, now)
	case RuleLifePair:
		s.applyLifePair(c)
	case RuleHardDegrade:
		s.applyHardDegrade(c, now)
	case RuleEliminate:
		s.applyEliminate(c)
	case RuleCombine:
		s.applyCombine(res, c, now)
	case RuleImmunity:
		s.applyImmunity(c)
	case RuleBounce:
		physics.ResolveBounce(&c.a.Kinetic, &c.b.Kinetic, c.a.Radius, c.b.Radius)
		s.statBounces.Add(1)
		s.world.PushEvent(event.EventBounce, &event.PairPayload{
			A:   uint64(c.a.ID),
			B:   uint64(c.b.ID),
			Pos: midpoint(c.a, c.b),
		})
	}
	if kind != RuleNone && kind != RuleBounce {
		s.world.Log.Debug("collision",
			zap.Stringer("rule", kind),
			zap.String("a", string(c.a.SymbolID)),
			zap.String("b", string(c.b.SymbolID)))
	}
}

func midpoint(a, b *component.Ball) vmath.Vec2 {
	return vmath.WeightedMidpoint(a.Pos(), a.Radius, b.Pos(), b.Radius)
}

// applyVoid degrades or destroys the non-void token; the void token is untouched
func (s *CollisionSystem) applyVoid(c *contact, now time.Time) {
	w := s.world
	void, target := c.a, c.b
	targetDef := c.db
	if c.db.IsVoid() {
		void, target = c.b, c.a
		targetDef = c.da
	}

	if w.Config.EnableDegradation && targetDef.HasRecipe() {
		dir := physics.KnockbackDirection(void.Pos(), target.Pos())
		if degrade(w, target, target.Pos(), dir, "void", now) {
			s.statDegrades.Add(1)
			return
		}
	}
	if destroy(w, target, target.Pos(), "void", true) {
		s.statDestroyed.Add(1)
	}
}

// applyLifePair consumes both life tokens for one life
func (s *CollisionSystem) applyLifePair(c *contact) {
	w := s.world
	st := w.State
	st.QueueRemove(c.a)
	st.QueueRemove(c.b)

	mid := midpoint(c.a, c.b)
	w.GainLife(mid)
	w.EmitParticles(component.ParticleLife, mid,
		parameter.ConstructionParticleCount,
		parameter.ConstructionParticleSpeed,
		parameter.ParticleLifetimeMs)
	s.statLifePairs.Add(1)
}

// applyHardDegrade degrades the second token away from the first
func (s *CollisionSystem) applyHardDegrade(c *contact, now time.Time) {
	dir := physics.KnockbackDirection(c.a.Pos(), c.b.Pos())
	if degrade(s.world, c.b, c.b.Pos(), dir, "same_symbol", now) {
		s.statDegrades.Add(1)
	}
}

// applyEliminate annihilates a same-symbol pair, optionally exploding nearby tokens
func (s *CollisionSystem) applyEliminate(c *contact) {
	w := s.world
	st := w.State
	cfg := w.Config
	def := c.da

	st.QueueRemove(c.a)
	st.QueueRemove(c.b)
	mid := midpoint(c.a, c.b)

	w.EmitParticles(component.ParticleExplosion, mid,
		parameter.ExplosionParticleCount,
		parameter.ExplosionParticleSpeed,
		parameter.ParticleLifetimeMs)

	exploded := 0
	if cfg.EnableExplosions {
		reach := def.ExplosionRadiusUnits * cfg.BaseBallRadius
		for _, other := range st.Balls {
			if st.IsQueued(other) || !def.Explodes(other.Level) {
				continue
			}
			if vmath.V2Dist(other.Pos(), mid) < reach+other.Radius {
				if destroy(w, other, other.Pos(), "explosion", false) {
					exploded++
				}
			}
		}
	}

	points := 0
	if cfg.EnableEliminationScoring {
		points = def.EliminationPoints
		w.AddScore(points, mid)
	}

	w.PushEvent(event.EventEliminate, &event.EliminatePayload{
		SymbolID: def.ID,
		Pos:      mid,
		Exploded: exploded,
		Points:   points,
	})
	s.statEliminations.Add(1)
	s.statDestroyed.Add(int64(exploded))
}

// applyCombine merges the pair into the next-level token at the weighted midpoint
func (s *CollisionSystem) applyCombine(res Resolver, c *contact, now time.Time) {
	w := s.world
	st := w.State

	id, ok := res.combineResult(c)
	if !ok {
		return
	}
	mid := midpoint(c.a, c.b)
	nb, ok := w.NewBall(id, mid, now)
	if !ok {
		w.Log.Warn("combine product missing", zap.String("symbol", string(id)))
		return
	}

	st.QueueRemove(c.a)
	st.QueueRemove(c.b)

	nb.Radius = max(nb.Radius, parameter.MinCombinedRadius)
	nb.VX, nb.VY = physics.MomentumVelocity(&c.a.Kinetic, c.a.Radius, &c.b.Kinetic, c.b.Radius)
	nb.Constructing = true
	nb.InPlayfield = c.a.InPlayfield || c.b.InPlayfield
	nb.Manipulated = c.a.Manipulated || c.b.Manipulated
	st.QueueAdd(nb)

	w.EmitParticles(component.ParticleConstruct, mid,
		parameter.ConstructionParticleCount,
		parameter.ConstructionParticleSpeed,
		parameter.ParticleLifetimeMs)
	w.PushEvent(event.EventCombine, &event.CombinePayload{
		Inputs: [2]symbol.ID{c.a.SymbolID, c.b.SymbolID},
		Result: id,
		Level:  nb.Level,
		Pos:    mid,
	})

	if nb.Level >= parameter.ComboScoreMinLevel {
		w.AddScore(nb.Level*nb.Level, mid)
	}
	w.RecordLevel(nb.Level, mid)
	s.statCombines.Add(1)
}

// applyImmunity removes the level-1 token of a mismatched pair; a no-op claim when immunity is off
func (s *CollisionSystem) applyImmunity(c *contact) {
	w := s.world
	if !w.Config.EnableImmunity {
		return
	}
	fragile := c.a
	if c.b.Level == 1 {
		fragile = c.b
	}
	if destroy(w, fragile, fragile.Pos(), "immunity", false) {
		s.statImmunity.Add(1)
	}
}
