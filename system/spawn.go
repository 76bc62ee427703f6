package system

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/status"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// SpawnSystem drops new tokens above the top edge; driven by the spawn timer, not the frame pipeline
type SpawnSystem struct {
	world *engine.World

	statSpawned *atomic.Int64
	statVoid    *atomic.Int64
	statLife    *atomic.Int64
}

func NewSpawnSystem(world *engine.World) *SpawnSystem {
	reg := world.Status
	return &SpawnSystem{
		world:       world,
		statSpawned: reg.Ints.Get(status.KeySpawned),
		statVoid:    reg.Ints.Get(status.KeySpawnedVoid),
		statLife:    reg.Ints.Get(status.KeySpawnedLife),
	}
}

// Pick samples a spawn symbol from one uniform roll against cumulative weights:
// life, then void, then the remainder spread evenly over the level-1 shapes
func (s *SpawnSystem) Pick(roll float64) (symbol.ID, bool) {
	cfg := s.world.Config
	life := cfg.LifeSymbolSpawnRate
	void := cfg.VoidSymbolSpawnRate

	switch {
	case roll < life:
		return symbol.LifeID, true
	case roll < life+void:
		return symbol.VoidID, true
	}

	normals := s.world.Table().L1NormalSymbols()
	if len(normals) == 0 {
		return "", false
	}
	span := 1 - life - void
	idx := 0
	if span > 0 {
		idx = int((roll - life - void) / span * float64(len(normals)))
	}
	idx = min(max(idx, 0), len(normals)-1)
	return normals[idx], true
}

// Spawn creates one random token; nil while the game is over or nothing is spawnable
func (s *SpawnSystem) Spawn(now time.Time) *component.Ball {
	if s.world.State.GameOver {
		return nil
	}
	id, ok := s.Pick(s.world.Rand.Float64())
	if !ok {
		return nil
	}
	return s.SpawnSymbol(id, now)
}

// SpawnSymbol drops a token of id at a random x just above the field
func (s *SpawnSystem) SpawnSymbol(id symbol.ID, now time.Time) *component.Ball {
	w := s.world
	if w.State.GameOver {
		return nil
	}
	b, ok := w.NewBall(id, vmath.Vec2{}, now)
	if !ok {
		w.Log.Warn("spawn of unknown symbol", zap.String("symbol", string(id)))
		return nil
	}

	width := w.Config.FieldWidth
	if width > 2*b.Radius {
		b.X = vmath.RandRange(w.Rand, b.Radius, width-b.Radius)
	} else {
		b.X = width / 2
	}
	b.Y = -b.Radius - w.Rand.Float64()*parameter.SpawnHeightJitter

	w.State.AddBall(b)
	s.statSpawned.Add(1)
	switch w.Table().ClassOf(id) {
	case symbol.ClassVoid:
		s.statVoid.Add(1)
	case symbol.ClassLife:
		s.statLife.Add(1)
	}

	w.PushEvent(event.EventBallSpawned, &event.BallPayload{
		BallID:   uint64(b.ID),
		SymbolID: b.SymbolID,
		Level:    b.Level,
		Pos:      b.Pos(),
	})
	return b
}
