package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// quietConfig disables environmental forces so tests control all motion
func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.EnableSidewaysWind = false
	cfg.EnableParticles = false
	cfg.EnableBallTrails = false
	return cfg
}

func newWorld(t *testing.T, mutate func(*config.Config)) *engine.World {
	t.Helper()
	cfg := quietConfig()
	if mutate != nil {
		mutate(cfg)
	}
	return engine.NewWorld(cfg,
		engine.WithRand(vmath.NewFastRand(11)),
		engine.WithClock(engine.NewManualClock(epoch)))
}

func place(t *testing.T, w *engine.World, id symbol.ID, x, y float64) *component.Ball {
	t.Helper()
	b, ok := w.NewBall(id, vmath.V2(x, y), epoch)
	if !ok {
		t.Fatalf("unknown symbol %s", id)
	}
	b.InPlayfield = true
	w.State.AddBall(b)
	return b
}

func idAt(t *testing.T, w *engine.World, level int, shape symbol.Shape) symbol.ID {
	t.Helper()
	id, ok := w.Table().IDFor(symbol.Key{Level: level, Shape: shape})
	if !ok {
		t.Fatalf("no symbol at level %d shape %v", level, shape)
	}
	return id
}

func contains(balls []*component.Ball, b *component.Ball) bool {
	for _, x := range balls {
		if x == b {
			return true
		}
	}
	return false
}
