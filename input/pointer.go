package input

import (
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/symbol"
)

// SymbolSpawner drops a named symbol on demand
type SymbolSpawner interface {
	SpawnSymbol(id symbol.ID, now time.Time) *component.Ball
}

// Controller turns world intents into loop commands
// A press on a token grabs it; a press on empty space starts a wind curve
type Controller struct {
	spawner  SymbolSpawner
	grabbing bool
}

func NewController(spawner SymbolSpawner) *Controller {
	return &Controller{spawner: spawner}
}

// Command returns the world mutation for in, nil for front-end intents
// The returned command runs on the loop goroutine, which also owns the controller state
func (c *Controller) Command(in Intent) engine.Command {
	switch in.Type {
	case IntentPointerDown:
		return func(w *engine.World) {
			if b := w.BallAt(in.Pos.X, in.Pos.Y); b != nil && w.Grab(b.ID) {
				c.grabbing = true
				return
			}
			c.grabbing = false
			w.BeginWind(in.Pos.X, in.Pos.Y)
		}

	case IntentPointerDrag:
		return func(w *engine.World) {
			if c.grabbing {
				w.MoveGrabbed(in.Pos.X, in.Pos.Y)
				return
			}
			w.ExtendWind(in.Pos.X, in.Pos.Y)
		}

	case IntentPointerUp:
		return func(w *engine.World) {
			if c.grabbing {
				w.Release()
				c.grabbing = false
				return
			}
			w.ExtendWind(in.Pos.X, in.Pos.Y)
			w.EndWind()
		}

	case IntentSpawn:
		key := in.Spawn
		return func(w *engine.World) {
			id, ok := w.Table().IDFor(key)
			if !ok || c.spawner == nil {
				w.Log.Debug("spawn key unavailable", zap.Int("level", key.Level), zap.Stringer("shape", key.Shape))
				return
			}
			c.spawner.SpawnSymbol(id, w.Now())
		}
	}
	return nil
}

// Grabbing reports whether the pointer holds a token
func (c *Controller) Grabbing() bool { return c.grabbing }
