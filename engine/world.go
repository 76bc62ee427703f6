package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/status"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// System is one stage of the per-frame pipeline
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(now time.Time)
}

// World is the simulation context passed to every system
// It is not safe for concurrent use; one goroutine owns it
type World struct {
	State   *GameState
	Config  *config.Config
	Symbols *symbol.Registry
	Events  *event.EventQueue
	Status  *status.Registry
	Log     *zap.Logger
	Rand    vmath.Rand
	Clock   Clock // game time source for operations outside Step

	router  *EventRouter
	systems []System
	frame   atomic.Int64

	stepping bool
	stepNow  time.Time

	statFrames    *atomic.Int64
	statBalls     *atomic.Int64
	statParticles *atomic.Int64
	statDropped   *atomic.Int64
	statStep      *status.Gauge
	statStepPeak  *status.Gauge
}

// Option customizes a World at construction
type Option func(*World)

func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.Log = l
		}
	}
}

func WithRand(r vmath.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.Rand = r
		}
	}
}

func WithClock(c Clock) Option {
	return func(w *World) {
		if c != nil {
			w.Clock = c
		}
	}
}

func WithStatus(r *status.Registry) Option {
	return func(w *World) {
		if r != nil {
			w.Status = r
		}
	}
}

// NewWorld creates a world for cfg; cfg is owned by the world afterwards
func NewWorld(cfg *config.Config, opts ...Option) *World {
	if cfg == nil {
		cfg = config.Default()
	}
	w := &World{
		Config: cfg,
		Events: event.NewEventQueue(),
		Status: status.NewRegistry(),
		Log:    zap.NewNop(),
		Rand:   vmath.NewFastRand(uint64(time.Now().UnixNano())),
		Clock:  WallClock{},
	}
	for _, opt := range opts {
		opt(w)
	}

	w.State = NewGameState(cfg)
	w.Symbols = symbol.NewRegistry(cfg.SymbolParams())
	w.router = NewEventRouter(w.Events)

	w.statFrames = w.Status.Ints.Get(status.KeyFrames)
	w.statBalls = w.Status.Ints.Get(status.KeyBalls)
	w.statParticles = w.Status.Ints.Get(status.KeyParticles)
	w.statDropped = w.Status.Ints.Get(status.KeyEventsDropped)
	w.statStep = w.Status.Floats.Get(status.KeyStepMillis)
	w.statStepPeak = w.Status.Floats.Get(status.KeyStepPeak)
	return w
}

// AddSystem adds a system and keeps the pipeline sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion keeps equal priorities in registration order
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of the pipeline
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// RegisterHandler subscribes h to drained events
func (w *World) RegisterHandler(h EventHandler) {
	w.router.Register(h)
}

// Table returns the active symbol table
func (w *World) Table() *symbol.Table {
	return w.Symbols.Current()
}

// Frame returns the number of completed steps
func (w *World) Frame() int64 {
	return w.frame.Load()
}

// Step runs one frame of every system at game time now
// Returns false once the game is over; a finished game is not advanced
func (w *World) Step(now time.Time) bool {
	st := w.State
	if st.GameOver {
		return false
	}

	start := time.Now()
	if !st.lastStep.IsZero() {
		if dt := now.Sub(st.lastStep); dt > 0 {
			st.TotalElapsed += dt
		}
	}
	st.lastStep = now

	w.stepping, w.stepNow = true, now
	for _, sys := range w.systems {
		sys.Update(now)
	}
	w.stepping = false

	w.statFrames.Store(w.frame.Add(1))
	w.statBalls.Store(int64(len(st.Balls)))
	w.statParticles.Store(int64(len(st.Particles)))
	ms := float64(time.Since(start).Microseconds()) / 1000
	w.statStep.Store(ms)
	w.statStepPeak.StoreMax(ms)

	return !st.GameOver
}

// DispatchEvents drains pending events to registered handlers
func (w *World) DispatchEvents() int {
	n := w.router.DispatchAll()
	w.statDropped.Store(int64(w.Events.Dropped()))
	return n
}

// PushEvent emits a game event tagged with the current frame
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Events.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}

// Reset restarts the game with the current config
func (w *World) Reset() {
	w.State.Reset(w.Config)
	w.Log.Info("game reset", zap.Int("lives", w.State.Lives))
	w.PushEvent(event.EventGameReset, nil)
}

// ApplyConfig validates and installs next, regenerating symbols when their inputs changed
// The returned flag reports whether the spawn timer must be reset by the caller
func (w *World) ApplyConfig(next *config.Config) (spawnChanged bool, err error) {
	if err := next.Validate(); err != nil {
		return false, fmt.Errorf("apply config: %w", err)
	}

	prev := w.Config
	regen := config.NeedsSymbolRegen(prev, next)
	spawnChanged = config.SpawnIntervalChanged(prev, next)

	if regen {
		t := w.Symbols.Regenerate(next.SymbolParams())
		w.Log.Info("symbols regenerated",
			zap.Int("max_level", t.MaxLevel()),
			zap.Int("definitions", t.Len()))
	}
	w.Config = next

	w.PushEvent(event.EventConfigApplied, &event.ConfigAppliedPayload{
		SymbolsRegenerated: regen,
		SpawnIntervalReset: spawnChanged,
	})
	return spawnChanged, nil
}
