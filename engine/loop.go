package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/status"
)

// Spawner creates a token on the spawn timer
type Spawner interface {
	Spawn(now time.Time) *component.Ball
}

// Command is a deferred world mutation run on the loop goroutine
type Command func(w *World)

// LoopConfig wires the loop to its collaborators; nil fields are skipped
type LoopConfig struct {
	FrameInterval  time.Duration
	Spawner        Spawner
	Configs        <-chan *config.Config // hot-reloaded configs
	OnFrame        func(w *World)        // called after every frame, paused or not
	StopOnGameOver bool
}

// Loop owns the world and serializes frames, spawns, input and config changes on one goroutine
type Loop struct {
	world *World
	clock *PausableClock
	spawn *SpawnTimer
	cfg   LoopConfig

	commands chan Command
	stopChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	statPaused *atomic.Bool
}

// NewLoop creates a loop driving w on clock; the world clock is replaced by it
func NewLoop(w *World, clock *PausableClock, cfg LoopConfig) *Loop {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = 16 * time.Millisecond
	}
	w.Clock = clock
	return &Loop{
		world:      w,
		clock:      clock,
		spawn:      NewSpawnTimer(w.Config.BallCreationInterval),
		cfg:        cfg,
		commands:   make(chan Command, 256),
		stopChan:   make(chan struct{}),
		statPaused: w.Status.Bools.Get(status.KeyPaused),
	}
}

// Post queues cmd for the loop goroutine; dropped once Run has returned or Stop was called
func (l *Loop) Post(cmd Command) {
	select {
	case l.commands <- cmd:
	case <-l.stopChan:
	}
}

// Stop ends Run; safe to call repeatedly and from any goroutine
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

// TogglePause flips the pausable clock; call from the loop goroutine via Post
func (l *Loop) TogglePause() bool {
	paused := l.clock.Toggle()
	l.statPaused.Store(paused)
	return paused
}

// Run blocks until ctx is cancelled, Stop is called, or the game ends with StopOnGameOver
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return nil
	}
	defer l.running.Store(false)
	defer l.spawn.Stop()
	// Unblock Post callers however Run exits
	defer l.Stop()

	ticker := time.NewTicker(l.cfg.FrameInterval)
	defer ticker.Stop()

	w := l.world
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-l.stopChan:
			return nil

		case cmd := <-l.commands:
			cmd(w)

		case next, ok := <-l.cfg.Configs:
			if !ok {
				l.cfg.Configs = nil
				continue
			}
			l.applyConfig(next)

		case <-l.spawn.C():
			if l.clock.Paused() || w.State.GameOver || l.cfg.Spawner == nil {
				continue
			}
			l.cfg.Spawner.Spawn(l.clock.Now())

		case <-ticker.C:
			if !l.clock.Paused() {
				w.Step(l.clock.Now())
			}
			w.DispatchEvents()
			if l.cfg.OnFrame != nil {
				l.cfg.OnFrame(w)
			}
			if l.cfg.StopOnGameOver && w.State.GameOver {
				return nil
			}
		}
	}
}

// applyConfig installs a reloaded config and restarts the spawn timer when its interval moved
func (l *Loop) applyConfig(next *config.Config) {
	w := l.world
	changed, err := w.ApplyConfig(next)
	if err != nil {
		w.Log.Warn("config rejected", zap.Error(err))
		return
	}
	if changed {
		l.spawn.Reset(next.BallCreationInterval)
	}
	w.Log.Info("config applied", zap.Bool("spawn_reset", changed))
}

// Restart resets the game and the spawn timer; call from the loop goroutine via Post
func (l *Loop) Restart() {
	l.world.Reset()
	l.spawn.Reset(l.world.Config.BallCreationInterval)
	if l.clock.Paused() {
		l.TogglePause()
	}
}

// SpawnTimer exposes the loop's timer
func (l *Loop) SpawnTimer() *SpawnTimer {
	return l.spawn
}
