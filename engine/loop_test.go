package engine

import (
	"context"
	"testing"
	"time"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

type countingSpawner struct {
	w *World
	n int
}

func (s *countingSpawner) Spawn(now time.Time) *component.Ball {
	s.n++
	b, _ := s.w.NewBall(symbol.VoidID, vmath.V2(100, -20), now)
	s.w.State.AddBall(b)
	return b
}

func TestSpawnTimerReset(t *testing.T) {
	st := NewSpawnTimer(0)
	if st.Enabled() || st.C() != nil {
		t.Error("zero interval should disable the timer")
	}

	st.Reset(5 * time.Millisecond)
	if !st.Enabled() || st.Interval() != 5*time.Millisecond {
		t.Fatalf("Reset did not enable timer")
	}
	select {
	case <-st.C():
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	first := st.C()
	st.Reset(10 * time.Millisecond)
	if st.C() == first {
		t.Error("Reset reused the previous ticker")
	}

	st.Stop()
	st.Stop()
	if st.Enabled() {
		t.Error("timer still enabled after Stop")
	}
}

func TestLoopRunsFramesSpawnsAndCommands(t *testing.T) {
	cfg := config.Default()
	cfg.BallCreationInterval = 2 * time.Millisecond
	w := NewWorld(cfg, WithRand(vmath.NewFastRand(3)))
	clock := NewPausableClock(nil)
	spawner := &countingSpawner{w: w}

	frames := 0
	var loop *Loop
	loop = NewLoop(w, clock, LoopConfig{
		FrameInterval: time.Millisecond,
		Spawner:       spawner,
		OnFrame: func(w *World) {
			frames++
			if frames >= 20 && spawner.n > 0 {
				loop.Stop()
			}
		},
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	ran := make(chan struct{})
	loop.Post(func(w *World) { close(ran) })

	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	select {
	case <-ran:
	default:
		t.Error("posted command never ran")
	}
	if w.Frame() < 20 {
		t.Errorf("frames stepped = %d, want >= 20", w.Frame())
	}
	if spawner.n == 0 {
		t.Error("spawner never ran")
	}
}

func TestLoopPauseFreezesSimulation(t *testing.T) {
	w := NewWorld(config.Default())
	clock := NewPausableClock(nil)

	var loop *Loop
	renders := 0
	loop = NewLoop(w, clock, LoopConfig{
		FrameInterval: time.Millisecond,
		OnFrame: func(w *World) {
			renders++
			if renders == 10 {
				loop.Stop()
			}
		},
	})
	loop.TogglePause()

	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if w.Frame() != 0 {
		t.Errorf("stepped %d frames while paused", w.Frame())
	}
	if !clock.Paused() {
		t.Error("clock not paused")
	}
}

func TestLoopStopsOnGameOver(t *testing.T) {
	w := NewWorld(config.Default())
	loop := NewLoop(w, NewPausableClock(nil), LoopConfig{
		FrameInterval:  time.Millisecond,
		StopOnGameOver: true,
	})
	w.AddSystem(&stubSystem{name: "end", onUpdate: func(time.Time) { w.State.GameOver = true }})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !w.State.GameOver {
		t.Error("loop returned before game over")
	}
}

func TestLoopAppliesReloadedConfig(t *testing.T) {
	w := NewWorld(config.Default())
	configs := make(chan *config.Config, 1)
	var loop *Loop
	timerEnabled := true
	loop = NewLoop(w, NewPausableClock(nil), LoopConfig{
		FrameInterval: time.Millisecond,
		Configs:       configs,
		OnFrame: func(w *World) {
			if w.Config.Friction == 0.5 {
				timerEnabled = loop.SpawnTimer().Enabled()
				loop.Stop()
			}
		},
	})

	next := config.Default()
	next.Friction = 0.5
	next.BallCreationInterval = 0
	configs <- next

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := loop.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if timerEnabled {
		t.Error("spawn timer still running after interval set to 0")
	}
}

func TestPostReturnsAfterContextCancel(t *testing.T) {
	w := NewWorld(config.Default())
	loop := NewLoop(w, NewPausableClock(nil), LoopConfig{FrameInterval: time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := loop.Run(ctx); err != context.Canceled {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}

	// More posts than the command buffer holds must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1024; i++ {
			loop.Post(func(*World) {})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Post blocked after Run returned")
	}
}
