package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

func newTestWorld(t *testing.T, mutate func(*config.Config)) (*World, *ManualClock) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	clock := NewManualClock(epoch)
	w := NewWorld(cfg, WithRand(vmath.NewFastRand(7)), WithClock(clock))
	return w, clock
}

func addBall(t *testing.T, w *World, id symbol.ID, x, y float64) *component.Ball {
	t.Helper()
	b, ok := w.NewBall(id, vmath.V2(x, y), w.Now())
	if !ok {
		t.Fatalf("NewBall(%s) failed", id)
	}
	w.State.AddBall(b)
	return b
}

// recordingHandler collects every routed event
type recordingHandler struct {
	types  []event.EventType
	events []event.GameEvent
}

func (h *recordingHandler) EventTypes() []event.EventType { return h.types }

func (h *recordingHandler) HandleEvent(ev event.GameEvent) {
	h.events = append(h.events, ev)
}

func (h *recordingHandler) count(t event.EventType) int {
	n := 0
	for _, ev := range h.events {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// stubSystem records update times
type stubSystem struct {
	name     string
	priority int
	log      *[]string
	onUpdate func(now time.Time)
}

func (s *stubSystem) Name() string  { return s.name }
func (s *stubSystem) Priority() int { return s.priority }
func (s *stubSystem) Update(now time.Time) {
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
	if s.onUpdate != nil {
		s.onUpdate(now)
	}
}
