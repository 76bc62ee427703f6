package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/gogo-ame/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventScore, Frame: int64(i)})
	}
	if q.Len() != 5 {
		t.Fatalf("len = %d", q.Len())
	}
	evs := q.Consume()
	if len(evs) != 5 {
		t.Fatalf("consumed %d", len(evs))
	}
	for i, ev := range evs {
		if ev.Frame != int64(i) {
			t.Errorf("event %d has frame %d", i, ev.Frame)
		}
	}
	if q.Consume() != nil || q.Len() != 0 {
		t.Error("queue should be empty")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewEventQueue()
	total := parameter.EventQueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventBounce, Frame: int64(i)})
	}
	evs := q.Consume()
	if len(evs) != parameter.EventQueueSize {
		t.Fatalf("consumed %d, want %d", len(evs), parameter.EventQueueSize)
	}
	if evs[0].Frame != 10 {
		t.Errorf("oldest surviving frame = %d, want 10", evs[0].Frame)
	}
	if q.Dropped() != 10 {
		t.Errorf("dropped = %d, want 10", q.Dropped())
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				q.Push(GameEvent{Type: EventDestroy})
			}
		}()
	}
	wg.Wait()

	if n := q.Drain(func(GameEvent) {}); n != 400 {
		t.Fatalf("drained %d, want 400", n)
	}
}

func TestEventTypeNames(t *testing.T) {
	if EventCombine.String() != "Combine" {
		t.Errorf("name = %s", EventCombine)
	}
	if et, ok := GetEventType("GameOver"); !ok || et != EventGameOver {
		t.Errorf("lookup = %v %v", et, ok)
	}
	if EventType(999).String() != "EventType(999)" {
		t.Error("unknown type should format numerically")
	}
}
