package record

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newWorld(t *testing.T) *engine.World {
	t.Helper()
	return engine.NewWorld(config.Default(),
		engine.WithRand(vmath.NewFastRand(5)),
		engine.WithClock(engine.NewManualClock(epoch)))
}

func readAll(t *testing.T, b *bytes.Buffer) []Line {
	t.Helper()
	var lines []Line
	if err := Read(b, func(l Line) error {
		lines = append(lines, l)
		return nil
	}); err != nil {
		t.Fatalf("Read: %v", err)
	}
	return lines
}

func TestRecorderRoundTrip(t *testing.T) {
	w := newWorld(t)
	var buf bytes.Buffer
	rec := New(&buf, 2)
	w.RegisterHandler(rec)

	b, ok := w.NewBall(symbol.VoidID, vmath.V2(100, 50), epoch)
	if !ok {
		t.Fatal("NewBall failed")
	}
	w.State.AddBall(b)

	rec.WriteHeader(Header{Seed: 5, Started: epoch, Config: w.Config})
	w.PushEvent(event.EventCombine, &event.CombinePayload{
		Inputs: [2]symbol.ID{"S1_SOLID_BOTH", "S1_SOLID_BOTH"},
		Result: "S2_LINES_BOTH",
		Level:  2,
		Pos:    vmath.V2(10, 20),
	})
	w.PushEvent(event.EventWindStart, nil)
	w.DispatchEvents()

	for i := 0; i < 3; i++ {
		rec.Frame(w)
		w.Step(epoch.Add(time.Duration(i) * 16 * time.Millisecond))
	}
	rec.WriteSummary(w.Frame(), NewStats(5).Finish(w))
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	lines := readAll(t, &buf)
	var kinds []string
	for _, l := range lines {
		kinds = append(kinds, l.Kind)
	}
	// Frames 0 and 2 are sampled
	want := []string{KindHeader, KindEvent, KindEvent, KindSnapshot, KindSnapshot, KindSummary}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", kinds, want)
		}
	}
	if rec.Lines() != len(want) {
		t.Errorf("Lines() = %d, want %d", rec.Lines(), len(want))
	}

	h := lines[0].Header
	if h == nil || h.Seed != 5 || h.Config == nil || h.Config.FieldWidth != w.Config.FieldWidth {
		t.Errorf("header = %+v", h)
	}

	if lines[1].Event != "Combine" {
		t.Errorf("event = %q, want Combine", lines[1].Event)
	}
	var p event.CombinePayload
	if err := lines[1].DecodePayload(&p); err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Result != "S2_LINES_BOTH" || p.Level != 2 || p.Pos != vmath.V2(10, 20) {
		t.Errorf("payload = %+v", p)
	}

	if lines[2].Event != "WindStart" || len(lines[2].Payload) != 0 {
		t.Errorf("nil payload line = %+v", lines[2])
	}
	if err := lines[2].DecodePayload(&p); err == nil {
		t.Error("decoding a missing payload should fail")
	}

	snap := lines[3].Snapshot
	if snap == nil || len(snap.Balls) != 1 || snap.Balls[0].SymbolID != symbol.VoidID {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Balls[0].Class != symbol.ClassVoid {
		t.Errorf("class = %v, want void", snap.Balls[0].Class)
	}
	if lines[4].Frame != 2 {
		t.Errorf("second snapshot frame = %d, want 2", lines[4].Frame)
	}

	sum := lines[5].Summary
	if sum == nil || sum.Frames != 3 || sum.Balls != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestRecorderSnapshotsGameOver(t *testing.T) {
	w := newWorld(t)
	var buf bytes.Buffer
	rec := New(&buf, 0)

	rec.Frame(w)
	w.State.GameOver = true
	rec.Frame(w)
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	lines := readAll(t, &buf)
	if len(lines) != 1 || lines[0].Kind != KindSnapshot || !lines[0].Snapshot.GameOver {
		t.Errorf("lines = %+v, want one game-over snapshot", lines)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRecorderStickyError(t *testing.T) {
	rec := New(failingWriter{}, 1)
	rec.HandleEvent(event.GameEvent{Type: event.EventBounce})
	if err := rec.Close(); err == nil {
		t.Error("Close should report the flush failure")
	}
}

func TestReadStopsOnError(t *testing.T) {
	buf := bytes.NewBufferString(`{"kind":"event","frame":1}` + "\n\n" + `{"kind":"event","frame":2}` + "\n")
	stop := errors.New("stop")
	n := 0
	err := Read(buf, func(l Line) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Errorf("err = %v, n = %d", err, n)
	}

	if err := Read(bytes.NewBufferString("{not json\n"), func(Line) error { return nil }); err == nil {
		t.Error("malformed line should fail")
	}
}

func TestStats(t *testing.T) {
	s := NewStats(9)
	s.HandleEvent(event.GameEvent{Type: event.EventCombine, Payload: &event.CombinePayload{Level: 2}})
	s.HandleEvent(event.GameEvent{Type: event.EventCombine, Payload: &event.CombinePayload{Level: 2}})
	s.HandleEvent(event.GameEvent{Type: event.EventCombine, Payload: &event.CombinePayload{Level: 4}})
	s.HandleEvent(event.GameEvent{Type: event.EventLifeLost, Payload: &event.LivesPayload{Lives: 2}})

	if got := s.Count(event.EventCombine); got != 3 {
		t.Errorf("combines = %d, want 3", got)
	}
	if got := s.Count(event.EventDestroy); got != 0 {
		t.Errorf("destroys = %d, want 0", got)
	}

	w := newWorld(t)
	w.State.Score = 42
	sum := s.Finish(w)
	if sum.Seed != 9 || sum.Score != 42 || sum.Combines[2] != 2 || sum.Combines[4] != 1 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.Events["LifeLost"] != 1 {
		t.Errorf("LifeLost = %d, want 1", sum.Events["LifeLost"])
	}
}
