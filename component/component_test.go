package component

import (
	"testing"
	"time"

	"github.com/lixenwraith/gogo-ame/vmath"
)

func TestTrailDropsOldest(t *testing.T) {
	var tr Trail
	for i := 0; i < 5; i++ {
		tr.Push(vmath.V2(float64(i), 0), 3)
	}
	pts := tr.Points()
	if len(pts) != 3 {
		t.Fatalf("len = %d, want 3", len(pts))
	}
	for i, want := range []float64{2, 3, 4} {
		if pts[i].X != want {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i].X, want)
		}
	}
}

func TestTrailShrinkKeepsNewest(t *testing.T) {
	var tr Trail
	for i := 0; i < 6; i++ {
		tr.Push(vmath.V2(float64(i), 0), 6)
	}
	tr.Push(vmath.V2(6, 0), 2)
	pts := tr.Points()
	if len(pts) != 2 || pts[0].X != 5 || pts[1].X != 6 {
		t.Fatalf("points = %v", pts)
	}
	tr.Push(vmath.V2(7, 0), 0)
	if tr.Len() != 0 {
		t.Fatal("zero limit must clear the trail")
	}
}

func TestWindCurveAppendRespectsMinDistance(t *testing.T) {
	w := NewWindCurve(vmath.V2(0, 0), time.Now())
	if w.Append(vmath.V2(5, 0), 10) {
		t.Error("point within min distance accepted")
	}
	if !w.Append(vmath.V2(11, 0), 10) {
		t.Error("point beyond min distance rejected")
	}
	if len(w.Points) != 2 || w.Length() != 11 {
		t.Errorf("points=%d length=%v", len(w.Points), w.Length())
	}
}

func TestWindCurveExpiry(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	w := NewWindCurve(vmath.V2(0, 0), t0)
	w.Append(vmath.V2(100, 0), 10)

	if w.Expired(t0.Add(time.Hour)) {
		t.Fatal("curve being drawn must not expire")
	}

	w.Finalize(0, 5*time.Millisecond)
	if w.Lifetime != 500*time.Millisecond {
		t.Fatalf("lifetime = %v, want 500ms", w.Lifetime)
	}
	if !w.Active(t0.Add(500 * time.Millisecond)) {
		t.Error("curve should be active at exactly its lifetime")
	}
	if !w.Expired(t0.Add(501 * time.Millisecond)) {
		t.Error("curve should expire at t0+501ms")
	}
}

func TestWindCurveClosestPicksGlobalMinimum(t *testing.T) {
	w := NewWindCurve(vmath.V2(0, 0), time.Now())
	w.Append(vmath.V2(100, 0), 1)
	w.Append(vmath.V2(100, 100), 1)

	hit, ok := w.Closest(vmath.V2(95, 60))
	if !ok {
		t.Fatal("expected hit")
	}
	if hit.Segment != 1 || hit.Point != vmath.V2(100, 60) || hit.Distance != 5 {
		t.Errorf("hit = %+v", hit)
	}
	if hit.Dir != vmath.V2(0, 1) || hit.Segments != 2 {
		t.Errorf("dir=%v segments=%d", hit.Dir, hit.Segments)
	}

	single := NewWindCurve(vmath.V2(0, 0), time.Now())
	if _, ok := single.Closest(vmath.V2(1, 1)); ok {
		t.Error("single point curve must not produce a hit")
	}
}

func TestWindCurveStrengthScalesWithLength(t *testing.T) {
	w := NewWindCurve(vmath.V2(0, 0), time.Now())
	w.Append(vmath.V2(200, 0), 10)
	if got := w.Strength(0.1, 0.03); got < 0.1599 || got > 0.1601 {
		t.Errorf("strength = %v, want 0.16", got)
	}
}

func TestWindCurveTurnAngle(t *testing.T) {
	w := NewWindCurve(vmath.V2(0, 0), time.Now())
	w.Append(vmath.V2(20, 0), 1)
	w.Append(vmath.V2(40, 0), 1)
	if a := w.TurnAngleAt(1); a != 0 {
		t.Errorf("straight angle = %v", a)
	}
	w.Append(vmath.V2(20, 0.0001), 1)
	if a := w.TurnAngleAt(1); a < 170 {
		t.Errorf("reversal angle = %v", a)
	}
	if a := w.TurnAngleAt(4); a != 0 {
		t.Errorf("insufficient points should report 0, got %v", a)
	}
}
