package component

import (
	"math"
	"time"

	"github.com/lixenwraith/gogo-ame/vmath"
)

// WindCurve is an operator-drawn polyline force field
type WindCurve struct {
	Points    []vmath.Vec2
	CreatedAt time.Time
	Lifetime  time.Duration
	Drawing   bool

	length float64
}

// NewWindCurve starts a curve at p
func NewWindCurve(p vmath.Vec2, now time.Time) *WindCurve {
	return &WindCurve{
		Points:    []vmath.Vec2{p},
		CreatedAt: now,
		Drawing:   true,
	}
}

// Append adds p when it lies farther than minDist from the last point
func (w *WindCurve) Append(p vmath.Vec2, minDist float64) bool {
	if len(w.Points) == 0 {
		w.Points = append(w.Points, p)
		return true
	}
	last := w.Points[len(w.Points)-1]
	d := vmath.V2Dist(last, p)
	if d <= minDist {
		return false
	}
	w.Points = append(w.Points, p)
	w.length += d
	return true
}

// Length is the total path length
func (w *WindCurve) Length() float64 {
	return w.length
}

// Finalize ends drawing and fixes the lifetime from path length
func (w *WindCurve) Finalize(base, perPixel time.Duration) {
	w.Drawing = false
	w.Lifetime = base + time.Duration(w.length*float64(perPixel))
}

// Expired reports whether the curve is past its lifetime; a curve being drawn never expires
func (w *WindCurve) Expired(now time.Time) bool {
	if w.Drawing {
		return false
	}
	return now.Sub(w.CreatedAt) > w.Lifetime
}

// Active reports whether the curve can exert force at now
func (w *WindCurve) Active(now time.Time) bool {
	return len(w.Points) >= 2 && !w.Expired(now)
}

// Strength scales with length so long strokes push harder
func (w *WindCurve) Strength(base, per100px float64) float64 {
	return base + per100px*w.length/100
}

// Age returns elapsed time since creation
func (w *WindCurve) Age(now time.Time) time.Duration {
	return now.Sub(w.CreatedAt)
}

// CurveHit is the closest-point query result
type CurveHit struct {
	Point    vmath.Vec2
	Dir      vmath.Vec2 // unit tangent of the segment
	Distance float64
	Segment  int
	Segments int
}

// Closest projects p onto every segment and returns the globally nearest hit
// ok is false for curves with fewer than 2 points
func (w *WindCurve) Closest(p vmath.Vec2) (hit CurveHit, ok bool) {
	n := len(w.Points) - 1
	if n < 1 {
		return CurveHit{}, false
	}
	best := math.Inf(1)
	for i := 0; i < n; i++ {
		a, b := w.Points[i], w.Points[i+1]
		c, _ := vmath.ClosestOnSegment(p, a, b)
		d := vmath.V2Dist(p, c)
		if d < best {
			best = d
			hit = CurveHit{
				Point:    c,
				Dir:      vmath.V2Normalize(vmath.V2Sub(b, a)),
				Distance: d,
				Segment:  i,
				Segments: n,
			}
		}
	}
	return hit, true
}

// TurnAngleAt returns the turn in degrees at the newest point, looking back lookback points
func (w *WindCurve) TurnAngleAt(lookback int) float64 {
	n := len(w.Points)
	if lookback < 1 || n < 2*lookback+1 {
		return 0
	}
	a := w.Points[n-1-2*lookback]
	b := w.Points[n-1-lookback]
	c := w.Points[n-1]
	return vmath.TurnAngle(a, b, c)
}
