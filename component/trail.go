package component

import (
	"github.com/lixenwraith/gogo-ame/vmath"
)

// Trail is a bounded position history; the oldest point is dropped once full
type Trail struct {
	points []vmath.Vec2
	head   int // index of oldest when full
	full   bool
}

// Push records p, evicting the oldest when len reaches limit
// A limit <= 0 clears the trail
func (t *Trail) Push(p vmath.Vec2, limit int) {
	if limit <= 0 {
		t.Reset()
		return
	}
	if cap(t.points) != limit {
		t.resize(limit)
	}
	if !t.full {
		t.points = append(t.points, p)
		if len(t.points) == limit {
			t.full = true
			t.head = 0
		}
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % limit
}

// resize keeps the newest points that fit a new limit
func (t *Trail) resize(limit int) {
	old := t.Points()
	if len(old) > limit {
		old = old[len(old)-limit:]
	}
	t.points = make([]vmath.Vec2, len(old), limit)
	copy(t.points, old)
	t.head = 0
	t.full = len(t.points) == limit
}

func (t *Trail) Len() int {
	return len(t.points)
}

// Points returns the history oldest first
func (t *Trail) Points() []vmath.Vec2 {
	out := make([]vmath.Vec2, 0, len(t.points))
	if !t.full {
		return append(out, t.points...)
	}
	out = append(out, t.points[t.head:]...)
	return append(out, t.points[:t.head]...)
}

func (t *Trail) Reset() {
	t.points = nil
	t.head = 0
	t.full = false
}
