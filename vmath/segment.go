package vmath

import "math"

// ClosestOnSegment projects p onto segment ab, t clamped to [0,1]
// Degenerate segments return a
func ClosestOnSegment(p, a, b Vec2) (closest Vec2, t float64) {
	ab := V2Sub(b, a)
	lenSq := V2MagSq(ab)
	if lenSq == 0 {
		return a, 0
	}
	t = V2Dot(V2Sub(p, a), ab) / lenSq
	t = Clamp(t, 0, 1)
	return V2Add(a, V2Scale(ab, t)), t
}

// PolylineLength sums segment lengths
func PolylineLength(points []Vec2) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += V2Dist(points[i-1], points[i])
	}
	return total
}

// TurnAngle returns the unsigned angle in degrees between direction a->b and b->c
// Returns 0 when either leg has no length
func TurnAngle(a, b, c Vec2) float64 {
	d1 := V2Sub(b, a)
	d2 := V2Sub(c, b)
	m1, m2 := V2Mag(d1), V2Mag(d2)
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := Clamp(V2Dot(d1, d2)/(m1*m2), -1, 1)
	return math.Acos(cos) * 180 / math.Pi
}

// CirclesOverlap reports whether two circles intersect with centre separation above eps
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64, eps float64) (bool, float64) {
	d := V2Dist(a, b)
	return d < ra+rb && d > eps, d
}
