package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector in playfield pixel units
type Vec2 struct {
	X, Y float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

func V2Dist(a, b Vec2) float64 {
	return V2Mag(V2Sub(a, b))
}

// V2Normalize returns the unit vector, zero-safe
func V2Normalize(v Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// V2NormalizeOr returns the unit vector, or fallback when v has no length
func V2NormalizeOr(v Vec2, fallback Vec2) Vec2 {
	mag := V2Mag(v)
	if mag == 0 {
		return fallback
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// V2Lerp interpolates between a and b, t unclamped
func V2Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2Reflect returns v reflected off a surface with unit normal n
// v' = v - 2 * dot(v, n) * n
func V2Reflect(v, n Vec2) Vec2 {
	d := 2 * V2Dot(v, n)
	return Vec2{v.X - d*n.X, v.Y - d*n.Y}
}

// V2ClampMag limits vector to maxMag while preserving direction
func V2ClampMag(v Vec2, maxMag float64) Vec2 {
	mag := V2Mag(v)
	if mag <= maxMag || mag == 0 {
		return v
	}
	return V2Scale(v, maxMag/mag)
}

// V2Rotate rotates v by angle radians
func V2Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}
