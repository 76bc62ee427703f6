package physics

import (
	"math"

	"github.com/lixenwraith/gogo-ame/core"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// Up is the fallback direction for coincident bodies (screen y grows downward)
var Up = vmath.Vec2{X: 0, Y: -1}

// KnockbackDirection returns the unit vector from source through target, Up when coincident
func KnockbackDirection(source, target vmath.Vec2) vmath.Vec2 {
	return vmath.V2NormalizeOr(vmath.V2Sub(target, source), Up)
}

// Knockback returns an impulse of magnitude strength pointing from source through target
func Knockback(source, target vmath.Vec2, strength float64) vmath.Vec2 {
	return vmath.V2Scale(KnockbackDirection(source, target), strength)
}

// SeparateOverlap pushes overlapping circles apart along the centre line
// Each body moves by the overlap share proportional to the other's mass
func SeparateOverlap(a, b *core.Kinetic, radiusA, radiusB, massA, massB float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	distSq := dx*dx + dy*dy
	minDist := radiusA + radiusB
	if distSq >= minDist*minDist || distSq == 0 {
		return false
	}

	dist := math.Sqrt(distSq)
	overlap := minDist - dist
	nx, ny := dx/dist, dy/dist

	total := massA + massB
	if total == 0 {
		return false
	}
	sepA := overlap * massB / total
	sepB := overlap * massA / total

	a.X -= nx * sepA
	a.Y -= ny * sepA
	b.X += nx * sepB
	b.Y += ny * sepB
	return true
}

// ElasticCollision exchanges the normal velocity components of two approaching bodies
// Tangential components are untouched; separating bodies are left alone
func ElasticCollision(a, b *core.Kinetic, massA, massB float64) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y

	distSq := dx*dx + dy*dy
	if distSq == 0 || massA <= 0 || massB <= 0 {
		return false
	}

	dist := math.Sqrt(distSq)
	nx, ny := dx/dist, dy/dist

	vn := (a.VX-b.VX)*nx + (a.VY-b.VY)*ny
	if vn <= 0 {
		return false
	}

	invA := 1.0 / massA
	invB := 1.0 / massB
	j := 2.0 * vn / (invA + invB)

	a.VX -= j * invA * nx
	a.VY -= j * invA * ny
	b.VX += j * invB * nx
	b.VY += j * invB * ny
	return true
}

// ResolveBounce separates two overlapping circles then applies an elastic exchange, radius as mass
func ResolveBounce(a, b *core.Kinetic, radiusA, radiusB float64) {
	SeparateOverlap(a, b, radiusA, radiusB, radiusA, radiusB)
	ElasticCollision(a, b, radiusA, radiusB)
}
