package physics

import (
	"github.com/lixenwraith/gogo-ame/core"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// Integrate advances position by one frame of velocity
func Integrate(k *core.Kinetic) {
	k.X += k.VX
	k.Y += k.VY
}

// ApplyImpulse adds velocity
func ApplyImpulse(k *core.Kinetic, vx, vy float64) {
	k.VX += vx
	k.VY += vy
}

// SetImpulse replaces velocity
func SetImpulse(k *core.Kinetic, vx, vy float64) {
	k.VX = vx
	k.VY = vy
}

// ApplyFriction damps both velocity axes
func ApplyFriction(k *core.Kinetic, friction float64) {
	k.VX *= friction
	k.VY *= friction
}

// Pos returns position as a vector
func Pos(k *core.Kinetic) vmath.Vec2 {
	return vmath.Vec2{X: k.X, Y: k.Y}
}

// Vel returns velocity as a vector
func Vel(k *core.Kinetic) vmath.Vec2 {
	return vmath.Vec2{X: k.VX, Y: k.VY}
}

// MomentumVelocity returns the mass-weighted average velocity of two bodies
func MomentumVelocity(a *core.Kinetic, massA float64, b *core.Kinetic, massB float64) (vx, vy float64) {
	total := massA + massB
	if total == 0 {
		return (a.VX + b.VX) / 2, (a.VY + b.VY) / 2
	}
	return (a.VX*massA + b.VX*massB) / total, (a.VY*massA + b.VY*massB) / total
}
