package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/gogo-ame/core"
	"github.com/lixenwraith/gogo-ame/vmath"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMomentumVelocityRadiusWeighted(t *testing.T) {
	a := &core.Kinetic{VX: 2}
	b := &core.Kinetic{VX: -1}

	vx, vy := MomentumVelocity(a, 10, b, 30)
	if !approx(vx, -0.25) || vy != 0 {
		t.Fatalf("velocity = (%v,%v), want (-0.25,0)", vx, vy)
	}
}

func TestKnockbackDirection(t *testing.T) {
	dir := KnockbackDirection(vmath.V2(0, 0), vmath.V2(3, 4))
	if !approx(dir.X, 0.6) || !approx(dir.Y, 0.8) {
		t.Errorf("direction = %v", dir)
	}

	dir = KnockbackDirection(vmath.V2(5, 5), vmath.V2(5, 5))
	if dir != Up {
		t.Errorf("coincident fallback = %v, want straight up", dir)
	}

	kb := Knockback(vmath.V2(0, 0), vmath.V2(0, 10), 2)
	if !approx(kb.Y, 2) || !approx(kb.X, 0) {
		t.Errorf("knockback = %v", kb)
	}
}

func TestSeparateOverlapProportionalToOtherMass(t *testing.T) {
	a := &core.Kinetic{X: 0}
	b := &core.Kinetic{X: 30}

	// radii 10 + 30 = 40, overlap 10; light body moves 3/4 of it
	if !SeparateOverlap(a, b, 10, 30, 10, 30) {
		t.Fatal("expected separation")
	}
	if !approx(a.X, -7.5) || !approx(b.X, 32.5) {
		t.Errorf("positions = %v, %v", a.X, b.X)
	}
	if SeparateOverlap(a, b, 10, 30, 10, 30) {
		t.Error("touching circles must not separate again")
	}
}

func TestElasticCollisionEqualMassSwapsNormal(t *testing.T) {
	a := &core.Kinetic{X: 0, VX: 2, VY: 1}
	b := &core.Kinetic{X: 10, VX: -1, VY: -3}

	if !ElasticCollision(a, b, 5, 5) {
		t.Fatal("approaching bodies must collide")
	}
	if !approx(a.VX, -1) || !approx(b.VX, 2) {
		t.Errorf("normal components = %v, %v", a.VX, b.VX)
	}
	if a.VY != 1 || b.VY != -3 {
		t.Errorf("tangential components changed: %v, %v", a.VY, b.VY)
	}
}

func TestElasticCollisionConservesMomentumAndEnergy(t *testing.T) {
	a := &core.Kinetic{X: 0, Y: 0, VX: 3, VY: 1}
	b := &core.Kinetic{X: 6, Y: 4, VX: -1, VY: 0.5}
	ma, mb := 10.0, 25.0

	px := a.VX*ma + b.VX*mb
	py := a.VY*ma + b.VY*mb
	e := 0.5*ma*(a.VX*a.VX+a.VY*a.VY) + 0.5*mb*(b.VX*b.VX+b.VY*b.VY)

	ElasticCollision(a, b, ma, mb)

	if !approx(px, a.VX*ma+b.VX*mb) || !approx(py, a.VY*ma+b.VY*mb) {
		t.Error("momentum not conserved")
	}
	e2 := 0.5*ma*(a.VX*a.VX+a.VY*a.VY) + 0.5*mb*(b.VX*b.VX+b.VY*b.VY)
	if math.Abs(e-e2) > 1e-6 {
		t.Errorf("energy %v -> %v", e, e2)
	}
}

func TestElasticCollisionIgnoresSeparatingAndCoincident(t *testing.T) {
	a := &core.Kinetic{X: 0, VX: -1}
	b := &core.Kinetic{X: 10, VX: 1}
	if ElasticCollision(a, b, 1, 1) {
		t.Error("separating bodies must not collide")
	}
	c := &core.Kinetic{X: 5, Y: 5, VX: 1}
	d := &core.Kinetic{X: 5, Y: 5, VX: -1}
	if ElasticCollision(c, d, 1, 1) {
		t.Error("coincident bodies must not produce NaN")
	}
	if math.IsNaN(c.VX) || math.IsNaN(d.VX) {
		t.Error("NaN velocity")
	}
}

func TestIntegrateAndFriction(t *testing.T) {
	k := &core.Kinetic{X: 1, Y: 2, VX: 10, VY: -4}
	ApplyFriction(k, 0.5)
	Integrate(k)
	if k.X != 6 || k.Y != 0 {
		t.Errorf("position = (%v,%v)", k.X, k.Y)
	}
}
