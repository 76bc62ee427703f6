package component

import (
	"time"

	"github.com/lixenwraith/gogo-ame/core"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// BallID identifies a token for the lifetime of a game
type BallID uint64

// Ball is a falling token; it holds a symbol id, never a definition reference
type Ball struct {
	ID       BallID
	SymbolID symbol.ID
	Level    int

	core.Kinetic
	Radius float64

	Grabbed            bool
	CapturedByWind     bool
	WindImmuneUntil    time.Time
	GravityImmuneUntil time.Time
	Manipulated        bool
	InPlayfield        bool
	Constructing       bool
	CreatedAt          time.Time

	Trail Trail
}

// Pos returns the centre
func (b *Ball) Pos() vmath.Vec2 {
	return vmath.Vec2{X: b.X, Y: b.Y}
}

// Vel returns the velocity
func (b *Ball) Vel() vmath.Vec2 {
	return vmath.Vec2{X: b.VX, Y: b.VY}
}

func (b *Ball) WindImmune(now time.Time) bool {
	return now.Before(b.WindImmuneUntil)
}

func (b *Ball) GravityImmune(now time.Time) bool {
	return now.Before(b.GravityImmuneUntil)
}

// Contains reports whether p lies inside the token
func (b *Ball) Contains(p vmath.Vec2) bool {
	return vmath.V2Dist(b.Pos(), p) <= b.Radius
}
