package symbol

import (
	"fmt"
)

// Shape is the shape variant of a symbol within its level
type Shape uint8

const (
	ShapeSolidBoth Shape = iota
	ShapeSolidLeft
	ShapeLinesBoth
	ShapeWildcard
	ShapeVoid
	ShapeLife
	ShapeCapstone
)

// NormalShapes are the three recipe shapes, in cycle order
var NormalShapes = [3]Shape{ShapeSolidBoth, ShapeSolidLeft, ShapeLinesBoth}

var shapeSuffix = [...]string{
	ShapeSolidBoth: "_SOLID_BOTH",
	ShapeSolidLeft: "_SOLID_LEFT",
	ShapeLinesBoth: "_LINES_BOTH",
	ShapeWildcard:  "_WILDCARD",
	ShapeVoid:      "_VOID",
	ShapeLife:      "_LIFE",
}

func (s Shape) String() string {
	if int(s) < len(shapeSuffix) && shapeSuffix[s] != "" {
		return shapeSuffix[s][1:]
	}
	if s == ShapeCapstone {
		return "CAPSTONE"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ID is the stable string identity held by tokens
type ID string

const (
	VoidID     ID = "S1_VOID"
	LifeID     ID = "S1_LIFE"
	CapstoneID ID = "LOTUS"
)

// Key is the structured identity of a symbol; IDs are derived from keys, never parsed back
type Key struct {
	Level int
	Shape Shape
}

// ID renders the canonical id for k
func (k Key) ID() ID {
	if k.Shape == ShapeCapstone {
		return CapstoneID
	}
	return ID(fmt.Sprintf("S%d%s", k.Level, shapeSuffix[k.Shape]))
}

// Class is the mutually exclusive behavior class of a symbol
type Class uint8

const (
	ClassNormal Class = iota
	ClassWildcard
	ClassVoid
	ClassLife
	ClassCapstone
)

func (c Class) String() string {
	switch c {
	case ClassNormal:
		return "normal"
	case ClassWildcard:
		return "wildcard"
	case ClassVoid:
		return "void"
	case ClassLife:
		return "life"
	case ClassCapstone:
		return "capstone"
	}
	return "unknown"
}
