package render

import (
	"math"

	"github.com/lixenwraith/gogo-ame/vmath"
)

// Viewport maps field coordinates onto a grid of terminal cells
type Viewport struct {
	Cols, Rows    int
	Width, Height float64
}

// Valid reports whether the grid and field are both non-empty
func (v Viewport) Valid() bool {
	return v.Cols > 0 && v.Rows > 0 && v.Width > 0 && v.Height > 0
}

// CellSize is the field extent of one cell
func (v Viewport) CellSize() (w, h float64) {
	return v.Width / float64(v.Cols), v.Height / float64(v.Rows)
}

// ToCell returns the cell containing p; ok is false outside the grid
func (v Viewport) ToCell(p vmath.Vec2) (col, row int, ok bool) {
	if !v.Valid() {
		return 0, 0, false
	}
	col = int(math.Floor(p.X / v.Width * float64(v.Cols)))
	row = int(math.Floor(p.Y / v.Height * float64(v.Rows)))
	ok = col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
	return col, row, ok
}

// ToField returns the field point at the centre of a cell
func (v Viewport) ToField(col, row int) vmath.Vec2 {
	cw, ch := v.CellSize()
	return vmath.Vec2{
		X: (float64(col) + 0.5) * cw,
		Y: (float64(row) + 0.5) * ch,
	}
}
