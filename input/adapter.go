package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gogo-ame/render"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// Adapter translates raw tcell events into intents
// Mouse cells are mapped to field coordinates through the viewport the renderer last used
type Adapter struct {
	keys     *KeyTable
	viewport func() render.Viewport

	pressed bool
	lastCol int
	lastRow int
}

// NewAdapter creates an adapter; nil keys uses DefaultKeyTable
func NewAdapter(keys *KeyTable, viewport func() render.Viewport) *Adapter {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Adapter{keys: keys, viewport: viewport}
}

// Pressed reports whether the primary button is held
func (a *Adapter) Pressed() bool { return a.pressed }

// Translate converts one event; IntentNone for anything unbound
func (a *Adapter) Translate(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e, ok := a.keys.Lookup(ev)
		if !ok {
			return Intent{}
		}
		return Intent{Type: e.Intent, Spawn: e.Spawn}

	case *tcell.EventMouse:
		return a.mouse(ev)

	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (a *Adapter) mouse(ev *tcell.EventMouse) Intent {
	col, row := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !a.pressed:
		v := a.viewport()
		if row >= v.Rows || !v.Valid() {
			return Intent{}
		}
		a.pressed = true
		a.lastCol, a.lastRow = col, row
		return Intent{Type: IntentPointerDown, Pos: v.ToField(col, row)}

	case down:
		if col == a.lastCol && row == a.lastRow {
			return Intent{}
		}
		a.lastCol, a.lastRow = col, row
		return Intent{Type: IntentPointerDrag, Pos: a.clamped(col, row)}

	case a.pressed:
		a.pressed = false
		return Intent{Type: IntentPointerUp, Pos: a.clamped(col, row)}
	}
	return Intent{}
}

// clamped maps a cell that may lie in the HUD or off-grid onto the field edge
func (a *Adapter) clamped(col, row int) vmath.Vec2 {
	v := a.viewport()
	col = min(max(col, 0), max(v.Cols-1, 0))
	row = min(max(row, 0), max(v.Rows-1, 0))
	return v.ToField(col, row)
}
