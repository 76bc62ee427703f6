package input

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/render"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func fixedView(v render.Viewport) func() render.Viewport {
	return func() render.Viewport { return v }
}

// 80x24 cells over an 800x600 field: 10x25 per cell
var testView = render.Viewport{Cols: 80, Rows: 24, Width: 800, Height: 600}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func press(col, row int) *tcell.EventMouse {
	return tcell.NewEventMouse(col, row, tcell.Button1, tcell.ModNone)
}

func lift(col, row int) *tcell.EventMouse {
	return tcell.NewEventMouse(col, row, tcell.ButtonNone, tcell.ModNone)
}

func near(a, b vmath.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestTranslateKeys(t *testing.T) {
	a := NewAdapter(nil, fixedView(testView))

	tests := []struct {
		name  string
		ev    tcell.Event
		want  IntentType
		spawn symbol.Key
	}{
		{"q quits", runeKey('q'), IntentQuit, symbol.Key{}},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit, symbol.Key{}},
		{"space pauses", runeKey(' '), IntentPause, symbol.Key{}},
		{"m mutes", runeKey('m'), IntentToggleMute, symbol.Key{}},
		{"2 spawns", runeKey('2'), IntentSpawn, symbol.Key{Level: 1, Shape: symbol.ShapeSolidLeft}},
		{"v spawns void", runeKey('v'), IntentSpawn, symbol.Key{Level: 1, Shape: symbol.ShapeVoid}},
		{"unbound rune", runeKey('z'), IntentNone, symbol.Key{}},
		{"resize", tcell.NewEventResize(100, 30), IntentResize, symbol.Key{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Translate(tt.ev)
			if got.Type != tt.want {
				t.Fatalf("Type = %v, want %v", got.Type, tt.want)
			}
			if got.Spawn != tt.spawn {
				t.Errorf("Spawn = %+v, want %+v", got.Spawn, tt.spawn)
			}
		})
	}
}

func TestTranslateMouseGesture(t *testing.T) {
	a := NewAdapter(nil, fixedView(testView))

	down := a.Translate(press(10, 4))
	if down.Type != IntentPointerDown {
		t.Fatalf("press = %v, want PointerDown", down.Type)
	}
	if !near(down.Pos, vmath.V2(105, 112.5)) {
		t.Errorf("press pos = %+v, want cell centre (105,112.5)", down.Pos)
	}
	if !a.Pressed() {
		t.Error("adapter should be pressed")
	}

	if got := a.Translate(press(10, 4)); got.Type != IntentNone {
		t.Errorf("same-cell motion = %v, want none", got.Type)
	}

	drag := a.Translate(press(12, 4))
	if drag.Type != IntentPointerDrag || !near(drag.Pos, vmath.V2(125, 112.5)) {
		t.Errorf("drag = %+v", drag)
	}

	// Release below the field lands on its last row
	up := a.Translate(lift(12, 30))
	if up.Type != IntentPointerUp || !near(up.Pos, vmath.V2(125, 587.5)) {
		t.Errorf("release = %+v", up)
	}
	if a.Pressed() {
		t.Error("adapter still pressed after release")
	}

	if got := a.Translate(lift(12, 4)); got.Type != IntentNone {
		t.Errorf("release without press = %v", got.Type)
	}
}

func TestTranslateMouseIgnoresHUD(t *testing.T) {
	a := NewAdapter(nil, fixedView(testView))
	if got := a.Translate(press(5, 24)); got.Type != IntentNone {
		t.Errorf("press on HUD row = %v, want none", got.Type)
	}
	if a.Pressed() {
		t.Error("HUD press should not start a gesture")
	}

	b := NewAdapter(nil, fixedView(render.Viewport{}))
	if got := b.Translate(press(1, 1)); got.Type != IntentNone {
		t.Errorf("press with no viewport = %v", got.Type)
	}
}

func TestIntentWorld(t *testing.T) {
	for _, it := range []IntentType{IntentQuit, IntentPause, IntentRestart, IntentToggleMute, IntentResize} {
		if (Intent{Type: it}).World() {
			t.Errorf("%v should not be a world intent", it)
		}
	}
	for _, it := range []IntentType{IntentSpawn, IntentPointerDown, IntentPointerDrag, IntentPointerUp} {
		if !(Intent{Type: it}).World() {
			t.Errorf("%v should be a world intent", it)
		}
	}
}

func newWorld(t *testing.T) *engine.World {
	t.Helper()
	return engine.NewWorld(config.Default(),
		engine.WithRand(vmath.NewFastRand(3)),
		engine.WithClock(engine.NewManualClock(epoch)))
}

func run(w *engine.World, c *Controller, in Intent) {
	if cmd := c.Command(in); cmd != nil {
		cmd(w)
	}
}

func TestControllerGrabAndThrow(t *testing.T) {
	w := newWorld(t)
	id, _ := w.Table().IDFor(symbol.Key{Level: 1, Shape: symbol.ShapeSolidBoth})
	b, ok := w.NewBall(id, vmath.V2(200, 200), epoch)
	if !ok {
		t.Fatal("NewBall failed")
	}
	w.State.AddBall(b)

	c := NewController(nil)
	run(w, c, Intent{Type: IntentPointerDown, Pos: vmath.V2(200, 200)})
	if !c.Grabbing() || !b.Grabbed || w.State.Grabbed != b.ID {
		t.Fatal("press on token should grab it")
	}
	if w.State.Wind != nil {
		t.Error("grab must not start a wind curve")
	}

	run(w, c, Intent{Type: IntentPointerDrag, Pos: vmath.V2(240, 200)})
	if b.X != 240 || b.Y != 200 {
		t.Errorf("dragged to (%v,%v), want (240,200)", b.X, b.Y)
	}

	run(w, c, Intent{Type: IntentPointerUp, Pos: vmath.V2(240, 200)})
	if c.Grabbing() || b.Grabbed || w.State.Grabbed != 0 {
		t.Error("release should drop the token")
	}
	want := 40 * w.Config.ThrowMultiplier
	if math.Abs(b.VX-want) > 1e-9 || b.VY != 0 {
		t.Errorf("throw = (%v,%v), want (%v,0)", b.VX, b.VY, want)
	}
}

func TestControllerDrawsWind(t *testing.T) {
	w := newWorld(t)
	c := NewController(nil)

	run(w, c, Intent{Type: IntentPointerDown, Pos: vmath.V2(100, 100)})
	if c.Grabbing() {
		t.Fatal("press on empty space should not grab")
	}
	if w.State.Wind == nil || !w.State.Wind.Drawing {
		t.Fatal("press on empty space should start drawing")
	}

	run(w, c, Intent{Type: IntentPointerDrag, Pos: vmath.V2(150, 100)})
	run(w, c, Intent{Type: IntentPointerUp, Pos: vmath.V2(200, 100)})

	curve := w.State.Wind
	if curve.Drawing {
		t.Error("curve should be finalized on release")
	}
	if len(curve.Points) != 3 {
		t.Errorf("points = %d, want 3", len(curve.Points))
	}
	if curve.Lifetime <= 0 {
		t.Errorf("lifetime = %v, want > 0", curve.Lifetime)
	}
}

type stubSpawner struct {
	ids []symbol.ID
}

func (s *stubSpawner) SpawnSymbol(id symbol.ID, now time.Time) *component.Ball {
	s.ids = append(s.ids, id)
	return nil
}

func TestControllerSpawn(t *testing.T) {
	w := newWorld(t)
	sp := &stubSpawner{}
	c := NewController(sp)

	run(w, c, Intent{Type: IntentSpawn, Spawn: symbol.Key{Level: 1, Shape: symbol.ShapeVoid}})
	run(w, c, Intent{Type: IntentSpawn, Spawn: symbol.Key{Level: 40, Shape: symbol.ShapeSolidBoth}})

	if len(sp.ids) != 1 || sp.ids[0] != symbol.VoidID {
		t.Errorf("spawned %v, want [%s]", sp.ids, symbol.VoidID)
	}

	if cmd := c.Command(Intent{Type: IntentPause}); cmd != nil {
		t.Error("front-end intents should not produce commands")
	}
}

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
runes:
  x: pause
  "4": spawn 2 lines_both
  space: restart
  q: none
  k: capstone
keys:
  esc: none
  f1: mute
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig: %v", err)
	}
	kt := MergeKeyTable(DefaultKeyTable(), override)

	if e := kt.Runes['x']; e.Intent != IntentPause {
		t.Errorf("x = %v, want pause", e.Intent)
	}
	if e := kt.Runes['4']; e.Intent != IntentSpawn || e.Spawn != (symbol.Key{Level: 2, Shape: symbol.ShapeLinesBoth}) {
		t.Errorf("4 = %+v", e)
	}
	if e := kt.Runes[' ']; e.Intent != IntentRestart {
		t.Errorf("space = %v, want restart", e.Intent)
	}
	if e := kt.Runes['k']; e.Spawn.Shape != symbol.ShapeCapstone {
		t.Errorf("k = %+v, want capstone", e)
	}
	if _, ok := kt.Runes['q']; ok {
		t.Error("q should be unbound")
	}
	if _, ok := kt.SpecialKeys[tcell.KeyEscape]; ok {
		t.Error("esc should be unbound")
	}
	if e := kt.SpecialKeys[tcell.KeyF1]; e.Intent != IntentToggleMute {
		t.Errorf("f1 = %v, want mute", e.Intent)
	}

	// Defaults are untouched
	if _, ok := DefaultKeyTable().Runes['q']; !ok {
		t.Error("merge mutated the base table")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	bad := map[string]string{
		"unknown action": "runes:\n  x: jump\n",
		"long rune":      "runes:\n  xy: quit\n",
		"unknown key":    "keys:\n  hyper: quit\n",
		"spawn arity":    "runes:\n  x: spawn 2\n",
		"spawn level":    "runes:\n  x: spawn 32 solid_both\n",
		"spawn shape":    "runes:\n  x: spawn 2 round\n",
		"extra args":     "runes:\n  x: quit now\n",
		"bad yaml":       "runes: [",
	}
	for name, doc := range bad {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadKeyConfig([]byte(doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadKeyFileDefaults(t *testing.T) {
	kt, err := LoadKeyFile("")
	if err != nil {
		t.Fatal(err)
	}
	if e, _ := kt.Lookup(runeKey('p')); e.Intent != IntentPause {
		t.Errorf("p = %v, want pause", e.Intent)
	}
	if _, err := LoadKeyFile(t.TempDir() + "/missing.yaml"); err == nil {
		t.Error("missing keymap file should error")
	}
}
