// Package input turns tcell events into game intents and world commands
package input

import (
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Front-end intents, handled by the program
	IntentQuit         // q, Esc, Ctrl+C
	IntentPause        // p, Space
	IntentRestart      // r
	IntentToggleMute   // m
	IntentToggleTrails // t
	IntentResize       // terminal resize

	// World intents, turned into loop commands
	IntentSpawn       // 1-3 level-1 shapes, v void, l life, c capstone
	IntentPointerDown // left button pressed
	IntentPointerDrag // moved while held
	IntentPointerUp   // released
)

var intentNames = [...]string{
	IntentNone:         "none",
	IntentQuit:         "quit",
	IntentPause:        "pause",
	IntentRestart:      "restart",
	IntentToggleMute:   "toggle_mute",
	IntentToggleTrails: "toggle_trails",
	IntentResize:       "resize",
	IntentSpawn:        "spawn",
	IntentPointerDown:  "pointer_down",
	IntentPointerDrag:  "pointer_drag",
	IntentPointerUp:    "pointer_up",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent is one translated input event
type Intent struct {
	Type  IntentType
	Pos   vmath.Vec2 // field coordinates for pointer intents
	Spawn symbol.Key // for IntentSpawn
}

// World reports whether the intent mutates the simulation
func (i Intent) World() bool {
	return i.Type >= IntentSpawn
}
