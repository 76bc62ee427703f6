package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/symbol"
)

// KeyEntry describes what a key does
type KeyEntry struct {
	Intent IntentType
	Spawn  symbol.Key
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Non-rune keys (Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'p': {Intent: IntentPause},
			' ': {Intent: IntentPause},
			'r': {Intent: IntentRestart},
			'm': {Intent: IntentToggleMute},
			't': {Intent: IntentToggleTrails},

			'1': {Intent: IntentSpawn, Spawn: symbol.Key{Level: 1, Shape: symbol.ShapeSolidBoth}},
			'2': {Intent: IntentSpawn, Spawn: symbol.Key{Level: 1, Shape: symbol.ShapeSolidLeft}},
			'3': {Intent: IntentSpawn, Spawn: symbol.Key{Level: 1, Shape: symbol.ShapeLinesBoth}},
			'v': {Intent: IntentSpawn, Spawn: symbol.Key{Level: 1, Shape: symbol.ShapeVoid}},
			'l': {Intent: IntentSpawn, Spawn: symbol.Key{Level: 1, Shape: symbol.ShapeLife}},
			'c': {Intent: IntentSpawn, Spawn: symbol.Key{Level: parameter.CapstoneLevel, Shape: symbol.ShapeCapstone}},
		},
	}
}

// Lookup resolves a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (KeyEntry, bool) {
	if ev.Key() == tcell.KeyRune {
		e, ok := kt.Runes[ev.Rune()]
		return e, ok
	}
	e, ok := kt.SpecialKeys[ev.Key()]
	return e, ok
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]KeyEntry, len(kt.SpecialKeys)),
		Runes:       make(map[rune]KeyEntry, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}
