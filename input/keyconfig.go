package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/symbol"
)

// keymapFile is the YAML layout of a keymap override
//
//	runes:
//	  x: pause
//	  "4": spawn 2 solid_left
//	  q: none
//	keys:
//	  f1: restart
type keymapFile struct {
	Runes map[string]string `yaml:"runes"`
	Keys  map[string]string `yaml:"keys"`
}

// Rune aliases for keys that are awkward as bare YAML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

var actionNames = map[string]IntentType{
	"none":     IntentNone,
	"quit":     IntentQuit,
	"pause":    IntentPause,
	"restart":  IntentRestart,
	"mute":     IntentToggleMute,
	"trails":   IntentToggleTrails,
	"spawn":    IntentSpawn,
	"capstone": IntentSpawn,
}

var shapeNames = map[string]symbol.Shape{
	"solid_both": symbol.ShapeSolidBoth,
	"solid_left": symbol.ShapeSolidLeft,
	"lines_both": symbol.ShapeLinesBoth,
	"wildcard":   symbol.ShapeWildcard,
	"void":       symbol.ShapeVoid,
	"life":       symbol.ShapeLife,
}

// LoadKeyConfig parses YAML keymap data into a sparse override table
// Unknown actions, key names or shapes are errors
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{}
	if len(raw.Runes) > 0 {
		kt.Runes = make(map[rune]KeyEntry, len(raw.Runes))
		for keyStr, action := range raw.Runes {
			r, err := resolveRune(keyStr)
			if err != nil {
				return nil, fmt.Errorf("runes: key %q: %w", keyStr, err)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("runes: key %q: %w", keyStr, err)
			}
			kt.Runes[r] = entry
		}
	}
	if len(raw.Keys) > 0 {
		kt.SpecialKeys = make(map[tcell.Key]KeyEntry, len(raw.Keys))
		for keyStr, action := range raw.Keys {
			k, ok := keyByName(keyStr)
			if !ok {
				return nil, fmt.Errorf("keys: unknown key name: %q", keyStr)
			}
			entry, err := resolveAction(action)
			if err != nil {
				return nil, fmt.Errorf("keys: key %q: %w", keyStr, err)
			}
			kt.SpecialKeys[k] = entry
		}
	}
	return kt, nil
}

// LoadKeyFile reads a keymap file and merges it over the defaults
// An empty path returns the defaults
func LoadKeyFile(path string) (*KeyTable, error) {
	base := DefaultKeyTable()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	override, err := LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("keymap %s: %w", path, err)
	}
	return MergeKeyTable(base, override), nil
}

func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid rune key: %q (expected single character or alias)", s)
}

// keyByName matches tcell key names case-insensitively ("esc", "ctrl-q", "f1")
func keyByName(name string) (tcell.Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range tcell.KeyNames {
		if strings.ToLower(n) == name {
			return k, true
		}
	}
	return 0, false
}

// resolveAction parses "quit", "spawn <level> <shape>" or "capstone"
func resolveAction(s string) (KeyEntry, error) {
	fields := strings.Fields(strings.ToLower(s))
	if len(fields) == 0 {
		return KeyEntry{}, fmt.Errorf("empty action")
	}
	it, ok := actionNames[fields[0]]
	if !ok {
		return KeyEntry{}, fmt.Errorf("unknown action: %q", fields[0])
	}

	switch fields[0] {
	case "capstone":
		return KeyEntry{Intent: it, Spawn: symbol.Key{Level: parameter.CapstoneLevel, Shape: symbol.ShapeCapstone}}, nil
	case "spawn":
		if len(fields) != 3 {
			return KeyEntry{}, fmt.Errorf("spawn wants <level> <shape>, got %q", s)
		}
		level, err := strconv.Atoi(fields[1])
		if err != nil || level < 1 || level >= parameter.CapstoneLevel {
			return KeyEntry{}, fmt.Errorf("spawn level %q out of range", fields[1])
		}
		shape, ok := shapeNames[fields[2]]
		if !ok {
			return KeyEntry{}, fmt.Errorf("unknown shape: %q", fields[2])
		}
		return KeyEntry{Intent: it, Spawn: symbol.Key{Level: level, Shape: shape}}, nil
	}

	if len(fields) != 1 {
		return KeyEntry{}, fmt.Errorf("action %q takes no arguments", fields[0])
	}
	return KeyEntry{Intent: it}, nil
}

// MergeKeyTable returns base with override applied; "none" entries unbind the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	for k, v := range override.Runes {
		if v.Intent == IntentNone {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.SpecialKeys {
		if v.Intent == IntentNone {
			delete(result.SpecialKeys, k)
		} else {
			result.SpecialKeys[k] = v
		}
	}
	return result
}
