package event

import (
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// BallPayload identifies a single token
type BallPayload struct {
	BallID   uint64     `json:"ball_id"`
	SymbolID symbol.ID  `json:"symbol_id"`
	Level    int        `json:"level"`
	Pos      vmath.Vec2 `json:"pos"`
	Cause    string     `json:"cause,omitempty"`
}

// PairPayload identifies two colliding tokens
type PairPayload struct {
	A   uint64     `json:"a"`
	B   uint64     `json:"b"`
	Pos vmath.Vec2 `json:"pos"`
}

// CombinePayload describes a merge
type CombinePayload struct {
	Inputs [2]symbol.ID `json:"inputs"`
	Result symbol.ID    `json:"result"`
	Level  int          `json:"level"`
	Pos    vmath.Vec2   `json:"pos"`
}

// EliminatePayload describes a same-symbol annihilation
type EliminatePayload struct {
	SymbolID symbol.ID  `json:"symbol_id"`
	Pos      vmath.Vec2 `json:"pos"`
	Exploded int        `json:"exploded"`
	Points   int        `json:"points"`
}

// DegradePayload describes a degrade replacement
type DegradePayload struct {
	From  symbol.ID  `json:"from"`
	To    symbol.ID  `json:"to"`
	Pos   vmath.Vec2 `json:"pos"`
	Cause string     `json:"cause"`
}

// LivesPayload carries the lives counter after a change
type LivesPayload struct {
	Lives int        `json:"lives"`
	Pos   vmath.Vec2 `json:"pos"`
}

// ScorePayload carries a score award and the running total
type ScorePayload struct {
	Delta int        `json:"delta"`
	Total int        `json:"total"`
	Pos   vmath.Vec2 `json:"pos"`
}

// LevelPayload carries a new high-water level
type LevelPayload struct {
	Level int        `json:"level"`
	Pos   vmath.Vec2 `json:"pos"`
}

// PointPayload carries a location
type PointPayload struct {
	Pos vmath.Vec2 `json:"pos"`
}

// WindEndPayload describes a finalized curve
type WindEndPayload struct {
	Points   int     `json:"points"`
	Length   float64 `json:"length"`
	Lifetime int64   `json:"lifetime_ms"`
}

// ConfigAppliedPayload reports which derived state was rebuilt
type ConfigAppliedPayload struct {
	SymbolsRegenerated bool `json:"symbols_regenerated"`
	SpawnIntervalReset bool `json:"spawn_interval_reset"`
}
