package audio

import (
	"github.com/lixenwraith/gogo-ame/event"
)

// Cue is a sound keyed to a game outcome
type Cue uint8

const (
	CueNone Cue = iota
	CueCombine
	CueEliminate
	CueDegrade
	CueDestroy
	CueBounce
	CueLifeGained
	CueLifeLost
	CueLevelUp
	CueWindSnap
	CueGameOver
	cueCount
)

var cueNames = [cueCount]string{
	CueNone:       "none",
	CueCombine:    "combine",
	CueEliminate:  "eliminate",
	CueDegrade:    "degrade",
	CueDestroy:    "destroy",
	CueBounce:     "bounce",
	CueLifeGained: "life_gained",
	CueLifeLost:   "life_lost",
	CueLevelUp:    "level_up",
	CueWindSnap:   "wind_snap",
	CueGameOver:   "game_over",
}

func (c Cue) String() string {
	if c < cueCount {
		return cueNames[c]
	}
	return "unknown"
}

// ParseCue resolves a cue name; false for unknown names
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return CueNone, false
}

var cueEvents = map[event.EventType]Cue{
	event.EventCombine:      CueCombine,
	event.EventEliminate:    CueEliminate,
	event.EventDegrade:      CueDegrade,
	event.EventDestroy:      CueDestroy,
	event.EventBounce:       CueBounce,
	event.EventLifeGained:   CueLifeGained,
	event.EventLifeLost:     CueLifeLost,
	event.EventHighestLevel: CueLevelUp,
	event.EventWindSnap:     CueWindSnap,
	event.EventGameOver:     CueGameOver,
}

// CueFor maps an event to its cue and the level used for pitch
func CueFor(ev event.GameEvent) (Cue, int) {
	cue, ok := cueEvents[ev.Type]
	if !ok {
		return CueNone, 0
	}
	level := 1
	switch p := ev.Payload.(type) {
	case *event.CombinePayload:
		level = p.Level
	case *event.LevelPayload:
		level = p.Level
	case *event.BallPayload:
		level = p.Level
	}
	return cue, level
}

// cueEventTypes lists the events with a cue, for router subscription
func cueEventTypes() []event.EventType {
	out := make([]event.EventType, 0, len(cueEvents))
	for t := range cueEvents {
		out = append(out, t)
	}
	return out
}
