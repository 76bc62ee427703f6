package record

import (
	"time"

	"github.com/lixenwraith/gogo-ame/engine"
	"github.com/lixenwraith/gogo-ame/event"
)

// Summary is the outcome of one session
type Summary struct {
	Seed         uint64         `json:"seed"`
	Frames       int64          `json:"frames"`
	Elapsed      time.Duration  `json:"elapsed_ns"`
	Score        int            `json:"score"`
	Lives        int            `json:"lives"`
	HighestLevel int            `json:"highest_level"`
	GameOver     bool           `json:"game_over"`
	Balls        int            `json:"balls"`
	Events       map[string]int `json:"events"`
	Combines     map[int]int    `json:"combines_by_level,omitempty"`
}

// Stats tallies events into a Summary; an engine.EventHandler for all types
type Stats struct {
	sum Summary
}

func NewStats(seed uint64) *Stats {
	return &Stats{sum: Summary{
		Seed:     seed,
		Events:   make(map[string]int),
		Combines: make(map[int]int),
	}}
}

func (s *Stats) EventTypes() []event.EventType { return nil }

func (s *Stats) HandleEvent(ev event.GameEvent) {
	s.sum.Events[ev.Type.String()]++
	if p, ok := ev.Payload.(*event.CombinePayload); ok {
		s.sum.Combines[p.Level]++
	}
}

// Count returns how many events of t were seen
func (s *Stats) Count(t event.EventType) int {
	return s.sum.Events[t.String()]
}

// Finish copies the final world state into the summary and returns it
func (s *Stats) Finish(w *engine.World) Summary {
	st := w.State
	s.sum.Frames = w.Frame()
	s.sum.Elapsed = st.TotalElapsed
	s.sum.Score = st.Score
	s.sum.Lives = st.Lives
	s.sum.HighestLevel = st.HighestLevel
	s.sum.GameOver = st.GameOver
	s.sum.Balls = len(st.Balls)
	return s.sum
}
