package engine

import (
	"time"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// BallView is the read-only render state of a token
type BallView struct {
	ID           uint64       `json:"id"`
	SymbolID     symbol.ID    `json:"symbol"`
	Level        int          `json:"level"`
	Class        symbol.Class `json:"class"`
	Shape        symbol.Shape `json:"shape"`
	Pos          vmath.Vec2   `json:"pos"`
	Vel          vmath.Vec2   `json:"vel"`
	Radius       float64      `json:"radius"`
	Grabbed      bool         `json:"grabbed,omitempty"`
	Captured     bool         `json:"captured,omitempty"`
	Constructing bool         `json:"constructing,omitempty"`
	Trail        []vmath.Vec2 `json:"-"`
}

// ParticleView is the read-only render state of a particle
type ParticleView struct {
	Kind component.ParticleKind `json:"kind"`
	Pos  vmath.Vec2             `json:"pos"`
	Fade float64                `json:"fade"`
	Text string                 `json:"text,omitempty"`
}

// Snapshot is a frame copy handed to renderers and recorders
// It shares nothing mutable with the live state
type Snapshot struct {
	Frame        int64          `json:"frame"`
	Elapsed      time.Duration  `json:"elapsed_ns"`
	Width        float64        `json:"width"`
	Height       float64        `json:"height"`
	Score        int            `json:"score"`
	Lives        int            `json:"lives"`
	LivesEnabled bool           `json:"lives_enabled"`
	HighestLevel int            `json:"highest_level"`
	GameOver     bool           `json:"game_over"`
	Balls        []BallView     `json:"balls"`
	Particles    []ParticleView `json:"particles,omitempty"`
	Wind         []vmath.Vec2   `json:"wind,omitempty"`
	WindFade     float64        `json:"wind_fade,omitempty"`
}

// Snapshot copies the current state; trails and particles are included only when withCosmetics
func (w *World) Snapshot(withCosmetics bool) *Snapshot {
	st := w.State
	cfg := w.Config
	table := w.Table()
	now := w.Now()

	s := &Snapshot{
		Frame:        w.Frame(),
		Elapsed:      st.TotalElapsed,
		Width:        cfg.FieldWidth,
		Height:       cfg.FieldHeight,
		Score:        st.Score,
		Lives:        st.Lives,
		LivesEnabled: cfg.EnableLivesSystem,
		HighestLevel: st.HighestLevel,
		GameOver:     st.GameOver,
		Balls:        make([]BallView, 0, len(st.Balls)),
	}

	for _, b := range st.Balls {
		// Unknown ids render as the zero class and shape
		def, _ := table.Lookup(b.SymbolID)
		v := BallView{
			ID:           uint64(b.ID),
			SymbolID:     b.SymbolID,
			Level:        b.Level,
			Class:        def.Class,
			Shape:        def.Key.Shape,
			Pos:          b.Pos(),
			Vel:          b.Vel(),
			Radius:       b.Radius,
			Grabbed:      b.Grabbed,
			Captured:     b.CapturedByWind,
			Constructing: b.Constructing,
		}
		if withCosmetics && b.Trail.Len() > 0 {
			v.Trail = b.Trail.Points()
		}
		s.Balls = append(s.Balls, v)
	}

	if withCosmetics {
		s.Particles = make([]ParticleView, 0, len(st.Particles))
		for i := range st.Particles {
			p := &st.Particles[i]
			s.Particles = append(s.Particles, ParticleView{
				Kind: p.Kind,
				Pos:  p.Pos,
				Fade: p.Fade(now),
				Text: p.Text,
			})
		}
	}

	if c := st.Wind; c != nil && len(c.Points) > 0 {
		s.Wind = append([]vmath.Vec2(nil), c.Points...)
		s.WindFade = 1
		if !c.Drawing && c.Lifetime > 0 {
			s.WindFade = vmath.Clamp(1-float64(c.Age(now))/float64(c.Lifetime), 0, 1)
		}
	}
	return s
}
