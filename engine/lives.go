package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/event"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/symbol"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// ShouldLoseLife reports whether destroying b costs a life under the current config
// Void and life tokens never cost a life
func (w *World) ShouldLoseLife(b *component.Ball) bool {
	if !w.Config.EnableLivesSystem || b.Level < w.Config.MinLevelToLoseLife {
		return false
	}
	switch w.Table().ClassOf(b.SymbolID) {
	case symbol.ClassVoid, symbol.ClassLife:
		return false
	}
	return true
}

// LoseLife decrements lives at pos and ends the game when none remain
func (w *World) LoseLife(pos vmath.Vec2) {
	st := w.State
	if st.GameOver || !w.Config.EnableLivesSystem {
		return
	}
	st.Lives--
	w.PushEvent(event.EventLifeLost, &event.LivesPayload{Lives: st.Lives, Pos: pos})

	if st.Lives <= 0 {
		st.Lives = 0
		st.GameOver = true
		w.Log.Info("game over",
			zap.Int("score", st.Score),
			zap.Int("highest_level", st.HighestLevel))
		w.PushEvent(event.EventGameOver, &event.ScorePayload{Total: st.Score, Pos: pos})
	}
}

// GainLife adds a life up to MaxLives; returns false when already capped
func (w *World) GainLife(pos vmath.Vec2) bool {
	st := w.State
	if st.Lives >= w.Config.MaxLives {
		return false
	}
	st.Lives++
	w.PushEvent(event.EventLifeGained, &event.LivesPayload{Lives: st.Lives, Pos: pos})
	return true
}

// AddScore adds delta and floats a popup at pos
func (w *World) AddScore(delta int, pos vmath.Vec2) {
	if delta == 0 {
		return
	}
	w.State.Score += delta
	w.EmitPopup(pos, fmt.Sprintf("+%d", delta))
	w.PushEvent(event.EventScore, &event.ScorePayload{
		Delta: delta,
		Total: w.State.Score,
		Pos:   pos,
	})
}

// RecordLevel raises the high-water mark; true when level is a new record
func (w *World) RecordLevel(level int, pos vmath.Vec2) bool {
	st := w.State
	if level <= st.HighestLevel {
		return false
	}
	st.HighestLevel = level
	w.EmitParticles(component.ParticleCelebrate, pos,
		parameter.HighestLevelParticleCount,
		parameter.HighestLevelParticleSpeed,
		parameter.HighestLevelParticleLifetime)
	w.PushEvent(event.EventHighestLevel, &event.LevelPayload{Level: level, Pos: pos})
	return true
}
