package engine

import (
	"time"

	"github.com/lixenwraith/gogo-ame/component"
	"github.com/lixenwraith/gogo-ame/config"
	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/vmath"
)

// GameState is the simulation aggregate root
// Owned by the loop goroutine; systems mutate it only inside World.Step
type GameState struct {
	Balls     []*component.Ball
	Particles []component.Particle

	Score        int
	Lives        int
	HighestLevel int
	TotalElapsed time.Duration
	GameOver     bool

	Wind     *component.WindCurve
	Captured map[component.BallID]struct{}

	// Direct manipulation
	Grabbed      component.BallID
	pointer      vmath.Vec2
	pointerDelta vmath.Vec2

	nextID   component.BallID
	lastStep time.Time

	// Per-pass scratch; cleared by BeginFrame, applied by Reconcile
	removals  map[component.BallID]struct{}
	additions []*component.Ball
}

// NewGameState creates a state initialized from cfg
func NewGameState(cfg *config.Config) *GameState {
	s := &GameState{}
	s.Reset(cfg)
	return s
}

// Reset restores initial values; ids keep increasing across restarts
func (s *GameState) Reset(cfg *config.Config) {
	s.Balls = make([]*component.Ball, 0, parameter.InitialBallCapacity)
	s.Particles = s.Particles[:0]
	s.Score = 0
	s.Lives = cfg.InitialLives
	s.HighestLevel = parameter.InitialHighestLevel
	s.TotalElapsed = 0
	s.GameOver = false
	s.Wind = nil
	s.Captured = make(map[component.BallID]struct{})
	s.Grabbed = 0
	s.pointer = vmath.Vec2{}
	s.pointerDelta = vmath.Vec2{}
	s.lastStep = time.Time{}
	s.removals = make(map[component.BallID]struct{})
	s.additions = s.additions[:0]
}

// NextID allocates a token id
func (s *GameState) NextID() component.BallID {
	s.nextID++
	return s.nextID
}

// BeginFrame clears the pending removal and addition queues
func (s *GameState) BeginFrame() {
	clear(s.removals)
	s.additions = s.additions[:0]
}

// QueueRemove marks b for removal; false when it was already queued
func (s *GameState) QueueRemove(b *component.Ball) bool {
	if _, ok := s.removals[b.ID]; ok {
		return false
	}
	s.removals[b.ID] = struct{}{}
	return true
}

// IsQueued reports whether b is pending removal this pass
func (s *GameState) IsQueued(b *component.Ball) bool {
	_, ok := s.removals[b.ID]
	return ok
}

// QueueAdd defers insertion of b until Reconcile
func (s *GameState) QueueAdd(b *component.Ball) {
	s.additions = append(s.additions, b)
}

// PendingAdds returns tokens queued for insertion
func (s *GameState) PendingAdds() []*component.Ball {
	return s.additions
}

// Reconcile filters queued removals out of the live list, then appends queued additions
func (s *GameState) Reconcile() (removed, added int) {
	if len(s.removals) > 0 {
		kept := s.Balls[:0]
		for _, b := range s.Balls {
			if _, gone := s.removals[b.ID]; gone {
				removed++
				delete(s.Captured, b.ID)
				if s.Grabbed == b.ID {
					s.Grabbed = 0
				}
				continue
			}
			kept = append(kept, b)
		}
		// Drop references held past the new length
		for i := len(kept); i < len(s.Balls); i++ {
			s.Balls[i] = nil
		}
		s.Balls = kept
	}

	added = len(s.additions)
	s.Balls = append(s.Balls, s.additions...)
	s.BeginFrame()
	return removed, added
}

// Find returns the live token with id
func (s *GameState) Find(id component.BallID) *component.Ball {
	if id == 0 {
		return nil
	}
	for _, b := range s.Balls {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// BallAt returns the topmost live token containing p
func (s *GameState) BallAt(p vmath.Vec2) *component.Ball {
	for i := len(s.Balls) - 1; i >= 0; i-- {
		if s.Balls[i].Contains(p) {
			return s.Balls[i]
		}
	}
	return nil
}

// AddBall inserts b outside a frame pass (spawner, tests)
func (s *GameState) AddBall(b *component.Ball) {
	s.Balls = append(s.Balls, b)
}
