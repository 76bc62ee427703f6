package system

import (
	"github.com/lixenwraith/gogo-ame/engine"
)

// Install registers the frame pipeline on w and returns the timer-driven spawner
func Install(w *engine.World) *SpawnSystem {
	w.AddSystem(NewWindSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewMotionSystem(w))
	w.AddSystem(NewParticleSystem(w))
	return NewSpawnSystem(w)
}
