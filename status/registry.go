package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	KeyFrames        = "sim.frames"
	KeyBalls         = "sim.balls"
	KeyParticles     = "sim.particles"
	KeySpawned       = "spawn.total"
	KeySpawnedVoid   = "spawn.void"
	KeySpawnedLife   = "spawn.life"
	KeyCombines      = "collision.combine"
	KeyEliminations  = "collision.eliminate"
	KeyDegrades      = "collision.degrade"
	KeyDestroyed     = "collision.destroy"
	KeyBounces       = "collision.bounce"
	KeyLifePairs     = "collision.life_pair"
	KeyImmunity      = "collision.immunity"
	KeyBoundaryExits = "motion.boundary"
	KeyWindCaptured  = "wind.captured"
	KeyWindCurves    = "wind.curves"
	KeyEventsDropped = "event.dropped"
	KeyStepMillis    = "sim.step_ms"
	KeyStepPeak      = "sim.step_peak_ms"
	KeyPaused        = "sim.paused"
)

// Registry is the central metrics facade
// Systems cache pointers during construction and write atomics from the frame loop
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// Len returns the number of registered metrics of every type
func (r *Registry) Len() int {
	return r.Bools.Len() + r.Ints.Len() + r.Floats.Len()
}

// Snapshot copies every metric into a plain map for logging and reports
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Len())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *Gauge) { out[k] = v.Load() })
	r.Bools.Range(func(k string, v *atomic.Bool) { out[k] = v.Load() })
	return out
}

// Int returns the current value of an int metric, 0 when unregistered
func (r *Registry) Int(key string) int64 {
	if v, ok := r.Ints.Lookup(key); ok {
		return v.Load()
	}
	return 0
}
