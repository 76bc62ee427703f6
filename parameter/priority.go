package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityWind      = 10 // Expire curve before it is used as a force source
	PriorityCollision = 20
	PriorityMotion    = 30 // After collision, integrates survivors
	PriorityParticle  = 40 // Cosmetics last
)
