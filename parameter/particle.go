package parameter

// Particle bursts (count, speed in px/frame)
const (
	ConstructionParticleCount = 25
	ConstructionParticleSpeed = 4.0

	ExplosionParticleCount = 50
	ExplosionParticleSpeed = 7.0

	DebrisParticleCount = 15
	DebrisParticleSpeed = 3.0

	HighestLevelParticleCount    = 100
	HighestLevelParticleSpeed    = 10.0
	HighestLevelParticleLifetime = 2500

	AngleSnapParticleCount = 25
	AngleSnapParticleSpeed = 4.0
)

// Particle lifetimes and motion
const (
	// ParticleLifetimeMs is the default particle lifetime
	ParticleLifetimeMs = 1000

	// ParticleFriction damps particle velocity every frame
	ParticleFriction = 0.96

	// ConstructionAnimationMs is how long a freshly combined token plays its build-up
	ConstructionAnimationMs = 500

	ScorePopupLifetimeMs  = 1200
	ScorePopupUpwardSpeed = -0.8

	WindParticleLifetimeMs = 2000
	WindParticlesPerFrame  = 1
	WindParticleSpread     = 30.0
	WindParticleBaseSpeed  = 1.5
)
