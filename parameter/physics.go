package parameter

// Collision geometry
const (
	// CollisionEpsilon is the minimum centre distance treated as a contact; coincident centres are skipped
	CollisionEpsilon = 0.1

	// PlayfieldLatchY is the depth a token must pass before top-edge contact counts as leaving the field
	PlayfieldLatchY = 50.0

	// MinBallRadius floors spawned and degraded token radii
	MinBallRadius = 5.0

	// MinCombinedRadius floors the radius of a token produced by combination
	MinCombinedRadius = 15.0

	// SpawnHeightJitter is the random extra height above the top edge at spawn
	SpawnHeightJitter = 20.0
)

// Default physics tunables, mirrored into config.Default
const (
	DefaultBaseBallRadius         = 14.0
	DefaultTerminalVelocity       = 0.5
	DefaultTerminalVelocitySymbol = 0.25
	DefaultFriction               = 0.97
	DefaultGravityMassEffect      = 1.0
	DefaultVoidSpeedMultiplier    = 1.5
	DefaultLifeFallMultiplier     = 1.5
	DefaultThrowMultiplier        = 0.1
	DefaultDegradationKnockback   = 1.0
	DefaultImmunityKnockback      = 2.5
	DefaultSizeIncreasePerLevel   = 0.1
	DefaultVoidRadiusMultiplier   = 1.0
	DefaultVoidSizeMultiplierMin  = 1.1
	DefaultVoidSizeMultiplierMax  = 1.1
)

// Default wind tunables
const (
	DefaultWindInfluenceRadius       = 28.0
	DefaultWindMaxSpeed              = 2.5
	DefaultWindBaseStrength          = 0.1
	DefaultWindStrengthPer100px      = 0.03
	DefaultWindCouplingStrength      = 0.015
	DefaultWindArrivalDistance       = 100.0
	DefaultWindForceFalloff          = 1.0
	DefaultWindBaseLifetimeMs        = 0
	DefaultWindLifetimePerPixelMs    = 4.0
	DefaultMinPointDistance          = 10.0
	DefaultMaxWindCurveAngle         = 120.0
	DefaultWindAngleLookback         = 4
	DefaultSidewaysWindStrength      = 0.001
	DefaultWindOscillationAmplitude  = 0.006
	DefaultWindOscillationFrequency1 = 0.2
	DefaultWindOscillationFrequency2 = 0.0
	DefaultWindGravityImmunityMs     = 1500
	DefaultLevitationLevelMs         = 1000
	DefaultDegradeWindImmunityMs     = 1000
)
