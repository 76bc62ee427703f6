// Package config holds the flat tunable bag read by every system each frame
package config

import (
	"time"

	"github.com/lixenwraith/gogo-ame/parameter"
	"github.com/lixenwraith/gogo-ame/symbol"
)

// Config is a flat named-parameter bag
// Systems read it every frame, so a swapped config takes effect on the next step
type Config struct {
	// Playfield
	FieldWidth  float64 `yaml:"field_width"`
	FieldHeight float64 `yaml:"field_height"`

	// Gravity & motion
	BaseBallRadius                float64 `yaml:"base_ball_radius"`
	TerminalVelocity              float64 `yaml:"terminal_velocity"`
	TerminalVelocitySymbol        float64 `yaml:"terminal_velocity_symbol"`
	Friction                      float64 `yaml:"friction"`
	GravityMassEffect             float64 `yaml:"gravity_mass_effect"`
	EnableZeroGravityMode         bool    `yaml:"enable_zero_gravity_mode"`
	VoidSpeedMultiplier           float64 `yaml:"void_speed_multiplier"`
	LifeSymbolFallSpeedMultiplier float64 `yaml:"life_symbol_fall_speed_multiplier"`
	SizeIncreasePerLevel          float64 `yaml:"size_increase_per_level"`
	ThrowMultiplier               float64 `yaml:"throw_multiplier"`

	// Wind curve
	WindInfluenceRadius  float64       `yaml:"wind_influence_radius"`
	WindMaxSpeed         float64       `yaml:"wind_max_speed"`
	WindBaseStrength     float64       `yaml:"wind_base_strength"`
	WindStrengthPer100px float64       `yaml:"wind_strength_per_100px"`
	WindCouplingStrength float64       `yaml:"wind_coupling_strength"`
	WindArrivalDistance  float64       `yaml:"wind_arrival_distance"`
	WindForceFalloff     float64       `yaml:"wind_force_falloff"`
	WindBaseLifetime     time.Duration `yaml:"wind_base_lifetime"`
	WindLifetimePerPixel time.Duration `yaml:"wind_lifetime_per_pixel"`
	MinPointDistance     float64       `yaml:"min_point_distance"`
	EnableAngleSnapping  bool          `yaml:"enable_angle_snapping"`
	MaxWindCurveAngle    float64       `yaml:"max_wind_curve_angle"`
	WindAngleLookback    int           `yaml:"wind_angle_lookback"`
	EnableWindSparkles   bool          `yaml:"enable_wind_sparkles"`

	WindGravityImmunity       time.Duration `yaml:"wind_gravity_immunity"`
	LevitationLevelMultiplier time.Duration `yaml:"levitation_level_multiplier"`

	// Sideways wind
	EnableSidewaysWind        bool    `yaml:"enable_sideways_wind"`
	SidewaysWindStrength      float64 `yaml:"sideways_wind_strength"`
	WindOscillationAmplitude  float64 `yaml:"wind_oscillation_amplitude"`
	WindOscillationFrequency1 float64 `yaml:"wind_oscillation_frequency_1"`
	WindOscillationFrequency2 float64 `yaml:"wind_oscillation_frequency_2"`

	// Collision policy flags
	EnableCollision             bool          `yaml:"enable_collision"`
	EnableImmunity              bool          `yaml:"enable_immunity"`
	EnableDegradation           bool          `yaml:"enable_degradation"`
	EnableHardDegradation       bool          `yaml:"enable_hard_degradation"`
	EnableWildcard              bool          `yaml:"enable_wildcard"`
	EnableSimpleCombinationMode bool          `yaml:"enable_simple_combination_mode"`
	EnableExplosions            bool          `yaml:"enable_explosions"`
	EnableEliminationScoring    bool          `yaml:"enable_elimination_scoring"`
	DegradationKnockback        float64       `yaml:"degradation_knockback"`
	DegradationWindImmunity     time.Duration `yaml:"degradation_wind_immunity"`

	// Symbols
	MaxSymbolLevel     int     `yaml:"max_symbol_level"`
	MandalaInnerRadius float64 `yaml:"mandala_inner_radius"`
	MandalaCurveAmount float64 `yaml:"mandala_curve_amount"`
	EnableCapstone     bool    `yaml:"enable_capstone"`

	// Spawner; a non-positive interval disables timed spawns
	BallCreationInterval     time.Duration `yaml:"ball_creation_interval"`
	VoidSymbolSpawnRate      float64       `yaml:"void_symbol_spawn_rate"`
	LifeSymbolSpawnRate      float64       `yaml:"life_symbol_spawn_rate"`
	EnableVariableVoidSize   bool          `yaml:"enable_variable_void_size"`
	VoidBallRadiusMultiplier float64       `yaml:"void_ball_radius_multiplier"`
	VoidSizeMultiplierMin    float64       `yaml:"void_size_multiplier_min"`
	VoidSizeMultiplierMax    float64       `yaml:"void_size_multiplier_max"`

	// Lives
	EnableLivesSystem  bool `yaml:"enable_lives_system"`
	InitialLives       int  `yaml:"initial_lives"`
	MaxLives           int  `yaml:"max_lives"`
	MinLevelToLoseLife int  `yaml:"min_level_to_lose_life"`

	// Cosmetics
	EnableParticles         bool `yaml:"enable_particles"`
	EnableBallTrails        bool `yaml:"enable_ball_trails"`
	EnableBallTrailsForVoid bool `yaml:"enable_ball_trails_for_void"`
	BallTrailLength         int  `yaml:"ball_trail_length"`
}

// Default returns the stock tuning
func Default() *Config {
	return &Config{
		FieldWidth:  parameter.DefaultFieldWidth,
		FieldHeight: parameter.DefaultFieldHeight,

		BaseBallRadius:                parameter.DefaultBaseBallRadius,
		TerminalVelocity:              parameter.DefaultTerminalVelocity,
		TerminalVelocitySymbol:        parameter.DefaultTerminalVelocitySymbol,
		Friction:                      parameter.DefaultFriction,
		GravityMassEffect:             parameter.DefaultGravityMassEffect,
		EnableZeroGravityMode:         true,
		VoidSpeedMultiplier:           parameter.DefaultVoidSpeedMultiplier,
		LifeSymbolFallSpeedMultiplier: parameter.DefaultLifeFallMultiplier,
		SizeIncreasePerLevel:          parameter.DefaultSizeIncreasePerLevel,
		ThrowMultiplier:               parameter.DefaultThrowMultiplier,

		WindInfluenceRadius:  parameter.DefaultWindInfluenceRadius,
		WindMaxSpeed:         parameter.DefaultWindMaxSpeed,
		WindBaseStrength:     parameter.DefaultWindBaseStrength,
		WindStrengthPer100px: parameter.DefaultWindStrengthPer100px,
		WindCouplingStrength: parameter.DefaultWindCouplingStrength,
		WindArrivalDistance:  parameter.DefaultWindArrivalDistance,
		WindForceFalloff:     parameter.DefaultWindForceFalloff,
		WindBaseLifetime:     parameter.DefaultWindBaseLifetimeMs * time.Millisecond,
		WindLifetimePerPixel: time.Duration(parameter.DefaultWindLifetimePerPixelMs * float64(time.Millisecond)),
		MinPointDistance:     parameter.DefaultMinPointDistance,
		EnableAngleSnapping:  true,
		MaxWindCurveAngle:    parameter.DefaultMaxWindCurveAngle,
		WindAngleLookback:    parameter.DefaultWindAngleLookback,

		WindGravityImmunity:       parameter.DefaultWindGravityImmunityMs * time.Millisecond,
		LevitationLevelMultiplier: parameter.DefaultLevitationLevelMs * time.Millisecond,

		EnableSidewaysWind:        true,
		SidewaysWindStrength:      parameter.DefaultSidewaysWindStrength,
		WindOscillationAmplitude:  parameter.DefaultWindOscillationAmplitude,
		WindOscillationFrequency1: parameter.DefaultWindOscillationFrequency1,
		WindOscillationFrequency2: parameter.DefaultWindOscillationFrequency2,

		EnableCollision:         true,
		EnableImmunity:          true,
		DegradationKnockback:    parameter.DefaultDegradationKnockback,
		DegradationWindImmunity: parameter.DefaultDegradeWindImmunityMs * time.Millisecond,

		MaxSymbolLevel:     parameter.DefaultMaxSymbolLevel,
		MandalaInnerRadius: parameter.DefaultMandalaInnerRadius,
		MandalaCurveAmount: parameter.DefaultMandalaCurveAmount,

		BallCreationInterval:     parameter.DefaultBallCreationIntervalMs * time.Millisecond,
		VoidSymbolSpawnRate:      parameter.DefaultVoidSpawnRate,
		LifeSymbolSpawnRate:      parameter.DefaultLifeSpawnRate,
		EnableVariableVoidSize:   true,
		VoidBallRadiusMultiplier: parameter.DefaultVoidRadiusMultiplier,
		VoidSizeMultiplierMin:    parameter.DefaultVoidSizeMultiplierMin,
		VoidSizeMultiplierMax:    parameter.DefaultVoidSizeMultiplierMax,

		InitialLives:       parameter.DefaultInitialLives,
		MaxLives:           parameter.DefaultMaxLives,
		MinLevelToLoseLife: parameter.DefaultMinLevelToLoseLife,

		EnableParticles:         true,
		EnableBallTrails:        true,
		EnableBallTrailsForVoid: true,
		BallTrailLength:         parameter.DefaultBallTrailLength,
	}
}

// Clone returns an independent copy
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// SymbolParams extracts the inputs of symbol generation
func (c *Config) SymbolParams() symbol.Params {
	return symbol.Params{
		MaxLevel:           c.MaxSymbolLevel,
		MandalaInnerRadius: c.MandalaInnerRadius,
		MandalaCurveAmount: c.MandalaCurveAmount,
		EnableCapstone:     c.EnableCapstone,
	}
}

// NeedsSymbolRegen reports whether moving from old to next changes the generated symbol table
func NeedsSymbolRegen(old, next *Config) bool {
	return old.SymbolParams() != next.SymbolParams()
}

// SpawnIntervalChanged reports whether the spawn timer must be reset
func SpawnIntervalChanged(old, next *Config) bool {
	return old.BallCreationInterval != next.BallCreationInterval
}
