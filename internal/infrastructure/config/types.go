package config

import "math"

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Combat   CombatConfig    `json:"combat"`
	Damage   DamageConfig    `json:"damage"`
	EnemyAI  EnemyAIConfig   `json:"enemyAI"`
	Effects  EffectsConfig   `json:"effects"`
	Camera   CameraConfig    `json:"camera"`
	Feedback FeedbackConfig  `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `json:"gravity"`      // added to VY every tick
	MaxFallSpeed float64 `json:"maxFallSpeed"` // VY clamp, shared by player and enemies
}

type MovementConfig struct {
	Acceleration float64 `json:"acceleration"`
	Friction     float64 `json:"friction"` // VX multiplier applied every tick
	MaxSpeed     float64 `json:"maxSpeed"`
}

type JumpConfig struct {
	Force       float64 `json:"force"`       // first jump, applied as -Force
	DoubleForce float64 `json:"doubleForce"` // every later jump
	MaxJumps    int     `json:"maxJumps"`
}

// CombatConfig configures the three-phase tail slash
type CombatConfig struct {
	WindupFrames   int     `json:"windupFrames"`
	SlashFrames    int     `json:"slashFrames"`
	RecoveryFrames int     `json:"recoveryFrames"`
	Cooldown       int     `json:"cooldown"`
	Range          float64 `json:"range"`
	RangeSlack     float64 `json:"rangeSlack"`
	ArcPi          float64 `json:"arcPi"` // full arc width in multiples of π
	WindupDamping  float64 `json:"windupDamping"`
	TailOffsetX    float64 `json:"tailOffsetX"`
	TailOffsetY    float64 `json:"tailOffsetY"`
}

// Arc returns the full arc width in radians
func (c CombatConfig) Arc() float64 {
	return math.Pi * c.ArcPi
}

// Reach returns the strict distance bound of a hit
func (c CombatConfig) Reach() float64 {
	return c.Range + c.RangeSlack
}

type DamageConfig struct {
	InvincibleFrames int     `json:"invincibleFrames"`
	ContactDamage    int     `json:"contactDamage"`
	FallDamage       int     `json:"fallDamage"`
	KnockbackX       float64 `json:"knockbackX"`
	KnockbackY       float64 `json:"knockbackY"`
	PlayerFallMargin float64 `json:"playerFallMargin"`
	EnemyFallMargin  float64 `json:"enemyFallMargin"`
}

type EnemyAIConfig struct {
	LedgeInset     float64 `json:"ledgeInset"`
	LedgeTolerance float64 `json:"ledgeTolerance"`
	NudgeFactor    float64 `json:"nudgeFactor"`
	FadeFrames     int     `json:"fadeFrames"`
}

type EffectsConfig struct {
	Drag       float64     `json:"drag"`
	EnemyDeath BurstConfig `json:"enemyDeath"`
	HitSpark   BurstConfig `json:"hitSpark"`
	Damage     BurstConfig `json:"damage"`
	DoubleJump BurstConfig `json:"doubleJump"`
	Dust       DustConfig  `json:"dust"`
}

// BurstConfig describes a radial particle burst
type BurstConfig struct {
	Count     int     `json:"count"`
	SpeedMult float64 `json:"speedMult"`
	Gravity   float64 `json:"gravity"`
	Life      int     `json:"life"`
	Color     string  `json:"color"` // #rrggbb
}

// DustConfig describes the landing puff
type DustConfig struct {
	Count     int     `json:"count"`
	Spread    float64 `json:"spread"`
	SpeedX    float64 `json:"speedX"`
	SpeedY    float64 `json:"speedY"`
	Gravity   float64 `json:"gravity"`
	Life      int     `json:"life"`
	SizeMin   float64 `json:"sizeMin"`
	SizeRange float64 `json:"sizeRange"`
	Color     string  `json:"color"`
}

type CameraConfig struct {
	Lerp        float64 `json:"lerp"`
	AnchorX     float64 `json:"anchorX"` // player sits at this fraction of the view width
	AnchorY     float64 `json:"anchorY"`
	BottomSlack float64 `json:"bottomSlack"`
}

// FeedbackConfig holds cosmetic animation counters
type FeedbackConfig struct {
	LandSquishFrames int     `json:"landSquishFrames"`
	JumpEarTwitch    int     `json:"jumpEarTwitch"`
	AttackEarTwitch  int     `json:"attackEarTwitch"`
	RunFrameInterval int     `json:"runFrameInterval"`
	RunFrames        int     `json:"runFrames"`
	RunThreshold     float64 `json:"runThreshold"`
}
