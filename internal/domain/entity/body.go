package entity

// Body represents the physical body of an actor.
// Position is the top-left corner in world pixels; velocity is pixels per tick.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64

	OnGround bool
}

// Collidable is anything with a world-space bounding box
type Collidable interface {
	AABB() Rect
}

// Movable is a collidable actor whose body is integrated by the physics system
type Movable interface {
	Collidable
	Kinematics() *Body
}

// AABB returns the body's bounding box
func (b *Body) AABB() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Kinematics returns the body itself so embedding structs satisfy Movable
func (b *Body) Kinematics() *Body {
	return b
}

// CenterX returns the horizontal center of the body
func (b *Body) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center of the body
func (b *Body) CenterY() float64 {
	return b.Y + b.H/2
}

// SetPos moves the body to (x, y) and zeroes its velocity
func (b *Body) SetPos(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
}

// Player represents the player-controlled cat
type Player struct {
	Body

	FacingRight bool
	JumpsLeft   int

	HP         int
	MaxHP      int
	Invincible int // frames of damage immunity left
	Dead       bool

	// Attack
	Attacking      bool
	AttackTimer    int
	AttackCooldown int
	AttackPhase    AttackPhase
	AttackAngle    float64

	// Cosmetic counters, never read by gameplay
	RunFrame   int
	RunTimer   int
	LandSquish int
	EarTwitch  int
}

// NewPlayer creates a player at the spawn point with full health
func NewPlayer(x, y, w, h float64, maxHP, maxJumps int) *Player {
	return &Player{
		Body: Body{
			X: x,
			Y: y,
			W: w,
			H: h,
		},
		FacingRight: true,
		JumpsLeft:   maxJumps,
		HP:          maxHP,
		MaxHP:       maxHP,
	}
}

// IsInvincible returns true if player is currently immune to damage
func (p *Player) IsInvincible() bool {
	return p.Invincible > 0
}

// FacingSign returns +1 when facing right, -1 otherwise
func (p *Player) FacingSign() float64 {
	if p.FacingRight {
		return 1
	}
	return -1
}
