package system

import (
	"math"

	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

// PhysicsSystem integrates actor bodies against the level's platforms.
// Axes are moved and resolved one after the other, X first.
type PhysicsSystem struct {
	config *config.PhysicsConfig
	level  *entity.Level

	// OnLand fires when the player touches down after being airborne,
	// with the bottom-center point of the player's body.
	OnLand func(x, y float64)
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig, level *entity.Level) *PhysicsSystem {
	return &PhysicsSystem{
		config: cfg,
		level:  level,
	}
}

// ApplyGravity accelerates a body downward, clamped to the max fall speed
func (s *PhysicsSystem) ApplyGravity(m entity.Movable) {
	b := m.Kinematics()
	b.VY += s.config.Physics.Gravity
	if b.VY > s.config.Physics.MaxFallSpeed {
		b.VY = s.config.Physics.MaxFallSpeed
	}
}

// UpdatePlayer applies gravity and moves the player one tick.
// Returns true if the player landed this tick after being airborne.
func (s *PhysicsSystem) UpdatePlayer(player *entity.Player) bool {
	s.ApplyGravity(player)

	// X pass: separations only move the body
	player.X += player.VX
	entity.ResolveAll(&player.Body, s.level.Platforms, nil)

	// Y pass
	wasOnGround := player.OnGround
	player.OnGround = false
	player.Y += player.VY

	landed := false
	entity.ResolveAll(&player.Body, s.level.Platforms, func(sep entity.Separation) {
		if sep.Axis != entity.AxisY {
			return
		}
		player.VY = 0
		if !sep.Landed() {
			return
		}
		player.OnGround = true
		player.JumpsLeft = s.config.Jump.MaxJumps
		if !wasOnGround && !landed {
			landed = true
			player.LandSquish = s.config.Feedback.LandSquishFrames
			if s.OnLand != nil {
				s.OnLand(player.CenterX(), player.Y+player.H)
			}
		}
	})

	// Left world bound
	if player.X < 0 {
		player.X = 0
		player.VX = 0
	}

	return landed
}

// ResolveEnemy runs a single resolution pass over an already integrated enemy.
// OnGround is recomputed from this tick's separations.
func (s *PhysicsSystem) ResolveEnemy(enemy *entity.Enemy) {
	enemy.OnGround = false
	entity.ResolveAll(&enemy.Body, s.level.Platforms, func(sep entity.Separation) {
		if sep.Axis != entity.AxisY {
			return
		}
		enemy.VY = 0
		if sep.Landed() {
			enemy.OnGround = true
		}
	})
}

// Animate advances the player's cosmetic counters
func (s *PhysicsSystem) Animate(player *entity.Player) {
	fb := s.config.Feedback

	if player.EarTwitch > 0 {
		player.EarTwitch--
	}
	if player.LandSquish > 0 {
		player.LandSquish--
	}

	if player.OnGround && math.Abs(player.VX) > fb.RunThreshold {
		player.RunTimer++
		if player.RunTimer > fb.RunFrameInterval {
			player.RunTimer = 0
			if fb.RunFrames > 0 {
				player.RunFrame = (player.RunFrame + 1) % fb.RunFrames
			}
		}
	} else {
		player.RunFrame = 0
		player.RunTimer = 0
	}
}

// IsRunning reports whether the player is grounded and moving fast enough to animate a run
func (s *PhysicsSystem) IsRunning(player *entity.Player) bool {
	return player.OnGround && math.Abs(player.VX) > s.config.Feedback.RunThreshold
}
