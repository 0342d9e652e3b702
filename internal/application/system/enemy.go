package system

import (
	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

// EnemySystem drives patrol and ledge-detection AI
type EnemySystem struct {
	config  *config.PhysicsConfig
	level   *entity.Level
	physics *PhysicsSystem
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(cfg *config.PhysicsConfig, level *entity.Level, physics *PhysicsSystem) *EnemySystem {
	return &EnemySystem{
		config:  cfg,
		level:   level,
		physics: physics,
	}
}

// Update advances one enemy by one tick.
// Dead enemies only count down their fade timer.
func (s *EnemySystem) Update(enemy *entity.Enemy) {
	if !enemy.Alive {
		enemy.DyingTimer--
		return
	}

	s.physics.ApplyGravity(enemy)
	enemy.X += enemy.VX
	enemy.Y += enemy.VY

	// Patrol bounce
	if enemy.X < enemy.OriginX-enemy.PatrolRange || enemy.X > enemy.OriginX+enemy.PatrolRange {
		enemy.VX *= -1
	}

	// OnGround still holds last tick's result here
	if enemy.OnGround && !s.hasGroundAhead(enemy) {
		enemy.VX *= -1
		enemy.X += enemy.VX * s.config.EnemyAI.NudgeFactor
	}

	s.physics.ResolveEnemy(enemy)

	// Falling out of the level is a silent death: no fade, no particles
	if enemy.Y > s.level.Height+s.config.Damage.EnemyFallMargin {
		enemy.Alive = false
	}
}

// UpdateAll advances every enemy in order
func (s *EnemySystem) UpdateAll(enemies []*entity.Enemy) {
	for _, e := range enemies {
		s.Update(e)
	}
}

// hasGroundAhead probes just inside the leading edge of the enemy's feet
func (s *EnemySystem) hasGroundAhead(enemy *entity.Enemy) bool {
	ai := s.config.EnemyAI
	probeX := enemy.X + ai.LedgeInset
	if enemy.VX > 0 {
		probeX = enemy.X + enemy.W - ai.LedgeInset
	}
	footY := enemy.Y + enemy.H
	return s.level.HasGroundAt(probeX, footY, ai.LedgeTolerance)
}

// CompactEnemies removes enemies that finished fading, preserving order.
// The backing array is reused.
func CompactEnemies(enemies []*entity.Enemy) []*entity.Enemy {
	kept := enemies[:0]
	for _, e := range enemies {
		if !e.Removable() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(enemies); i++ {
		enemies[i] = nil
	}
	return kept
}
