package system

import (
	"math"

	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

// CombatSystem runs the player's tail slash and all damage rules
type CombatSystem struct {
	config *config.PhysicsConfig
	level  *entity.Level
	timing entity.AttackTiming

	// Event callbacks
	OnAttackStart   func(player *entity.Player)
	OnEnemyKilled   func(enemy *entity.Enemy)
	OnPlayerDamaged func(player *entity.Player, amount int)
	OnPlayerFell    func(player *entity.Player)
}

// NewCombatSystem creates a new combat system
func NewCombatSystem(cfg *config.PhysicsConfig, level *entity.Level) *CombatSystem {
	return &CombatSystem{
		config: cfg,
		level:  level,
		timing: entity.AttackTiming{
			Windup:   cfg.Combat.WindupFrames,
			Slash:    cfg.Combat.SlashFrames,
			Recovery: cfg.Combat.RecoveryFrames,
		},
	}
}

// Timing returns the attack phase lengths
func (s *CombatSystem) Timing() entity.AttackTiming {
	return s.timing
}

// TryStartAttack starts a slash on the attack edge when idle and off cooldown.
// Returns true if an attack started.
func (s *CombatSystem) TryStartAttack(player *entity.Player, input entity.Input) bool {
	if !input.AttackPressed || player.Attacking || player.AttackCooldown > 0 {
		return false
	}

	player.Attacking = true
	player.AttackTimer = s.timing.Total()
	player.AttackCooldown = s.config.Combat.Cooldown
	player.AttackAngle = 0
	if !player.FacingRight {
		player.AttackAngle = math.Pi
	}
	player.EarTwitch = s.config.Feedback.AttackEarTwitch

	if s.OnAttackStart != nil {
		s.OnAttackStart(player)
	}
	return true
}

// UpdateAttack advances attack timers and phase, damps windup drift,
// and runs the hit test on the first slash frame. Returns the number of enemies killed.
func (s *CombatSystem) UpdateAttack(player *entity.Player, enemies []*entity.Enemy) int {
	if player.AttackTimer > 0 {
		player.AttackTimer--
	} else {
		player.Attacking = false
	}
	if player.AttackCooldown > 0 {
		player.AttackCooldown--
	}

	if !player.Attacking {
		player.AttackPhase = entity.PhaseNone
		return 0
	}

	elapsed := s.Elapsed(player)
	player.AttackPhase = s.timing.PhaseAt(elapsed)

	if player.AttackPhase == entity.PhaseWindup {
		player.VX *= s.config.Combat.WindupDamping
	}

	if elapsed != s.timing.Windup {
		return 0
	}
	return s.hitTest(player, enemies)
}

// Elapsed returns frames since the current attack started
func (s *CombatSystem) Elapsed(player *entity.Player) int {
	return s.timing.Total() - player.AttackTimer
}

// Progress returns how far through its current phase the player's attack is
func (s *CombatSystem) Progress(player *entity.Player) float64 {
	if !player.Attacking {
		return 0
	}
	return s.timing.Progress(s.Elapsed(player))
}

// TailOrigin returns the point the slash is measured from
func (s *CombatSystem) TailOrigin(player *entity.Player) (x, y float64) {
	c := s.config.Combat
	return player.CenterX() - player.FacingSign()*c.TailOffsetX, player.CenterY() + c.TailOffsetY
}

// InArc reports whether a point is within the slash's reach and arc
func (s *CombatSystem) InArc(player *entity.Player, x, y float64) bool {
	ox, oy := s.TailOrigin(player)
	dx := x - ox
	dy := y - oy
	if math.Sqrt(dx*dx+dy*dy) >= s.config.Combat.Reach() {
		return false
	}
	diff := entity.AngleDiff(math.Atan2(dy, dx), player.AttackAngle)
	return math.Abs(diff) < s.config.Combat.Arc()/2
}

func (s *CombatSystem) hitTest(player *entity.Player, enemies []*entity.Enemy) int {
	kills := 0
	for _, e := range enemies {
		if !e.Alive {
			continue
		}
		if s.InArc(player, e.CenterX(), e.CenterY()) {
			s.KillEnemy(e)
			kills++
		}
	}
	return kills
}

// KillEnemy kills an enemy by combat and starts its fade
func (s *CombatSystem) KillEnemy(enemy *entity.Enemy) {
	enemy.Kill(s.config.EnemyAI.FadeFrames)
	if s.OnEnemyKilled != nil {
		s.OnEnemyKilled(enemy)
	}
}

// TakeDamage applies damage unless the player is invincible or dead.
// Returns true if the damage landed.
func (s *CombatSystem) TakeDamage(player *entity.Player, amount int) bool {
	if player.IsInvincible() || player.Dead {
		return false
	}

	player.HP -= amount
	player.Invincible = s.config.Damage.InvincibleFrames
	if player.HP <= 0 {
		player.HP = 0
		player.Dead = true
	}

	if s.OnPlayerDamaged != nil {
		s.OnPlayerDamaged(player, amount)
	}
	return true
}

// UpdateDamage counts down invincibility and applies contact damage.
// Each overlapping enemy knocks the player back even when the damage is guarded,
// so the last one in list order decides the knockback.
func (s *CombatSystem) UpdateDamage(player *entity.Player, enemies []*entity.Enemy) {
	if player.Invincible > 0 {
		player.Invincible--
	}
	if player.IsInvincible() {
		return
	}

	dmg := s.config.Damage
	for _, e := range enemies {
		if !e.Alive || !entity.Overlaps(player.AABB(), e.AABB()) {
			continue
		}
		s.TakeDamage(player, dmg.ContactDamage)

		dir := 1.0
		if player.CenterX() < e.CenterX() {
			dir = -1
		}
		player.VX = dir * dmg.KnockbackX
		player.VY = -dmg.KnockbackY
	}
}

// CheckFall damages and respawns a player who dropped below the level.
// Returns true if the player fell.
func (s *CombatSystem) CheckFall(player *entity.Player) bool {
	if player.Y <= s.level.Height+s.config.Damage.PlayerFallMargin {
		return false
	}

	s.TakeDamage(player, s.config.Damage.FallDamage)
	player.SetPos(s.level.SpawnX, s.level.SpawnY)

	if s.OnPlayerFell != nil {
		s.OnPlayerFell(player)
	}
	return true
}
