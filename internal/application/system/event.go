package system

import "github.com/younwookim/mew/internal/domain/entity"

// Event is a gameplay occurrence reported by a simulation tick
type Event interface {
	isEvent()
}

// AttackStartedEvent is emitted when the player begins a slash
type AttackStartedEvent struct {
	Angle float64
}

func (AttackStartedEvent) isEvent() {}

// EnemyKilledEvent is emitted when a slash kills an enemy
type EnemyKilledEvent struct {
	EnemyID entity.EntityID
	X, Y    float64
}

func (EnemyKilledEvent) isEvent() {}

// PlayerDamagedEvent is emitted when damage gets past the invincibility guard
type PlayerDamagedEvent struct {
	Amount int
	HP     int
}

func (PlayerDamagedEvent) isEvent() {}

// PlayerFellEvent is emitted when the player drops out of the level and respawns
type PlayerFellEvent struct{}

func (PlayerFellEvent) isEvent() {}

// LandedEvent is emitted when the player touches down after being airborne
type LandedEvent struct {
	X, Y float64
}

func (LandedEvent) isEvent() {}

// DoubleJumpEvent is emitted on every air jump
type DoubleJumpEvent struct {
	X, Y float64
}

func (DoubleJumpEvent) isEvent() {}

// EventName returns a short label for logging
func EventName(e Event) string {
	switch e.(type) {
	case AttackStartedEvent:
		return "attack"
	case EnemyKilledEvent:
		return "enemy_killed"
	case PlayerDamagedEvent:
		return "player_damaged"
	case PlayerFellEvent:
		return "player_fell"
	case LandedEvent:
		return "landed"
	case DoubleJumpEvent:
		return "double_jump"
	default:
		return "unknown"
	}
}
