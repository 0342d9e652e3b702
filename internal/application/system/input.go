package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}
	attackKeys  = []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ, ebiten.KeyX}
	restartKeys = []ebiten.Key{ebiten.KeyR}
)

// InputSystem handles player input
type InputSystem struct {
	config *config.PhysicsConfig

	// OnDoubleJump fires on every air jump with the bottom-center of the player
	OnDoubleJump func(x, y float64)
}

// NewInputSystem creates a new input system
func NewInputSystem(cfg *config.PhysicsConfig) *InputSystem {
	return &InputSystem{config: cfg}
}

// GetInput reads the current keyboard state
func (s *InputSystem) GetInput() entity.Input {
	return entity.Input{
		Left:           anyPressed(leftKeys),
		Right:          anyPressed(rightKeys),
		Jump:           anyPressed(jumpKeys),
		Attack:         anyPressed(attackKeys),
		Restart:        anyPressed(restartKeys),
		JumpPressed:    anyJustPressed(jumpKeys),
		AttackPressed:  anyJustPressed(attackKeys),
		RestartPressed: anyJustPressed(restartKeys),
	}
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// UpdatePlayer applies held movement and the jump edge to the player
func (s *InputSystem) UpdatePlayer(player *entity.Player, input entity.Input) {
	s.handleMovement(player, input)
	s.handleJump(player, input)
}

// handleMovement accelerates on held keys, then always applies friction and the speed clamp
func (s *InputSystem) handleMovement(player *entity.Player, input entity.Input) {
	mv := s.config.Movement

	if input.Left {
		player.VX -= mv.Acceleration
		player.FacingRight = false
	}
	if input.Right {
		player.VX += mv.Acceleration
		player.FacingRight = true
	}

	player.VX *= mv.Friction
	if player.VX > mv.MaxSpeed {
		player.VX = mv.MaxSpeed
	} else if player.VX < -mv.MaxSpeed {
		player.VX = -mv.MaxSpeed
	}
}

// handleJump spends one jump charge on the jump edge.
// Any jump after the first in a chain uses the weaker double-jump force.
func (s *InputSystem) handleJump(player *entity.Player, input entity.Input) {
	if !input.JumpPressed || player.JumpsLeft <= 0 {
		return
	}

	jump := s.config.Jump
	isDouble := player.JumpsLeft < jump.MaxJumps
	if isDouble {
		player.VY = -jump.DoubleForce
	} else {
		player.VY = -jump.Force
	}
	player.JumpsLeft--
	player.EarTwitch = s.config.Feedback.JumpEarTwitch

	if isDouble && s.OnDoubleJump != nil {
		s.OnDoubleJump(player.CenterX(), player.Y+player.H)
	}
}
