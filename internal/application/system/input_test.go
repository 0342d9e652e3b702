package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mew/internal/domain/entity"
)

func createTestInputSystem() *InputSystem {
	return NewInputSystem(createTestPhysicsConfig())
}

func TestNewInputSystem(t *testing.T) {
	cfg := createTestPhysicsConfig()
	sys := NewInputSystem(cfg)

	require.NotNil(t, sys)
	assert.Equal(t, cfg, sys.config)
	assert.Nil(t, sys.OnDoubleJump)
}

func TestInputSystem_Movement(t *testing.T) {
	tests := []struct {
		name        string
		startVX     float64
		facingRight bool
		input       entity.Input
		wantVX      float64
		wantFacing  bool
	}{
		{
			name:        "accelerates right",
			input:       entity.Input{Right: true},
			facingRight: true,
			wantVX:      1.2 * 0.82,
			wantFacing:  true,
		},
		{
			name:        "accelerates left and turns",
			input:       entity.Input{Left: true},
			facingRight: true,
			wantVX:      -1.2 * 0.82,
			wantFacing:  false,
		},
		{
			name:        "friction without input",
			startVX:     2,
			facingRight: false,
			wantVX:      2 * 0.82,
			wantFacing:  false,
		},
		{
			name:        "clamps to max speed",
			startVX:     4.5,
			input:       entity.Input{Right: true},
			facingRight: true,
			wantVX:      4.5,
			wantFacing:  true,
		},
		{
			name:        "clamps to negative max speed",
			startVX:     -4.5,
			input:       entity.Input{Left: true},
			facingRight: false,
			wantVX:      -4.5,
			wantFacing:  false,
		},
		{
			name:        "both directions cancel and face right",
			input:       entity.Input{Left: true, Right: true},
			facingRight: false,
			wantVX:      0,
			wantFacing:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := createTestInputSystem()
			p := restingPlayer()
			p.VX = tt.startVX
			p.FacingRight = tt.facingRight

			sys.UpdatePlayer(p, tt.input)

			assert.InDelta(t, tt.wantVX, p.VX, 1e-9)
			assert.Equal(t, tt.wantFacing, p.FacingRight)
		})
	}
}

func TestInputSystem_TopSpeedUnderHeldInput(t *testing.T) {
	sys := createTestInputSystem()
	p := restingPlayer()

	for i := 0; i < 120; i++ {
		sys.UpdatePlayer(p, entity.Input{Right: true})
		require.LessOrEqual(t, p.VX, 4.5)
	}
	// v = (v + 1.2) * 0.82 would settle near 5.47, so the clamp holds it
	assert.Equal(t, 4.5, p.VX)
}

func TestInputSystem_Jump(t *testing.T) {
	jump := entity.Input{Jump: true, JumpPressed: true}

	t.Run("first jump uses full force", func(t *testing.T) {
		sys := createTestInputSystem()
		doubles := 0
		sys.OnDoubleJump = func(x, y float64) { doubles++ }
		p := restingPlayer()

		sys.UpdatePlayer(p, jump)

		assert.Equal(t, -13.0, p.VY)
		assert.Equal(t, 1, p.JumpsLeft)
		assert.Equal(t, 15, p.EarTwitch)
		assert.Zero(t, doubles)
	})

	t.Run("second jump is a double jump", func(t *testing.T) {
		sys := createTestInputSystem()
		var gotX, gotY float64
		doubles := 0
		sys.OnDoubleJump = func(x, y float64) {
			doubles++
			gotX, gotY = x, y
		}
		p := restingPlayer()

		sys.UpdatePlayer(p, jump)
		p.Y = 400
		sys.UpdatePlayer(p, jump)

		assert.Equal(t, -11.0, p.VY)
		assert.Zero(t, p.JumpsLeft)
		assert.Equal(t, 1, doubles)
		assert.Equal(t, p.CenterX(), gotX)
		assert.Equal(t, 438.0, gotY)
	})

	t.Run("no charges left", func(t *testing.T) {
		sys := createTestInputSystem()
		p := restingPlayer()
		p.JumpsLeft = 0
		p.VY = 3

		sys.UpdatePlayer(p, jump)

		assert.Equal(t, 3.0, p.VY)
		assert.Zero(t, p.JumpsLeft)
		assert.Zero(t, p.EarTwitch)
	})

	t.Run("held jump without edge does nothing", func(t *testing.T) {
		sys := createTestInputSystem()
		p := restingPlayer()

		sys.UpdatePlayer(p, entity.Input{Jump: true})

		assert.Zero(t, p.VY)
		assert.Equal(t, 2, p.JumpsLeft)
	})

	t.Run("walking off a ledge keeps the full first jump", func(t *testing.T) {
		sys := createTestInputSystem()
		p := restingPlayer()
		p.OnGround = false
		p.VY = 4

		sys.UpdatePlayer(p, jump)

		assert.Equal(t, -13.0, p.VY)
		assert.Equal(t, 1, p.JumpsLeft)
	})
}
