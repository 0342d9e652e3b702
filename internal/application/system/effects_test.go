package system

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mew/internal/domain/entity"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestEffectsSystem() *EffectsSystem {
	cfg := createTestPhysicsConfig()
	return NewEffectsSystem(&cfg.Effects, testRNG())
}

func TestEffectsSystem_BurstCounts(t *testing.T) {
	tests := []struct {
		name  string
		spawn func(s *EffectsSystem)
		want  int
		color color.RGBA
	}{
		{name: "enemy death", spawn: func(s *EffectsSystem) { s.EnemyDeath(10, 10) }, want: 12, color: color.RGBA{R: 0xff, G: 0x66, B: 0x55, A: 0xff}},
		{name: "hit spark", spawn: func(s *EffectsSystem) { s.HitSpark(10, 10) }, want: 14, color: color.RGBA{R: 0xff, G: 0xee, B: 0x44, A: 0xff}},
		{name: "player damaged", spawn: func(s *EffectsSystem) { s.PlayerDamaged(10, 10) }, want: 10, color: color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}},
		{name: "double jump", spawn: func(s *EffectsSystem) { s.DoubleJump(10, 10) }, want: 8, color: color.RGBA{R: 0xaa, G: 0xdd, B: 0xff, A: 0xff}},
		{name: "dust", spawn: func(s *EffectsSystem) { s.Dust(10, 10) }, want: 4, color: color.RGBA{R: 0x88, G: 0x88, B: 0xaa, A: 0xff}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := createTestEffectsSystem()
			tt.spawn(s)

			require.Equal(t, tt.want, s.Len())
			for _, p := range s.Particles() {
				assert.Equal(t, tt.color, p.Color)
				assert.Equal(t, p.MaxLife, p.Life)
			}
		})
	}
}

func TestEffectsSystem_BurstShape(t *testing.T) {
	s := createTestEffectsSystem()
	s.EnemyDeath(100, 200)

	for _, p := range s.Particles() {
		assert.Equal(t, 100.0, p.X)
		assert.Equal(t, 200.0, p.Y)
		assert.Equal(t, 35, p.Life)
		assert.Equal(t, 0.2, p.Gravity)
		assert.GreaterOrEqual(t, p.Size, 2.0)
		assert.Less(t, p.Size, 5.0)

		// speed in [1.5, 6), with an upward bias of 1 on VY
		vy := p.VY + 1
		speed2 := p.VX*p.VX + vy*vy
		assert.GreaterOrEqual(t, speed2, 1.5*1.5-1e-9)
		assert.Less(t, speed2, 6.0*6.0)
	}
}

func TestEffectsSystem_DustBounds(t *testing.T) {
	s := createTestEffectsSystem()
	for i := 0; i < 25; i++ {
		s.Dust(100, 520)
	}

	require.Equal(t, 100, s.Len())
	for _, p := range s.Particles() {
		assert.GreaterOrEqual(t, p.X, 90.0)
		assert.Less(t, p.X, 110.0)
		assert.Equal(t, 520.0, p.Y)
		assert.GreaterOrEqual(t, p.VX, -1.0)
		assert.Less(t, p.VX, 1.0)
		assert.LessOrEqual(t, p.VY, 0.0)
		assert.Greater(t, p.VY, -1.5)
		assert.GreaterOrEqual(t, p.Size, 2.0)
		assert.Less(t, p.Size, 4.0)
		assert.Equal(t, 20, p.Life)
	}
}

func TestEffectsSystem_Update(t *testing.T) {
	s := createTestEffectsSystem()
	s.particles = append(s.particles, entity.Particle{
		X: 0, Y: 0, VX: 2, VY: -1, Gravity: 0.25, Life: 2, MaxLife: 2,
	})

	s.Update()

	require.Equal(t, 1, s.Len())
	p := s.Particles()[0]
	assert.Equal(t, 2.0, p.X)
	assert.Equal(t, -1.0, p.Y)
	assert.Equal(t, -0.75, p.VY)
	assert.InDelta(t, 1.9, p.VX, 1e-12)
	assert.Equal(t, 1, p.Life)
	assert.Equal(t, 0.5, p.Alpha())

	s.Update()
	assert.Zero(t, s.Len(), "expired particles are dropped")
}

func TestEffectsSystem_UpdateKeepsOrder(t *testing.T) {
	s := createTestEffectsSystem()
	for _, life := range []int{1, 3, 1, 2} {
		s.particles = append(s.particles, entity.Particle{Life: life, MaxLife: life, Size: float64(life)})
	}

	s.Update()

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 3.0, s.Particles()[0].Size)
	assert.Equal(t, 2.0, s.Particles()[1].Size)
}

func TestEffectsSystem_Deterministic(t *testing.T) {
	run := func() []entity.Particle {
		s := createTestEffectsSystem()
		s.EnemyDeath(10, 10)
		s.Dust(50, 50)
		s.DoubleJump(0, 0)
		for i := 0; i < 5; i++ {
			s.Update()
		}
		return append([]entity.Particle(nil), s.Particles()...)
	}

	assert.Equal(t, run(), run())
}

func TestEffectsSystem_Reset(t *testing.T) {
	s := createTestEffectsSystem()
	s.HitSpark(0, 0)
	require.NotZero(t, s.Len())

	s.Reset()

	assert.Zero(t, s.Len())
	assert.Empty(t, s.Particles())
}

func TestEffectsSystem_UnknownColorFallsBack(t *testing.T) {
	cfg := createTestPhysicsConfig()
	cfg.Effects.HitSpark.Color = "not-a-color"
	s := NewEffectsSystem(&cfg.Effects, testRNG())

	s.HitSpark(0, 0)

	require.NotZero(t, s.Len())
	assert.Equal(t, color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}, s.Particles()[0].Color)
}
