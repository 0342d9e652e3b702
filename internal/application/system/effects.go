package system

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/younwookim/mew/internal/domain/entity"
	"github.com/younwookim/mew/internal/infrastructure/config"
)

const (
	burstSizeMin   = 2
	burstSizeRange = 3
)

// EffectsSystem owns the transient particle list.
// Particles are cosmetic; nothing in the simulation reads them.
type EffectsSystem struct {
	config    *config.EffectsConfig
	rng       *rand.Rand
	particles []entity.Particle
	colors    map[string]color.RGBA
}

// NewEffectsSystem creates an effects system drawing randomness from rng
func NewEffectsSystem(cfg *config.EffectsConfig, rng *rand.Rand) *EffectsSystem {
	return &EffectsSystem{
		config:    cfg,
		rng:       rng,
		particles: make([]entity.Particle, 0, 128),
		colors: map[string]color.RGBA{
			cfg.EnemyDeath.Color: config.MustColor(cfg.EnemyDeath.Color),
			cfg.HitSpark.Color:   config.MustColor(cfg.HitSpark.Color),
			cfg.Damage.Color:     config.MustColor(cfg.Damage.Color),
			cfg.DoubleJump.Color: config.MustColor(cfg.DoubleJump.Color),
			cfg.Dust.Color:       config.MustColor(cfg.Dust.Color),
		},
	}
}

// Burst spawns a radial burst of particles at (x, y)
func (s *EffectsSystem) Burst(x, y float64, b config.BurstConfig) {
	c := s.color(b.Color)
	for i := 0; i < b.Count; i++ {
		angle := s.rng.Float64() * math.Pi * 2
		speed := (1 + s.rng.Float64()*3) * b.SpeedMult
		s.particles = append(s.particles, entity.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle)*speed - 1,
			Gravity: b.Gravity,
			Life:    b.Life,
			MaxLife: b.Life,
			Size:    burstSizeMin + s.rng.Float64()*burstSizeRange,
			Color:   c,
		})
	}
}

// Dust spawns the landing puff at a player's feet
func (s *EffectsSystem) Dust(x, y float64) {
	d := s.config.Dust
	c := s.color(d.Color)
	for i := 0; i < d.Count; i++ {
		s.particles = append(s.particles, entity.Particle{
			X:       x + (s.rng.Float64()-0.5)*d.Spread,
			Y:       y,
			VX:      (s.rng.Float64() - 0.5) * d.SpeedX,
			VY:      -s.rng.Float64() * d.SpeedY,
			Gravity: d.Gravity,
			Life:    d.Life,
			MaxLife: d.Life,
			Size:    d.SizeMin + s.rng.Float64()*d.SizeRange,
			Color:   c,
		})
	}
}

// EnemyDeath spawns the burst shown when an enemy is slashed
func (s *EffectsSystem) EnemyDeath(x, y float64) { s.Burst(x, y, s.config.EnemyDeath) }

// HitSpark spawns the spark shown on a successful slash
func (s *EffectsSystem) HitSpark(x, y float64) { s.Burst(x, y, s.config.HitSpark) }

// PlayerDamaged spawns the burst shown when the player takes damage
func (s *EffectsSystem) PlayerDamaged(x, y float64) { s.Burst(x, y, s.config.Damage) }

// DoubleJump spawns the burst shown at the player's feet on an air jump
func (s *EffectsSystem) DoubleJump(x, y float64) { s.Burst(x, y, s.config.DoubleJump) }

// Update advances every particle one tick and drops expired ones in place
func (s *EffectsSystem) Update() {
	kept := s.particles[:0]
	for _, p := range s.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += p.Gravity
		p.VX *= s.config.Drag
		p.Life--
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	s.particles = kept
}

// Particles returns the live particles. The slice is only valid until the next Update.
func (s *EffectsSystem) Particles() []entity.Particle {
	return s.particles
}

// Len returns the number of live particles
func (s *EffectsSystem) Len() int {
	return len(s.particles)
}

// Reset drops every particle
func (s *EffectsSystem) Reset() {
	s.particles = s.particles[:0]
}

func (s *EffectsSystem) color(hex string) color.RGBA {
	if c, ok := s.colors[hex]; ok {
		return c
	}
	return config.MustColor(hex)
}
