package entity

import "image/color"

// Particle is a short-lived cosmetic point. It never affects gameplay.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Gravity float64
	Life    int
	MaxLife int
	Size    float64
	Color   color.RGBA
}

// Alpha returns the remaining life fraction used for fading
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Alive returns true while the particle still has life left
func (p *Particle) Alive() bool {
	return p.Life > 0
}
