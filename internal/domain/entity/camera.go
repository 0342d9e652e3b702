package entity

// Camera is the top-left corner of the view in world coordinates
type Camera struct {
	X, Y float64
}

// Follow eases the camera toward (targetX, targetY) and clamps it to [0, maxX] x [0, maxY]
func (c *Camera) Follow(targetX, targetY, lerp, maxX, maxY float64) {
	c.X += (targetX - c.X) * lerp
	c.Y += (targetY - c.Y) * lerp
	c.X = clamp(c.X, 0, maxX)
	c.Y = clamp(c.Y, 0, maxY)
}

func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
