package entity

import "math"

// Rect is an axis-aligned rectangle in world coordinates (top-left origin, y down)
type Rect struct {
	X, Y, W, H float64
}

// CenterX returns the horizontal center of the rect
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center of the rect
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether two rects intersect with nonzero area.
// Rects that only share an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Axis identifies the axis a collision was resolved along
type Axis int

const (
	AxisNone Axis = iota
	AxisX
	AxisY
)

// Separation is the outcome of resolving one actor/platform overlap.
// Displacement is the signed distance the actor was pushed along Axis.
type Separation struct {
	Axis         Axis
	Displacement float64
}

// Landed returns true if the actor was pushed up onto the platform's top surface
func (s Separation) Landed() bool {
	return s.Axis == AxisY && s.Displacement < 0
}

// HitHead returns true if the actor was pushed down out of the platform's underside
func (s Separation) HitHead() bool {
	return s.Axis == AxisY && s.Displacement > 0
}

// Resolve pushes body out of platform along the axis of least penetration.
// Horizontal resolution zeroes VX; vertical velocity is left to the caller.
// Equal depths resolve vertically. Non-overlapping pairs are left untouched.
func Resolve(body *Body, platform Rect) Separation {
	if !Overlaps(body.AABB(), platform) {
		return Separation{}
	}

	ox := body.CenterX() - platform.CenterX()
	oy := body.CenterY() - platform.CenterY()
	hw := (body.W + platform.W) / 2
	hh := (body.H + platform.H) / 2
	dx := hw - math.Abs(ox)
	dy := hh - math.Abs(oy)

	if dx < dy {
		shift := sign(ox) * dx
		body.X += shift
		body.VX = 0
		return Separation{Axis: AxisX, Displacement: shift}
	}

	shift := sign(oy) * dy
	body.Y += shift
	return Separation{Axis: AxisY, Displacement: shift}
}

// ResolveAll runs Resolve against every overlapping platform in order
// and passes each separation to react, which may be nil.
func ResolveAll(body *Body, platforms []Rect, react func(Separation)) {
	for _, p := range platforms {
		if !Overlaps(body.AABB(), p) {
			continue
		}
		sep := Resolve(body, p)
		if react != nil {
			react(sep)
		}
	}
}

// AngleDiff returns a-b wrapped to [-π, π]
func AngleDiff(a, b float64) float64 {
	d := a - b
	for d > math.Pi {
		d -= 2 * math.Pi
	}
	for d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
