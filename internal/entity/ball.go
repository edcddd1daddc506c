package entity

import "math"

// Ball defaults.
const (
	DefaultVX     = 180.0
	DefaultVY     = 220.0
	DefaultRadius = 24.0

	MinRadius    = 16.0
	RadiusFactor = 0.08

	StartXFrac = 0.30
	StartYFrac = 0.35
)

// Walls is a bitmask of the surface edges touched during one step.
type Walls uint8

const (
	WallLeft Walls = 1 << iota
	WallRight
	WallTop
	WallBottom
)

// Horizontal reports whether a left or right wall was hit.
func (w Walls) Horizontal() bool { return w&(WallLeft|WallRight) != 0 }

// Vertical reports whether a top or bottom wall was hit.
func (w Walls) Vertical() bool { return w&(WallTop|WallBottom) != 0 }

// Ball is a circle moving in surface space. Velocities are in units/second.
type Ball struct {
	X, Y   float64
	Radius float64
	VX, VY float64
}

func NewBall() *Ball {
	return &Ball{
		Radius: DefaultRadius,
		VX:     DefaultVX,
		VY:     DefaultVY,
	}
}

// Fit recomputes the radius from the surface size.
func (b *Ball) Fit(w, h float64) {
	b.Radius = math.Max(MinRadius, math.Min(w, h)*RadiusFactor)
}

// Place puts the ball at its starting point for a w x h surface.
func (b *Ball) Place(w, h float64) {
	b.X = w * StartXFrac
	b.Y = h * StartYFrac
}

// Clamp pulls the ball into [r, dim-r] on each axis. On a surface smaller
// than the ball the position collapses to r.
func (b *Ball) Clamp(w, h float64) {
	b.X = clamp(b.X, b.Radius, math.Max(b.Radius, w-b.Radius))
	b.Y = clamp(b.Y, b.Radius, math.Max(b.Radius, h-b.Radius))
}

// Advance integrates position over delta seconds and reflects off the walls
// of a w x h surface, X before Y, at most one bounce per axis.
func (b *Ball) Advance(delta, w, h float64) Walls {
	b.X += b.VX * delta
	b.Y += b.VY * delta

	var hit Walls
	if b.X+b.Radius >= w {
		b.X = w - b.Radius
		b.VX = -b.VX
		hit |= WallRight
	} else if b.X-b.Radius <= 0 {
		b.X = b.Radius
		b.VX = -b.VX
		hit |= WallLeft
	}

	if b.Y+b.Radius >= h {
		b.Y = h - b.Radius
		b.VY = -b.VY
		hit |= WallBottom
	} else if b.Y-b.Radius <= 0 {
		b.Y = b.Radius
		b.VY = -b.VY
		hit |= WallTop
	}
	return hit
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
