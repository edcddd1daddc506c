package render

import (
	"image/color"
	"sort"
)

// Paint is a fill style: Solid, *LinearGradient or *RadialGradient.
type Paint interface {
	paint()
}

// Solid is a flat straight-alpha colour.
type Solid color.RGBA

func (Solid) paint() {}

// RGBA builds a straight-alpha colour from byte channels and a 0..1 alpha.
func RGBA(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: uint8(clamp01(a)*255 + 0.5)}
}

// Hex parses "#rrggbb" into an opaque colour. Malformed input yields black.
func Hex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{A: 0xff}
	}
	var c [3]uint8
	for i := range c {
		c[i] = hexByte(s[1+i*2])<<4 | hexByte(s[2+i*2])
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

func hexByte(b byte) uint8 {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

type Stop struct {
	Offset float64
	Color  color.RGBA
}

// Stops is an ordered list of gradient colour stops.
type Stops []Stop

// NewStops sorts stops by offset.
func NewStops(stops ...Stop) Stops {
	s := append(Stops(nil), stops...)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Offset < s[j].Offset })
	return s
}

// At returns the interpolated colour at t, clamped to [0, 1].
func (s Stops) At(t float64) color.RGBA {
	if len(s) == 0 {
		return color.RGBA{}
	}
	t = clamp01(t)
	if t <= s[0].Offset {
		return s[0].Color
	}
	for i := 1; i < len(s); i++ {
		if t <= s[i].Offset {
			a, b := s[i-1], s[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return s[len(s)-1].Color
}

// LinearGradient runs from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          Stops
}

func (*LinearGradient) paint() {}

// T projects a point onto the gradient axis.
func (g *LinearGradient) T(x, y float64) float64 {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	den := dx*dx + dy*dy
	if den == 0 {
		return 0
	}
	return ((x-g.X0)*dx + (y-g.Y0)*dy) / den
}

// ColorAt returns the gradient colour at a point.
func (g *LinearGradient) ColorAt(x, y float64) color.RGBA {
	return g.Stops.At(g.T(x, y))
}

// RadialGradient interpolates between a start circle and an end circle.
type RadialGradient struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      Stops
}

func (*RadialGradient) paint() {}

// Circle returns the interpolated circle for t in [0, 1].
func (g *RadialGradient) Circle(t float64) (cx, cy, r float64) {
	return lerp(g.X0, g.X1, t), lerp(g.Y0, g.Y1, t), lerp(g.R0, g.R1, t)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
