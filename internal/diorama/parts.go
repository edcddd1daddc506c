package diorama

import (
	"image/color"
	"math"

	"sketchbook/internal/render"
)

type Palette struct {
	SkyTop, SkyBottom   color.RGBA
	MountainFar         color.RGBA
	MountainNear        color.RGBA
	GroundTop, GroundLo color.RGBA
	Path                color.RGBA
	Torii, ToriiDark    color.RGBA
	ToriiBase           color.RGBA
	Trunk               color.RGBA
	Canopy, CanopyFar   color.RGBA
	CanopyLight         color.RGBA
	RainBack, RainFront color.RGBA
	Wind                color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		SkyTop:       render.Hex("#1e293b"),
		SkyBottom:    render.Hex("#64748b"),
		MountainFar:  render.Hex("#475569"),
		MountainNear: render.Hex("#334155"),
		GroundTop:    render.Hex("#3f6212"),
		GroundLo:     render.Hex("#1a2e05"),
		Path:         render.Hex("#a8a29e"),
		Torii:        render.Hex("#dc2626"),
		ToriiDark:    render.Hex("#991b1b"),
		ToriiBase:    render.Hex("#44403c"),
		Trunk:        render.Hex("#57534e"),
		Canopy:       render.Hex("#166534"),
		CanopyFar:    render.Hex("#14532d"),
		CanopyLight:  render.Hex("#22c55e"),
		RainBack:     render.RGBA(191, 219, 254, 0.25),
		RainFront:    render.RGBA(224, 242, 254, 0.5),
		Wind:         render.RGBA(226, 232, 240, 0.3),
	}
}

type leafVariant struct {
	motion Keyframes // linear progress across the scene
	startY float64   // fraction of height at entry
	drop   float64   // fraction of height fallen per pass
	wobble float64   // fraction of height
	spin   float64   // turns per pass
	color  color.RGBA
}

type leaf struct {
	variant leafVariant
}

var leafVariants = []leafVariant{
	{motion: linearLoop(7, 0), startY: 0.18, drop: 0.45, wobble: 0.04, spin: 2, color: render.Hex("#f59e0b")},
	{motion: linearLoop(9, 1.5), startY: 0.3, drop: 0.35, wobble: 0.05, spin: -1.5, color: render.Hex("#ea580c")},
	{motion: linearLoop(6, 3), startY: 0.1, drop: 0.55, wobble: 0.03, spin: 3, color: render.Hex("#b45309")},
	{motion: linearLoop(8, 0.7), startY: 0.4, drop: 0.3, wobble: 0.06, spin: -2.5, color: render.Hex("#dc2626")},
	{motion: linearLoop(10, 4.2), startY: 0.22, drop: 0.5, wobble: 0.035, spin: 1, color: render.Hex("#facc15")},
	{motion: linearLoop(7.5, 2.2), startY: 0.34, drop: 0.4, wobble: 0.045, spin: -3, color: render.Hex("#84cc16")},
}

func linearLoop(duration, delay float64) Keyframes {
	k := NewKeyframes(duration, KeyStop{0, 0}, KeyStop{1, 1})
	k.Ease = Linear
	k.Delay = delay
	return k
}

// Position returns the leaf centre and rotation at time t for a w x h scene.
func (l *leaf) Position(t, w, h float64) (x, y, angle float64) {
	v := l.variant
	p := v.motion.Progress(t)
	x = (-0.1 + 1.2*p) * w
	y = (v.startY+v.drop*p)*h + v.wobble*h*math.Sin(4*math.Pi*p)
	angle = v.spin * 2 * math.Pi * p
	return x, y, angle
}

type rainLayer struct {
	count  int
	speed  float64 // scene heights per second
	length float64 // fraction of height
	width  float64
	slant  float64 // horizontal run per unit of fall
	color  color.RGBA
}

// pen paints scene parts in logical coordinates snapped to the art grid.
type pen struct {
	ctx  render.Context
	w, h float64
}

func (p pen) rect(x, y, w, h float64, paint render.Paint) {
	x0, y0 := snap(x), snap(y)
	x1, y1 := snap(x+w), snap(y+h)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	p.ctx.FillRect(x0, y0, x1-x0, y1-y0, paint)
}

func (p pen) poly(paint render.Paint, pts ...render.Point) {
	for i := range pts {
		pts[i].X, pts[i].Y = snap(pts[i].X), snap(pts[i].Y)
	}
	p.ctx.FillPolygon(pts, paint)
}

func (p pen) sky(pal Palette) {
	p.ctx.FillRect(0, 0, p.w, p.h, &render.LinearGradient{
		X0: 0, Y0: 0, X1: 0, Y1: p.h * 0.7,
		Stops: render.NewStops(
			render.Stop{Offset: 0, Color: pal.SkyTop},
			render.Stop{Offset: 1, Color: pal.SkyBottom},
		),
	})
}

func (p pen) mountains(pal Palette) {
	w, h := p.w, p.h
	horizon := h * 0.6
	p.poly(render.Solid(pal.MountainFar),
		render.Point{X: -0.1 * w, Y: horizon},
		render.Point{X: 0.22 * w, Y: 0.26 * h},
		render.Point{X: 0.5 * w, Y: horizon},
	)
	p.poly(render.Solid(pal.MountainFar),
		render.Point{X: 0.55 * w, Y: horizon},
		render.Point{X: 0.8 * w, Y: 0.3 * h},
		render.Point{X: 1.1 * w, Y: horizon},
	)
	p.poly(render.Solid(pal.MountainNear),
		render.Point{X: 0.2 * w, Y: horizon},
		render.Point{X: 0.5 * w, Y: 0.2 * h},
		render.Point{X: 0.82 * w, Y: horizon},
	)
}

func (p pen) ground(pal Palette) {
	p.rect(0, p.h*0.6, p.w, p.h*0.4, &render.LinearGradient{
		X0: 0, Y0: p.h * 0.6, X1: 0, Y1: p.h,
		Stops: render.NewStops(
			render.Stop{Offset: 0, Color: pal.GroundTop},
			render.Stop{Offset: 1, Color: pal.GroundLo},
		),
	})
}

func (p pen) path(pal Palette) {
	w, h := p.w, p.h
	p.poly(render.Solid(pal.Path),
		render.Point{X: 0.46 * w, Y: 0.66 * h},
		render.Point{X: 0.54 * w, Y: 0.66 * h},
		render.Point{X: 0.7 * w, Y: h},
		render.Point{X: 0.3 * w, Y: h},
	)
}

func (p pen) torii(pal Palette) {
	w, h := p.w, p.h
	cx := 0.5 * w
	span := 0.26 * w
	top := 0.34 * h
	base := 0.68 * h

	// top beam with upturned ends
	p.poly(render.Solid(pal.Torii),
		render.Point{X: cx - span*0.62, Y: top - 0.02*h},
		render.Point{X: cx + span*0.62, Y: top - 0.02*h},
		render.Point{X: cx + span*0.55, Y: top + 0.025*h},
		render.Point{X: cx - span*0.55, Y: top + 0.025*h},
	)
	p.rect(cx-span*0.58, top-0.035*h, span*1.16, 0.016*h, render.Solid(pal.ToriiDark))

	pillar := 0.028 * w
	for _, x := range []float64{cx - span*0.38, cx + span*0.38} {
		p.rect(x-pillar/2, top, pillar, base-top, render.Solid(pal.Torii))
		p.rect(x-pillar*0.8, base-0.02*h, pillar*1.6, 0.025*h, render.Solid(pal.ToriiBase))
	}
	p.rect(cx-span*0.48, top+0.07*h, span*0.96, 0.022*h, render.Solid(pal.Torii))
}

func (p pen) tree(t *tree, pal Palette) {
	w, h := p.w, p.h
	x := t.x * w
	baseY := t.base * h
	height := t.height * h
	trunkW := math.Max(PixelSize, 0.02*w)
	bend := t.sway * height

	canopy, light := pal.Canopy, pal.CanopyLight
	if t.far {
		canopy, light = pal.CanopyFar, pal.Canopy
	}

	// trunk leans toward the bend in two segments
	mid := baseY - height*0.5
	p.poly(render.Solid(pal.Trunk),
		render.Point{X: x - trunkW/2, Y: baseY},
		render.Point{X: x + trunkW/2, Y: baseY},
		render.Point{X: x + trunkW/2 + bend*0.35, Y: mid},
		render.Point{X: x - trunkW/2 + bend*0.35, Y: mid},
	)
	top := baseY - height*0.8
	p.poly(render.Solid(pal.Trunk),
		render.Point{X: x - trunkW/2 + bend*0.35, Y: mid},
		render.Point{X: x + trunkW/2 + bend*0.35, Y: mid},
		render.Point{X: x + trunkW/3 + bend, Y: top},
		render.Point{X: x - trunkW/3 + bend, Y: top},
	)

	// layered canopy pads, wider at the bottom like a pruned pine
	pads := []struct{ dy, rx, ry, shift float64 }{
		{0.55, 0.5, 0.12, 0.6},
		{0.75, 0.4, 0.11, 0.85},
		{0.95, 0.28, 0.1, 1.1},
	}
	for _, pad := range pads {
		cx := snap(x + bend*pad.shift)
		cy := snap(baseY - height*pad.dy)
		rx := snap(height * pad.rx)
		ry := snap(height * pad.ry)
		if rx <= 0 || ry <= 0 {
			continue
		}
		p.ctx.FillEllipse(cx, cy, rx, ry, render.Solid(canopy))
		p.ctx.FillEllipse(snap(cx-rx*0.25), snap(cy-ry*0.35), snap(rx*0.55), snap(ry*0.45), render.Solid(light))
	}
}

func (p pen) rain(l *rainLayer, clock, gust float64) {
	w, h := p.w, p.h
	length := l.length * h
	slant := l.slant + gust*0.3
	span := h + length
	for i := 0; i < l.count; i++ {
		sx, sy := hash2(i, l.count)
		y := math.Mod(sy*span+clock*l.speed*h, span) - length
		// streaks start across a wider band so slanted ones still cover the left edge
		x := -0.3*w + sx*1.3*w + (y+length)*slant
		x = math.Mod(x+0.3*w, 1.3*w) - 0.3*w
		dx := length * slant
		p.poly(render.Solid(l.color),
			render.Point{X: x, Y: y},
			render.Point{X: x + l.width, Y: y},
			render.Point{X: x + l.width + dx, Y: y + length},
			render.Point{X: x + dx, Y: y + length},
		)
	}
}

func (p pen) wind(clock, gust float64, pal Palette) {
	if gust < 0.35 {
		return
	}
	w, h := p.w, p.h
	c := pal.Wind
	c.A = uint8(float64(c.A) * (gust - 0.35) / 0.65)
	for i := 0; i < 5; i++ {
		sx, sy := hash2(i+101, 5)
		x := math.Mod(sx*1.4*w+clock*0.45*w, 1.4*w) - 0.2*w
		y := (0.12 + sy*0.5) * h
		p.rect(x, y, 0.16*w, PixelSize, render.Solid(c))
	}
}

func (p pen) leaf(l *leaf, clock float64) {
	x, y, angle := l.Position(clock, p.w, p.h)
	size := math.Max(PixelSize*1.5, 0.018*math.Min(p.w, p.h))
	cos, sin := math.Cos(angle), math.Sin(angle)
	rot := func(dx, dy float64) render.Point {
		return render.Point{X: x + dx*cos - dy*sin, Y: y + dx*sin + dy*cos}
	}
	p.poly(render.Solid(l.variant.color),
		rot(-size, 0),
		rot(0, -size*0.5),
		rot(size, 0),
		rot(0, size*0.5),
	)
}

// hash2 spreads index i of n over the unit square without clustering.
func hash2(i, n int) (float64, float64) {
	const phi = 0.6180339887498949
	const psi = 0.7548776662466927
	fi := float64(i) + 0.5
	x := math.Mod(fi*phi, 1)
	y := math.Mod(fi*psi+float64(i%3)/float64(n+3), 1)
	return x, y
}
