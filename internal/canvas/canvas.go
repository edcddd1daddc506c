// Package canvas backs render.Surface and render.Context with an offscreen
// ebiten image. Shapes are triangulated on the CPU and drawn with
// DrawTriangles from a single white source pixel.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"sketchbook/internal/render"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

type state struct {
	sx, sy float64
	shadow render.Shadow
}

// Canvas is a layout box on the page plus the backing store drawn into it.
type Canvas struct {
	x, y, w, h float64 // layout box, logical pixels
	dpr        float64

	img *ebiten.Image

	cur   state
	stack []state

	vs []ebiten.Vertex
	is []uint16
}

var (
	_ render.Surface = (*Canvas)(nil)
	_ render.Context = (*Canvas)(nil)
)

func New() *Canvas {
	return &Canvas{dpr: 1, cur: state{sx: 1, sy: 1}}
}

// SetBox places the canvas on the page in logical pixels.
func (c *Canvas) SetBox(x, y, w, h float64) {
	c.x, c.y, c.w, c.h = x, y, math.Max(0, w), math.Max(0, h)
}

func (c *Canvas) Box() (x, y, w, h float64) {
	return c.x, c.y, c.w, c.h
}

// Contains reports whether a logical point falls inside the box.
func (c *Canvas) Contains(px, py float64) bool {
	return px >= c.x && px < c.x+c.w && py >= c.y && py < c.y+c.h
}

func (c *Canvas) SetDevicePixelRatio(dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	c.dpr = dpr
}

func (c *Canvas) Bounds() (float64, float64) { return c.w, c.h }

func (c *Canvas) DevicePixelRatio() float64 { return c.dpr }

// SetBackingSize reallocates the backing image. Contents are discarded.
func (c *Canvas) SetBackingSize(w, h int) {
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			c.img.Clear()
			return
		}
		c.img.Deallocate()
		c.img = nil
	}
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

func (c *Canvas) Context() render.Context { return c }

// Image returns the backing store, nil until sized.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// DrawTo copies the backing store onto a device-pixel screen at the box.
func (c *Canvas) DrawTo(screen *ebiten.Image) {
	if c.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(math.Round(c.x*c.dpr), math.Round(c.y*c.dpr))
	screen.DrawImage(c.img, op)
}

// Release frees the backing store.
func (c *Canvas) Release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	c.cur = state{sx: 1, sy: 1}
	c.stack = nil
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) ResetTransform() {
	c.cur.sx, c.cur.sy = 1, 1
}

func (c *Canvas) Scale(sx, sy float64) {
	c.cur.sx *= sx
	c.cur.sy *= sy
}

func (c *Canvas) SetShadow(s render.Shadow) {
	c.cur.shadow = s
}

func (c *Canvas) ClearRect(x, y, w, h float64) {
	if c.img == nil {
		return
	}
	x0, y0 := c.project(x, y)
	x1, y1 := c.project(x+w, y+h)
	b := c.img.Bounds()
	if x0 <= 0 && y0 <= 0 && x1 >= float64(b.Dx()) && y1 >= float64(b.Dy()) {
		c.img.Clear()
		return
	}
	c.begin()
	c.quad(x, y, w, h, render.Solid{})
	c.flush(ebiten.BlendClear)
}

func (c *Canvas) FillRect(x, y, w, h float64, p render.Paint) {
	if c.img == nil || w <= 0 || h <= 0 {
		return
	}
	c.begin()
	if _, flat := p.(render.Solid); flat {
		c.quad(x, y, w, h, p)
	} else {
		const cells = 8
		c.grid(x, y, w, h, cells, p)
	}
	c.flush(ebiten.BlendSourceOver)
}

func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, p render.Paint) {
	if c.img == nil || rx <= 0 || ry <= 0 {
		return
	}
	if c.cur.shadow.Enabled() {
		c.glow(cx, cy, rx, ry)
	}

	g, radial := p.(*render.RadialGradient)
	if !radial {
		c.begin()
		c.ellipse(cx, cy, rx, ry, p)
		c.flush(ebiten.BlendSourceOver)
		return
	}

	// Outside the end circle the last stop applies; inner circles are
	// painted outermost first so each covers the previous band.
	c.begin()
	c.ellipse(cx, cy, rx, ry, render.Solid(g.Stops.At(1)))
	c.flush(ebiten.BlendSourceOver)
	const steps = 32
	for i := steps; i >= 0; i-- {
		t := float64(i) / steps
		x, y, r := g.Circle(t)
		if r <= 0 {
			continue
		}
		c.begin()
		c.ellipse(x, y, r, r, render.Solid(g.Stops.At(t)))
		c.flush(ebiten.BlendSourceOver)
	}
}

// FillPolygon fills a convex polygon.
func (c *Canvas) FillPolygon(pts []render.Point, p render.Paint) {
	if c.img == nil || len(pts) < 3 {
		return
	}
	c.begin()
	base := uint16(len(c.vs))
	for _, pt := range pts {
		c.vertex(pt.X, pt.Y, colorAt(p, pt.X, pt.Y))
	}
	for i := 1; i+1 < len(pts); i++ {
		c.is = append(c.is, base, base+uint16(i), base+uint16(i+1))
	}
	c.flush(ebiten.BlendSourceOver)
}

// glow paints fading halos around an ellipse to stand in for a blur.
func (c *Canvas) glow(cx, cy, rx, ry float64) {
	s := c.cur.shadow
	const steps = 8
	for i := steps; i >= 1; i-- {
		f := float64(i) / steps
		grow := s.Blur * f
		col := s.Color
		col.A = uint8(float64(s.Color.A) * (1 - f) * 0.5)
		if col.A == 0 {
			continue
		}
		c.begin()
		c.ellipse(cx, cy, rx+grow, ry+grow, render.Solid(col))
		c.flush(ebiten.BlendSourceOver)
	}
}

func (c *Canvas) project(x, y float64) (float64, float64) {
	return x * c.cur.sx, y * c.cur.sy
}

func (c *Canvas) begin() {
	c.vs = c.vs[:0]
	c.is = c.is[:0]
}

func (c *Canvas) vertex(x, y float64, col color.RGBA) {
	px, py := c.project(x, y)
	c.vs = append(c.vs, ebiten.Vertex{
		DstX:   float32(px),
		DstY:   float32(py),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(col.R) / 0xff,
		ColorG: float32(col.G) / 0xff,
		ColorB: float32(col.B) / 0xff,
		ColorA: float32(col.A) / 0xff,
	})
}

func (c *Canvas) quad(x, y, w, h float64, p render.Paint) {
	base := uint16(len(c.vs))
	c.vertex(x, y, colorAt(p, x, y))
	c.vertex(x+w, y, colorAt(p, x+w, y))
	c.vertex(x+w, y+h, colorAt(p, x+w, y+h))
	c.vertex(x, y+h, colorAt(p, x, y+h))
	c.is = append(c.is, base, base+1, base+2, base, base+2, base+3)
}

func (c *Canvas) grid(x, y, w, h float64, n int, p render.Paint) {
	base := uint16(len(c.vs))
	for j := 0; j <= n; j++ {
		for i := 0; i <= n; i++ {
			vx := x + w*float64(i)/float64(n)
			vy := y + h*float64(j)/float64(n)
			c.vertex(vx, vy, colorAt(p, vx, vy))
		}
	}
	row := uint16(n + 1)
	for j := uint16(0); j < uint16(n); j++ {
		for i := uint16(0); i < uint16(n); i++ {
			a := base + j*row + i
			c.is = append(c.is, a, a+1, a+row+1, a, a+row+1, a+row)
		}
	}
}

func (c *Canvas) ellipse(cx, cy, rx, ry float64, p render.Paint) {
	px := math.Max(rx*c.cur.sx, ry*c.cur.sy)
	segs := int(math.Min(96, math.Max(24, px/2)))

	base := uint16(len(c.vs))
	c.vertex(cx, cy, colorAt(p, cx, cy))
	for i := 0; i < segs; i++ {
		a := 2 * math.Pi * float64(i) / float64(segs)
		x, y := cx+rx*math.Cos(a), cy+ry*math.Sin(a)
		c.vertex(x, y, colorAt(p, x, y))
	}
	for i := 0; i < segs; i++ {
		next := (i+1)%segs + 1
		c.is = append(c.is, base, base+uint16(i+1), base+uint16(next))
	}
}

func (c *Canvas) flush(blend ebiten.Blend) {
	if len(c.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		Blend:     blend,
		AntiAlias: true,
	}
	c.img.DrawTriangles(c.vs, c.is, white(), op)
}

func colorAt(p render.Paint, x, y float64) color.RGBA {
	switch p := p.(type) {
	case render.Solid:
		return color.RGBA(p)
	case *render.LinearGradient:
		return p.ColorAt(x, y)
	case *render.RadialGradient:
		return p.Stops.At(1)
	}
	return color.RGBA{}
}
