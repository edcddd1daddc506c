// Package gamemode holds the two pages of the sketchbook and the widgets
// they share. Pages lay out in logical pixels and draw onto a screen that
// is sized in device pixels.
package gamemode

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sketchbook/internal/assets"
	"sketchbook/internal/entity"
	"sketchbook/internal/frame"
)

// Page is one screen of the app.
type Page interface {
	// Enter starts the page's animation. Layout has already run.
	Enter()
	// Leave stops everything Enter started.
	Leave()
	Layout(v frame.Viewport)
	// Update reports whether the user followed the page's link.
	Update() bool
	Draw(screen *ebiten.Image)
}

// Env is what pages need from the host.
type Env struct {
	Frames   *frame.Loop
	Resizes  *frame.Resizer
	Fonts    *assets.Fonts
	TPS      int
	OnBounce func(entity.Walls)
}

// Colours of the page chrome.
var (
	ColPage      = color.RGBA{0x02, 0x06, 0x17, 0xff} // slate-950
	ColHeading   = color.RGBA{0xf1, 0xf5, 0xf9, 0xff} // slate-100
	ColBody      = color.RGBA{0xcb, 0xd5, 0xe1, 0xff} // slate-300
	ColStage     = color.RGBA{0x0c, 0x13, 0x25, 0xff} // slate-900/80 over the page
	ColBorder    = color.RGBA{0x28, 0x2c, 0x3b, 0xff} // white/15 over the page
	ColLink      = color.RGBA{0x7d, 0xd3, 0xfc, 0xff} // sky-300
	ColLinkHover = color.RGBA{0xe0, 0xf2, 0xfe, 0xff} // sky-100
	ColLinkBg    = color.RGBA{0x03, 0x16, 0x2a, 0xff} // sky-500/10 over the page
	ColLinkEdge  = color.RGBA{0x06, 0x34, 0x55, 0xff} // sky-500/30 over the page
)

const (
	pagePadding   = 24.0
	maxContent    = 672.0
	gap           = 24.0
	headingSize   = 30.0
	headingLine   = 38.0
	bodySize      = 16.0
	bodyLine      = 24.0
	linkHeight    = 40.0
	linkPadX      = 20.0
	minStageWidth = 160.0
)

// paragraph is wrapped text laid out at a fixed logical line height.
type paragraph struct {
	lines      []string
	bold       bool
	size, line float64
	col        color.Color
	y          float64 // top, logical
}

func (p *paragraph) height() float64 {
	return float64(len(p.lines)) * p.line
}

func (p *paragraph) layout(fonts *assets.Fonts, s string, width, dpr float64) {
	p.lines = wrap(s, fonts.Face(p.bold, p.size, dpr), width*dpr)
}

func (p *paragraph) draw(screen *ebiten.Image, fonts *assets.Fonts, cx, dpr float64) {
	face := fonts.Face(p.bold, p.size, dpr)
	for i, ln := range p.lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx*dpr, (p.y+float64(i)*p.line+(p.line-p.size)/2)*dpr)
		op.ColorScale.ScaleWithColor(p.col)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, ln, face, op)
	}
}

// wrap breaks s into lines no wider than limit device pixels.
func wrap(s string, face text.Face, limit float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		next := cur + " " + w
		if text.Advance(next, face) > limit {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = next
	}
	return append(lines, cur)
}

// link is a pill-shaped text button.
type link struct {
	label      string
	x, y, w, h float64 // logical
	hover      bool
}

func (l *link) layout(fonts *assets.Fonts, cx, y, dpr float64) {
	face := fonts.Face(false, bodySize, dpr)
	l.w = text.Advance(l.label, face)/dpr + 2*linkPadX
	l.h = linkHeight
	l.x = cx - l.w/2
	l.y = y
}

func (l *link) contains(px, py float64) bool {
	return px >= l.x && px < l.x+l.w && py >= l.y && py < l.y+l.h
}

// update tracks hover and reports a click or an Enter/Tab press.
func (l *link) update(dpr float64) bool {
	mx, my := ebiten.CursorPosition()
	l.hover = l.contains(float64(mx)/dpr, float64(my)/dpr)
	if l.hover {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	if l.hover && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		return true
	}
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

func (l *link) draw(screen *ebiten.Image, fonts *assets.Fonts, dpr float64) {
	x, y := float32(l.x*dpr), float32(l.y*dpr)
	w, h := float32(l.w*dpr), float32(l.h*dpr)
	r := h / 2

	edge, fg := ColLinkEdge, ColLink
	if l.hover {
		edge, fg = ColLinkHover, ColLinkHover
	}
	framed(screen, x, y, w, h, r, float32(dpr), edge, ColLinkBg)

	face := fonts.Face(false, bodySize, dpr)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x+w/2), float64(y+h/2))
	op.ColorScale.ScaleWithColor(fg)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, l.label, face, op)
}

// fillRounded fills a rounded rectangle. Colours must be opaque: the
// corner discs overlap the body rectangles.
func fillRounded(dst *ebiten.Image, x, y, w, h, r float32, c color.Color) {
	r = min(r, w/2, h/2)
	vector.DrawFilledRect(dst, x+r, y, w-2*r, h, c, true)
	vector.DrawFilledRect(dst, x, y+r, w, h-2*r, c, true)
	vector.DrawFilledCircle(dst, x+r, y+r, r, c, true)
	vector.DrawFilledCircle(dst, x+w-r, y+r, r, c, true)
	vector.DrawFilledCircle(dst, x+r, y+h-r, r, c, true)
	vector.DrawFilledCircle(dst, x+w-r, y+h-r, r, c, true)
}

// framed draws a rounded panel with a one-pixel border.
func framed(dst *ebiten.Image, x, y, w, h, r, px float32, border, fill color.Color) {
	fillRounded(dst, x, y, w, h, r, border)
	fillRounded(dst, x+px, y+px, w-2*px, h-2*px, r-px, fill)
}

// stage draws the rounded panel behind a canvas box.
func stage(screen *ebiten.Image, x, y, w, h, dpr float64) {
	r := float32(24 * dpr)
	fx, fy, fw, fh := float32(x*dpr), float32(y*dpr), float32(w*dpr), float32(h*dpr)
	framed(screen, fx, fy, fw, fh, r, float32(dpr), ColBorder, ColStage)
}
