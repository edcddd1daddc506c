package gamemode

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"sketchbook/internal/canvas"
	"sketchbook/internal/diorama"
	"sketchbook/internal/frame"
	"sketchbook/internal/render"
)

const (
	landscapeTitle = "Stormy Kyoto Pixel Garden"
	landscapeBlurb = "A looping pixel diorama inspired by temple courtyards in Kyoto. Wind ripples " +
		"through bonsai-like trees while sheets of rain streak past the torii gate and ceramic " +
		"tiles. Falling leaves glide across the scene to emphasize the blustery weather."
	landscapeLink = "← Back to the canvas sketch"
)

// LandscapePage paints the diorama on a 16:10 stage.
type LandscapePage struct {
	env    Env
	col    column
	canvas *canvas.Canvas
	scene  *diorama.Scene

	frameID     render.FrameID
	unsubscribe func()
	active      bool
}

func NewLandscapePage(env Env) *LandscapePage {
	return &LandscapePage{
		env:    env,
		col:    newColumn(landscapeLink),
		canvas: canvas.New(),
	}
}

func (p *LandscapePage) Enter() {
	p.scene = diorama.New(p.env.TPS)
	p.active = true
	p.resize()
	p.unsubscribe = p.env.Resizes.OnResize(p.resize)
	p.frameID = p.env.Frames.RequestFrame(p.paint)
}

func (p *LandscapePage) Leave() {
	if !p.active {
		return
	}
	p.active = false
	p.env.Frames.CancelFrame(p.frameID)
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
	p.scene = nil
	p.canvas.Release()
}

func (p *LandscapePage) resize() {
	w, h := p.canvas.Bounds()
	dpr := p.canvas.DevicePixelRatio()
	p.canvas.SetBackingSize(int(math.Round(w*dpr)), int(math.Round(h*dpr)))
	p.canvas.ResetTransform()
	p.canvas.Scale(dpr, dpr)
}

func (p *LandscapePage) paint(float64) {
	if !p.active {
		return
	}
	w, h := p.canvas.Bounds()
	p.canvas.ClearRect(0, 0, w, h)
	p.scene.Paint(p.canvas, w, h)
	p.frameID = p.env.Frames.RequestFrame(p.paint)
}

func (p *LandscapePage) Layout(v frame.Viewport) {
	p.col.layout(p.env.Fonts, v, landscapeTitle, landscapeBlurb, 16.0/10.0, p.canvas)
}

// Update steps the wind springs at the fixed tick rate.
func (p *LandscapePage) Update() bool {
	if p.scene != nil {
		p.scene.Update()
	}
	return p.col.update()
}

func (p *LandscapePage) Draw(screen *ebiten.Image) {
	p.col.draw(screen, p.env.Fonts, p.canvas)
}
