package gamemode

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sketchbook/internal/canvas"
	"sketchbook/internal/entity"
	"sketchbook/internal/frame"
	"sketchbook/internal/sketch"
)

const (
	sketchTitle = "Canvas Bouncing Ball"
	sketchBlurb = "A playful canvas sketch rendered in real time. The ball glides across the " +
		"stage, bouncing from edge to edge while a soft glow trails behind it."
	sketchLink = "→ Explore the Japanese rain landscape"
)

// SketchPage hosts the bouncing-ball controller on a 4:3 stage.
type SketchPage struct {
	env    Env
	col    column
	canvas *canvas.Canvas
	ctrl   *sketch.Controller
}

func NewSketchPage(env Env) *SketchPage {
	return &SketchPage{
		env:    env,
		col:    newColumn(sketchLink),
		canvas: canvas.New(),
	}
}

func (p *SketchPage) Enter() {
	var opts []sketch.Option
	if p.env.OnBounce != nil {
		opts = append(opts, sketch.WithBounceHook(p.env.OnBounce))
	}
	p.ctrl = sketch.Activate(p.canvas, p.env.Frames, p.env.Resizes, opts...)
	if p.ctrl == nil {
		log.Printf("[Page] sketch: no drawing surface, nothing to animate")
	}
}

func (p *SketchPage) Leave() {
	p.ctrl.Teardown()
	p.ctrl = nil
	p.canvas.Release()
}

func (p *SketchPage) Layout(v frame.Viewport) {
	p.col.layout(p.env.Fonts, v, sketchTitle, sketchBlurb, 4.0/3.0, p.canvas)
}

func (p *SketchPage) Update() bool {
	return p.col.update()
}

func (p *SketchPage) Draw(screen *ebiten.Image) {
	p.col.draw(screen, p.env.Fonts, p.canvas)
}

// Ball exposes the live ball for the debug overlay.
func (p *SketchPage) Ball() (entity.Ball, bool) {
	return p.ctrl.Ball()
}
