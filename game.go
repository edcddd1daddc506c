package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sketchbook/internal/assets"
	"sketchbook/internal/config"
	"sketchbook/internal/frame"
	"sketchbook/internal/gamemode"
)

// Define Modes
type GameMode int

const (
	ModeSketch GameMode = iota
	ModeLandscape
)

// Game routes the ebiten callbacks to the current page and owns the frame
// loop and resize notifier the pages subscribe to.
type Game struct {
	CurrentMode GameMode
	pages       [2]gamemode.Page
	entered     bool

	frames  *frame.Loop
	resizes *frame.Resizer
	start   time.Time

	debug bool
}

func NewGame(cfg *config.Config, bounce *Bouncer) *Game {
	g := &Game{
		frames:  frame.NewLoop(),
		resizes: frame.NewResizer(),
		start:   time.Now(),
		debug:   cfg.Debug,
	}
	env := gamemode.Env{
		Frames:  g.frames,
		Resizes: g.resizes,
		Fonts:   assets.LoadFonts(),
		TPS:     cfg.TPS,
	}
	if bounce != nil {
		env.OnBounce = bounce.Play
	}
	g.pages[ModeSketch] = gamemode.NewSketchPage(env)
	g.pages[ModeLandscape] = gamemode.NewLandscapePage(env)

	if cfg.StartPage == config.PageLandscape {
		g.CurrentMode = ModeLandscape
	}
	return g
}

func (g *Game) page() gamemode.Page {
	return g.pages[g.CurrentMode]
}

// switchTo leaves the current page and enters the other one, laid out for
// the last observed viewport.
func (g *Game) switchTo(mode GameMode) {
	if mode == g.CurrentMode {
		return
	}
	g.page().Leave()
	g.CurrentMode = mode
	if v, ok := g.resizes.Last(); ok {
		g.page().Layout(v)
	}
	g.page().Enter()
}

// Update: Input (fixed TPS)
func (g *Game) Update() error {
	if !g.entered {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}
	if g.page().Update() {
		next := ModeLandscape
		if g.CurrentMode == ModeLandscape {
			next = ModeSketch
		}
		g.switchTo(next)
	}
	return nil
}

// Draw: Rendering (VSync). One frame-loop tick per presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(gamemode.ColPage)

	if g.entered {
		g.frames.Tick(float64(time.Since(g.start)) / float64(time.Millisecond))
	}
	g.page().Draw(screen)

	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	v, _ := g.resizes.Last()
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nview %dx%d @%.2fx\nframes pending %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), v.Width, v.Height, v.DevicePixelRatio, g.frames.Pending())
	if sp, ok := g.page().(*gamemode.SketchPage); ok {
		if b, ok := sp.Ball(); ok {
			msg += fmt.Sprintf("\nball (%.1f, %.1f) r=%.1f v=(%.0f, %.0f)", b.X, b.Y, b.Radius, b.VX, b.VY)
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout: render at device resolution; pages lay out in logical pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	dpr := ebiten.Monitor().DeviceScaleFactor()
	if dpr <= 0 {
		dpr = 1
	}
	v := frame.Viewport{Width: outsideWidth, Height: outsideHeight, DevicePixelRatio: dpr}
	if last, ok := g.resizes.Last(); !ok || last != v {
		g.page().Layout(v)
		g.resizes.Observe(v)
	}
	if !g.entered {
		g.page().Enter()
		g.entered = true
	}
	return int(float64(outsideWidth) * dpr), int(float64(outsideHeight) * dpr)
}

// Close tears down the active page.
func (g *Game) Close() {
	if g.entered {
		g.page().Leave()
		g.entered = false
	}
}
