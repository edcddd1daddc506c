package gamemode

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"sketchbook/internal/assets"
	"sketchbook/internal/canvas"
	"sketchbook/internal/frame"
)

// column is the shared page layout: heading, blurb, stage, link, centred.
type column struct {
	heading paragraph
	body    paragraph
	link    link
	cx      float64
	dpr     float64
}

func newColumn(linkLabel string) column {
	return column{
		heading: paragraph{bold: true, size: headingSize, line: headingLine, col: ColHeading},
		body:    paragraph{size: bodySize, line: bodyLine, col: ColBody},
		link:    link{label: linkLabel},
		dpr:     1,
	}
}

// layout places everything and sizes the stage box on cv to the given
// aspect ratio, shrinking it when the window is too short.
func (c *column) layout(fonts *assets.Fonts, v frame.Viewport, title, blurb string, aspect float64, cv *canvas.Canvas) {
	w, h := float64(v.Width), float64(v.Height)
	c.dpr = v.DevicePixelRatio
	if c.dpr <= 0 {
		c.dpr = 1
	}
	c.cx = w / 2

	content := math.Max(minStageWidth, math.Min(w-2*pagePadding, maxContent))
	c.heading.layout(fonts, title, content, c.dpr)
	c.body.layout(fonts, blurb, content, c.dpr)

	fixed := c.heading.height() + 8 + c.body.height() + gap + gap + linkHeight
	stageW := content
	stageH := stageW / aspect
	if avail := h - 2*pagePadding - fixed; stageH > avail {
		stageH = math.Max(avail, minStageWidth/aspect)
		stageW = stageH * aspect
	}

	y := math.Max(pagePadding, (h-(fixed+stageH))/2)
	c.heading.y = y
	y += c.heading.height() + 8
	c.body.y = y
	y += c.body.height() + gap

	cv.SetDevicePixelRatio(c.dpr)
	cv.SetBox(math.Round(c.cx-stageW/2), math.Round(y), math.Round(stageW), math.Round(stageH))
	y += stageH + gap

	c.link.layout(fonts, c.cx, y, c.dpr)
}

func (c *column) update() bool {
	return c.link.update(c.dpr)
}

func (c *column) draw(screen *ebiten.Image, fonts *assets.Fonts, cv *canvas.Canvas) {
	c.heading.draw(screen, fonts, c.cx, c.dpr)
	c.body.draw(screen, fonts, c.cx, c.dpr)
	x, y, w, h := cv.Box()
	stage(screen, x, y, w, h, c.dpr)
	cv.DrawTo(screen)
	c.link.draw(screen, fonts, c.dpr)
}
