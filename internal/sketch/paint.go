package sketch

import (
	"image/color"
	"math"

	"sketchbook/internal/render"
)

// Style holds the cosmetic parameters of a frame.
type Style struct {
	BackgroundFrom, BackgroundTo color.RGBA

	ShadowColor  color.RGBA
	ShadowOffset float64 // distance of the shadow centre above the bottom edge
	ShadowMinRY  float64

	Highlight, Mid, Edge color.RGBA
	GlowColor            color.RGBA
	GlowBlur             float64
}

func DefaultStyle() Style {
	return Style{
		BackgroundFrom: render.RGBA(59, 130, 246, 0.15),
		BackgroundTo:   render.RGBA(14, 165, 233, 0.4),

		ShadowColor:  render.RGBA(15, 23, 42, 0.35),
		ShadowOffset: 24,
		ShadowMinRY:  6,

		Highlight: render.Hex("#f8fafc"),
		Mid:       render.Hex("#38bdf8"),
		Edge:      render.Hex("#0ea5e9"),
		GlowColor: render.RGBA(56, 189, 248, 0.45),
		GlowBlur:  24,
	}
}

// ShadowScale shrinks the floor shadow as the ball rises toward the top.
func ShadowScale(y, height float64) float64 {
	if height <= 0 {
		return 0.6
	}
	return 1 - math.Min(1, y/height)*0.4
}

func (c *Controller) paint() {
	w, h := c.width, c.height
	b := c.ball
	s := c.style

	c.ctx.ClearRect(0, 0, w, h)

	c.ctx.FillRect(0, 0, w, h, &render.LinearGradient{
		X0: 0, Y0: 0, X1: w, Y1: h,
		Stops: render.NewStops(
			render.Stop{Offset: 0, Color: s.BackgroundFrom},
			render.Stop{Offset: 1, Color: s.BackgroundTo},
		),
	})

	c.ctx.Save()
	ry := math.Max(s.ShadowMinRY, b.Radius*0.45*ShadowScale(b.Y, h))
	c.ctx.FillEllipse(b.X, h-s.ShadowOffset, b.Radius*0.9, ry, render.Solid(s.ShadowColor))
	c.ctx.Restore()

	c.ctx.Save()
	c.ctx.SetShadow(render.Shadow{Color: s.GlowColor, Blur: s.GlowBlur})
	c.ctx.FillEllipse(b.X, b.Y, b.Radius, b.Radius, &render.RadialGradient{
		X0: b.X - b.Radius*0.3, Y0: b.Y - b.Radius*0.35, R0: b.Radius * 0.2,
		X1: b.X, Y1: b.Y, R1: b.Radius,
		Stops: render.NewStops(
			render.Stop{Offset: 0, Color: s.Highlight},
			render.Stop{Offset: 0.4, Color: s.Mid},
			render.Stop{Offset: 1, Color: s.Edge},
		),
	})
	c.ctx.Restore()
}
