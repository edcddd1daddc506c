// Package sketch runs the bouncing-ball canvas sketch: a ball integrated in
// real time, reflected off the surface edges and repainted once per frame.
package sketch

import (
	"math"

	"sketchbook/internal/entity"
	"sketchbook/internal/render"
)

// Controller owns one activation of the sketch. Build it with Activate and
// release it with Teardown; a torn-down Controller is never restarted.
type Controller struct {
	surface render.Surface
	ctx     render.Context
	frames  render.FrameScheduler

	ball          *entity.Ball
	width, height float64
	initialized   bool

	lastTimestamp float64
	seeded        bool

	active      bool
	frameID     render.FrameID
	unsubscribe func()

	onBounce func(entity.Walls)
	style    Style
}

type Option func(*Controller)

// WithBounceHook calls fn after every step that touched a wall.
func WithBounceHook(fn func(entity.Walls)) Option {
	return func(c *Controller) { c.onBounce = fn }
}

// WithStyle overrides the default palette.
func WithStyle(s Style) Option {
	return func(c *Controller) { c.style = s }
}

// Activate acquires the drawing context, sizes the surface, subscribes to
// resizes and schedules the first frame. It returns nil, having subscribed
// to nothing, when the surface or its context is missing.
func Activate(surface render.Surface, frames render.FrameScheduler, resizes render.ResizeNotifier, opts ...Option) *Controller {
	if surface == nil || frames == nil || resizes == nil {
		return nil
	}
	ctx := surface.Context()
	if ctx == nil {
		return nil
	}

	c := &Controller{
		surface: surface,
		ctx:     ctx,
		frames:  frames,
		ball:    entity.NewBall(),
		style:   DefaultStyle(),
		active:  true,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.UpdateSize()
	c.unsubscribe = resizes.OnResize(c.UpdateSize)
	c.frameID = frames.RequestFrame(c.Step)
	return c
}

// UpdateSize re-reads the layout box and device pixel ratio, resizes the
// backing store and rescales the context so one unit is one logical pixel.
// The first call places the ball; later calls clamp it into the new bounds.
func (c *Controller) UpdateSize() {
	if c == nil || !c.active {
		return
	}
	c.width, c.height = c.surface.Bounds()
	dpr := c.surface.DevicePixelRatio()
	if dpr <= 0 {
		dpr = 1
	}
	c.surface.SetBackingSize(int(math.Round(c.width*dpr)), int(math.Round(c.height*dpr)))

	c.ctx.ResetTransform()
	c.ctx.Scale(dpr, dpr)

	c.ball.Fit(c.width, c.height)
	if !c.initialized {
		c.ball.Place(c.width, c.height)
		c.initialized = true
		return
	}
	c.ball.Clamp(c.width, c.height)
}

// Step is the per-frame callback. Timestamps are milliseconds; the first
// one only seeds the clock.
func (c *Controller) Step(timestamp float64) {
	if c == nil || !c.active {
		return
	}
	if !c.seeded {
		c.lastTimestamp = timestamp
		c.seeded = true
	}
	delta := (timestamp - c.lastTimestamp) / 1000
	c.lastTimestamp = timestamp

	if hit := c.ball.Advance(delta, c.width, c.height); hit != 0 && c.onBounce != nil {
		c.onBounce(hit)
	}

	c.paint()

	if c.active {
		c.frameID = c.frames.RequestFrame(c.Step)
	}
}

// Teardown stops the loop and drops the resize subscription. Safe to call
// on a nil Controller and more than once.
func (c *Controller) Teardown() {
	if c == nil || !c.active {
		return
	}
	c.active = false
	c.frames.CancelFrame(c.frameID)
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.ball = nil
}

// Active reports whether frames are still being produced.
func (c *Controller) Active() bool {
	return c != nil && c.active
}

// Ball returns a copy of the current ball state.
func (c *Controller) Ball() (entity.Ball, bool) {
	if c == nil || c.ball == nil {
		return entity.Ball{}, false
	}
	return *c.ball, true
}

// Size returns the logical surface size used by the last resize.
func (c *Controller) Size() (w, h float64) {
	if c == nil {
		return 0, 0
	}
	return c.width, c.height
}
