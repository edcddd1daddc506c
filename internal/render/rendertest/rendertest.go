// Package rendertest provides recording fakes for the render interfaces.
package rendertest

import (
	"fmt"

	"sketchbook/internal/render"
)

// Op is one recorded drawing call.
type Op struct {
	Name  string
	Args  []float64
	Paint render.Paint
	// Shadow active when the op ran.
	Shadow render.Shadow
	// Scale active when the op ran.
	SX, SY float64
}

func (o Op) String() string {
	return fmt.Sprintf("%s%v", o.Name, o.Args)
}

type state struct {
	sx, sy float64
	shadow render.Shadow
}

// Context records every call made to it.
type Context struct {
	Ops []Op

	cur   state
	stack []state
}

func NewContext() *Context {
	return &Context{cur: state{sx: 1, sy: 1}}
}

func (c *Context) record(name string, p render.Paint, args ...float64) {
	c.Ops = append(c.Ops, Op{
		Name:   name,
		Args:   args,
		Paint:  p,
		Shadow: c.cur.shadow,
		SX:     c.cur.sx,
		SY:     c.cur.sy,
	})
}

func (c *Context) Save() {
	c.stack = append(c.stack, c.cur)
	c.record("Save", nil)
}

func (c *Context) Restore() {
	if n := len(c.stack); n > 0 {
		c.cur = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
	c.record("Restore", nil)
}

func (c *Context) ResetTransform() {
	c.cur.sx, c.cur.sy = 1, 1
	c.record("ResetTransform", nil)
}

func (c *Context) Scale(sx, sy float64) {
	c.cur.sx *= sx
	c.cur.sy *= sy
	c.record("Scale", nil, sx, sy)
}

func (c *Context) ClearRect(x, y, w, h float64) {
	c.record("ClearRect", nil, x, y, w, h)
}

func (c *Context) FillRect(x, y, w, h float64, p render.Paint) {
	c.record("FillRect", p, x, y, w, h)
}

func (c *Context) FillEllipse(cx, cy, rx, ry float64, p render.Paint) {
	c.record("FillEllipse", p, cx, cy, rx, ry)
}

func (c *Context) FillPolygon(pts []render.Point, p render.Paint) {
	args := make([]float64, 0, len(pts)*2)
	for _, pt := range pts {
		args = append(args, pt.X, pt.Y)
	}
	c.record("FillPolygon", p, args...)
}

func (c *Context) SetShadow(s render.Shadow) {
	c.cur.shadow = s
	c.record("SetShadow", nil, s.Blur)
}

// CurrentScale reports the transform currently in effect.
func (c *Context) CurrentScale() (sx, sy float64) {
	return c.cur.sx, c.cur.sy
}

// Named returns the recorded ops with the given name.
func (c *Context) Named(name string) []Op {
	var out []Op
	for _, op := range c.Ops {
		if op.Name == name {
			out = append(out, op)
		}
	}
	return out
}

// Reset drops recorded ops but keeps the drawing state.
func (c *Context) Reset() {
	c.Ops = c.Ops[:0]
}

// Surface is a fixed-size surface backed by a recording Context.
type Surface struct {
	Width, Height float64
	Ratio         float64
	Ctx           render.Context

	BackingW, BackingH int
	Resizes            int
}

func NewSurface(w, h, dpr float64) *Surface {
	return &Surface{Width: w, Height: h, Ratio: dpr, Ctx: NewContext()}
}

func (s *Surface) Bounds() (float64, float64) { return s.Width, s.Height }

func (s *Surface) DevicePixelRatio() float64 { return s.Ratio }

func (s *Surface) SetBackingSize(w, h int) {
	s.BackingW, s.BackingH = w, h
	s.Resizes++
}

func (s *Surface) Context() render.Context { return s.Ctx }

// Recorder returns the recording context, or nil if another one is installed.
func (s *Surface) Recorder() *Context {
	c, _ := s.Ctx.(*Context)
	return c
}

// Scheduler is a manual FrameScheduler.
type Scheduler struct {
	next     render.FrameID
	pending  map[render.FrameID]func(float64)
	order    []render.FrameID
	Requests int
	Cancels  []render.FrameID
}

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[render.FrameID]func(float64))}
}

func (s *Scheduler) RequestFrame(fn func(float64)) render.FrameID {
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	s.Requests++
	return s.next
}

func (s *Scheduler) CancelFrame(id render.FrameID) {
	s.Cancels = append(s.Cancels, id)
	delete(s.pending, id)
}

// Pending reports how many callbacks are waiting.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Fire runs the callbacks pending at call time with the given timestamp.
func (s *Scheduler) Fire(ts float64) {
	order := s.order
	s.order = nil
	for _, id := range order {
		fn, ok := s.pending[id]
		if !ok {
			continue
		}
		delete(s.pending, id)
		fn(ts)
	}
}

// Notifier is a manual ResizeNotifier.
type Notifier struct {
	subs map[int]func()
	next int
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]func())}
}

func (n *Notifier) OnResize(fn func()) func() {
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() { delete(n.subs, id) }
}

// Subscribers reports how many callbacks are registered.
func (n *Notifier) Subscribers() int {
	return len(n.subs)
}

// Fire invokes every subscriber.
func (n *Notifier) Fire() {
	for _, fn := range n.subs {
		fn()
	}
}
