// Package render defines the drawing surface, 2D context and scheduling
// primitives that scenes paint through. Implementations live elsewhere:
// package canvas backs them with ebiten, package frame drives the timing.
package render

import "image/color"

// Surface is a resizable drawable area.
type Surface interface {
	// Bounds returns the current layout box in logical pixels.
	Bounds() (width, height float64)
	DevicePixelRatio() float64
	// SetBackingSize resizes the backing pixel store.
	SetBackingSize(width, height int)
	// Context returns nil when no drawing context can be acquired.
	Context() Context
}

// Context is a 2D drawing context with canvas-like state.
type Context interface {
	Save()
	Restore()
	ResetTransform()
	Scale(sx, sy float64)

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, p Paint)
	FillEllipse(cx, cy, rx, ry float64, p Paint)
	FillPolygon(pts []Point, p Paint)

	// SetShadow applies to subsequent ellipse fills. A zero Shadow disables it.
	SetShadow(s Shadow)
}

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// FrameScheduler invokes callbacks once before the next repaint.
type FrameScheduler interface {
	RequestFrame(fn func(timestamp float64)) FrameID
	CancelFrame(id FrameID)
}

// ResizeNotifier calls back whenever the observed viewport changes size.
type ResizeNotifier interface {
	OnResize(fn func()) (unsubscribe func())
}

type Point struct {
	X, Y float64
}

// Shadow is a soft glow painted around filled shapes.
type Shadow struct {
	Color color.RGBA
	Blur  float64
}

func (s Shadow) Enabled() bool {
	return s.Blur > 0 && s.Color.A > 0
}
