// Package frame schedules per-repaint callbacks and viewport resize
// notifications. Everything here runs on the ebiten game goroutine, so
// nothing is locked.
package frame

import "sketchbook/internal/render"

// Loop queues callbacks for the next Tick. Callbacks requested while a tick
// is running are deferred to the following tick.
type Loop struct {
	next    render.FrameID
	pending []request
}

type request struct {
	id render.FrameID
	fn func(float64)
}

var _ render.FrameScheduler = (*Loop)(nil)

func NewLoop() *Loop {
	return &Loop{}
}

func (l *Loop) RequestFrame(fn func(timestamp float64)) render.FrameID {
	l.next++
	l.pending = append(l.pending, request{id: l.next, fn: fn})
	return l.next
}

// CancelFrame drops a pending callback. Unknown or already-run IDs are ignored.
func (l *Loop) CancelFrame(id render.FrameID) {
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
}

// Tick runs every callback pending at call time, in request order.
func (l *Loop) Tick(timestamp float64) {
	batch := l.pending
	l.pending = nil
	for _, r := range batch {
		r.fn(timestamp)
	}
}

func (l *Loop) Pending() int {
	return len(l.pending)
}
