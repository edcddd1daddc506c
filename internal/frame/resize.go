package frame

import "sketchbook/internal/render"

// Viewport is the outside window size in logical pixels plus its scale.
type Viewport struct {
	Width, Height    int
	DevicePixelRatio float64
}

// Resizer notifies subscribers when the observed viewport changes.
type Resizer struct {
	subs     []subscriber
	nextID   int
	last     Viewport
	observed bool
}

type subscriber struct {
	id int
	fn func()
}

var _ render.ResizeNotifier = (*Resizer)(nil)

func NewResizer() *Resizer {
	return &Resizer{}
}

func (r *Resizer) OnResize(fn func()) (unsubscribe func()) {
	id := r.nextID
	r.nextID++
	r.subs = append(r.subs, subscriber{id: id, fn: fn})
	return func() { r.remove(id) }
}

func (r *Resizer) remove(id int) {
	for i, s := range r.subs {
		if s.id == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

// Observe records the current viewport and fires subscribers if it differs
// from the previous observation. Reports whether it fired.
func (r *Resizer) Observe(v Viewport) bool {
	if r.observed && v == r.last {
		return false
	}
	r.last, r.observed = v, true
	subs := append([]subscriber(nil), r.subs...)
	for _, s := range subs {
		s.fn()
	}
	return true
}

// Last returns the most recently observed viewport.
func (r *Resizer) Last() (Viewport, bool) {
	return r.last, r.observed
}

func (r *Resizer) Subscribers() int {
	return len(r.subs)
}
