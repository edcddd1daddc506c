package frame

import (
	"reflect"
	"testing"
)

func TestLoopRunsPendingOnce(t *testing.T) {
	l := NewLoop()
	var got []float64
	l.RequestFrame(func(ts float64) { got = append(got, ts) })

	l.Tick(16)
	l.Tick(32)

	if !reflect.DeepEqual(got, []float64{16}) {
		t.Errorf("callbacks ran with %v, want [16]", got)
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}
}

func TestLoopDefersRequestsMadeDuringTick(t *testing.T) {
	l := NewLoop()
	var ticks []float64
	var step func(float64)
	step = func(ts float64) {
		ticks = append(ticks, ts)
		l.RequestFrame(step)
	}
	l.RequestFrame(step)

	l.Tick(1)
	if len(ticks) != 1 {
		t.Fatalf("rescheduled callback ran in the same tick: %v", ticks)
	}
	l.Tick(2)
	l.Tick(3)
	if !reflect.DeepEqual(ticks, []float64{1, 2, 3}) {
		t.Errorf("ticks = %v, want [1 2 3]", ticks)
	}
}

func TestLoopCancel(t *testing.T) {
	l := NewLoop()
	var order []string
	a := l.RequestFrame(func(float64) { order = append(order, "a") })
	l.RequestFrame(func(float64) { order = append(order, "b") })

	l.CancelFrame(a)
	l.CancelFrame(a)
	l.CancelFrame(999)
	l.Tick(0)

	if !reflect.DeepEqual(order, []string{"b"}) {
		t.Errorf("order = %v, want [b]", order)
	}
}

func TestResizerFiresOnChangeOnly(t *testing.T) {
	r := NewResizer()
	calls := 0
	r.OnResize(func() { calls++ })

	v := Viewport{Width: 800, Height: 600, DevicePixelRatio: 2}
	if !r.Observe(v) {
		t.Error("first observation should fire")
	}
	if r.Observe(v) {
		t.Error("unchanged viewport should not fire")
	}
	r.Observe(Viewport{Width: 800, Height: 600, DevicePixelRatio: 1})
	r.Observe(Viewport{Width: 1024, Height: 600, DevicePixelRatio: 1})

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if last, ok := r.Last(); !ok || last.Width != 1024 {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
}

func TestResizerUnsubscribe(t *testing.T) {
	r := NewResizer()
	var a, b int
	unsubA := r.OnResize(func() { a++ })
	r.OnResize(func() { b++ })

	unsubA()
	unsubA()
	r.Observe(Viewport{Width: 1, Height: 1, DevicePixelRatio: 1})

	if a != 0 || b != 1 {
		t.Errorf("a=%d b=%d, want a=0 b=1", a, b)
	}
	if r.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1", r.Subscribers())
	}
}

func TestResizerUnsubscribeDuringNotify(t *testing.T) {
	r := NewResizer()
	calls := 0
	var unsub func()
	unsub = r.OnResize(func() {
		calls++
		unsub()
	})
	r.OnResize(func() { calls++ })

	r.Observe(Viewport{Width: 2, Height: 2, DevicePixelRatio: 1})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if r.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1", r.Subscribers())
	}
}
