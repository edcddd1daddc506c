package sketch

import (
	"math"
	"testing"

	"sketchbook/internal/entity"
	"sketchbook/internal/render"
	"sketchbook/internal/render/rendertest"
)

type harness struct {
	surface *rendertest.Surface
	frames  *rendertest.Scheduler
	resizes *rendertest.Notifier
}

func newHarness(w, h, dpr float64) *harness {
	return &harness{
		surface: rendertest.NewSurface(w, h, dpr),
		frames:  rendertest.NewScheduler(),
		resizes: rendertest.NewNotifier(),
	}
}

func (h *harness) activate(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c := Activate(h.surface, h.frames, h.resizes, opts...)
	if c == nil {
		t.Fatal("Activate returned nil")
	}
	return c
}

func mustBall(t *testing.T, c *Controller) entity.Ball {
	t.Helper()
	b, ok := c.Ball()
	if !ok {
		t.Fatal("no ball state")
	}
	return b
}

func TestActivateInitialisesFromFirstResize(t *testing.T) {
	h := newHarness(400, 300, 1)
	c := h.activate(t)

	b := mustBall(t, c)
	if b.X != 120 || b.Y != 105 {
		t.Errorf("position = (%v, %v), want (120, 105)", b.X, b.Y)
	}
	if b.Radius != 24 {
		t.Errorf("radius = %v, want 24", b.Radius)
	}
	if b.VX != 180 || b.VY != 220 {
		t.Errorf("velocity = (%v, %v), want (180, 220)", b.VX, b.VY)
	}
	if h.frames.Pending() != 1 {
		t.Errorf("pending frames = %d, want 1", h.frames.Pending())
	}
	if h.resizes.Subscribers() != 1 {
		t.Errorf("resize subscribers = %d, want 1", h.resizes.Subscribers())
	}
}

func TestActivateWithoutSurfaceOrContext(t *testing.T) {
	frames := rendertest.NewScheduler()
	resizes := rendertest.NewNotifier()

	if c := Activate(nil, frames, resizes); c != nil {
		t.Error("Activate(nil surface) should return nil")
	}

	surface := rendertest.NewSurface(400, 300, 1)
	surface.Ctx = nil
	if c := Activate(surface, frames, resizes); c != nil {
		t.Error("Activate without context should return nil")
	}

	if frames.Requests != 0 || resizes.Subscribers() != 0 {
		t.Errorf("leaked subscriptions: frames=%d resizes=%d", frames.Requests, resizes.Subscribers())
	}
	if surface.Resizes != 0 {
		t.Errorf("surface resized %d times on failed activation", surface.Resizes)
	}

	var c *Controller
	c.Teardown()
	c.Step(10)
	c.UpdateSize()
	if c.Active() {
		t.Error("nil controller reports active")
	}
}

func TestUpdateSizeScalesBackingStore(t *testing.T) {
	h := newHarness(400, 300, 2)
	h.activate(t)

	if h.surface.BackingW != 800 || h.surface.BackingH != 600 {
		t.Errorf("backing = %dx%d, want 800x600", h.surface.BackingW, h.surface.BackingH)
	}
	ctx := h.surface.Recorder()
	if sx, sy := ctx.CurrentScale(); sx != 2 || sy != 2 {
		t.Errorf("scale = (%v, %v), want (2, 2)", sx, sy)
	}

	// A second resize must reset before scaling, not compound.
	h.surface.Ratio = 3
	h.resizes.Fire()
	if sx, sy := ctx.CurrentScale(); sx != 3 || sy != 3 {
		t.Errorf("scale after resize = (%v, %v), want (3, 3)", sx, sy)
	}
	if h.surface.BackingW != 1200 || h.surface.BackingH != 900 {
		t.Errorf("backing = %dx%d, want 1200x900", h.surface.BackingW, h.surface.BackingH)
	}
}

func TestUpdateSizeDefaultsRatio(t *testing.T) {
	h := newHarness(400, 300, 0)
	h.activate(t)
	if h.surface.BackingW != 400 || h.surface.BackingH != 300 {
		t.Errorf("backing = %dx%d, want 400x300", h.surface.BackingW, h.surface.BackingH)
	}
}

func TestResizeClampsInsteadOfResetting(t *testing.T) {
	h := newHarness(400, 300, 1)
	c := h.activate(t)

	h.frames.Fire(0)
	h.frames.Fire(500) // moves to (210, 215)

	h.surface.Width, h.surface.Height = 200, 150
	h.resizes.Fire()

	b := mustBall(t, c)
	if b.Radius != 16 {
		t.Errorf("radius = %v, want 16", b.Radius)
	}
	if b.X != 184 || b.Y != 134 {
		t.Errorf("position = (%v, %v), want (184, 134)", b.X, b.Y)
	}
}

func TestResizeIsIdempotent(t *testing.T) {
	h := newHarness(400, 300, 1)
	c := h.activate(t)
	h.frames.Fire(0)
	h.frames.Fire(700)

	h.surface.Width, h.surface.Height = 300, 200
	h.resizes.Fire()
	first := mustBall(t, c)
	h.resizes.Fire()
	second := mustBall(t, c)

	if first != second {
		t.Errorf("repeated resize drifted: %+v then %+v", first, second)
	}
}

func TestFirstFrameDoesNotMove(t *testing.T) {
	for _, ts := range []float64{0, 1000, 987654.321} {
		h := newHarness(400, 300, 1)
		c := h.activate(t)
		before := mustBall(t, c)

		h.frames.Fire(ts)

		if after := mustBall(t, c); after != before {
			t.Errorf("ts=%v: first frame moved ball from %+v to %+v", ts, before, after)
		}
	}
}

func TestScenario400x300(t *testing.T) {
	h := newHarness(400, 300, 1)
	var bounces int
	c := h.activate(t, WithBounceHook(func(entity.Walls) { bounces++ }))

	h.frames.Fire(1000)
	b := mustBall(t, c)
	if b.X != 120 || b.Y != 105 {
		t.Fatalf("after first tick = (%v, %v), want (120, 105)", b.X, b.Y)
	}

	h.frames.Fire(1016)
	b = mustBall(t, c)
	if math.Abs(b.X-122.88) > 1e-9 || math.Abs(b.Y-108.52) > 1e-9 {
		t.Errorf("after second tick = (%v, %v), want (122.88, 108.52)", b.X, b.Y)
	}
	if b.VX != 180 || b.VY != 220 || bounces != 0 {
		t.Errorf("unexpected reflection: v=(%v, %v) bounces=%d", b.VX, b.VY, bounces)
	}
}

func TestBoundsHoldAcrossManyFrames(t *testing.T) {
	h := newHarness(640, 360, 1.5)
	var walls entity.Walls
	c := h.activate(t, WithBounceHook(func(w entity.Walls) { walls |= w }))

	ts := 0.0
	for i := 0; i < 3000; i++ {
		h.frames.Fire(ts)
		ts += 16.7
		b := mustBall(t, c)
		if b.X < b.Radius || b.X > 640-b.Radius || b.Y < b.Radius || b.Y > 360-b.Radius {
			t.Fatalf("frame %d: ball %+v escaped 640x360", i, b)
		}
	}
	if walls != entity.WallLeft|entity.WallRight|entity.WallTop|entity.WallBottom {
		t.Errorf("walls touched = %b, want all four", walls)
	}
}

func TestTeardownCancelsAndUnsubscribes(t *testing.T) {
	h := newHarness(400, 300, 1)
	c := h.activate(t)
	h.frames.Fire(0)

	c.Teardown()
	c.Teardown()

	if c.Active() {
		t.Error("controller still active after Teardown")
	}
	if h.frames.Pending() != 0 {
		t.Errorf("pending frames = %d, want 0", h.frames.Pending())
	}
	if len(h.frames.Cancels) != 1 {
		t.Errorf("cancels = %v, want exactly one", h.frames.Cancels)
	}
	if h.resizes.Subscribers() != 0 {
		t.Errorf("resize subscribers = %d, want 0", h.resizes.Subscribers())
	}
	if _, ok := c.Ball(); ok {
		t.Error("ball state kept after Teardown")
	}

	ops := len(h.surface.Recorder().Ops)
	c.Step(5000)
	if got := len(h.surface.Recorder().Ops); got != ops {
		t.Errorf("Step after Teardown painted %d ops", got-ops)
	}
}

func TestStepReschedulesWhileActive(t *testing.T) {
	h := newHarness(400, 300, 1)
	h.activate(t)
	for i := 0; i < 5; i++ {
		h.frames.Fire(float64(i) * 16)
		if h.frames.Pending() != 1 {
			t.Fatalf("tick %d: pending = %d, want 1", i, h.frames.Pending())
		}
	}
	if h.frames.Requests != 6 {
		t.Errorf("requests = %d, want 6", h.frames.Requests)
	}
}

func TestPaintOrder(t *testing.T) {
	h := newHarness(400, 300, 1)
	h.activate(t)
	ctx := h.surface.Recorder()
	ctx.Reset()

	h.frames.Fire(0)

	var names []string
	for _, op := range ctx.Ops {
		names = append(names, op.Name)
	}
	want := []string{
		"ClearRect", "FillRect",
		"Save", "FillEllipse", "Restore",
		"Save", "SetShadow", "FillEllipse", "Restore",
	}
	if len(names) != len(want) {
		t.Fatalf("ops = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ops = %v, want %v", names, want)
		}
	}

	if _, ok := ctx.Ops[1].Paint.(*render.LinearGradient); !ok {
		t.Errorf("background paint = %T, want *render.LinearGradient", ctx.Ops[1].Paint)
	}

	shadow := ctx.Ops[3]
	if shadow.Shadow.Enabled() {
		t.Error("floor shadow painted with glow")
	}
	// y=105 of 300: scale 1 - 0.35*0.4 = 0.86, ry = 24*0.45*0.86.
	wantShadow := []float64{120, 276, 24 * 0.9, 24 * 0.45 * 0.86}
	for i, v := range wantShadow {
		if math.Abs(shadow.Args[i]-v) > 1e-9 {
			t.Errorf("shadow args = %v, want %v", shadow.Args, wantShadow)
			break
		}
	}

	ball := ctx.Ops[7]
	if !ball.Shadow.Enabled() || ball.Shadow.Blur != 24 {
		t.Errorf("ball glow = %+v, want blur 24", ball.Shadow)
	}
	g, ok := ball.Paint.(*render.RadialGradient)
	if !ok {
		t.Fatalf("ball paint = %T, want *render.RadialGradient", ball.Paint)
	}
	if math.Abs(g.X0-(120-24*0.3)) > 1e-9 || math.Abs(g.Y0-(105-24*0.35)) > 1e-9 || g.R1 != 24 {
		t.Errorf("highlight gradient = %+v", g)
	}
}

func TestShadowScale(t *testing.T) {
	tests := []struct {
		y, h, want float64
	}{
		{0, 300, 1},
		{150, 300, 0.8},
		{300, 300, 0.6},
		{900, 300, 0.6},
		{10, 0, 0.6},
	}
	for _, tt := range tests {
		if got := ShadowScale(tt.y, tt.h); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ShadowScale(%v, %v) = %v, want %v", tt.y, tt.h, got, tt.want)
		}
	}
}

func TestShadowMinimumHeight(t *testing.T) {
	h := newHarness(100, 100, 1)
	h.activate(t)
	h.frames.Fire(0)
	ctx := h.surface.Recorder()
	ctx.Reset()

	// y = 79 with radius 16 gives 16*0.45*0.684 < 6, so the floor wins.
	h.frames.Fire(200)
	ellipses := ctx.Named("FillEllipse")
	if len(ellipses) != 2 {
		t.Fatalf("ellipses = %v, want shadow and ball", ellipses)
	}
	if ry := ellipses[0].Args[3]; ry != 6 {
		t.Errorf("shadow ry = %v, want 6", ry)
	}
}
