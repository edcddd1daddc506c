// Package diorama paints the stormy Kyoto garden: a pixel-art courtyard
// with a torii gate, wind-bent trees, two sheets of rain and drifting leaves.
package diorama

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"sketchbook/internal/render"
)

// PixelSize is the logical size of one art pixel.
const PixelSize = 4.0

const leafCount = 12

// Scene holds the animation clock and the spring state of the trees.
// Update and Paint must be called from the same goroutine.
type Scene struct {
	clock   float64
	tickDur float64

	gust   Keyframes
	trees  []*tree
	leaves []leaf
	rain   [2]rainLayer
	pal    Palette
}

type tree struct {
	x, base float64 // fractions of the scene
	height  float64 // fraction of scene height
	flex    float64 // sway at full gust, fraction of height
	lag     float64 // seconds behind the global gust
	far     bool

	spring   harmonica.Spring
	sway     float64
	velocity float64
}

// New builds a scene whose springs step at tps updates per second.
func New(tps int) *Scene {
	if tps <= 0 {
		tps = 60
	}
	s := &Scene{
		tickDur: 1 / float64(tps),
		gust: NewKeyframes(6,
			KeyStop{0, 0.2},
			KeyStop{0.3, 1},
			KeyStop{0.5, 0.55},
			KeyStop{0.7, 0.9},
			KeyStop{1, 0.2},
		),
		pal: DefaultPalette(),
	}

	spring := func(freq, damping float64) harmonica.Spring {
		return harmonica.NewSpring(harmonica.FPS(tps), freq, damping)
	}
	s.trees = []*tree{
		{x: 0.56, base: 0.62, height: 0.22, flex: 0.05, lag: 0.6, far: true, spring: spring(3, 0.35)},
		{x: 0.16, base: 0.8, height: 0.36, flex: 0.08, lag: 0, spring: spring(4, 0.3)},
		{x: 0.86, base: 0.82, height: 0.34, flex: 0.07, lag: 0.3, spring: spring(4.5, 0.3)},
	}

	for i := 0; i < leafCount; i++ {
		v := leafVariants[i%len(leafVariants)]
		v.motion.Delay += float64(i/len(leafVariants)) * v.motion.Duration / 2
		s.leaves = append(s.leaves, leaf{variant: v})
	}

	s.rain = [2]rainLayer{
		{count: 48, speed: 0.7, length: 0.05, width: 1, slant: 0.25, color: s.pal.RainBack},
		{count: 30, speed: 1.3, length: 0.09, width: 2, slant: 0.35, color: s.pal.RainFront},
	}
	return s
}

// Update advances the clock by one tick and lets the trees chase the wind.
func (s *Scene) Update() {
	s.clock += s.tickDur
	for _, t := range s.trees {
		target := s.gust.At(s.clock-t.lag) * t.flex
		t.sway, t.velocity = t.spring.Update(t.sway, t.velocity, target)
	}
}

// Clock returns the elapsed animation time in seconds.
func (s *Scene) Clock() float64 { return s.clock }

// Gust returns the current wind strength in [0, 1].
func (s *Scene) Gust() float64 { return s.gust.At(s.clock) }

// Sway returns each tree's current bend as a fraction of its height.
func (s *Scene) Sway() []float64 {
	out := make([]float64, len(s.trees))
	for i, t := range s.trees {
		out[i] = t.sway
	}
	return out
}

// Paint draws the whole diorama into a w x h logical area.
func (s *Scene) Paint(ctx render.Context, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	p := pen{ctx: ctx, w: w, h: h}

	p.sky(s.pal)
	p.mountains(s.pal)
	p.ground(s.pal)
	p.path(s.pal)
	p.torii(s.pal)
	for _, t := range s.trees {
		p.tree(t, s.pal)
	}
	for i := range s.rain {
		p.rain(&s.rain[i], s.clock, s.gust.At(s.clock))
	}
	p.wind(s.clock, s.gust.At(s.clock), s.pal)
	for i := range s.leaves {
		p.leaf(&s.leaves[i], s.clock)
	}
}

func snap(v float64) float64 {
	return math.Round(v/PixelSize) * PixelSize
}
