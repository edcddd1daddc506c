package diorama

import (
	"math"
	"sort"
)

// KeyStop is a value at a fractional offset through one loop.
type KeyStop struct {
	Offset float64
	Value  float64
}

// Keyframes is a looping timeline, like an infinite CSS animation.
type Keyframes struct {
	Duration float64 // seconds per loop
	Delay    float64 // seconds shifted into the loop
	Stops    []KeyStop
	Ease     func(float64) float64
}

// NewKeyframes sorts stops and defaults to ease-in-out.
func NewKeyframes(duration float64, stops ...KeyStop) Keyframes {
	s := append([]KeyStop(nil), stops...)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Offset < s[j].Offset })
	return Keyframes{Duration: duration, Stops: s, Ease: EaseInOut}
}

// Progress returns the loop fraction in [0, 1) at time t.
func (k Keyframes) Progress(t float64) float64 {
	if k.Duration <= 0 {
		return 0
	}
	p := math.Mod((t+k.Delay)/k.Duration, 1)
	if p < 0 {
		p++
	}
	return p
}

// At samples the timeline at time t seconds.
func (k Keyframes) At(t float64) float64 {
	if len(k.Stops) == 0 {
		return 0
	}
	p := k.Progress(t)
	if p <= k.Stops[0].Offset {
		return k.Stops[0].Value
	}
	for i := 1; i < len(k.Stops); i++ {
		a, b := k.Stops[i-1], k.Stops[i]
		if p > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Value
		}
		f := (p - a.Offset) / span
		if k.Ease != nil {
			f = k.Ease(f)
		}
		return a.Value + (b.Value-a.Value)*f
	}
	return k.Stops[len(k.Stops)-1].Value
}

// EaseInOut is the smoothstep curve.
func EaseInOut(t float64) float64 {
	return t * t * (3 - 2*t)
}

func Linear(t float64) float64 { return t }
