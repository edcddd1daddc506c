// Package sound synthesises the square-wave blips played when the ball
// hits a wall.
package sound

import (
	"sync"

	"sketchbook/internal/entity"
)

const (
	SampleRate = 44100

	// bytes per stereo frame of 16-bit samples
	frameSize = 4

	// Pitches for side walls and floor/ceiling.
	PitchSide  = 523.25
	PitchFloor = 392.0

	blipSeconds = 0.09
	amplitude   = 0.12
)

// Blip is an endless 16-bit little-endian stereo PCM stream that stays
// silent until triggered. Read runs on the audio goroutine while Trigger
// is called from the game loop.
type Blip struct {
	mu     sync.Mutex
	freq   float64
	phase  float64
	remain int // frames left in the current note
	total  int
}

func NewBlip() *Blip {
	return &Blip{}
}

// Trigger restarts the note at freq Hz.
func (b *Blip) Trigger(freq float64) {
	if freq <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.freq = freq
	b.phase = 0
	b.total = int(blipSeconds * SampleRate)
	b.remain = b.total
}

// Bounce maps wall contacts to a pitch; side walls win on a corner hit.
func (b *Blip) Bounce(w entity.Walls) {
	switch {
	case w.Horizontal():
		b.Trigger(PitchSide)
	case w.Vertical():
		b.Trigger(PitchFloor)
	}
}

// Playing reports whether a note is still sounding.
func (b *Blip) Playing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remain > 0
}

func (b *Blip) Read(buf []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(buf) / frameSize * frameSize
	for i := 0; i < n; i += frameSize {
		var v int16
		if b.remain > 0 {
			env := float64(b.remain) / float64(b.total)
			val := amplitude * env
			if b.phase >= 0.5 {
				val = -val
			}
			v = int16(val * 32767)

			b.phase += b.freq / SampleRate
			if b.phase >= 1 {
				b.phase -= 1
			}
			b.remain--
		}
		buf[i] = byte(v)
		buf[i+1] = byte(v >> 8)
		buf[i+2] = byte(v)
		buf[i+3] = byte(v >> 8)
	}
	return n, nil
}
