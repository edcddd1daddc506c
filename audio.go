package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"sketchbook/internal/entity"
	"sketchbook/internal/sound"
)

// Bouncer plays a blip whenever the ball touches a wall.
type Bouncer struct {
	stream *sound.Blip
	player *audio.Player
}

// NewBouncer opens the audio context and starts the (silent) stream.
func NewBouncer(volume float64) (*Bouncer, error) {
	ctx := audio.NewContext(sound.SampleRate)
	stream := sound.NewBlip()
	player, err := ctx.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("audio player: %w", err)
	}
	player.SetBufferSize(40 * time.Millisecond)
	player.SetVolume(volume)
	player.Play()
	return &Bouncer{stream: stream, player: player}, nil
}

func (b *Bouncer) Play(w entity.Walls) {
	b.stream.Bounce(w)
}

func (b *Bouncer) Close() error {
	return b.player.Close()
}
