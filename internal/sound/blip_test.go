package sound

import (
	"encoding/binary"
	"testing"

	"sketchbook/internal/entity"
)

func samples(buf []byte) (left, right []int16) {
	for i := 0; i+3 < len(buf); i += 4 {
		left = append(left, int16(binary.LittleEndian.Uint16(buf[i:])))
		right = append(right, int16(binary.LittleEndian.Uint16(buf[i+2:])))
	}
	return left, right
}

func TestBlipSilentUntilTriggered(t *testing.T) {
	b := NewBlip()
	buf := make([]byte, 1024)
	n, err := b.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("Read = %d, %v", n, err)
	}
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("byte %d = %d, want silence", i, v)
		}
	}
	if b.Playing() {
		t.Error("Playing() before Trigger")
	}
}

func TestBlipReadsWholeFrames(t *testing.T) {
	b := NewBlip()
	n, _ := b.Read(make([]byte, 10))
	if n != 8 {
		t.Errorf("Read(10 bytes) = %d, want 8", n)
	}
}

func TestBlipPlaysAndDecays(t *testing.T) {
	b := NewBlip()
	b.Trigger(PitchSide)
	if !b.Playing() {
		t.Fatal("not playing after Trigger")
	}

	frames := int(blipSeconds * SampleRate)
	buf := make([]byte, (frames+100)*4)
	b.Read(buf)
	left, right := samples(buf)

	var pos, neg bool
	for i := range left {
		if left[i] != right[i] {
			t.Fatalf("frame %d: channels differ %d/%d", i, left[i], right[i])
		}
		if left[i] > 0 {
			pos = true
		}
		if left[i] < 0 {
			neg = true
		}
	}
	if !pos || !neg {
		t.Error("square wave never swung both ways")
	}
	if abs(left[1]) <= abs(left[frames-10]) {
		t.Errorf("envelope did not decay: start %d end %d", left[1], left[frames-10])
	}
	for _, v := range left[frames:] {
		if v != 0 {
			t.Fatalf("tail not silent: %d", v)
		}
	}
	if b.Playing() {
		t.Error("still playing after note length")
	}
}

func TestBounceMapsWallsToPitch(t *testing.T) {
	tests := []struct {
		walls entity.Walls
		want  float64
	}{
		{entity.WallLeft, PitchSide},
		{entity.WallBottom, PitchFloor},
		{entity.WallRight | entity.WallTop, PitchSide},
	}
	for _, tt := range tests {
		b := NewBlip()
		b.Bounce(tt.walls)
		if b.freq != tt.want {
			t.Errorf("Bounce(%b) freq = %v, want %v", tt.walls, b.freq, tt.want)
		}
	}

	b := NewBlip()
	b.Bounce(0)
	b.Trigger(-1)
	if b.Playing() {
		t.Error("no-wall bounce or negative pitch started a note")
	}
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
