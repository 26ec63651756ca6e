package imaging

import (
	"bytes"
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGifDelay(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     int
	}{
		{200 * time.Millisecond, 20},
		{100 * time.Millisecond, 10},
		{15 * time.Millisecond, 2},
		{14 * time.Millisecond, 1},
		{0, 0},
	}

	for _, tt := range tests {
		if got := gifDelay(tt.interval); got != tt.want {
			t.Errorf("gifDelay(%v): got %d, want %d", tt.interval, got, tt.want)
		}
	}
}

func TestEncodeGIF(t *testing.T) {
	s := Sweep{Radius: 60, Step: 60, Interval: 200 * time.Millisecond}
	frames, err := s.Render(t.Context(), createPatternImage(16, 12), Encoding8Bit, 0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, s.Interval); err != nil {
		t.Fatalf("EncodeGIF failed: %v", err)
	}

	anim, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("failed to decode GIF: %v", err)
	}
	if len(anim.Image) != s.FrameCount() {
		t.Errorf("frames: got %d, want %d", len(anim.Image), s.FrameCount())
	}
	for i, d := range anim.Delay {
		if d != 20 {
			t.Errorf("frame %d delay: got %d, want 20", i, d)
		}
	}
	if anim.LoopCount != 0 {
		t.Errorf("LoopCount: got %d, want 0 (forever)", anim.LoopCount)
	}
	if anim.Config.Width != 16 || anim.Config.Height != 12 {
		t.Errorf("size: got %dx%d, want 16x12", anim.Config.Width, anim.Config.Height)
	}
}

func TestEncodeGIF_NoFrames(t *testing.T) {
	err := EncodeGIF(&bytes.Buffer{}, nil, time.Second)
	if !errors.Is(err, ErrInvalidArguments) {
		t.Errorf("expected ErrInvalidArguments, got %v", err)
	}
}

func TestSaveAnimation(t *testing.T) {
	frames, err := DefaultSweep().Render(t.Context(), createPatternImage(4, 4), Encoding8Bit, 2)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "sweep.gif")
	if err := SaveAnimation(path, frames, DefaultFrameInterval); err != nil {
		t.Fatalf("SaveAnimation failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("failed to decode GIF: %v", err)
	}
	if len(anim.Image) != 33 {
		t.Errorf("frames: got %d, want 33", len(anim.Image))
	}
}

func TestSaveAnimation_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.mp4")
	err := SaveAnimation(path, []Frame{{}}, DefaultFrameInterval)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be created for an unsupported format")
	}
}
