package imaging

import (
	"context"
	"errors"
	"image"
	"testing"
	"time"
)

func TestSweep_DefaultFrameCount(t *testing.T) {
	s := DefaultSweep()

	if got := s.FrameCount(); got != 33 {
		t.Errorf("FrameCount: got %d, want 33", got)
	}
	if s.Interval != 200*time.Millisecond {
		t.Errorf("Interval: got %v, want 200ms", s.Interval)
	}
}

func TestSweep_FrameCount(t *testing.T) {
	tests := []struct {
		radius, step float64
		want         int
	}{
		{20, 10, 33},
		{0, 10, 37},
		{20, 7, 46},
		{100, 50, 4},
		{179, 10, 1},
	}

	for _, tt := range tests {
		s := Sweep{Radius: tt.radius, Step: tt.step}
		if got := s.FrameCount(); got != tt.want {
			t.Errorf("FrameCount(radius=%g, step=%g): got %d, want %d", tt.radius, tt.step, got, tt.want)
		}
	}
}

func TestSweep_Centers(t *testing.T) {
	s := DefaultSweep()
	centers := s.Centers()

	if len(centers) != 33 {
		t.Fatalf("expected 33 centers, got %d", len(centers))
	}
	if centers[0] != 20 {
		t.Errorf("first center: got %g, want 20", centers[0])
	}
	if centers[32] != 340 {
		t.Errorf("last center: got %g, want 340", centers[32])
	}
	for i := 1; i < len(centers); i++ {
		if centers[i]-centers[i-1] != 10 {
			t.Errorf("center %d: step %g, want 10", i, centers[i]-centers[i-1])
		}
	}

	// Past 360-radius-1 the sweep restarts at radius
	if got := s.Center(33); got != 20 {
		t.Errorf("Center(33): got %g, want 20", got)
	}
	if got := s.Center(34); got != 30 {
		t.Errorf("Center(34): got %g, want 30", got)
	}
	if got := s.Center(-1); got != 340 {
		t.Errorf("Center(-1): got %g, want 340", got)
	}
}

// TestSweep_MatchesSequentialCounter replays the per-tick update rule
// (wrap to radius once the center exceeds 360-radius-1, otherwise advance by
// step) and checks the index formula agrees with it over several passes.
func TestSweep_MatchesSequentialCounter(t *testing.T) {
	s := DefaultSweep()

	m := s.Radius - s.Step
	for i := 0; i < 3*s.FrameCount(); i++ {
		if m > 360-s.Radius-1 {
			m = s.Radius
		} else {
			m += s.Step
		}
		if got := s.Center(i); got != m {
			t.Fatalf("frame %d: got %g, want %g", i, got, m)
		}
	}
}

func TestSweep_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sweep   Sweep
		wantErr bool
	}{
		{"default", DefaultSweep(), false},
		{"zero radius", Sweep{Radius: 0, Step: 10}, false},
		{"zero step", Sweep{Radius: 20, Step: 0}, true},
		{"negative step", Sweep{Radius: 20, Step: -10}, true},
		{"negative radius", Sweep{Radius: -1, Step: 10}, true},
		{"radius too large", Sweep{Radius: 180, Step: 10}, true},
		{"negative interval", Sweep{Radius: 20, Step: 10, Interval: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sweep.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidArguments) {
				t.Errorf("expected ErrInvalidArguments, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSweep_Frames(t *testing.T) {
	img := createPatternImage(8, 8)
	s := DefaultSweep()

	var frames []Frame
	for f, err := range s.Frames(img, Encoding8Bit) {
		if err != nil {
			t.Fatalf("Frames yielded error: %v", err)
		}
		frames = append(frames, f)
	}

	if len(frames) != 33 {
		t.Fatalf("expected 33 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Index != i {
			t.Errorf("frame %d: Index %d", i, f.Index)
		}
		if f.Center != s.Center(i) {
			t.Errorf("frame %d: Center %g, want %g", i, f.Center, s.Center(i))
		}
		if f.Image.Bounds() != img.Bounds() {
			t.Errorf("frame %d: bounds %v", i, f.Image.Bounds())
		}
	}

	// Frame 10 has center 120 and covers green [100,140]
	if got := frames[10].Image.RGBA64At(6, 1); got.R != 0xffff || got.G != 0 || got.B != 0xffff {
		t.Errorf("frame 10: green pixel should be magenta, got %v", got)
	}
	// Frame 0 covers [0,40] and turns red into cyan
	if got := frames[0].Image.RGBA64At(1, 1); got.R != 0 || got.G != 0xffff || got.B != 0xffff {
		t.Errorf("frame 0: red pixel should be cyan, got %v", got)
	}
}

func TestSweep_FramesRestartable(t *testing.T) {
	img := createRandomImage(6, 6, 5)
	s := Sweep{Radius: 30, Step: 45}
	seq := s.Frames(img, Encoding8Bit)

	collect := func() []Frame {
		var out []Frame
		for f, err := range seq {
			if err != nil {
				t.Fatalf("Frames yielded error: %v", err)
			}
			out = append(out, f)
		}
		return out
	}

	first, second := collect(), collect()
	if len(first) != len(second) || len(first) != s.FrameCount() {
		t.Fatalf("frame counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !equalPix(first[i].Image, second[i].Image) {
			t.Errorf("frame %d differs between iterations", i)
		}
	}
}

func TestSweep_FramesEarlyBreak(t *testing.T) {
	n := 0
	for _, err := range DefaultSweep().Frames(createPatternImage(4, 4), Encoding8Bit) {
		if err != nil {
			t.Fatalf("Frames yielded error: %v", err)
		}
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected to stop after 3 frames, got %d", n)
	}
}

func TestSweep_FramesInvalid(t *testing.T) {
	tests := []struct {
		name    string
		sweep   Sweep
		img     image.Image
		wantErr error
	}{
		{"bad sweep", Sweep{Radius: 20, Step: 0}, createPatternImage(4, 4), ErrInvalidArguments},
		{"bad image", DefaultSweep(), image.NewRGBA(image.Rect(0, 0, 0, 0)), ErrInvalidImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			for _, err := range tt.sweep.Frames(tt.img, Encoding8Bit) {
				n++
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			}
			if n != 1 {
				t.Errorf("expected a single error, got %d items", n)
			}
		})
	}
}

func TestSweep_RenderMatchesFrames(t *testing.T) {
	img := createRandomImage(10, 7, 6)
	s := Sweep{Radius: 25, Step: 15, Mode: WindowWrap}

	var sequential []Frame
	for f, err := range s.Frames(img, Encoding8Bit) {
		if err != nil {
			t.Fatalf("Frames yielded error: %v", err)
		}
		sequential = append(sequential, f)
	}

	for _, workers := range []int{0, 1, 4, 100} {
		parallel, err := s.Render(context.Background(), img, Encoding8Bit, workers)
		if err != nil {
			t.Fatalf("Render(workers=%d) failed: %v", workers, err)
		}
		if len(parallel) != len(sequential) {
			t.Fatalf("workers=%d: got %d frames, want %d", workers, len(parallel), len(sequential))
		}
		for i := range parallel {
			if parallel[i].Index != i || parallel[i].Center != sequential[i].Center {
				t.Errorf("workers=%d frame %d: index/center mismatch", workers, i)
			}
			if !equalPix(parallel[i].Image, sequential[i].Image) {
				t.Errorf("workers=%d frame %d: pixels differ", workers, i)
			}
		}
	}
}

func TestSweep_RenderConcurrentRuns(t *testing.T) {
	img := createRandomImage(8, 8, 7)
	a := Sweep{Radius: 20, Step: 10}
	b := Sweep{Radius: 40, Step: 20}

	type result struct {
		frames []Frame
		err    error
	}
	ca, cb := make(chan result), make(chan result)
	go func() { f, err := a.Render(context.Background(), img, Encoding8Bit, 2); ca <- result{f, err} }()
	go func() { f, err := b.Render(context.Background(), img, Encoding8Bit, 2); cb <- result{f, err} }()
	ra, rb := <-ca, <-cb

	if ra.err != nil || rb.err != nil {
		t.Fatalf("Render failed: %v / %v", ra.err, rb.err)
	}
	if len(ra.frames) != 33 || len(rb.frames) != 15 {
		t.Fatalf("frame counts: got %d and %d, want 33 and 15", len(ra.frames), len(rb.frames))
	}
	if ra.frames[1].Center != 30 || rb.frames[1].Center != 60 {
		t.Errorf("runs interfered: centers %g and %g", ra.frames[1].Center, rb.frames[1].Center)
	}
}

func TestSweep_RenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := DefaultSweep().Render(ctx, createPatternImage(4, 4), Encoding8Bit, 2)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func equalPix(a, b *image.RGBA64) bool {
	if a.Bounds() != b.Bounds() || len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}
