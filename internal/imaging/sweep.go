package imaging

import (
	"context"
	"fmt"
	"image"
	"iter"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/ironsheep/hue-invert/internal/logger"
)

// Sweep defaults used by the command line tool.
const (
	DefaultSweepRadius   = 20
	DefaultSweepStep     = 10
	DefaultFrameInterval = 200 * time.Millisecond
)

// Sweep describes an animation that slides a fixed-radius hue window across
// the hue circle.
//
// Frame i uses center Radius + (i mod FrameCount)*Step: the first frame's
// window touches 0 and, once the center has reached 360-Radius, the sweep
// restarts at Radius. Every center is a pure function of the frame index, so
// a sweep holds no mutable state and frames may be computed in any order.
type Sweep struct {
	Radius   float64       `json:"radius"`
	Step     float64       `json:"step"`
	Interval time.Duration `json:"interval"`
	Mode     WindowMode    `json:"-"`
}

// Frame is one rendered position of a sweep.
type Frame struct {
	Index  int
	Center float64
	Image  *image.RGBA64
}

// DefaultSweep returns the sweep used by --save-anim: radius 20, step 10, 200ms
// per frame.
func DefaultSweep() Sweep {
	return Sweep{
		Radius:   DefaultSweepRadius,
		Step:     DefaultSweepStep,
		Interval: DefaultFrameInterval,
	}
}

// Validate checks that the sweep produces at least one frame.
func (s Sweep) Validate() error {
	switch {
	case math.IsNaN(s.Step) || s.Step <= 0:
		return fmt.Errorf("%w: sweep step %g must be positive", ErrInvalidArguments, s.Step)
	case math.IsNaN(s.Radius) || s.Radius < 0:
		return fmt.Errorf("%w: sweep radius %g must be non-negative", ErrInvalidArguments, s.Radius)
	case 2*s.Radius >= 360:
		return fmt.Errorf("%w: sweep radius %g leaves no room to move (must be < 180)", ErrInvalidArguments, s.Radius)
	case s.Interval < 0:
		return fmt.Errorf("%w: frame interval %v must not be negative", ErrInvalidArguments, s.Interval)
	}
	return nil
}

// FrameCount returns the number of frames in one pass:
// floor(((360 - Radius) - Radius) / Step) + 1.
func (s Sweep) FrameCount() int {
	return int(math.Floor(((360-s.Radius)-s.Radius)/s.Step)) + 1
}

// Center returns the window center of frame i. Indices past the end of a pass
// continue cyclically; negative indices count back from the end.
func (s Sweep) Center(i int) float64 {
	n := s.FrameCount()
	i %= n
	if i < 0 {
		i += n
	}
	return s.Radius + float64(i)*s.Step
}

// Centers returns the window centers of one full pass in frame order.
func (s Sweep) Centers() []float64 {
	centers := make([]float64, s.FrameCount())
	for i := range centers {
		centers[i] = s.Center(i)
	}
	return centers
}

// Window returns the hue window of frame i.
func (s Sweep) Window(i int) HueWindow {
	return HueWindow{Center: s.Center(i), Radius: s.Radius, Mode: s.Mode}
}

// Frames returns a lazy sequence over one pass of the sweep.
//
// The source is converted to HSV once per iteration and each frame is produced
// on demand. Ranging over the sequence again regenerates the same frames. If
// the sweep or the image is invalid the sequence yields a single error.
func (s Sweep) Frames(img image.Image, enc SampleEncoding) iter.Seq2[Frame, error] {
	return func(yield func(Frame, error) bool) {
		if err := s.Validate(); err != nil {
			yield(Frame{}, err)
			return
		}
		src, err := ToHSV(img, enc)
		if err != nil {
			yield(Frame{}, err)
			return
		}
		for i := 0; i < s.FrameCount(); i++ {
			if !yield(s.frame(src, i), nil) {
				return
			}
		}
	}
}

// Render computes every frame of one pass using up to workers goroutines.
//
// Centers are derived from frame indices, so the output is identical to
// collecting Frames. workers <= 0 uses GOMAXPROCS. Rendering stops early with
// ctx.Err() when the context is cancelled.
func (s Sweep) Render(ctx context.Context, img image.Image, enc SampleEncoding, workers int) ([]Frame, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	src, err := ToHSV(img, enc)
	if err != nil {
		return nil, err
	}

	n := s.FrameCount()
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	logger.Debug("rendering %d frames with %d workers (radius=%g, step=%g)", n, workers, s.Radius, s.Step)

	frames := make([]Frame, n)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				frames[i] = s.frame(src, i)
			}
		}()
	}

feed:
	for i := 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return frames, nil
}

func (s Sweep) frame(src *HSVImage, i int) Frame {
	w := s.Window(i)
	logInterval(w)
	return Frame{
		Index:  i,
		Center: w.Center,
		Image:  InvertPlanes(src, w).ToRGB(),
	}
}
