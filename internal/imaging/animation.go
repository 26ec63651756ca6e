package imaging

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// gifDelay converts a frame interval to GIF delay units (hundredths of a
// second), rounding to the nearest unit.
func gifDelay(interval time.Duration) int {
	return int((interval + 5*time.Millisecond) / (10 * time.Millisecond))
}

// EncodeGIF writes frames to w as a looping animated GIF, showing each frame
// for interval.
//
// Frames are quantized to the Plan 9 palette with Floyd-Steinberg dithering.
func EncodeGIF(w io.Writer, frames []Frame, interval time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: animation has no frames", ErrInvalidArguments)
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	delay := gifDelay(interval)
	for i, f := range frames {
		bounds := f.Image.Bounds()
		p := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(p, bounds, f.Image, bounds.Min)
		anim.Image[i] = p
		anim.Delay[i] = delay
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode animation: %w", err)
	}
	return nil
}

// SaveAnimation writes frames to path. Only .gif is supported.
func SaveAnimation(path string, frames []Frame, interval time.Duration) error {
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".gif" {
		return fmt.Errorf("%w: %q (animations are written as .gif)", ErrUnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create animation file: %w", err)
	}
	if err := EncodeGIF(f, frames, interval); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close animation file: %w", err)
	}
	return nil
}
