package imaging

import (
	"image"
	"math"

	"github.com/ironsheep/hue-invert/internal/logger"
)

// InvertPlanes returns a copy of src in which every hue selected by w is
// rotated by 180 degrees.
//
// Saturation and value planes are copied unchanged. Rotated hues stay in
// [0, 360). Applying InvertPlanes twice with the same window restores the
// original hues of pixels whose rotated hue is still inside the window (always
// the case for radius >= 180 in wrap mode or radius >= 360 in clamp mode).
func InvertPlanes(src *HSVImage, w HueWindow) *HSVImage {
	out := src.Clone()
	for i, h := range out.H {
		if w.Contains(h) {
			out.H[i] = math.Mod(h+180, 360)
		}
	}
	return out
}

// InvertHue performs a hue-range inversion on img.
//
// The image is normalized according to enc, converted to HSV, every hue inside
// w is rotated by 180 degrees and the result is converted back to RGB. The
// window is not validated here; callers should run w.Validate first. A
// negative radius selects nothing.
//
// Returns ErrInvalidImage (wrapped) for a nil or empty image.
func InvertHue(img image.Image, w HueWindow, enc SampleEncoding) (*image.RGBA64, error) {
	logInterval(w)

	hsv, err := ToHSV(img, enc)
	if err != nil {
		return nil, err
	}
	return InvertPlanes(hsv, w).ToRGB(), nil
}

// logInterval emits the diagnostic line describing the requested interval.
func logInterval(w HueWindow) {
	lo, hi := w.Bounds()
	logger.Info("processing hue interval [%g, %g] (center=%g, radius=%g, mode=%s)", lo, hi, w.Center, w.Radius, w.Mode)
}
