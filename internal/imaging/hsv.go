package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/lucasb-eyer/go-colorful"
)

// SampleEncoding states how source samples are normalized to the unit range
// before the HSV conversion.
type SampleEncoding int

const (
	// Encoding8Bit reduces every channel to 8 bits and divides by 255.
	// This matches tools that operate on 8-bit decoded buffers.
	Encoding8Bit SampleEncoding = iota

	// Encoding16Bit keeps the full 16-bit sample and divides by 65535.
	Encoding16Bit
)

// String returns the flag/config spelling of the encoding.
func (e SampleEncoding) String() string {
	switch e {
	case Encoding8Bit:
		return "8bit"
	case Encoding16Bit:
		return "16bit"
	default:
		return fmt.Sprintf("SampleEncoding(%d)", int(e))
	}
}

// ParseSampleEncoding parses "8bit" or "16bit". An empty string yields Encoding8Bit.
func ParseSampleEncoding(s string) (SampleEncoding, error) {
	switch s {
	case "", "8bit", "8":
		return Encoding8Bit, nil
	case "16bit", "16":
		return Encoding16Bit, nil
	default:
		return 0, fmt.Errorf("%w: unknown sample encoding %q (want 8bit or 16bit)", ErrInvalidArguments, s)
	}
}

// normalize converts a color to straight (non-premultiplied) RGB in [0, 1].
// Alpha is discarded; the model is three-channel.
func (e SampleEncoding) normalize(c color.Color) colorful.Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	if e == Encoding16Bit {
		return colorful.Color{
			R: float64(n.R) / 0xffff,
			G: float64(n.G) / 0xffff,
			B: float64(n.B) / 0xffff,
		}
	}
	return colorful.Color{
		R: float64(n.R>>8) / 255,
		G: float64(n.G>>8) / 255,
		B: float64(n.B>>8) / 255,
	}
}

// HSVImage holds an image as three parallel planes.
//
// H is in degrees on a 0-360 scale, S and V are in [0, 1]. The pixel at (x, y)
// lives at index (y-Rect.Min.Y)*Stride + (x-Rect.Min.X) in every plane.
type HSVImage struct {
	H, S, V []float64
	Stride  int
	Rect    image.Rectangle
}

// NewHSVImage allocates zeroed planes covering r.
func NewHSVImage(r image.Rectangle) *HSVImage {
	n := r.Dx() * r.Dy()
	return &HSVImage{
		H:      make([]float64, n),
		S:      make([]float64, n),
		V:      make([]float64, n),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// Bounds returns the spatial extent of the planes.
func (p *HSVImage) Bounds() image.Rectangle { return p.Rect }

// PixOffset returns the plane index of the pixel at (x, y).
func (p *HSVImage) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

// At returns the hue, saturation and value at (x, y).
func (p *HSVImage) At(x, y int) (h, s, v float64) {
	i := p.PixOffset(x, y)
	return p.H[i], p.S[i], p.V[i]
}

// Set stores hue, saturation and value at (x, y).
func (p *HSVImage) Set(x, y int, h, s, v float64) {
	i := p.PixOffset(x, y)
	p.H[i], p.S[i], p.V[i] = h, s, v
}

// Clone returns a deep copy of the planes.
func (p *HSVImage) Clone() *HSVImage {
	return &HSVImage{
		H:      append([]float64(nil), p.H...),
		S:      append([]float64(nil), p.S...),
		V:      append([]float64(nil), p.V...),
		Stride: p.Stride,
		Rect:   p.Rect,
	}
}

// ToHSV converts img into HSV planes.
//
// Samples are normalized to [0, 1] according to enc and converted with
// go-colorful, which reports hue in [0, 360) and uses 0 for achromatic pixels.
// A nil image or one with empty bounds yields ErrInvalidImage.
func ToHSV(img image.Image, enc SampleEncoding) (*HSVImage, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: empty bounds %v", ErrInvalidImage, bounds)
	}

	out := NewHSVImage(bounds)
	parallel.Line(bounds.Dy(), func(start, end int) {
		for y := bounds.Min.Y + start; y < bounds.Min.Y+end; y++ {
			i := out.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				out.H[i], out.S[i], out.V[i] = enc.normalize(img.At(x, y)).Hsv()
				i++
			}
		}
	})
	return out, nil
}

// ToRGB recombines the planes into an opaque 16-bit RGB image.
//
// The result is not re-quantized to 8 bits, so a round trip through ToHSV with
// Encoding16Bit loses at most one 16-bit step per channel.
func (p *HSVImage) ToRGB() *image.RGBA64 {
	out := image.NewRGBA64(p.Rect)
	parallel.Line(p.Rect.Dy(), func(start, end int) {
		for y := p.Rect.Min.Y + start; y < p.Rect.Min.Y+end; y++ {
			i := p.PixOffset(p.Rect.Min.X, y)
			for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
				r, g, b, _ := colorful.Hsv(p.H[i], p.S[i], p.V[i]).Clamped().RGBA()
				out.SetRGBA64(x, y, color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff})
				i++
			}
		}
	})
	return out
}
