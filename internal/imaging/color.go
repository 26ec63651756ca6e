package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/anthonynsimon/bild/clone"
	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSVColor represents a color in HSV space on the scale used by the hue
// transform.
type HSVColor struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-1 (0=gray, 1=vivid)
	V float64 `json:"v"` // Value: 0-1 (0=black, 1=full brightness)
}

// ColorResult contains a pixel color in several representations.
type ColorResult struct {
	Hex string   `json:"hex"` // Hex format "#RRGGBB" (no alpha)
	RGB RGBColor `json:"rgb"` // RGB components
	HSV HSVColor `json:"hsv"` // HSV representation
}

// SampleColor extracts the color at a specific pixel coordinate.
//
// The HSV components are what InvertHue sees for that pixel with
// Encoding8Bit, so the hue can be used directly as a window center.
// Returns an error if (x, y) is outside the image bounds.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("%w: coordinates (%d,%d) outside image bounds", ErrInvalidArguments, x, y)
	}

	c := Encoding8Bit.normalize(img.At(x, y))
	r8, g8, b8 := c.RGB255()
	h, s, v := c.Hsv()

	return &ColorResult{
		Hex: fmt.Sprintf("#%02X%02X%02X", r8, g8, b8),
		RGB: RGBColor{R: r8, G: g8, B: b8},
		HSV: HSVColor{H: h, S: s, V: v},
	}, nil
}

// DefaultHueBins is the histogram resolution used when none is given
// (10 degrees per bin).
const DefaultHueBins = 36

// MinChromaticSaturation is the saturation below which a pixel counts as
// achromatic in a hue histogram. Such pixels have no meaningful hue and are
// barely affected by an inversion.
const MinChromaticSaturation = 0.1

// HueBin is one bucket of a hue histogram covering [Start, End).
type HueBin struct {
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // Share of chromatic pixels (0-100)
}

// HueHistogramResult summarizes the hue distribution of an image.
type HueHistogramResult struct {
	Bins        []HueBin `json:"bins"`        // In hue order
	Dominant    []HueBin `json:"dominant"`    // Non-empty bins by count, descending
	Chromatic   int      `json:"chromatic"`   // Pixels counted in Bins
	Achromatic  int      `json:"achromatic"`  // Pixels with saturation below MinChromaticSaturation
	TotalPixels int      `json:"total_pixels"`
}

// HueHistogram buckets the hues of all chromatic pixels of img into bins
// equal-width bins. It helps pick a window center that actually hits the
// image's colors. bins <= 0 uses DefaultHueBins.
func HueHistogram(img image.Image, bins int) (*HueHistogramResult, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}
	if bins <= 0 {
		bins = DefaultHueBins
	}

	width := 360 / float64(bins)
	result := &HueHistogramResult{Bins: make([]HueBin, bins)}
	for i := range result.Bins {
		result.Bins[i].Start = float64(i) * width
		result.Bins[i].End = float64(i+1) * width
	}

	rgba := clone.AsShallowRGBA(img)
	rowLen := rgba.Rect.Dx() * 4
	for y := 0; y < rgba.Rect.Dy(); y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+rowLen]
		for i := 0; i < len(row); i += 4 {
			c := colorful.Color{
				R: float64(row[i]) / 255,
				G: float64(row[i+1]) / 255,
				B: float64(row[i+2]) / 255,
			}
			result.TotalPixels++
			h, s, _ := c.Hsv()
			if s < MinChromaticSaturation {
				result.Achromatic++
				continue
			}
			idx := int(h / width)
			if idx >= bins {
				idx = bins - 1
			}
			result.Bins[idx].Count++
			result.Chromatic++
		}
	}

	for i := range result.Bins {
		if result.Chromatic > 0 {
			result.Bins[i].Percentage = float64(result.Bins[i].Count) / float64(result.Chromatic) * 100
		}
		if result.Bins[i].Count > 0 {
			result.Dominant = append(result.Dominant, result.Bins[i])
		}
	}
	sort.SliceStable(result.Dominant, func(i, j int) bool {
		return result.Dominant[i].Count > result.Dominant[j].Count
	})

	return result, nil
}
