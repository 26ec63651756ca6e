package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// SideBySide places left and right next to each other on a white canvas,
// separated by gap pixels and top-aligned. It is used to show an original
// and its inverted version in one image.
func SideBySide(left, right image.Image, gap int) *image.NRGBA {
	if gap < 0 {
		gap = 0
	}
	lb, rb := left.Bounds(), right.Bounds()

	width := lb.Dx() + gap + rb.Dx()
	height := lb.Dy()
	if rb.Dy() > height {
		height = rb.Dy()
	}

	canvas := imaging.New(width, height, color.White)
	canvas = imaging.Paste(canvas, left, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, right, image.Pt(lb.Dx()+gap, 0))
	return canvas
}

// FitPreview scales img down to fit within maxWidth x maxHeight, preserving
// its aspect ratio. Images that already fit, or a non-positive limit, return
// img unchanged.
func FitPreview(img image.Image, maxWidth, maxHeight int) image.Image {
	if maxWidth <= 0 || maxHeight <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxWidth && b.Dy() <= maxHeight {
		return img
	}
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}
