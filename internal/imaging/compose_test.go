package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestSideBySide(t *testing.T) {
	left := createInMemoryImage(30, 20, color.RGBA{255, 0, 0, 255})
	right := createInMemoryImage(40, 10, color.RGBA{0, 0, 255, 255})

	out := SideBySide(left, right, 5)

	if out.Bounds() != image.Rect(0, 0, 75, 20) {
		t.Fatalf("bounds: got %v, want 75x20", out.Bounds())
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"left image", 10, 10, color.NRGBA{255, 0, 0, 255}},
		{"gap", 32, 5, color.NRGBA{255, 255, 255, 255}},
		{"right image", 50, 5, color.NRGBA{0, 0, 255, 255}},
		{"below shorter right image", 50, 15, color.NRGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := out.NRGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSideBySide_NegativeGap(t *testing.T) {
	img := createInMemoryImage(10, 10, color.Black)
	if out := SideBySide(img, img, -3); out.Bounds().Dx() != 20 {
		t.Errorf("width: got %d, want 20", out.Bounds().Dx())
	}
}

func TestFitPreview(t *testing.T) {
	img := createInMemoryImage(400, 200, color.White)

	tests := []struct {
		name         string
		maxW, maxH   int
		wantW, wantH int
	}{
		{"fits", 800, 600, 400, 200},
		{"width limited", 200, 600, 200, 100},
		{"height limited", 800, 50, 100, 50},
		{"no limit", 0, 0, 400, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FitPreview(img, tt.maxW, tt.maxH).Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}
