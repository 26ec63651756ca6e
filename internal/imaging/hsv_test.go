package imaging

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func TestToHSV_KnownColors(t *testing.T) {
	tests := []struct {
		name                string
		color               color.RGBA
		wantH, wantS, wantV float64
	}{
		{"red", color.RGBA{255, 0, 0, 255}, 0, 1, 1},
		{"yellow", color.RGBA{255, 255, 0, 255}, 60, 1, 1},
		{"green", color.RGBA{0, 255, 0, 255}, 120, 1, 1},
		{"cyan", color.RGBA{0, 255, 255, 255}, 180, 1, 1},
		{"blue", color.RGBA{0, 0, 255, 255}, 240, 1, 1},
		{"magenta", color.RGBA{255, 0, 255, 255}, 300, 1, 1},
		{"white", color.RGBA{255, 255, 255, 255}, 0, 0, 1},
		{"black", color.RGBA{0, 0, 0, 255}, 0, 0, 0},
		{"dark red", color.RGBA{51, 0, 0, 255}, 0, 1, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hsv, err := ToHSV(createInMemoryImage(3, 2, tt.color), Encoding8Bit)
			if err != nil {
				t.Fatalf("ToHSV failed: %v", err)
			}
			if len(hsv.H) != 6 || len(hsv.S) != 6 || len(hsv.V) != 6 {
				t.Fatalf("plane sizes: got %d/%d/%d, want 6", len(hsv.H), len(hsv.S), len(hsv.V))
			}

			h, s, v := hsv.At(2, 1)
			if math.Abs(h-tt.wantH) > 1e-9 || math.Abs(s-tt.wantS) > 1e-9 || math.Abs(v-tt.wantV) > 1e-9 {
				t.Errorf("got (%g,%g,%g), want (%g,%g,%g)", h, s, v, tt.wantH, tt.wantS, tt.wantV)
			}
		})
	}
}

func TestToHSV_Encodings(t *testing.T) {
	img := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	img.SetRGBA64(0, 0, color.RGBA64{R: 0x80ff, G: 0, B: 0, A: 0xffff})

	hsv8, err := ToHSV(img, Encoding8Bit)
	if err != nil {
		t.Fatalf("ToHSV 8-bit failed: %v", err)
	}
	hsv16, err := ToHSV(img, Encoding16Bit)
	if err != nil {
		t.Fatalf("ToHSV 16-bit failed: %v", err)
	}

	if want := 128.0 / 255; math.Abs(hsv8.V[0]-want) > 1e-12 {
		t.Errorf("8-bit V: got %v, want %v", hsv8.V[0], want)
	}
	if want := float64(0x80ff) / 0xffff; math.Abs(hsv16.V[0]-want) > 1e-12 {
		t.Errorf("16-bit V: got %v, want %v", hsv16.V[0], want)
	}
}

func TestToHSV_IgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 64})

	hsv, err := ToHSV(img, Encoding8Bit)
	if err != nil {
		t.Fatalf("ToHSV failed: %v", err)
	}
	h, s, v := hsv.At(0, 0)
	if h != 120 || s != 1 || v != 1 {
		t.Errorf("got (%g,%g,%g), want straight green (120,1,1)", h, s, v)
	}
}

func TestToHSV_OffsetBounds(t *testing.T) {
	img := createPatternImage(10, 10).SubImage(image.Rect(5, 5, 10, 10))

	hsv, err := ToHSV(img, Encoding8Bit)
	if err != nil {
		t.Fatalf("ToHSV failed: %v", err)
	}
	if hsv.Bounds() != image.Rect(5, 5, 10, 10) {
		t.Errorf("bounds: got %v", hsv.Bounds())
	}
	if _, s, _ := hsv.At(5, 5); s != 0 {
		t.Errorf("expected white (s=0) at (5,5), got s=%g", s)
	}
	if out := hsv.ToRGB(); out.Bounds() != hsv.Bounds() {
		t.Errorf("ToRGB bounds: got %v, want %v", out.Bounds(), hsv.Bounds())
	}
}

func TestToHSV_InvalidImage(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"nil", nil},
		{"empty", image.NewRGBA(image.Rect(0, 0, 0, 0))},
		{"zero height", image.NewRGBA(image.Rect(0, 0, 10, 0))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToHSV(tt.img, Encoding8Bit)
			if !errors.Is(err, ErrInvalidImage) {
				t.Errorf("expected ErrInvalidImage, got %v", err)
			}
		})
	}
}

func TestHSVImage_RoundTrip(t *testing.T) {
	src := createPatternImage(8, 8)

	hsv, err := ToHSV(src, Encoding16Bit)
	if err != nil {
		t.Fatalf("ToHSV failed: %v", err)
	}
	out := hsv.ToRGB()

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := color.RGBA64Model.Convert(src.At(x, y)).(color.RGBA64)
			got := out.RGBA64At(x, y)
			if got != want {
				t.Fatalf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestHSVImage_Clone(t *testing.T) {
	hsv := NewHSVImage(image.Rect(0, 0, 2, 2))
	hsv.Set(1, 1, 90, 0.5, 0.25)

	c := hsv.Clone()
	c.Set(1, 1, 10, 0.1, 0.1)

	if h, s, v := hsv.At(1, 1); h != 90 || s != 0.5 || v != 0.25 {
		t.Errorf("Clone shares storage with the original: got (%g,%g,%g)", h, s, v)
	}
}

func TestParseSampleEncoding(t *testing.T) {
	tests := []struct {
		in      string
		want    SampleEncoding
		wantErr bool
	}{
		{"", Encoding8Bit, false},
		{"8bit", Encoding8Bit, false},
		{"16bit", Encoding16Bit, false},
		{"16", Encoding16Bit, false},
		{"float", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSampleEncoding(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArguments) {
					t.Errorf("expected ErrInvalidArguments, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got (%v, %v), want %v", got, err, tt.want)
			}
			if got.String() != map[SampleEncoding]string{Encoding8Bit: "8bit", Encoding16Bit: "16bit"}[got] {
				t.Errorf("String: got %s", got.String())
			}
		})
	}
}
