//go:build gocv

package display

import (
	"context"
	"fmt"
	"image"
	"time"

	"gocv.io/x/gocv"

	"github.com/ironsheep/hue-invert/internal/imaging"
)

// New returns the Viewer compiled into this binary.
func New() Viewer {
	return &WindowViewer{}
}

// WindowViewer shows images in an OpenCV highgui window. Each call blocks
// until a key is pressed, the window is closed or ctx is done.
type WindowViewer struct{}

// ShowImage displays img until dismissed.
func (WindowViewer) ShowImage(ctx context.Context, title string, img image.Image) error {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	window := gocv.NewWindow(title)
	defer window.Close()

	window.IMShow(mat)
	for ctx.Err() == nil && window.IsOpen() {
		if window.WaitKey(100) >= 0 {
			break
		}
	}
	return nil
}

// ShowAnimation loops over frames until dismissed.
func (WindowViewer) ShowAnimation(ctx context.Context, title string, frames []imaging.Frame, interval time.Duration) error {
	if len(frames) == 0 {
		return fmt.Errorf("%w: no frames to show", imaging.ErrInvalidArguments)
	}

	mats := make([]gocv.Mat, 0, len(frames))
	defer func() {
		for _, m := range mats {
			m.Close()
		}
	}()
	for _, f := range frames {
		mat, err := gocv.ImageToMatRGB(f.Image)
		if err != nil {
			return fmt.Errorf("failed to convert frame %d: %w", f.Index, err)
		}
		mats = append(mats, mat)
	}

	window := gocv.NewWindow(title)
	defer window.Close()

	delay := int(interval / time.Millisecond)
	if delay < 1 {
		delay = 1
	}
	for i := 0; ctx.Err() == nil && window.IsOpen(); i = (i + 1) % len(mats) {
		window.IMShow(mats[i])
		if window.WaitKey(delay) >= 0 {
			break
		}
	}
	return nil
}
