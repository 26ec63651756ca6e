// Package display presents images and animations to the user.
//
// The default Viewer writes the content to a temporary file and hands it to
// the operating system's default image viewer. Building with -tags gocv
// replaces it with an OpenCV highgui window that plays animations in place.
package display

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/ironsheep/hue-invert/internal/imaging"
	"github.com/ironsheep/hue-invert/internal/logger"
)

// Viewer shows results interactively.
type Viewer interface {
	// ShowImage displays a single image.
	ShowImage(ctx context.Context, title string, img image.Image) error

	// ShowAnimation displays frames in order, interval apart, looping.
	ShowAnimation(ctx context.Context, title string, frames []imaging.Frame, interval time.Duration) error
}

// SystemViewer hands files to the platform's default viewer.
//
// Files are written to Dir (os.TempDir when empty) and are left in place so
// the viewer process can read them after ShowImage returns.
type SystemViewer struct {
	Dir string

	// Open launches the viewer for path. Nil uses OpenFile.
	Open func(ctx context.Context, path string) error
}

// NewSystemViewer returns a SystemViewer writing to the system temp directory.
func NewSystemViewer() *SystemViewer {
	return &SystemViewer{}
}

// ShowImage writes img as PNG and opens it.
func (v *SystemViewer) ShowImage(ctx context.Context, title string, img image.Image) error {
	path, err := v.write(title, ".png", func(f *os.File) error {
		return imaging.EncodePNG(f, img)
	})
	if err != nil {
		return err
	}
	return v.open(ctx, path)
}

// ShowAnimation writes frames as a looping GIF and opens it.
func (v *SystemViewer) ShowAnimation(ctx context.Context, title string, frames []imaging.Frame, interval time.Duration) error {
	path, err := v.write(title, ".gif", func(f *os.File) error {
		return imaging.EncodeGIF(f, frames, interval)
	})
	if err != nil {
		return err
	}
	return v.open(ctx, path)
}

func (v *SystemViewer) write(title, ext string, encode func(*os.File) error) (string, error) {
	f, err := os.CreateTemp(v.Dir, sanitize(title)+"-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create preview file: %w", err)
	}
	defer f.Close()

	if err := encode(f); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write preview: %w", err)
	}
	logger.Debug("preview written to %s", f.Name())
	return f.Name(), nil
}

func (v *SystemViewer) open(ctx context.Context, path string) error {
	if v.Open != nil {
		return v.Open(ctx, path)
	}
	return OpenFile(ctx, path)
}

// OpenFile opens path using the system default handler.
func OpenFile(ctx context.Context, path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.CommandContext(ctx, "open", path)
	case "linux", "freebsd", "openbsd", "netbsd":
		cmd = exec.CommandContext(ctx, "xdg-open", path)
	case "windows":
		cmd = exec.CommandContext(ctx, "rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// sanitize keeps title usable as a file name prefix.
func sanitize(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	if len(out) == 0 {
		return "hue-invert"
	}
	return string(out)
}
