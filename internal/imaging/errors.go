package imaging

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped) by this package. Callers should test for
// them with errors.Is.
var (
	// ErrInvalidArguments reports insufficient or malformed input parameters.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrImageLoad reports that a source image could not be opened or decoded.
	ErrImageLoad = errors.New("image load failure")

	// ErrInvalidHueCenter reports a window center outside [0, 360).
	ErrInvalidHueCenter = errors.New("invalid hue center")

	// ErrInvalidImage reports an image the color conversion cannot handle,
	// such as a nil image or one with empty bounds.
	ErrInvalidImage = errors.New("invalid image")

	// ErrUnsupportedFormat reports an output path whose extension has no encoder.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// LoadError describes a failed image load.
//
// Op is "open" when the path could not be read and "decode" when the file was
// read but its contents are not a supported image. A LoadError matches
// ErrImageLoad as well as the underlying cause, so both
//
//	errors.Is(err, imaging.ErrImageLoad)
//	errors.Is(err, fs.ErrNotExist)
//
// hold for a missing file.
type LoadError struct {
	Path string
	Op   string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to %s image %q: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrImageLoad and the underlying cause.
func (e *LoadError) Unwrap() []error {
	return []error{ErrImageLoad, e.Err}
}
