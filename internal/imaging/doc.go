// Package imaging implements hue-range inversion and the supporting image plumbing.
//
// The central operation is InvertHue: an image is normalized to the unit range,
// converted to HSV planes, every hue inside a HueWindow is rotated by 180 degrees
// and the planes are converted back to RGB. Saturation and value are never
// modified. Sweep builds an animation on top of it by sliding a fixed-radius
// window across the hue circle.
//
// # Color Representation
//
// Hue is expressed in degrees on a 0-360 scale (0=red, 120=green, 240=blue).
// Saturation and value are in [0, 1]. Conversion is done with go-colorful, which
// assigns hue 0 to achromatic pixels (black, white and grays).
//
// Source samples are normalized according to an explicit SampleEncoding:
//   - Encoding8Bit: each channel is reduced to 8 bits and divided by 255
//   - Encoding16Bit: each channel is divided by 65535
//
// Alpha is discarded. Results are opaque *image.RGBA64 values and are not
// re-quantized to 8 bits.
//
// # Hue Windows
//
// A HueWindow selects hues in [Center-Radius, Center+Radius], inclusive on both
// ends. In WindowClamp mode (the default) the interval is clamped to [0, 360],
// so a window near red shrinks instead of wrapping. WindowWrap measures cyclic
// distance and wraps across 0/360.
//
// # Sweeps
//
// Frame i of a Sweep uses center Radius + (i mod FrameCount)*Step, with
// FrameCount = floor((360 - 2*Radius) / Step) + 1. Centers depend only on the
// frame index, so Frames (lazy, sequential) and Render (parallel) produce the
// same frames and a sweep can be restarted at any index.
//
// # Error Handling
//
// Errors wrap the sentinels declared in errors.go and should be tested with
// errors.Is:
//   - ErrInvalidArguments for malformed parameters
//   - ErrInvalidHueCenter for a center outside [0, 360)
//   - ErrImageLoad for unreadable or undecodable files (see LoadError)
//   - ErrInvalidImage for nil or empty images
//   - ErrUnsupportedFormat for output paths without an encoder
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. All other operations are stateless and
// can run concurrently on the same source image.
package imaging
