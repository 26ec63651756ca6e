package imaging

import (
	"fmt"
	"math"
)

// WindowMode selects how a hue window behaves near the 0/360 boundary.
type WindowMode int

const (
	// WindowClamp clamps the window to [0, 360]: center 5 with radius 10
	// selects [0, 15] and never reaches 350-360.
	WindowClamp WindowMode = iota

	// WindowWrap treats hue as cyclic: center 5 with radius 10 selects
	// [355, 360) and [0, 15].
	WindowWrap
)

// String returns the flag/config spelling of the mode.
func (m WindowMode) String() string {
	switch m {
	case WindowClamp:
		return "clamp"
	case WindowWrap:
		return "wrap"
	default:
		return fmt.Sprintf("WindowMode(%d)", int(m))
	}
}

// ParseWindowMode parses "clamp" or "wrap". An empty string yields WindowClamp.
func ParseWindowMode(s string) (WindowMode, error) {
	switch s {
	case "", "clamp":
		return WindowClamp, nil
	case "wrap":
		return WindowWrap, nil
	default:
		return 0, fmt.Errorf("%w: unknown window mode %q (want clamp or wrap)", ErrInvalidArguments, s)
	}
}

// HueWindow is the closed hue interval [Center-Radius, Center+Radius].
type HueWindow struct {
	Center float64    `json:"center"`
	Radius float64    `json:"radius"`
	Mode   WindowMode `json:"-"`
}

// Validate checks the window before a transform runs.
//
// Center must satisfy 0 <= Center < 360 (ErrInvalidHueCenter) and Radius must
// be non-negative (ErrInvalidArguments).
func (w HueWindow) Validate() error {
	if math.IsNaN(w.Center) || w.Center < 0 || w.Center >= 360 {
		return fmt.Errorf("%w: %g (must satisfy 0 <= center < 360)", ErrInvalidHueCenter, w.Center)
	}
	if math.IsNaN(w.Radius) || w.Radius < 0 {
		return fmt.Errorf("%w: radius %g must be non-negative", ErrInvalidArguments, w.Radius)
	}
	return nil
}

// Bounds returns the interval endpoints. In WindowClamp mode they are clamped
// to [0, 360]; in WindowWrap mode they are returned unclamped and may fall
// outside that range.
func (w HueWindow) Bounds() (lo, hi float64) {
	lo, hi = w.Center-w.Radius, w.Center+w.Radius
	if w.Mode == WindowClamp {
		lo = math.Max(lo, 0)
		hi = math.Min(hi, 360)
	}
	return lo, hi
}

// Contains reports whether hue h is selected by the window. Both ends are
// inclusive.
func (w HueWindow) Contains(h float64) bool {
	if w.Mode == WindowWrap {
		if w.Radius >= 180 {
			return true
		}
		d := math.Abs(math.Mod(h-w.Center, 360))
		if d > 180 {
			d = 360 - d
		}
		return d <= w.Radius
	}
	lo, hi := w.Bounds()
	return h >= lo && h <= hi
}

func (w HueWindow) String() string {
	lo, hi := w.Bounds()
	return fmt.Sprintf("[%g, %g] (center=%g, radius=%g, mode=%s)", lo, hi, w.Center, w.Radius, w.Mode)
}
