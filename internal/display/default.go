//go:build !gocv

package display

// New returns the Viewer compiled into this binary.
func New() Viewer {
	return NewSystemViewer()
}
