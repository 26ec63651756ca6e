// Package logger provides leveled logging for hue-invert.
//
// Debug, Info, Warn and Section output is only written when verbose mode is
// enabled (--verbose, or HUE_INVERT_LOG_LEVEL=debug). Error output is always
// written. All output goes to stderr by default so stdout stays free for the
// MCP protocol and command results.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// EnvLogLevel is the environment variable consulted by FromEnv.
const EnvLogLevel = "HUE_INVERT_LOG_LEVEL"

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// FromEnv enables verbose mode when HUE_INVERT_LOG_LEVEL is "debug".
func FromEnv() {
	if strings.EqualFold(os.Getenv(EnvLogLevel), "debug") {
		SetVerbose(true)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(true, "[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(true, "[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf(true, "[WARN] ", format, args...)
}

// Error prints an error message regardless of verbose mode.
func Error(format string, args ...any) {
	logf(false, "[ERROR] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

func logf(gated bool, prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if gated && !verbose {
		return
	}
	fmt.Fprintf(output, prefix+format+"\n", args...)
}
