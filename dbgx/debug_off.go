//go:build !debugx

package dbgx

// Enabled indicates whether debug output is enabled
const Enabled = false

// Msgf is a no-op in release builds
func Msgf(format string, args ...any) {
	// No output in release mode
}

// Form returns v unchanged. No output in release builds.
func Form[T any](v T) T {
	return v
}

// Value is a no-op in release builds. Guard calls with Enabled so the
// argument expression is compiled out as well.
func Value[T any](v T) {
	// No output in release mode
}
