//go:build debug

package dbg

import (
	"fmt"
	"runtime"

	"github.com/dbgscope/dbgscope/internal/source"
)

// Enabled indicates whether debug output is enabled
const Enabled = true

// Msgf prints a formatted diagnostic line when debug mode is enabled
func Msgf(format string, args ...any) {
	fmt.Fprintf(Sink, format+"\n", args...)
}

// Form prints the source text of its argument expression along with the
// computed value, then returns the value unchanged. The argument is
// evaluated exactly once, by the caller, before Form runs.
func Form[T any](v T) T {
	expr := "<expr>"
	if _, file, line, ok := runtime.Caller(1); ok {
		if text, err := source.CallArg(file, line, "Form"); err == nil {
			expr = text
		}
	}
	fmt.Fprintf(Sink, "%s = %#v\n", expr, v)
	return v
}
