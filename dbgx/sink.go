package dbgx

import (
	"io"
	"os"
)

// Sink is where diagnostic lines are written in debug builds.
// Tests may swap it out; release builds never write to it.
var Sink io.Writer = os.Stderr
