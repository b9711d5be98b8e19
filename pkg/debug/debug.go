// Package debug provides global debug trace flags
package debug

import (
	"fmt"
	"image"
	"io"
	"os"
)

// Enabled controls whether per-frame trace lines are printed
var Enabled bool

// Out is where trace lines go
var Out io.Writer = os.Stdout

// Log prints a message only if debug mode is enabled
func Log(format string, args ...interface{}) {
	if Enabled {
		fmt.Fprintf(Out, format, args...)
	}
}

// Frame prints a one-line summary of an analysed frame
func Frame(n int, center, delta image.Point, changes, anchors int) {
	if !Enabled {
		return
	}
	fmt.Fprintf(Out, "🎞️  frame %d | center (%d, %d) | Δ (%d, %d) | %d changed | %d drawn\n",
		n, center.X, center.Y, delta.X, delta.Y, changes, anchors)
}
