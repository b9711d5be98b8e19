// Package display presents annotated frames and polls the keyboard.
package display

import (
	"gocv.io/x/gocv"
)

// DefaultTitle is the window title used when none is given.
const DefaultTitle = "Ghostlines Detector"

// NoKey is what PollKey returns when nothing was pressed.
const NoKey = -1

// Sink shows frames and reports key presses.
type Sink interface {
	// Show presents a 3-channel frame
	Show(frame gocv.Mat)

	// PollKey waits up to delayMs for a key and returns its low byte, or NoKey
	PollKey(delayMs int) int

	// Close tears down the surface
	Close() error
}

// Window is a Sink backed by an OpenCV HighGUI window.
type Window struct {
	window *gocv.Window
}

// NewWindow opens a window with the given title.
func NewWindow(title string) *Window {
	if title == "" {
		title = DefaultTitle
	}
	return &Window{window: gocv.NewWindow(title)}
}

// Show displays the frame.
func (w *Window) Show(frame gocv.Mat) {
	w.window.IMShow(frame)
}

// PollKey pumps the window event loop for delayMs and returns the key.
func (w *Window) PollKey(delayMs int) int {
	return KeyCode(w.window.WaitKey(delayMs))
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.window.Close()
}

// KeyCode normalises a raw HighGUI key value to its low byte.
func KeyCode(raw int) int {
	if raw < 0 {
		return NoKey
	}
	return raw & 0xFF
}
