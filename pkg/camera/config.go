// Package camera opens the frame source the detector reads from: a local
// capture device or a video file/stream that OpenCV can decode.
package camera

import (
	"fmt"
	"strconv"
)

// Config holds the capture settings.
type Config struct {
	// Device is a capture index ("0", "1", ...) or a file path / stream URL.
	Device string

	// Requested resolution. 0 keeps the driver default.
	Width  int
	Height int

	// Framerate requests a capture rate. 0 keeps the driver default.
	Framerate int
}

// Limits accepted by Validate.
const (
	MaxWidth     = 7680
	MaxHeight    = 4320
	MaxFramerate = 240
)

// DefaultConfig returns the first local camera at its native resolution.
func DefaultConfig() Config {
	return Config{
		Device: "0",
	}
}

// DeviceIndex reports whether Device names a numbered capture device.
func (c Config) DeviceIndex() (int, bool) {
	id, err := strconv.Atoi(c.Device)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// Validate checks if the config values are within valid ranges.
// Returns a list of validation errors, or nil if valid.
func (c *Config) Validate() []string {
	var errors []string

	if c.Device == "" {
		errors = append(errors, "device must not be empty")
	}

	// Resolution
	if c.Width < 0 || c.Width > MaxWidth {
		errors = append(errors, fmt.Sprintf("width must be 0 (driver default) or up to %d", MaxWidth))
	}
	if c.Height < 0 || c.Height > MaxHeight {
		errors = append(errors, fmt.Sprintf("height must be 0 (driver default) or up to %d", MaxHeight))
	}
	if (c.Width == 0) != (c.Height == 0) {
		errors = append(errors, "width and height must be set together")
	}
	if c.Framerate < 0 || c.Framerate > MaxFramerate {
		errors = append(errors, fmt.Sprintf("framerate must be 0 (driver default) or up to %d", MaxFramerate))
	}

	return errors
}
