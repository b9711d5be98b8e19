// Package app runs the ghostlines capture, analyse and display loop.
package app

import (
	"github.com/teslashibe/ghostlines/pkg/camera"
	"github.com/teslashibe/ghostlines/pkg/display"
)

// Config holds all configuration for the ghostlines application.
// Flag parsing is done in cmd/ghostlines/main.go; this struct is data only.
type Config struct {
	// Debug enables per-frame trace lines.
	Debug bool

	// Camera selects and configures the frame source.
	Camera camera.Config

	// Title of the display window.
	Title string

	// Seed makes change-point sampling reproducible when Seeded is set.
	Seed   uint64
	Seeded bool
}

// DefaultConfig returns sensible defaults: first camera, default title,
// randomly seeded sampling.
func DefaultConfig() Config {
	return Config{
		Camera: camera.DefaultConfig(),
		Title:  display.DefaultTitle,
	}
}
