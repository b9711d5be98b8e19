package camera

import (
	"errors"
	"fmt"

	"github.com/teslashibe/ghostlines/internal/log"
	"gocv.io/x/gocv"
)

// ErrNotOpened is returned when the capture backend cannot open the device.
var ErrNotOpened = errors.New("capture source not opened")

// Source delivers fixed-resolution BGR frames, one per Read.
type Source interface {
	// Read blocks for the next frame. false means the stream has ended.
	Read(dst *gocv.Mat) bool

	// Close releases the device
	Close() error
}

// Camera is a Source backed by gocv.VideoCapture.
type Camera struct {
	capture *gocv.VideoCapture
}

// Open opens the device or file named by cfg.
func Open(cfg Config) (*Camera, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid camera config: %v", errs)
	}

	var device interface{} = cfg.Device
	if id, ok := cfg.DeviceIndex(); ok {
		device = id
	}

	capture, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", cfg.Device, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("open %q: %w", cfg.Device, ErrNotOpened)
	}

	if cfg.Width > 0 && cfg.Height > 0 {
		capture.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
		capture.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	}
	if cfg.Framerate > 0 {
		capture.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))
	}

	log.Info("camera opened",
		"device", cfg.Device,
		"width", int(capture.Get(gocv.VideoCaptureFrameWidth)),
		"height", int(capture.Get(gocv.VideoCaptureFrameHeight)),
	)

	return &Camera{capture: capture}, nil
}

// Read grabs the next frame. An empty frame counts as end of stream.
func (c *Camera) Read(dst *gocv.Mat) bool {
	if ok := c.capture.Read(dst); !ok {
		return false
	}
	return !dst.Empty()
}

// Close releases the capture device.
func (c *Camera) Close() error {
	return c.capture.Close()
}
