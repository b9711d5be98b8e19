package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/teslashibe/ghostlines/internal/log"
	"github.com/teslashibe/ghostlines/pkg/camera"
	"github.com/teslashibe/ghostlines/pkg/debug"
	"github.com/teslashibe/ghostlines/pkg/display"
	"github.com/teslashibe/ghostlines/pkg/ghost"
	"gocv.io/x/gocv"
)

// KeyPollDelay is how long each iteration waits for a key, in milliseconds.
const KeyPollDelay = 1

var (
	// ErrNoFirstFrame means the source opened but produced no frame.
	ErrNoFirstFrame = errors.New("failed to grab first frame")

	// ErrNotInitialized is returned by Run before a successful Init.
	ErrNotInitialized = errors.New("app not initialized")
)

// ExitReason says why the loop stopped.
type ExitReason string

const (
	ExitQuit        ExitReason = "quit"
	ExitEndOfStream ExitReason = "end-of-stream"
	ExitInterrupted ExitReason = "interrupted"
)

// Stats summarises a finished run.
type Stats struct {
	Frames int // Frames analysed after the first
	Reason ExitReason
}

// App is the ghostlines application.
// It owns the frame source, the display and the session carried between frames.
type App struct {
	config Config

	analyzer *ghost.Analyzer
	session  ghost.Session
	source   camera.Source
	sink     display.Sink

	// OpenSource and OpenSink build the I/O collaborators during Init.
	// They default to a gocv camera and window.
	OpenSource func(cfg camera.Config) (camera.Source, error)
	OpenSink   func(title string) display.Sink

	// Out receives operator status lines.
	Out io.Writer
}

// New creates a new application with the given configuration.
func New(cfg Config) (*App, error) {
	if errs := cfg.Camera.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("camera config: %v", errs)
	}

	debug.Enabled = cfg.Debug

	rng := ghost.SystemRand()
	if cfg.Seeded {
		rng = ghost.NewRand(cfg.Seed)
	}

	return &App{
		config:   cfg,
		analyzer: ghost.NewAnalyzer(ghost.DefaultParams(), rng),
		OpenSource: func(c camera.Config) (camera.Source, error) {
			return camera.Open(c)
		},
		OpenSink: func(title string) display.Sink {
			return display.NewWindow(title)
		},
		Out: os.Stdout,
	}, nil
}

// Init opens the source, reads the first frame and opens the display.
// Call this after New() and before Run(). On error nothing is left open.
func (a *App) Init() error {
	src, err := a.OpenSource(a.config.Camera)
	if err != nil {
		return fmt.Errorf("could not open video source: %w", err)
	}

	first := gocv.NewMat()
	defer first.Close()
	if !src.Read(&first) {
		src.Close()
		return ErrNoFirstFrame
	}

	a.source = src
	a.session = a.analyzer.Start(first)
	a.sink = a.OpenSink(a.config.Title)

	log.Debug("first frame",
		"width", first.Cols(),
		"height", first.Rows(),
		"center", a.session.Center.String(),
	)

	fmt.Fprintln(a.Out, "Press 'm' to toggle between color and grayscale mode")
	fmt.Fprintln(a.Out, "Press 'q' to quit")
	return nil
}

// Run processes frames until the source ends, the operator quits or ctx is
// cancelled. ctx is checked once per iteration.
func (a *App) Run(ctx context.Context) (Stats, error) {
	if a.source == nil || a.sink == nil {
		return Stats{}, ErrNotInitialized
	}

	frame := gocv.NewMat()
	defer frame.Close()
	annotated := gocv.NewMat()
	defer annotated.Close()
	scratch := gocv.NewMat()
	defer scratch.Close()

	var stats Stats
	for {
		if ctx.Err() != nil {
			stats.Reason = ExitInterrupted
			return stats, nil
		}

		if !a.source.Read(&frame) {
			stats.Reason = ExitEndOfStream
			return stats, nil
		}

		var r ghost.Report
		a.session, r = a.analyzer.Step(a.session, frame, &annotated)
		a.sink.Show(a.session.Mode.Present(annotated, &scratch))
		stats.Frames++

		debug.Frame(stats.Frames, r.Current, r.Displacement, r.Changes, len(r.Anchors))

		if a.handleKey(a.sink.PollKey(KeyPollDelay)) {
			stats.Reason = ExitQuit
			return stats, nil
		}
	}
}

// handleKey applies a key press and reports whether the loop should stop.
func (a *App) handleKey(key int) bool {
	switch key {
	case 'q', 'Q':
		return true
	case 'm', 'M':
		a.session = a.session.ToggleMode()
		mode := a.session.Mode
		fmt.Fprintf(a.Out, "Switched to %s mode\n", modeWord(mode))
		log.Debug("display mode changed", "mode", mode.String())
	}
	return false
}

func modeWord(m ghost.DisplayMode) string {
	if m == ghost.Grayscale {
		return "grayscale"
	}
	return "color"
}

// Mode returns the current display mode.
func (a *App) Mode() ghost.DisplayMode {
	return a.session.Mode
}

// Shutdown releases the session, the display and the source.
func (a *App) Shutdown() {
	a.session.Close()
	a.session = ghost.Session{}

	if a.sink != nil {
		if err := a.sink.Close(); err != nil {
			log.Warn("close display", "error", err)
		}
		a.sink = nil
	}
	if a.source != nil {
		if err := a.source.Close(); err != nil {
			log.Warn("close source", "error", err)
		}
		a.source = nil
	}
}
