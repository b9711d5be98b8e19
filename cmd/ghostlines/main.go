// Ghostlines - darkness centroid motion visualizer
//
// Reads frames from a camera or video file, tracks the centre of mass of the
// dark pixels and draws its frame-to-frame displacement as arrows anchored at
// sampled points of change.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/teslashibe/ghostlines/internal/config"
	"github.com/teslashibe/ghostlines/internal/log"
	"github.com/teslashibe/ghostlines/pkg/app"
	"github.com/teslashibe/ghostlines/pkg/camera"
)

func main() {
	cfg, logLevel, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(2)
	}
	log.Init(logLevel)
	l := log.With("device", cfg.Camera.Device)
	l.Info("starting",
		"width", cfg.Camera.Width,
		"height", cfg.Camera.Height,
		"seeded", cfg.Seeded,
	)

	a, err := app.New(cfg)
	if err != nil {
		l.Error("configuration error", "error", err)
		os.Exit(1)
	}

	if err := a.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (run %s)\n", err, log.RunID())
		l.Error("startup failed", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	stats, err := a.Run(ctx)
	cancel()
	a.Shutdown()

	if err != nil {
		l.Error("runtime error", "error", err)
		os.Exit(1)
	}
	l.Info("stopped", "reason", string(stats.Reason), "frames", stats.Frames)
}

// parseFlags parses command line flags and returns configuration.
// Flags win over GHOSTLINES_* environment variables, which win over defaults.
func parseFlags() (app.Config, string, error) {
	cfg := app.DefaultConfig()

	device := flag.String("device", "", "Camera index or video file/URL (overrides GHOSTLINES_DEVICE)")
	preset := flag.String("preset", camera.PresetNative, "Capture resolution: "+strings.Join(camera.PresetNames(), ", "))
	width := flag.Int("width", 0, "Requested frame width (overrides preset)")
	height := flag.Int("height", 0, "Requested frame height (overrides preset)")
	title := flag.String("title", cfg.Title, "Window title")
	seed := flag.Uint64("seed", 0, "Seed change-point sampling for reproducible output (overrides GHOSTLINES_SEED)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides GHOSTLINES_LOG_LEVEL)")
	debug := flag.Bool("debug", false, "Print a trace line per frame")

	seedSet := false
	flag.Parse()
	flag.Visit(func(f *flag.Flag) { seedSet = seedSet || f.Name == "seed" })

	cfg.Debug, cfg.Title = *debug, *title

	cfg.Camera.Device = config.Device(cfg.Camera.Device)
	if *device != "" {
		cfg.Camera.Device = *device
	}

	var ok bool
	if cfg.Camera, ok = camera.ApplyPreset(cfg.Camera, *preset); !ok {
		return cfg, "", fmt.Errorf("unknown preset %q", *preset)
	}
	if *width > 0 || *height > 0 {
		cfg.Camera.Width, cfg.Camera.Height = *width, *height
	}

	if seedSet {
		cfg.Seed, cfg.Seeded = *seed, true
	} else {
		cfg.Seed, cfg.Seeded = config.Seed()
	}

	level := config.LogLevel()
	if *logLevel != "" {
		level = *logLevel
	}
	return cfg, level, nil
}
