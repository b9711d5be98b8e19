// Package config provides configuration helpers for ghostlines commands.
package config

import (
	"os"
	"strconv"
)

// Environment variables read by the ghostlines command.
const (
	EnvDevice   = "GHOSTLINES_DEVICE"
	EnvLogLevel = "GHOSTLINES_LOG_LEVEL"
	EnvSeed     = "GHOSTLINES_SEED"
)

// Defaults used when neither a flag nor the environment provides a value.
const (
	DefaultDevice   = "0"
	DefaultLogLevel = "info"
)

// Device returns the capture device from GHOSTLINES_DEVICE.
// Falls back to the provided default if not set.
func Device(defaultDevice string) string {
	return String(EnvDevice, defaultDevice)
}

// LogLevel returns the log level from GHOSTLINES_LOG_LEVEL or the default.
func LogLevel() string {
	return String(EnvLogLevel, DefaultLogLevel)
}

// Seed returns the sampling seed from GHOSTLINES_SEED.
// ok is false when the variable is unset or not an unsigned integer.
func Seed() (seed uint64, ok bool) {
	v := os.Getenv(EnvSeed)
	if v == "" {
		return 0, false
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return seed, true
}

// String returns the value of key, or def when it is unset or empty.
func String(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
