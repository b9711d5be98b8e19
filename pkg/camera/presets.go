package camera

// Preset names for common capture resolutions
const (
	PresetNative = "native"
	PresetQVGA   = "qvga"
	PresetVGA    = "vga"
	Preset720p   = "720p"
	Preset1080p  = "1080p"
)

// Presets returns all available preset configurations.
// Presets only carry resolution and rate; the device is kept by ApplyPreset.
func Presets() map[string]Config {
	return map[string]Config{
		PresetNative: {},
		PresetQVGA:   {Width: 320, Height: 240},
		PresetVGA:    {Width: 640, Height: 480},
		Preset720p:   {Width: 1280, Height: 720, Framerate: 30},
		Preset1080p:  {Width: 1920, Height: 1080, Framerate: 30},
	}
}

// PresetNames returns the list of available preset names.
func PresetNames() []string {
	return []string{
		PresetNative,
		PresetQVGA,
		PresetVGA,
		Preset720p,
		Preset1080p,
	}
}

// GetPreset returns a preset by name, or nil if not found.
func GetPreset(name string) *Config {
	preset, ok := Presets()[name]
	if !ok {
		return nil
	}
	return &preset
}

// ApplyPreset returns cfg with the named preset's resolution and rate.
// ok is false for unknown names and cfg is returned unchanged.
func ApplyPreset(cfg Config, name string) (Config, bool) {
	p := GetPreset(name)
	if p == nil {
		return cfg, false
	}
	cfg.Width, cfg.Height, cfg.Framerate = p.Width, p.Height, p.Framerate
	return cfg, true
}
