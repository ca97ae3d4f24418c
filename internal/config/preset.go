package config

import "fmt"

// Preset is a named line precision level.
type Preset string

const (
	PresetRelaxed  Preset = "relaxed"
	PresetStandard Preset = "standard"
	PresetPrecise  Preset = "precise"
)

// ParsePreset validates a preset name. Empty means standard.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case "", PresetStandard:
		return PresetStandard, nil
	case PresetRelaxed, PresetPrecise:
		return Preset(s), nil
	default:
		return "", fmt.Errorf("config: unknown preset %q (want relaxed, standard or precise)", s)
	}
}

// ApplyPreset adjusts how forgiving collision is. Standard leaves the loaded
// values untouched.
func ApplyPreset(cfg *GameConfig, preset Preset) {
	switch preset {
	case PresetRelaxed:
		cfg.Line.WidthLeeway = 0.1
		cfg.Line.Width = 0.2
	case PresetPrecise:
		cfg.Line.WidthLeeway = 0
		cfg.Line.Width = 0.05
	}
}
