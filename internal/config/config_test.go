package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("bubbles:\n  radius: 0.5\nscoring:\n  points_per_bubble: 5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bubbles.Radius != 0.5 {
		t.Errorf("Bubbles.Radius = %v, expected 0.5", cfg.Bubbles.Radius)
	}
	if cfg.Scoring.PointsPerBubble != 5 {
		t.Errorf("Scoring.PointsPerBubble = %d, expected 5", cfg.Scoring.PointsPerBubble)
	}
	if cfg.Bubbles.MaxOnScreen != 12 {
		t.Errorf("Bubbles.MaxOnScreen = %d, expected default 12", cfg.Bubbles.MaxOnScreen)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("bubbles: [unterminated"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	path = filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(path, []byte("bubbles:\n  radius: -1\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GameConfig)
		valid  bool
	}{
		{"defaults", func(*GameConfig) {}, true},
		{"zero radius", func(c *GameConfig) { c.Bubbles.Radius = 0 }, false},
		{"no bubbles allowed", func(c *GameConfig) { c.Bubbles.MaxOnScreen = 0 }, false},
		{"negative leeway", func(c *GameConfig) { c.Line.WidthLeeway = -0.1 }, false},
		{"zero cells", func(c *GameConfig) { c.Display.CellsPerUnitY = 0 }, false},
		{"zero tick rate", func(c *GameConfig) { c.Display.TickRate = 0 }, false},
		{"zero points", func(c *GameConfig) { c.Scoring.PointsPerBubble = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tc.valid)
			}
		})
	}
}

func TestRulesAndGameConfig(t *testing.T) {
	cfg := DefaultConfig()
	rules := cfg.Rules()
	if rules.BubbleRadius != 0.3 || rules.WidthLeeway != 0.025 || rules.PointsPerBubble != 20 {
		t.Errorf("Rules() = %+v, unexpected values", rules)
	}
	if got := cfg.Game().MaxOnScreen; got != 12 {
		t.Errorf("Game().MaxOnScreen = %d, expected 12", got)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		preset  string
		leeway  float64
		wantErr bool
	}{
		{"empty is standard", "", 0.025, false},
		{"standard", "standard", 0.025, false},
		{"relaxed", "relaxed", 0.1, false},
		{"precise", "precise", 0, false},
		{"unknown", "insane", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePreset(tc.preset)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tc.preset, err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			cfg := DefaultConfig()
			ApplyPreset(&cfg, p)
			if cfg.Line.WidthLeeway != tc.leeway {
				t.Errorf("WidthLeeway = %v, expected %v", cfg.Line.WidthLeeway, tc.leeway)
			}
		})
	}
}
