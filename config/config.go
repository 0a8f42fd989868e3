// Package config provides configuration loading for the simulation core and
// its reference host, embedding baked-in defaults so the module runs
// unconfigured and letting a caller layer a YAML file on top.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the simulation core plus its reference host.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Rules  RulesConfig  `yaml:"rules"`
	Ghost  GhostConfig  `yaml:"ghost"`
	Host   HostConfig   `yaml:"host"`
	Logger LoggerConfig `yaml:"logger"`
}

// GridConfig sizes the grid and seeds its PRNG.
type GridConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   uint64 `yaml:"seed"`
}

// RulesConfig carries the tunable constants element rules use, so a host
// can retheme material behavior without recompiling.
type RulesConfig struct {
	WaterRerandomizeChance float64 `yaml:"water_rerandomize_chance"`
	SmokeDriftChance       float64 `yaml:"smoke_drift_chance"`
	FireLifeMin            int     `yaml:"fire_life_min"`
	FireLifeMax            int     `yaml:"fire_life_max"`
	SmokeLifeMin           int     `yaml:"smoke_life_min"`
	SmokeLifeMax           int     `yaml:"smoke_life_max"`
}

// GhostConfig tunes the rigid-body cluster mechanic.
type GhostConfig struct {
	BlinkPeriod int `yaml:"blink_period"`
}

// HostConfig configures the optional glfw/webgpu reference host; unused by
// the simulation core itself.
type HostConfig struct {
	WindowWidth  int     `yaml:"window_width"`
	WindowHeight int     `yaml:"window_height"`
	Title        string  `yaml:"title"`
	BrushRadius  float64 `yaml:"brush_radius"`
	VSync        bool    `yaml:"vsync"`
}

// LoggerConfig controls the embedded DefaultLogger a host wires up.
type LoggerConfig struct {
	Prefix string `yaml:"prefix"`
	Debug  bool   `yaml:"debug"`
}

// Default returns the embedded defaults with no overrides applied.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		// The embedded defaults are a build-time asset; a parse failure here
		// is a packaging bug, not a runtime condition callers can recover from.
		panic(fmt.Sprintf("config: embedded defaults.yaml is invalid: %v", err))
	}
	return cfg
}

// Load reads defaults.yaml and then, if path is non-empty, overlays a YAML
// file on top of it — fields absent from the file keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
