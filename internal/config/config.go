// Package config persists the complete application state as versioned JSON.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"dendrite/internal/render"
	"dendrite/internal/sim"
)

// Version is the current config file format version.
const Version = 1

// AppConfig is the exported/imported application state. The simulation core
// never touches the filesystem; load and save failures surface here as
// errors and leave the running simulation unaffected.
type AppConfig struct {
	Version       int             `json:"version"`
	Settings      sim.Settings    `json:"settings"`
	SeedPattern   sim.SeedPattern `json:"seed_pattern"`
	Stickiness    float64         `json:"stickiness"`
	NumParticles  int             `json:"num_particles"`
	ColorScheme   render.Scheme   `json:"color_scheme"`
	StepsPerFrame int             `json:"steps_per_frame"`
	ColorByAge    bool            `json:"color_by_age"`
}

// Default returns the configuration a fresh install starts with.
func Default() AppConfig {
	return AppConfig{
		Version:       Version,
		Settings:      sim.DefaultSettings(),
		SeedPattern:   sim.SeedPoint,
		Stickiness:    1.0,
		NumParticles:  5000,
		ColorScheme:   render.SchemeRainbow,
		StepsPerFrame: 5,
		ColorByAge:    true,
	}
}

// Save writes the config to path as indented JSON.
func (c AppConfig) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Load reads a config from path.
func Load(path string) (AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var c AppConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return AppConfig{}, fmt.Errorf("parse config file: %w", err)
	}
	return c, nil
}
