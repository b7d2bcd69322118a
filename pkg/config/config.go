package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/output"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds runtime settings. Keys missing from a file keep the defaults.
type Config struct {
	Render RenderConfig `toml:"render"`
	Limits LimitsConfig `toml:"limits"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type RenderConfig struct {
	Workers        int `toml:"workers"`         // 0 means one per CPU
	MaxReflections int `toml:"max_reflections"` // recursion cap
}

type LimitsConfig struct {
	MaxSpheres int `toml:"max_spheres"`
	MaxLights  int `toml:"max_lights"`
}

type OutputConfig struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration
func Default() Config {
	limits := scene.DefaultLimits()
	return Config{
		Render: RenderConfig{
			Workers:        0,
			MaxReflections: core.MaxReflections,
		},
		Limits: LimitsConfig{
			MaxSpheres: limits.MaxSpheres,
			MaxLights:  limits.MaxLights,
		},
		Output: OutputConfig{
			Dir:    "output",
			Format: string(output.FormatPPM),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file over the defaults and validates the result.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges and the output format name
func (c Config) Validate() error {
	if c.Render.Workers < 0 {
		return fmt.Errorf("%w: render.workers must not be negative, got %d", ErrInvalidConfig, c.Render.Workers)
	}
	if c.Render.MaxReflections < 1 {
		return fmt.Errorf("%w: render.max_reflections must be at least 1, got %d", ErrInvalidConfig, c.Render.MaxReflections)
	}
	if c.Limits.MaxSpheres < 1 || c.Limits.MaxLights < 0 {
		return fmt.Errorf("%w: limits must allow at least one sphere", ErrInvalidConfig)
	}
	if _, err := output.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// SceneLimits converts the limits section for the scene builder
func (c Config) SceneLimits() scene.Limits {
	return scene.Limits{
		MaxSpheres: c.Limits.MaxSpheres,
		MaxLights:  c.Limits.MaxLights,
	}
}
