package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raytracer.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Render.MaxReflections != 3 {
		t.Errorf("max reflections = %d, want 3", cfg.Render.MaxReflections)
	}
	limits := cfg.SceneLimits()
	if limits.MaxSpheres != 5 || limits.MaxLights != 5 {
		t.Errorf("limits = %+v, want 5/5", limits)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[render]
workers = 2

[limits]
max_spheres = 10

[output]
format = "png"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Render.Workers != 2 {
		t.Errorf("workers = %d, want 2", cfg.Render.Workers)
	}
	if cfg.Limits.MaxSpheres != 10 {
		t.Errorf("max spheres = %d, want 10", cfg.Limits.MaxSpheres)
	}
	if cfg.Limits.MaxLights != 5 {
		t.Errorf("max lights = %d, want default 5", cfg.Limits.MaxLights)
	}
	if cfg.Output.Format != "png" || cfg.Output.Dir != "output" {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Render.MaxReflections != 3 {
		t.Errorf("max reflections = %d, want default 3", cfg.Render.MaxReflections)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"malformed", "[render\n", false},
		{"misspelled key", "[render]\nworkerz = 2\n", false},
		{"unknown table", "[render]\nworkers = 2\n[camera]\nfov = 90\n", false},
		{"negative workers", "[render]\nworkers = -1\n", true},
		{"zero reflections", "[render]\nmax_reflections = 0\n", true},
		{"bad format", "[output]\nformat = \"gif\"\n", true},
		{"bad level", "[log]\nlevel = \"loud\"\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.invalid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
