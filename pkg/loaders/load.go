package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// LoadScene loads a scene file. Files ending in .toml are decoded as TOML,
// everything else is parsed as the line-based text format.
func LoadScene(filename string, opts Options) (*scene.Scene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	var s *scene.Scene
	if IsTOML(filename) {
		s, err = ParseTOMLScene(file, opts)
	} else {
		s, err = ParseScene(file, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// IsTOML reports whether a file name selects the TOML scene format
func IsTOML(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	if len(filename) > 4096 {
		return fmt.Errorf("file path too long")
	}
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("invalid file path: null bytes not allowed")
	}
	return nil
}
