//go:build mage

package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/magefile/mage/mg"
)

type Render mg.Namespace

// Renders every scene file under scenes/ to output/<scene>/.
func (Render) Scenes() error {
	mg.Deps(Build.Binary)

	var files []string
	for _, pattern := range []string{"*.txt", "*.toml"} {
		matches, err := filepath.Glob(filepath.Join("scenes", pattern))
		if err != nil {
			return err
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	for _, file := range files {
		if _, err := executeCmd("./"+binaryName, withArgs("-scene", file), withStream()); err != nil {
			return fmt.Errorf("render %s: %w", file, err)
		}
	}
	return nil
}

// Renders the built-in scenes as PNG.
func (Render) Builtin() error {
	mg.Deps(Build.Binary)

	for _, name := range []string{"default", "mirrors"} {
		if _, err := executeCmd("./"+binaryName, withArgs("-scene", name, "-format", "png"), withStream()); err != nil {
			return err
		}
	}
	return nil
}

// Re-renders a scene file whenever it changes.
func (Render) Watch(file string) error {
	mg.Deps(Build.Binary)

	_, err := executeCmd("./"+binaryName, withArgs("-scene", file, "-watch", "-format", "png"), withDir("."), withStream())
	return err
}
