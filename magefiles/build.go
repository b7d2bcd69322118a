//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

const binaryName = "raytracer"

type Build mg.Namespace

// Downloads modules and builds the raytracer binary.
func (Build) Binary() error {
	if _, err := executeCmd("go", withArgs("mod", "download")); err != nil {
		return err
	}
	_, err := executeCmd("go", withArgs("build", "-o", binaryName, "."), withStream())
	return err
}

// Runs go vet over every package.
func (Build) Vet() error {
	_, err := executeCmd("go", withArgs("vet", "./..."), withStream())
	return err
}

type Test mg.Namespace

// Runs all tests.
func (Test) All() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}

// Runs all tests with the race detector.
func (Test) Race() error {
	_, err := executeCmd("go", withArgs("test", "-race", "./pkg/renderer/...", "./pkg/watch/..."), withStream())
	return err
}
