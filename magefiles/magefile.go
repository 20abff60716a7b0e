//go:build mage

// Package main contains Mage build targets for startup-pitcher.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "startup-pitcher"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, "."); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Test runs the unit tests after vetting.
func Test() error {
	mg.Deps(Vet)
	return sh.RunV("go", "test", "./...")
}

// Demo builds a deck offline with the mock model and prints it.
func Demo() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "generate", "--mock",
		"--name", "EcoFuel",
		"--one-liner", "EcoFuel turns waste oils into affordable, clean fuel.",
		"--length", "7",
	)
}

// Clean removes build output.
func Clean() error {
	return os.RemoveAll(binDir)
}
