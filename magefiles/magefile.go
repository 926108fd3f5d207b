//go:build mage

// Package main provides build targets for funknotes using Mage.
//
// Usage:
//
//	mage build    Compile funknotes and funknotes-mcp to bin/
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
//	mage install  Install both binaries to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryDir = "bin"

// binaries maps each binary name to its main package
var binaries = map[string]string{
	"funknotes":     "./cmd/funknotes",
	"funknotes-mcp": "./cmd/funknotes-mcp",
}

// Build compiles the binaries to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	for name, pkg := range binaries {
		if err := sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, name), pkg); err != nil {
			return err
		}
	}
	return nil
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

// Install builds first, then installs both binaries to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	for _, pkg := range binaries {
		if err := sh.RunV("go", "install", pkg); err != nil {
			return err
		}
	}
	return nil
}
