//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target to run when none is specified
var Default = Build

// Build builds the textlens binary
func Build() error {
	mg.Deps(Vet)
	return sh.RunV("go", "build", "-o", "textlens", "./cmd/textlens")
}

// Install installs textlens into GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/textlens")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("textlens")
}
