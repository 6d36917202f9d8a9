//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the testbed in the terminal with testbed/app.toml.
func (Run) Testbed() error {
	fmt.Println("Run testbed...")
	return goCmd("run", ".", "testbed/app.toml")
}

type Test mg.Namespace

// Runs every test with the race detector.
func (Test) All() error {
	return goCmd("test", "-race", "-count=1", "./...")
}

// Runs the math and collision tests only.
func (Test) Math() error {
	return goCmd("test", "-count=1", "./engine/math/...", "./engine/collision/...")
}
