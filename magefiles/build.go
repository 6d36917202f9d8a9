//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Tidies the module and builds the testbed binary into bin/.
func (Build) Binary() error {
	if err := goCmd("mod", "tidy"); err != nil {
		return err
	}
	return goCmd("build", "-o", "bin/mathforgames", ".")
}

// Runs go vet over every package.
func (Build) Vet() error {
	return goCmd("vet", "./...")
}
