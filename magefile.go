//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target runs the full check.
var Default = Check

// Check runs Vet then Test.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Test runs the unit and example tests with the race detector.
func Test() error {
	return goCmd("test", "-race", "./...")
}

// Vet runs go vet.
func Vet() error {
	return goCmd("vet", "./...")
}

// Build compiles the patterns CLI into bin/.
func Build() error {
	return goCmd("build", "-o", "bin/patterns", "./cmd/patterns")
}

// Demo runs every demo through the CLI.
func Demo() error {
	mg.Deps(Build)
	cmd := exec.Command("bin/patterns")
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	return cmd.Run()
}

func goCmd(args ...string) error {
	if mg.Verbose() {
		fmt.Println("go", args)
	}
	cmd := exec.Command(mg.GoCmd(), args...)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go %s failed: %w", args[0], err)
	}
	return nil
}
