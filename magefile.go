//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified
// If not set, running mage will list available targets
var Default = Build

// Build compiles every executable of the repository.
func Build() error {
	mg.Deps(BuildEmulator)
	fmt.Println("Compilation finished")
	return nil
}

func cgoCommand(args ...string) *exec.Cmd {
	ldflags := os.Getenv("CGO_LDFLAGS")
	cflags := os.Getenv("CGO_CFLAGS")
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(),
		"CGO_ENABLED=1",
		fmt.Sprintf("CGO_LDFLAGS=%s", ldflags),
		fmt.Sprintf("CGO_CFLAGS=%s", cflags))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

func BuildEmulator() error {
	fmt.Println("Building emulator executable...")
	return cgoCommand("build", "-o", "./bin/emulator", "./emulator").Run()
}

// Test runs the unit tests. HDF5 headers and libraries are needed, as for
// the build.
func Test() error {
	fmt.Println("Running tests...")
	return cgoCommand("test", "./...").Run()
}
