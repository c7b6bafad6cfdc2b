//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds and starts the editor with config.toml.
func (Run) Editor() error {
	mg.Deps(Build.Editor)
	fmt.Println("Run editor...")
	if _, err := executeCmd("bin/anima-editor", withArgs("-config", "config.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
