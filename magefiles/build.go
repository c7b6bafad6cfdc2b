//go:build mage

package main

import (
	"fmt"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

const shaderDir = "assets/shaders"

// Builds the editor binary into bin/.
func (Build) Editor() error {
	mg.Deps(Check.Shaders)
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/anima-editor", "."), withStream()); err != nil {
		return err
	}
	return nil
}

type Check mg.Namespace

// Validates every shader under assets/shaders with glslangValidator, when installed.
func (Check) Shaders() error {
	if _, err := exec.LookPath("glslangValidator"); err != nil {
		fmt.Println("glslangValidator not found, skipping shader validation")
		return nil
	}
	files, err := shaderFiles(shaderDir)
	if err != nil {
		return err
	}
	for _, f := range files {
		if _, err := executeCmd("glslangValidator", withArgs(filepath.Base(f)), withDir(shaderDir)); err != nil {
			return err
		}
	}
	return nil
}

// Runs the package tests.
func (Check) Test() error {
	_, err := executeCmd("go", withArgs("test", "./..."), withStream())
	return err
}
