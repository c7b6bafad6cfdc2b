package gui

import (
	"errors"

	"github.com/sqweek/dialog"
)

// OpenShaderDialog shows the native file picker for shader sources. A
// cancelled dialog returns an empty path and no error.
func OpenShaderDialog(startDir string) (string, error) {
	b := dialog.File().
		Filter("GLSL shaders", "vert", "frag", "glsl").
		Title("Open shader")
	if startDir != "" {
		b = b.SetStartDir(startDir)
	}
	path, err := b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", nil
	}
	return path, err
}
