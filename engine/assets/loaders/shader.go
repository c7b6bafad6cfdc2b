package loaders

import (
	"os"
	"path/filepath"

	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

// ShaderLoader reads GLSL source text. Resource.Data is a string.
type ShaderLoader struct{}

func (sl *ShaderLoader) Load(path string, params interface{}) (*metadata.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &metadata.Resource{
		Type:     metadata.ResourceTypeShader,
		Name:     filepath.Base(path),
		FullPath: path,
		DataSize: uint64(len(data)),
		Data:     string(data),
	}, nil
}

func (sl *ShaderLoader) Unload(r *metadata.Resource) error {
	r.Data = nil
	return nil
}
