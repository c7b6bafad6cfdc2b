package engine

import (
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

var shaderStages = []metadata.ShaderStage{metadata.ShaderStageVertex, metadata.ShaderStageFragment}

func (e *Engine) shaderConfig(name string) *metadata.ShaderConfig {
	cfg := &metadata.ShaderConfig{Name: name}
	for _, stage := range shaderStages {
		cfg.Stages = append(cfg.Stages, metadata.ShaderStageConfig{
			Stage:    stage,
			FileName: filepath.Join(e.assetManager.Root(), "shaders", name+stage.Extension()),
		})
	}
	return cfg
}

func (e *Engine) shaderSources(cfg *metadata.ShaderConfig) (map[metadata.ShaderStage]string, error) {
	sources := make(map[metadata.ShaderStage]string, len(cfg.Stages))
	for _, st := range cfg.Stages {
		res, err := e.assetManager.LoadAsset(st.FileName, nil)
		if err != nil {
			return nil, fmt.Errorf("shader '%s' %s stage: %w", cfg.Name, st.Stage, err)
		}
		src, ok := res.Data.(string)
		if !ok {
			return nil, fmt.Errorf("shader '%s' %s stage: unexpected resource data", cfg.Name, st.Stage)
		}
		sources[st.Stage] = src
	}
	return sources, nil
}

func (e *Engine) loadShader(name string) (*metadata.Shader, error) {
	if name == "" {
		return nil, nil
	}
	cfg := e.shaderConfig(name)
	sources, err := e.shaderSources(cfg)
	if err != nil {
		return nil, err
	}
	return e.renderer.CreateShader(cfg, sources)
}

// onShaderFile recompiles the shader a changed or saved file belongs to. A
// save is reported twice, by the editor and by the file watcher; the second
// one finds the sources unchanged.
func (e *Engine) onShaderFile(context core.EventContext) bool {
	fe, ok := context.Data.(*core.FileEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	path, err := filepath.Abs(fe.Path)
	if err != nil {
		path = fe.Path
	}
	shader, ok := e.renderer.ShaderForFile(path)
	if !ok {
		core.LogDebug("%s is not used by any loaded shader", fe.Path)
		return false
	}
	sources, err := e.shaderSources(shader.Config)
	if err != nil {
		core.LogError(err.Error())
		e.session.Notice = err.Error()
		return true
	}
	reloaded, err := e.renderer.ReloadShader(shader.Name, sources)
	if err != nil {
		e.session.Notice = err.Error()
		return true
	}
	if !reloaded {
		return true
	}
	e.session.Notice = fmt.Sprintf("shader '%s' reloaded", shader.Name)
	return true
}
