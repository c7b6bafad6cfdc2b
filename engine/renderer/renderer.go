package renderer

import (
	"fmt"
	"maps"
	"path/filepath"

	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/math"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

// Renderer is the frontend the engine talks to. It owns the backend and
// the shaders created through it.
type Renderer struct {
	backend RendererBackend
	shaders map[string]*metadata.Shader
	// last failed reload per shader, so identical broken sources are not
	// compiled again
	rejected map[string]rejectedShader
}

type rejectedShader struct {
	sources map[metadata.ShaderStage]string
	err     error
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend:  backend,
		shaders:  make(map[string]*metadata.Shader),
		rejected: make(map[string]rejectedShader),
	}
}

func (r *Renderer) Backend() RendererBackend {
	return r.backend
}

func (r *Renderer) Initialize(width, height uint32) error {
	if err := r.backend.Initialize(width, height); err != nil {
		core.LogError("renderer backend failed to initialize: %s", err)
		return err
	}
	core.LogInfo("Renderer initialized.")
	return nil
}

func (r *Renderer) Shutdown() error {
	for name, s := range r.shaders {
		r.backend.ShaderDestroy(s)
		delete(r.shaders, name)
	}
	return r.backend.Shutdown()
}

func (r *Renderer) OnResized(width, height uint32) {
	r.backend.Resized(width, height)
}

func (r *Renderer) BeginFrame(deltaTime float64) error {
	return r.backend.BeginFrame(deltaTime)
}

func (r *Renderer) EndFrame(deltaTime float64) error {
	return r.backend.EndFrame(deltaTime)
}

// CreateShader compiles a program from sources keyed by stage and registers it by name.
func (r *Renderer) CreateShader(config *metadata.ShaderConfig, sources map[metadata.ShaderStage]string) (*metadata.Shader, error) {
	if _, exists := r.shaders[config.Name]; exists {
		return nil, fmt.Errorf("shader '%s' already exists", config.Name)
	}
	s := &metadata.Shader{
		Name:   config.Name,
		Config: config,
		State:  metadata.SHADER_STATE_NOT_CREATED,
	}
	if err := r.backend.ShaderCreate(s, sources); err != nil {
		return nil, err
	}
	s.State = metadata.SHADER_STATE_INITIALIZED
	s.Generation++
	s.Sources = maps.Clone(sources)
	r.shaders[config.Name] = s
	return s, nil
}

// ReloadShader recompiles an existing shader and reports whether a new
// program was built. Sources equal to the current program's are skipped, and
// sources equal to the last rejected ones return that error again. On
// failure the previous program stays in use.
func (r *Renderer) ReloadShader(name string, sources map[metadata.ShaderStage]string) (bool, error) {
	s, ok := r.shaders[name]
	if !ok {
		return false, fmt.Errorf("shader '%s' not found", name)
	}
	if maps.Equal(s.Sources, sources) {
		core.LogDebug("shader '%s' sources unchanged", name)
		return false, nil
	}
	if rej, ok := r.rejected[name]; ok && maps.Equal(rej.sources, sources) {
		return false, rej.err
	}
	if err := r.backend.ShaderCreate(s, sources); err != nil {
		core.LogWarn("keeping previous program for shader '%s': %s", name, err)
		r.rejected[name] = rejectedShader{sources: maps.Clone(sources), err: err}
		return false, err
	}
	delete(r.rejected, name)
	s.Generation++
	s.Sources = maps.Clone(sources)
	core.LogInfo("shader '%s' reloaded (generation %d)", name, s.Generation)
	return true, nil
}

func (r *Renderer) GetShader(name string) (*metadata.Shader, bool) {
	s, ok := r.shaders[name]
	return s, ok
}

// ShaderForFile finds the shader that has a stage compiled from fileName.
func (r *Renderer) ShaderForFile(fileName string) (*metadata.Shader, bool) {
	fileName = filepath.Clean(fileName)
	for _, s := range r.shaders {
		if s.Config == nil {
			continue
		}
		for _, st := range s.Config.Stages {
			if filepath.Clean(st.FileName) == fileName {
				return s, true
			}
		}
	}
	return nil, false
}

func (r *Renderer) SetUniform(shader *metadata.Shader, name string, value interface{}) error {
	return r.backend.ShaderSetUniform(shader, name, value)
}

func (r *Renderer) CreateTexture(texture *metadata.Texture, image *metadata.ImageResourceData) error {
	return r.backend.TextureCreate(texture, image)
}

func (r *Renderer) DestroyTexture(texture *metadata.Texture) {
	r.backend.TextureDestroy(texture)
}

// CreateMesh uploads config to the GPU.
func (r *Renderer) CreateMesh(config *metadata.GeometryConfig) (*Mesh, error) {
	extents := config.Extents
	if extents == (math.Extents3D{}) {
		extents = math.ComputeExtents(config.Vertices)
	}
	return NewMesh(r.backend, config.Name, config.Vertices, config.Indices, config.Textures, extents)
}
