package renderer

import (
	"fmt"

	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/math"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

// Mesh owns its vertex, index and texture data together with the GPU
// buffers they were uploaded to. Data is uploaded once, at construction.
type Mesh struct {
	Name        string
	Vertices    []math.Vertex3D
	Indices     []uint32
	Textures    []*metadata.Texture
	BoundingBox math.Extents3D
	// Selected meshes get an outline pass when drawn with a highlight shader.
	Selected bool

	geometry  *metadata.Geometry
	backend   RendererBackend
	destroyed bool
}

func NewMesh(backend RendererBackend, name string, vertices []math.Vertex3D, indices []uint32, textures []*metadata.Texture, boundingBox math.Extents3D) (*Mesh, error) {
	m := &Mesh{
		Name:        name,
		Vertices:    vertices,
		Indices:     indices,
		Textures:    textures,
		BoundingBox: boundingBox,
		backend:     backend,
		geometry: &metadata.Geometry{
			Name:       name,
			IndexCount: uint32(len(indices)),
		},
	}
	if err := m.setup(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mesh) setup() error {
	for _, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: mesh '%s' index %d out of range (%d vertices)", core.ErrGeometryUpload, m.Name, idx, len(m.Vertices))
		}
	}
	if err := m.backend.CreateGeometry(m.geometry, m.Vertices, m.Indices); err != nil {
		core.LogError("failed to upload mesh '%s': %s", m.Name, err)
		return err
	}
	m.geometry.Generation++
	return nil
}

// Draw binds the textures by naming convention and issues an indexed draw
// with shader. When the mesh is selected and highlight is not nil, an
// outline pass is drawn with highlight on top.
func (m *Mesh) Draw(shader, highlight *metadata.Shader) error {
	if m.destroyed {
		return nil
	}
	if err := m.backend.ShaderUse(shader); err != nil {
		return err
	}
	if err := m.bindTextures(shader); err != nil {
		return err
	}

	outline := m.Selected && highlight != nil
	if outline {
		m.backend.SetStencilMode(metadata.StencilModeWrite)
	}
	m.backend.DrawGeometry(m.geometry)

	if outline {
		m.backend.SetStencilMode(metadata.StencilModeOutline)
		if err := m.backend.ShaderUse(highlight); err != nil {
			m.backend.SetStencilMode(metadata.StencilModeNone)
			return err
		}
		m.backend.DrawGeometry(m.geometry)
		m.backend.SetStencilMode(metadata.StencilModeNone)
	}
	return nil
}

// bindTextures puts texture i on unit i and points the sampler
// material.<use>N at it, N counting from 1 per use.
func (m *Mesh) bindTextures(shader *metadata.Shader) error {
	counters := make(map[metadata.TextureUse]int, 4)
	for i, t := range m.Textures {
		counters[t.Use]++
		name := fmt.Sprintf("material.%s%d", t.Use, counters[t.Use])
		m.backend.TextureBind(uint32(i), t)
		if err := m.backend.ShaderSetUniform(shader, name, int32(i)); err != nil {
			return err
		}
	}
	return nil
}

// Destroy releases the GPU resources. Calling it twice is harmless.
func (m *Mesh) Destroy() {
	if m.destroyed {
		return
	}
	m.backend.DestroyGeometry(m.geometry)
	for _, t := range m.Textures {
		m.backend.TextureDestroy(t)
	}
	m.destroyed = true
}

func (m *Mesh) Geometry() *metadata.Geometry {
	return m.geometry
}
