package renderer

import (
	"github.com/spaghettifunk/anima-editor/engine/math"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

type RendererBackend interface {
	Initialize(appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32)
	BeginFrame(deltaTime float64) error
	EndFrame(deltaTime float64) error
	TextureCreate(texture *metadata.Texture, image *metadata.ImageResourceData) error
	TextureDestroy(texture *metadata.Texture)
	TextureBind(unit uint32, texture *metadata.Texture)
	CreateGeometry(geometry *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error
	DestroyGeometry(geometry *metadata.Geometry)
	DrawGeometry(geometry *metadata.Geometry)
	ShaderCreate(shader *metadata.Shader, sources map[metadata.ShaderStage]string) error
	ShaderDestroy(shader *metadata.Shader)
	ShaderUse(shader *metadata.Shader) error
	ShaderSetUniform(shader *metadata.Shader, name string, value interface{}) error
	SetStencilMode(mode metadata.StencilMode)
}
