package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/renderer"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

var _ renderer.RendererBackend = (*Backend)(nil)

// Backend renders through an OpenGL 4.1 core context. The context must be
// current on the calling thread before Initialize.
type Backend struct {
	width      uint32
	height     uint32
	clearColor [4]float32
}

func New() *Backend {
	return &Backend{
		clearColor: [4]float32{0.1, 0.1, 0.12, 1.0},
	}
}

func (b *Backend) Initialize(appWidth, appHeight uint32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	core.LogInfo("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
	gl.StencilMask(0x00)

	b.Resized(appWidth, appHeight)
	return nil
}

func (b *Backend) Shutdown() error {
	core.LogInfo("OpenGL backend shut down.")
	return nil
}

func (b *Backend) Resized(width, height uint32) {
	b.width = width
	b.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (b *Backend) BeginFrame(deltaTime float64) error {
	gl.StencilMask(0xFF)
	gl.ClearColor(b.clearColor[0], b.clearColor[1], b.clearColor[2], b.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	gl.StencilMask(0x00)
	return nil
}

func (b *Backend) EndFrame(deltaTime float64) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error 0x%x at end of frame", code)
	}
	return nil
}

func (b *Backend) SetStencilMode(mode metadata.StencilMode) {
	switch mode {
	case metadata.StencilModeWrite:
		gl.StencilFunc(gl.ALWAYS, 1, 0xFF)
		gl.StencilMask(0xFF)
	case metadata.StencilModeOutline:
		gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
		gl.StencilMask(0x00)
		gl.Disable(gl.DEPTH_TEST)
	default:
		gl.StencilMask(0xFF)
		gl.StencilFunc(gl.ALWAYS, 0, 0xFF)
		gl.Enable(gl.DEPTH_TEST)
	}
}
