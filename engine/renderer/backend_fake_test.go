package renderer

import (
	"errors"
	"fmt"

	"github.com/spaghettifunk/anima-editor/engine/math"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

// fakeBackend records every call as a string so tests can assert on order.
type fakeBackend struct {
	calls       []string
	uploads     int
	failUpload  bool
	failShader  bool
	nextTexture uint32
}

func (f *fakeBackend) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeBackend) Initialize(w, h uint32) error { f.record("init %dx%d", w, h); return nil }
func (f *fakeBackend) Shutdown() error              { f.record("shutdown"); return nil }
func (f *fakeBackend) Resized(w, h uint32)          { f.record("resized %dx%d", w, h) }
func (f *fakeBackend) BeginFrame(float64) error     { return nil }
func (f *fakeBackend) EndFrame(float64) error       { return nil }

func (f *fakeBackend) TextureCreate(t *metadata.Texture, img *metadata.ImageResourceData) error {
	f.nextTexture++
	t.ID = f.nextTexture
	t.Width, t.Height = img.Width, img.Height
	return nil
}

func (f *fakeBackend) TextureDestroy(t *metadata.Texture) {
	if t.ID == 0 {
		return
	}
	f.record("texture destroy %s", t.Path)
	t.ID = 0
}

func (f *fakeBackend) TextureBind(unit uint32, t *metadata.Texture) {
	f.record("bind %d %s", unit, t.Path)
}

func (f *fakeBackend) CreateGeometry(g *metadata.Geometry, v []math.Vertex3D, i []uint32) error {
	if f.failUpload {
		return errors.New("out of memory")
	}
	f.uploads++
	g.InternalData = f.uploads
	f.record("upload %s v=%d i=%d", g.Name, len(v), len(i))
	return nil
}

func (f *fakeBackend) DestroyGeometry(g *metadata.Geometry) { f.record("destroy %s", g.Name) }
func (f *fakeBackend) DrawGeometry(g *metadata.Geometry) {
	f.record("draw %s %d", g.Name, g.IndexCount)
}

func (f *fakeBackend) ShaderCreate(s *metadata.Shader, sources map[metadata.ShaderStage]string) error {
	if f.failShader {
		return errors.New("syntax error")
	}
	f.record("shader create %s stages=%d", s.Name, len(sources))
	return nil
}

func (f *fakeBackend) ShaderDestroy(s *metadata.Shader) { f.record("shader destroy %s", s.Name) }
func (f *fakeBackend) ShaderUse(s *metadata.Shader) error {
	f.record("use %s", s.Name)
	return nil
}

func (f *fakeBackend) ShaderSetUniform(s *metadata.Shader, name string, value interface{}) error {
	f.record("uniform %s %s=%v", s.Name, name, value)
	return nil
}

func (f *fakeBackend) SetStencilMode(mode metadata.StencilMode) { f.record("stencil %d", mode) }
