package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-editor/engine/math"
	"github.com/spaghettifunk/anima-editor/engine/renderer"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

type nopBackend struct {
	draws     []string
	destroyed []string
}

func (n *nopBackend) Initialize(uint32, uint32) error { return nil }
func (n *nopBackend) Shutdown() error                 { return nil }
func (n *nopBackend) Resized(uint32, uint32)          {}
func (n *nopBackend) BeginFrame(float64) error        { return nil }
func (n *nopBackend) EndFrame(float64) error          { return nil }
func (n *nopBackend) TextureCreate(*metadata.Texture, *metadata.ImageResourceData) error {
	return nil
}
func (n *nopBackend) TextureDestroy(*metadata.Texture)      {}
func (n *nopBackend) TextureBind(uint32, *metadata.Texture) {}
func (n *nopBackend) DestroyGeometry(g *metadata.Geometry)  { n.destroyed = append(n.destroyed, g.Name) }
func (n *nopBackend) DrawGeometry(g *metadata.Geometry)     { n.draws = append(n.draws, g.Name) }
func (n *nopBackend) ShaderDestroy(*metadata.Shader)        {}
func (n *nopBackend) ShaderUse(*metadata.Shader) error      { return nil }
func (n *nopBackend) SetStencilMode(metadata.StencilMode)   {}
func (n *nopBackend) CreateGeometry(*metadata.Geometry, []math.Vertex3D, []uint32) error {
	return nil
}
func (n *nopBackend) ShaderCreate(*metadata.Shader, map[metadata.ShaderStage]string) error {
	return nil
}
func (n *nopBackend) ShaderSetUniform(*metadata.Shader, string, interface{}) error {
	return nil
}

func triangle(t *testing.T, b renderer.RendererBackend, name string) *renderer.Mesh {
	t.Helper()
	vertices := []math.Vertex3D{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
	}
	m, err := renderer.NewMesh(b, name, vertices, []uint32{0, 1, 2}, nil, math.ComputeExtents(vertices))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestFlags(t *testing.T) {
	obj := &GameObject{}
	SetFlags(obj, FLAG_SELECTED|FLAG_HIDDEN)
	UnsetFlags(obj, FLAG_HIDDEN)
	if !HasFlags(obj, FLAG_SELECTED) || HasFlags(obj, FLAG_HIDDEN) {
		t.Errorf("Flags = %b", obj.Flags)
	}
}

func TestAddAndRemoveObjects(t *testing.T) {
	b := &nopBackend{}
	s := New()
	a := s.AddObject("a", triangle(t, b, "a"), mgl32.Ident4())
	c := s.AddObject("c", triangle(t, b, "c"), mgl32.Ident4())
	if a.ID != 0 || c.ID != 1 {
		t.Fatalf("ids = %d, %d", a.ID, c.ID)
	}
	if a.GUID == c.GUID {
		t.Error("objects share a GUID")
	}

	s.RemoveObject(0)
	if len(s.Data.GameObjects) != 1 || s.Data.GameObjects[0] != c {
		t.Fatalf("unexpected objects after remove: %v", s.Data.GameObjects)
	}
	if len(b.destroyed) != 1 || b.destroyed[0] != "a" {
		t.Errorf("destroyed = %v", b.destroyed)
	}
	// the freed id is handed out again
	if d := s.AddObject("d", nil, mgl32.Ident4()); d.ID != 0 {
		t.Errorf("recycled id = %d", d.ID)
	}

	s.Destroy()
	if len(s.Data.GameObjects) != 0 {
		t.Error("Destroy left objects behind")
	}
}

func TestDrawPropagatesSelection(t *testing.T) {
	b := &nopBackend{}
	r := renderer.New(b)
	s := New()
	visible := s.AddObject("visible", triangle(t, b, "visible"), mgl32.Ident4())
	hidden := s.AddObject("hidden", triangle(t, b, "hidden"), mgl32.Ident4())
	SetFlags(visible, FLAG_SELECTED)
	SetFlags(hidden, FLAG_HIDDEN)

	shader := &metadata.Shader{Name: "lit"}
	if err := s.Draw(r, shader, nil, 800, 600); err != nil {
		t.Fatal(err)
	}
	if !visible.Mesh.Selected {
		t.Error("selection flag did not reach the mesh")
	}
	if len(b.draws) != 1 || b.draws[0] != "visible" {
		t.Errorf("draws = %v", b.draws)
	}
}
