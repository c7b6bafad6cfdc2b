package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestComputeExtentsBoundsEveryVertex(t *testing.T) {
	vertices := []Vertex3D{
		{Position: mgl32.Vec3{1, -2, 3}},
		{Position: mgl32.Vec3{-4, 5, 0.5}},
		{Position: mgl32.Vec3{0, 0, -7}},
	}
	ext := ComputeExtents(vertices)

	want := Extents3D{Min: mgl32.Vec3{-4, -2, -7}, Max: mgl32.Vec3{1, 5, 3}}
	if ext != want {
		t.Fatalf("ComputeExtents = %+v, want %+v", ext, want)
	}
	for _, v := range vertices {
		if !ext.Contains(v.Position) {
			t.Errorf("vertex %v outside %+v", v.Position, ext)
		}
	}
	if c := ext.Center(); c != (mgl32.Vec3{-1.5, 1.5, -2}) {
		t.Errorf("Center = %v", c)
	}
}

func TestComputeExtentsEmpty(t *testing.T) {
	if ext := ComputeExtents(nil); ext != (Extents3D{}) {
		t.Errorf("empty extents = %+v", ext)
	}
}

func TestGenerateNormalsAndTangents(t *testing.T) {
	vertices := []Vertex3D{
		{Position: mgl32.Vec3{0, 0, 0}, Texcoord: mgl32.Vec2{0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}, Texcoord: mgl32.Vec2{1, 0}},
		{Position: mgl32.Vec3{0, 1, 0}, Texcoord: mgl32.Vec2{0, 1}},
	}
	indices := []uint32{0, 1, 2}

	GenerateNormals(vertices, indices)
	GenerateTangents(vertices, indices)

	for i, v := range vertices {
		if !v.Normal.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v", i, v.Normal)
		}
		if !v.Tangent.ApproxEqual(mgl32.Vec3{1, 0, 0}) {
			t.Errorf("vertex %d tangent = %v", i, v.Tangent)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(float32(1.5), 0, 3) != 1.5 {
		t.Error("Clamp returned an unexpected value")
	}
}
