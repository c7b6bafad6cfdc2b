package math

import "github.com/go-gl/mathgl/mgl32"

// Vertex3D is a single vertex in 3D space. Its layout matches the
// interleaved vertex buffer: 3 + 3 + 2 + 3 float32.
type Vertex3D struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Texcoord mgl32.Vec2
	Tangent  mgl32.Vec3
}

// VertexFloatCount is the number of float32 values in one Vertex3D.
const VertexFloatCount = 11

// Extents3D is an axis-aligned bounding box.
type Extents3D struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (e Extents3D) Center() mgl32.Vec3 {
	return e.Min.Add(e.Max).Mul(0.5)
}

// Contains reports whether p lies inside or on the box.
func (e Extents3D) Contains(p mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < e.Min[i] || p[i] > e.Max[i] {
			return false
		}
	}
	return true
}
