package math

import (
	stdmath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// ComputeExtents returns the tightest box around every vertex position.
// An empty slice yields a zero box.
func ComputeExtents(vertices []Vertex3D) Extents3D {
	if len(vertices) == 0 {
		return Extents3D{}
	}
	inf := float32(stdmath.Inf(1))
	ext := Extents3D{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
	for _, v := range vertices {
		for i := 0; i < 3; i++ {
			ext.Min[i] = min(ext.Min[i], v.Position[i])
			ext.Max[i] = max(ext.Max[i], v.Position[i])
		}
	}
	return ext
}

// GenerateNormals writes a face normal into each vertex of every triangle.
// Smoothing out should be done in a separate pass if desired.
func GenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)
		normal := edge1.Cross(edge2)
		if normal.Len() > 0 {
			normal = normal.Normalize()
		}

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GenerateTangents derives per-triangle tangents from positions and texcoords.
func GenerateTangents(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		deltaU1 := vertices[i1].Texcoord.X() - vertices[i0].Texcoord.X()
		deltaV1 := vertices[i1].Texcoord.Y() - vertices[i0].Texcoord.Y()
		deltaU2 := vertices[i2].Texcoord.X() - vertices[i0].Texcoord.X()
		deltaV2 := vertices[i2].Texcoord.Y() - vertices[i0].Texcoord.Y()

		dividend := deltaU1*deltaV2 - deltaU2*deltaV1
		if dividend == 0 {
			// degenerate UVs, leave the tangent untouched
			continue
		}
		fc := 1.0 / dividend

		tangent := edge1.Mul(deltaV2).Sub(edge2.Mul(deltaV1)).Mul(fc)
		if tangent.Len() > 0 {
			tangent = tangent.Normalize()
		}

		vertices[i0].Tangent = tangent
		vertices[i1].Tangent = tangent
		vertices[i2].Tangent = tangent
	}
}
