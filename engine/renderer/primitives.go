package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/math"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

type cubeFace struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3
}

// Unit cube faces, corners in the order min-uv, max-uv, (min,max), (max,min).
var cubeFaces = [6]cubeFace{
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {1, -1, 1}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {-1, -1, -1}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-1, -1, -1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}}},
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{1, -1, 1}, {1, 1, -1}, {1, 1, 1}, {1, -1, -1}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {-1, -1, 1}}},
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-1, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {1, 1, 1}}},
}

func nonZero(v float32, what string) float32 {
	if v == 0 {
		core.LogWarn("%s must be nonzero. Defaulting to one.", what)
		return 1
	}
	return v
}

// GenerateCubeConfig builds a box centred on the origin with per-face
// normals, texture coordinates tiled tileX by tileY, and tangents.
func GenerateCubeConfig(width, height, depth, tileX, tileY float32, name string) *metadata.GeometryConfig {
	width = nonZero(width, "Width")
	height = nonZero(height, "Height")
	depth = nonZero(depth, "Depth")
	tileX = nonZero(tileX, "tileX")
	tileY = nonZero(tileY, "tileY")

	half := mgl32.Vec3{width * 0.5, height * 0.5, depth * 0.5}
	uvs := [4]mgl32.Vec2{{0, 0}, {tileX, tileY}, {0, tileY}, {tileX, 0}}

	config := &metadata.GeometryConfig{
		Name:     name,
		Vertices: make([]math.Vertex3D, 0, 4*6),
		Indices:  make([]uint32, 0, 6*6),
	}
	for i, face := range cubeFaces {
		for c, corner := range face.corners {
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: mgl32.Vec3{corner[0] * half[0], corner[1] * half[1], corner[2] * half[2]},
				Normal:   face.normal,
				Texcoord: uvs[c],
			})
		}
		offset := uint32(i * 4)
		config.Indices = append(config.Indices, offset, offset+1, offset+2, offset, offset+3, offset+1)
	}
	math.GenerateTangents(config.Vertices, config.Indices)
	config.Extents = math.Extents3D{Min: half.Mul(-1), Max: half}
	return config
}

// GeneratePlaneConfig builds an XZ plane facing +Y made of xSegments by
// zSegments quads.
func GeneratePlaneConfig(width, depth float32, xSegments, zSegments uint32, tileX, tileY float32, name string) *metadata.GeometryConfig {
	width = nonZero(width, "Width")
	depth = nonZero(depth, "Depth")
	tileX = nonZero(tileX, "tileX")
	tileY = nonZero(tileY, "tileY")
	if xSegments == 0 {
		xSegments = 1
	}
	if zSegments == 0 {
		zSegments = 1
	}

	config := &metadata.GeometryConfig{Name: name}
	segW := width / float32(xSegments)
	segD := depth / float32(zSegments)
	halfW, halfD := width*0.5, depth*0.5

	for z := uint32(0); z <= zSegments; z++ {
		for x := uint32(0); x <= xSegments; x++ {
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: mgl32.Vec3{float32(x)*segW - halfW, 0, float32(z)*segD - halfD},
				Normal:   mgl32.Vec3{0, 1, 0},
				Texcoord: mgl32.Vec2{float32(x) / float32(xSegments) * tileX, float32(z) / float32(zSegments) * tileY},
			})
		}
	}
	row := xSegments + 1
	for z := uint32(0); z < zSegments; z++ {
		for x := uint32(0); x < xSegments; x++ {
			v0 := z*row + x
			v1 := v0 + 1
			v2 := v0 + row
			v3 := v2 + 1
			config.Indices = append(config.Indices, v0, v2, v1, v1, v2, v3)
		}
	}
	math.GenerateTangents(config.Vertices, config.Indices)
	config.Extents = math.ComputeExtents(config.Vertices)
	return config
}
