package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/math"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

type geometryBuffers struct {
	vao uint32
	vbo uint32
	ebo uint32
}

// interleave flattens vertices into position, normal, texcoord, tangent.
func interleave(vertices []math.Vertex3D) []float32 {
	data := make([]float32, 0, len(vertices)*math.VertexFloatCount)
	for _, v := range vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Normal[:]...)
		data = append(data, v.Texcoord[:]...)
		data = append(data, v.Tangent[:]...)
	}
	return data
}

func (b *Backend) CreateGeometry(geometry *metadata.Geometry, vertices []math.Vertex3D, indices []uint32) error {
	if len(vertices) == 0 || len(indices) == 0 {
		return fmt.Errorf("%w: geometry '%s' has no vertex or index data", core.ErrGeometryUpload, geometry.Name)
	}
	if old, ok := geometry.InternalData.(*geometryBuffers); ok {
		deleteBuffers(old)
	}

	data := interleave(vertices)
	buffers := &geometryBuffers{}

	gl.GenVertexArrays(1, &buffers.vao)
	gl.BindVertexArray(buffers.vao)

	gl.GenBuffers(1, &buffers.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffers.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &buffers.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, buffers.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(math.VertexFloatCount * 4)
	attributes := []struct {
		size   int32
		offset uintptr
	}{
		{3, 0},     // position
		{3, 3 * 4}, // normal
		{2, 6 * 4}, // texcoord
		{3, 8 * 4}, // tangent
	}
	for i, a := range attributes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointerWithOffset(uint32(i), a.size, gl.FLOAT, false, stride, a.offset)
	}
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		deleteBuffers(buffers)
		return fmt.Errorf("%w: geometry '%s' OpenGL error 0x%x", core.ErrGeometryUpload, geometry.Name, code)
	}

	geometry.InternalData = buffers
	geometry.IndexCount = uint32(len(indices))
	return nil
}

func (b *Backend) DestroyGeometry(geometry *metadata.Geometry) {
	buffers, ok := geometry.InternalData.(*geometryBuffers)
	if !ok {
		return
	}
	deleteBuffers(buffers)
	geometry.InternalData = nil
}

func (b *Backend) DrawGeometry(geometry *metadata.Geometry) {
	buffers, ok := geometry.InternalData.(*geometryBuffers)
	if !ok {
		return
	}
	gl.BindVertexArray(buffers.vao)
	gl.DrawElements(gl.TRIANGLES, int32(geometry.IndexCount), gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
	gl.ActiveTexture(gl.TEXTURE0)
}

func deleteBuffers(buffers *geometryBuffers) {
	gl.DeleteVertexArrays(1, &buffers.vao)
	gl.DeleteBuffers(1, &buffers.vbo)
	gl.DeleteBuffers(1, &buffers.ebo)
}
