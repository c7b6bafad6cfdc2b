package metadata

import (
	"github.com/spaghettifunk/anima-editor/engine/math"
)

/**
 * @brief Represents the configuration for a geometry: the raw data a mesh
 * is built from.
 */
type GeometryConfig struct {
	/** @brief The Name of the geometry. */
	Name     string
	Vertices []math.Vertex3D
	Indices  []uint32
	Textures []*Texture
	/** @brief Precomputed bounds. Left zero, the loader computes them. */
	Extents math.Extents3D
}

/**
 * @brief The GPU side of a mesh. InternalData belongs to the backend.
 */
type Geometry struct {
	Name string
	/** @brief The number of indices drawn. */
	IndexCount uint32
	/** @brief The geometry generation. Incremented every time the geometry changes. */
	Generation uint16
	/** @brief Backend handles (for OpenGL the VAO/VBO/EBO set). */
	InternalData interface{}
}
