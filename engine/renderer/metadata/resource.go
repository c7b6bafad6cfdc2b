package metadata

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Not a resource the engine knows how to load. */
	ResourceTypeNone ResourceType = iota
	/** @brief Text resource type. */
	ResourceTypeText
	/** @brief Image resource type. */
	ResourceTypeImage
	/** @brief Shader source resource type. */
	ResourceTypeShader
	/** @brief Mesh resource type (collection of geometry configs). */
	ResourceTypeMesh
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeText:
		return "text"
	case ResourceTypeImage:
		return "image"
	case ResourceTypeShader:
		return "shader"
	case ResourceTypeMesh:
		return "mesh"
	}
	return "none"
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	Type ResourceType
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}
