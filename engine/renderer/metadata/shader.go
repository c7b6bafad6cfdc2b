package metadata

/**
 * @brief Represents the current state of a given shader.
 */
type ShaderState int

const (
	/** @brief The shader has not yet gone through the creation process, and is unusable.*/
	SHADER_STATE_NOT_CREATED ShaderState = iota
	/** @brief The shader compiled and linked and is ready for use.*/
	SHADER_STATE_INITIALIZED
)

type ShaderStage int

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "vertex"
	case ShaderStageFragment:
		return "fragment"
	}
	return "unknown"
}

// Extension is the file extension of a stage's source.
func (s ShaderStage) Extension() string {
	switch s {
	case ShaderStageVertex:
		return ".vert"
	case ShaderStageFragment:
		return ".frag"
	}
	return ""
}

type ShaderStageConfig struct {
	Stage    ShaderStage
	FileName string
}

type ShaderConfig struct {
	Name   string
	Stages []ShaderStageConfig
}

/**
 * @brief Represents a shader on the frontend. The compiled program lives in
 * InternalData and is owned by the backend.
 */
type Shader struct {
	Name   string
	Config *ShaderConfig
	State  ShaderState
	/** @brief Incremented on every successful (re)compile. */
	Generation uint32
	// Sources the current program was built from.
	Sources      map[ShaderStage]string
	InternalData interface{}
}

// StencilMode selects how a draw interacts with the stencil buffer, used
// to outline highlighted meshes.
type StencilMode int

const (
	StencilModeNone StencilMode = iota
	// Draw normally and mark covered pixels.
	StencilModeWrite
	// Draw only where pixels were not marked.
	StencilModeOutline
)
