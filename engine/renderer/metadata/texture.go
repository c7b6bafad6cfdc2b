package metadata

/**
 * @brief The semantic use of a texture on a mesh. The string form is the
 * sampler name prefix used when binding (e.g. texture_diffuse1).
 */
type TextureUse int

const (
	/** @brief An unknown use. This is default, but should never actually be used. */
	TextureUseUnknown TextureUse = iota
	/** @brief The texture is used as a diffuse map. */
	TextureUseMapDiffuse
	/** @brief The texture is used as a specular map. */
	TextureUseMapSpecular
	/** @brief The texture is used as a normal map. */
	TextureUseMapNormal
	/** @brief The texture is used as a height map. */
	TextureUseMapHeight
)

func (u TextureUse) String() string {
	switch u {
	case TextureUseMapDiffuse:
		return "texture_diffuse"
	case TextureUseMapSpecular:
		return "texture_specular"
	case TextureUseMapNormal:
		return "texture_normal"
	case TextureUseMapHeight:
		return "texture_height"
	default:
		return "texture_unknown"
	}
}

/** @brief Represents supported texture filtering modes. */
type TextureFilter int

const (
	/** @brief Nearest-neighbor filtering. */
	TextureFilterModeNearest TextureFilter = iota
	/** @brief Linear (i.e. bilinear) filtering.*/
	TextureFilterModeLinear
)

type TextureRepeat int

const (
	TextureRepeatRepeat TextureRepeat = iota
	TextureRepeatMirroredRepeat
	TextureRepeatClampToEdge
)

/**
 * @brief A texture referenced by a mesh.
 */
type Texture struct {
	/** @brief The GPU handle. Zero until the backend creates it. */
	ID uint32
	/** @brief What the texture is used for. */
	Use TextureUse
	/** @brief The file the texture was loaded from. */
	Path   string
	Width  uint32
	Height uint32
	/** @brief Texture filtering mode for minification. */
	FilterMinify TextureFilter
	/** @brief Texture filtering mode for magnification. */
	FilterMagnify TextureFilter
	Repeat        TextureRepeat
}
