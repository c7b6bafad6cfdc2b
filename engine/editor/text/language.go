package text

// LanguageDefinition describes the language shown in the status line and
// used for keyword lookups.
type LanguageDefinition struct {
	Name              string
	Keywords          map[string]struct{}
	SingleLineComment string
	CommentStart      string
	CommentEnd        string
}

func (l LanguageDefinition) IsKeyword(word string) bool {
	_, ok := l.Keywords[word]
	return ok
}

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// GLSL returns the definition used by the shader editor.
func GLSL() LanguageDefinition {
	return LanguageDefinition{
		Name: "GLSL",
		Keywords: keywordSet(
			"attribute", "bool", "break", "bvec2", "bvec3", "bvec4", "const", "continue",
			"discard", "do", "else", "false", "float", "for", "highp", "if", "in", "inout",
			"int", "invariant", "ivec2", "ivec3", "ivec4", "layout", "lowp", "mat2", "mat3",
			"mat4", "mediump", "out", "precision", "return", "sampler2D", "samplerCube",
			"struct", "true", "uniform", "varying", "vec2", "vec3", "vec4", "void", "while",
		),
		SingleLineComment: "//",
		CommentStart:      "/*",
		CommentEnd:        "*/",
	}
}

// Palette selects the colour scheme of the editor widget.
type Palette int

const (
	PaletteDark Palette = iota
	PaletteLight
	PaletteRetroBlue
)

func (p Palette) String() string {
	switch p {
	case PaletteLight:
		return "Light"
	case PaletteRetroBlue:
		return "Retro blue"
	}
	return "Dark"
}

// Colors returns the background and foreground RGBA of the palette.
func (p Palette) Colors() (background, foreground [4]float32) {
	switch p {
	case PaletteLight:
		return [4]float32{1, 1, 1, 1}, [4]float32{0.1, 0.1, 0.1, 1}
	case PaletteRetroBlue:
		return [4]float32{0, 0, 0.5, 1}, [4]float32{1, 1, 0, 1}
	}
	return [4]float32{0.14, 0.14, 0.14, 1}, [4]float32{0.9, 0.9, 0.9, 1}
}
