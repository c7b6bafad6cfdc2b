package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-editor/engine/core"
)

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width"`
	// Window starting height, if applicable.
	StartHeight uint32        `toml:"start_height"`
	VSync       bool          `toml:"vsync"`
	LogLevel    core.LogLevel `toml:"log_level"`
	// Frames per second the loop sleeps towards. Zero disables the limit.
	TargetFPS float64 `toml:"target_fps"`
	AssetsDir string  `toml:"assets_dir"`

	Shaders ShaderConfig `toml:"shaders"`
	Editor  EditorConfig `toml:"editor"`
}

// ShaderConfig names the programs the scene is drawn with. Each name maps
// to <assets_dir>/shaders/<name>.vert and .frag.
type ShaderConfig struct {
	Scene     string `toml:"scene"`
	Highlight string `toml:"highlight"`
}

type EditorConfig struct {
	ShowOnStart bool `toml:"show_on_start"`
	// StartFile is opened in the shader editor at startup, if set.
	StartFile string  `toml:"start_file"`
	FontPath  string  `toml:"font_path"`
	FontSize  float32 `toml:"font_size"`
}

func Default() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "Anima Editor",
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  1280,
		StartHeight: 720,
		VSync:       true,
		LogLevel:    core.LogLevelInfo,
		TargetFPS:   60,
		AssetsDir:   "assets",
		Shaders: ShaderConfig{
			Scene:     "lit",
			Highlight: "outline",
		},
		Editor: EditorConfig{
			ShowOnStart: true,
			FontSize:    16,
		},
	}
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", core.ErrFileNotFound, path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes TOML on top of the defaults. Unknown keys are rejected.
func Parse(data []byte) (*ApplicationConfig, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("invalid config:\n%s", strict.String())
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("invalid config at line %d column %d: %w", row, col, err)
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.StartWidth == 0 || c.StartHeight == 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.StartWidth, c.StartHeight)
	}
	if c.TargetFPS < 0 {
		return fmt.Errorf("target_fps must not be negative")
	}
	if c.Shaders.Scene == "" {
		return fmt.Errorf("shaders.scene must name a shader")
	}
	if c.Editor.FontSize <= 0 {
		return fmt.Errorf("editor.font_size must be positive")
	}
	switch c.LogLevel {
	case core.LogLevelDebug, core.LogLevelInfo, core.LogLevelWarn, core.LogLevelError:
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Encode renders the config as TOML.
func (c *ApplicationConfig) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
