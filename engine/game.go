package engine

import (
	"github.com/spaghettifunk/anima-editor/engine/assets"
	"github.com/spaghettifunk/anima-editor/engine/config"
	"github.com/spaghettifunk/anima-editor/engine/renderer"
	"github.com/spaghettifunk/anima-editor/engine/scene"
)

// Game is the application plugged into the engine. The engine fills in
// Renderer, Assets and Scene before calling FnInitialize.
type Game struct {
	ApplicationConfig *config.ApplicationConfig
	Renderer          *renderer.Renderer
	Assets            *assets.AssetManager
	Scene             *scene.Scene
	// KeyboardCaptured reports whether an editor widget has keyboard focus.
	KeyboardCaptured func() bool
	State            interface{}
	FnInitialize     Initialize
	FnUpdate         Update
	FnOnResize       OnResize
	FnShutdown       Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
