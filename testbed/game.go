package testbed

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-editor/engine"
	"github.com/spaghettifunk/anima-editor/engine/assets/loaders"
	"github.com/spaghettifunk/anima-editor/engine/config"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/renderer"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-editor/engine/scene"
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	width  uint32
	height uint32

	spinning []*scene.GameObject
	angle    float32
}

func NewTestGame(cfg *config.ApplicationConfig) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: cfg,
			State:             &gameState{},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize() error {
	core.LogDebug("TestGame Initialize fn....")

	if g.Renderer == nil || g.Scene == nil {
		return fmt.Errorf("the engine is not yet initialized with the renderer and the scene")
	}
	state := g.State.(*gameState)

	g.Scene.Camera.SetPosition(mgl32.Vec3{10.5, 5.0, 9.5})
	g.Scene.Camera.Yaw(mgl32.DegToRad(45))
	g.Scene.Camera.Pitch(mgl32.DegToRad(-15))

	floor, err := g.Renderer.CreateMesh(renderer.GeneratePlaneConfig(40, 40, 4, 4, 8, 8, "floor"))
	if err != nil {
		return err
	}
	g.Scene.AddObject("floor", floor, mgl32.Translate3D(0, -2, 0))

	cubes := []struct {
		name     string
		size     float32
		position mgl32.Vec3
	}{
		{"test_cube", 4, mgl32.Vec3{0, 0, 0}},
		{"test_cube_2", 2, mgl32.Vec3{6, 0, 1}},
		{"test_cube_3", 1, mgl32.Vec3{10, 0, 1}},
	}
	for _, c := range cubes {
		m, err := g.Renderer.CreateMesh(renderer.GenerateCubeConfig(c.size, c.size, c.size, 1, 1, c.name))
		if err != nil {
			return err
		}
		obj := g.Scene.AddObject(c.name, m, mgl32.Translate3D(c.position.Elem()))
		state.spinning = append(state.spinning, obj)
	}

	for _, path := range g.Assets.List(metadata.ResourceTypeMesh) {
		if err := g.loadModel(path); err != nil {
			core.LogWarn("skipping model %s: %s", path, err)
		}
	}
	return nil
}

func (g *TestGame) loadModel(path string) error {
	res, err := g.Assets.LoadAsset(path, nil)
	if err != nil {
		return err
	}
	defer g.Assets.UnloadAsset(res)

	data, ok := res.Data.(*metadata.MeshResourceData)
	if !ok {
		return fmt.Errorf("unexpected resource data %T", res.Data)
	}
	for i, cfg := range data.Configs {
		for _, tex := range cfg.Textures {
			if err := g.uploadTexture(tex); err != nil {
				core.LogWarn("texture %s: %s", tex.Path, err)
			}
		}
		m, err := g.Renderer.CreateMesh(cfg)
		if err != nil {
			return err
		}
		name := cfg.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", filepath.Base(path), i)
		}
		g.Scene.AddObject(name, m, mgl32.Translate3D(-8, 0, -4))
	}
	return nil
}

func (g *TestGame) uploadTexture(tex *metadata.Texture) error {
	res, err := g.Assets.LoadAsset(tex.Path, &loaders.TextureParams{Use: tex.Use, FlipY: false})
	if err != nil {
		return err
	}
	defer g.Assets.UnloadAsset(res)

	td, ok := res.Data.(*loaders.TextureData)
	if !ok {
		return fmt.Errorf("unexpected resource data %T", res.Data)
	}
	tex.Width, tex.Height = td.Texture.Width, td.Texture.Height
	return g.Renderer.CreateTexture(tex, td.Image)
}

var tempMoveSpeed float32 = 10.0

func (g *TestGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	camera := g.Scene.Camera
	dt := float32(deltaTime)

	if !g.KeyboardCaptured() && !core.InputIsCtrlDown() {
		if core.InputIsKeyDown(core.KEY_LEFT) {
			camera.Yaw(1.0 * dt)
		}
		if core.InputIsKeyDown(core.KEY_RIGHT) {
			camera.Yaw(-1.0 * dt)
		}
		if core.InputIsKeyDown(core.KEY_UP) {
			camera.Pitch(1.0 * dt)
		}
		if core.InputIsKeyDown(core.KEY_DOWN) {
			camera.Pitch(-1.0 * dt)
		}
		if core.InputIsKeyDown(core.KEY_W) {
			camera.MoveForward(tempMoveSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_S) {
			camera.MoveForward(-tempMoveSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_A) {
			camera.MoveRight(-tempMoveSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_D) {
			camera.MoveRight(tempMoveSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_E) {
			camera.MoveUp(tempMoveSpeed * dt)
		}
		if core.InputIsKeyDown(core.KEY_Q) {
			camera.MoveUp(-tempMoveSpeed * dt)
		}
	}

	// Perform a small rotation on the cubes.
	state.angle += 0.5 * dt
	rotation := mgl32.HomogRotate3DY(state.angle)
	for _, obj := range state.spinning {
		position := obj.Transform.Col(3).Vec3()
		obj.Transform = mgl32.Translate3D(position.Elem()).Mul4(rotation)
	}
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)
	state.width = width
	state.height = height
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("shutting down testbed")
	return nil
}
