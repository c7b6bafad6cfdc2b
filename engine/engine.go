package engine

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spaghettifunk/anima-editor/engine/assets"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/editor"
	"github.com/spaghettifunk/anima-editor/engine/editor/gui"
	"github.com/spaghettifunk/anima-editor/engine/platform"
	"github.com/spaghettifunk/anima-editor/engine/renderer"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
	"github.com/spaghettifunk/anima-editor/engine/renderer/opengl"
	"github.com/spaghettifunk/anima-editor/engine/scene"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    bool
	isSuspended  bool
	platform     *platform.Platform
	assetManager *assets.AssetManager
	renderer     *renderer.Renderer
	scene        *scene.Scene
	width        uint32
	height       uint32
	clock        *core.Clock
	lastTime     float64

	profiler   *core.Profiler
	metrics    *core.Metrics
	ui         *editor.EditorUI
	uiContext  *gui.Context
	session    *editor.Session
	frameState editor.FrameState

	sceneShader     *metadata.Shader
	highlightShader *metadata.Shader
}

func New(g *Game) (*Engine, error) {
	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		clock:        core.NewClock(),
		platform:     platform.New(),
		assetManager: am,
		renderer:     renderer.New(opengl.New()),
		scene:        scene.New(),
		profiler:     core.NewProfiler(),
		metrics:      core.NewMetrics(),
		session:      editor.NewSession(),
		isRunning:    true,
		isSuspended:  false,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
		lastTime:     0,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing
	cfg := e.gameInstance.ApplicationConfig
	core.LogSetLevel(cfg.LogLevel)

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)
	core.EventRegister(core.EVENT_CODE_SHADER_CHANGED, e.onShaderFile)
	core.EventRegister(core.EVENT_CODE_SHADER_SAVED, e.onShaderFile)

	if err := e.platform.Startup(cfg.Name, cfg.StartPosX, cfg.StartPosY, cfg.StartWidth, cfg.StartHeight, cfg.VSync); err != nil {
		return err
	}
	e.width, e.height = e.platform.FramebufferSize()

	if err := e.renderer.Initialize(e.width, e.height); err != nil {
		return err
	}

	assetsDir, err := filepath.Abs(cfg.AssetsDir)
	if err != nil {
		return err
	}
	if err := e.assetManager.Initialize(assetsDir); err != nil {
		return err
	}

	if e.sceneShader, err = e.loadShader(cfg.Shaders.Scene); err != nil {
		return err
	}
	if e.highlightShader, err = e.loadShader(cfg.Shaders.Highlight); err != nil {
		// the scene still draws without outlines
		core.LogWarn("highlight shader unavailable: %s", err)
	}

	if err := e.initializeEditor(); err != nil {
		return err
	}

	e.gameInstance.Renderer = e.renderer
	e.gameInstance.Assets = e.assetManager
	e.gameInstance.Scene = e.scene
	e.gameInstance.KeyboardCaptured = e.uiContext.WantsKeyboard
	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}
	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) initializeEditor() error {
	cfg := e.gameInstance.ApplicationConfig

	ctx, err := gui.SetupContext(e.platform.Window, cfg.Editor.FontPath, cfg.Editor.FontSize)
	if err != nil {
		return err
	}
	e.uiContext = ctx
	e.platform.AddInputListener(ctx.InputListener())
	e.session.Buffer.SetClipboard(ctx.Clipboard())

	e.ui = editor.New(ctx, e.profiler, e.metrics)
	e.ui.SetFileDialog(gui.OpenShaderDialog)
	e.frameState.ShowEditor = cfg.Editor.ShowOnStart

	if cfg.Editor.StartFile != "" {
		if err := e.session.OpenFile(cfg.Editor.StartFile); err != nil {
			core.LogWarn("could not open %s: %s", cfg.Editor.StartFile, err)
			e.session.Notice = err.Error()
		}
	}
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning
	e.clock.Start()
	e.clock.Update()

	e.lastTime = e.clock.Elapsed()
	targetFrameSeconds := 0.0
	if fps := e.gameInstance.ApplicationConfig.TargetFPS; fps > 0 {
		targetFrameSeconds = 1.0 / fps
	}

	for e.isRunning {
		if !e.platform.PumpMessages() {
			e.isRunning = false
			break
		}

		if e.isSuspended {
			time.Sleep(100 * time.Millisecond)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		var currentTime float64 = e.clock.Elapsed()
		var delta float64 = (currentTime - e.lastTime)
		var frameStartTime float64 = platform.GetAbsoluteTime()

		if err := e.frame(delta); err != nil {
			core.LogError("frame failed, shutting down: %s", err)
			e.isRunning = false
			break
		}

		var frameElapsedTime float64 = platform.GetAbsoluteTime() - frameStartTime
		if remaining := targetFrameSeconds - frameElapsedTime; remaining > 0 {
			time.Sleep(time.Duration(remaining * float64(time.Second)))
		}

		e.metrics.Update(delta)
		core.InputUpdate()
		e.lastTime = currentTime
	}

	return nil
}

func (e *Engine) frame(delta float64) error {
	e.profiler.Begin(core.DebugRegionFrame)
	defer e.profiler.End(core.DebugRegionFrame)

	e.assetManager.DispatchChanges()

	e.profiler.Begin(core.DebugRegionGameUpdate)
	err := e.gameInstance.FnUpdate(delta)
	e.profiler.End(core.DebugRegionGameUpdate)
	if err != nil {
		return fmt.Errorf("game update: %w", err)
	}

	if err := e.renderer.BeginFrame(delta); err != nil {
		return err
	}

	e.profiler.Begin(core.DebugRegionRenderScene)
	err = e.scene.Draw(e.renderer, e.sceneShader, e.highlightShader, e.width, e.height)
	e.profiler.End(core.DebugRegionRenderScene)
	if err != nil {
		return fmt.Errorf("scene draw: %w", err)
	}

	e.profiler.Begin(core.DebugRegionEditorUpdate)
	e.ui.NewFrame(delta)
	e.ui.Update(e.session, &e.frameState, e.scene.Data)
	e.profiler.End(core.DebugRegionEditorUpdate)

	e.profiler.Begin(core.DebugRegionEditorRender)
	e.ui.Render()
	e.profiler.End(core.DebugRegionEditorRender)

	if err := e.renderer.EndFrame(delta); err != nil {
		core.LogWarn(err.Error())
	}

	e.profiler.Begin(core.DebugRegionSwapBuffers)
	e.platform.SwapBuffers()
	e.profiler.End(core.DebugRegionSwapBuffers)
	return nil
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown
	e.isRunning = false

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError(err.Error())
		}
	}
	if e.ui != nil {
		e.ui.Shutdown()
	}
	e.scene.Destroy()
	if err := e.renderer.Shutdown(); err != nil {
		core.LogError(err.Error())
	}
	if err := e.assetManager.Shutdown(); err != nil {
		core.LogError(err.Error())
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	return nil
}

// Quit asks the loop to stop after the current frame. Safe to call from a
// signal handler goroutine.
func (e *Engine) Quit() {
	e.platform.Window.SetShouldClose(true)
}

func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT recieved, shutting down.")
		e.isRunning = false
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	switch ke.KeyCode {
	case core.KEY_ESCAPE:
		if e.uiContext != nil && e.uiContext.WantsKeyboard() {
			return false
		}
		core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
		return true
	case core.KEY_F1:
		e.frameState.ShowEditor = !e.frameState.ShowEditor
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext) bool {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}
	if se.WindowWidth == 0 || se.WindowHeight == 0 {
		core.LogInfo("window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("window restored, resuming application.")
		e.isSuspended = false
	}
	e.width, e.height = se.WindowWidth, se.WindowHeight
	e.renderer.OnResized(e.width, e.height)
	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		core.LogError(err.Error())
	}
	return false
}
