package platform

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/anima-editor/engine/core"
)

var startTime float64 = 0

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// InputListener receives raw window input in addition to the engine's own
// key state. The editor UI registers one.
type InputListener interface {
	OnKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
	OnChar(char rune)
	OnMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey)
	OnScroll(xoff, yoff float64)
}

type Platform struct {
	Window    *glfw.Window
	listeners []InputListener
}

func New() *Platform {
	return &Platform{
		Window: nil,
	}
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32, vsync bool) error {
	if err := glfw.Init(); err != nil {
		core.LogFatal("failed to initialize glfw: %s", err)
		return err
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.StencilBits, 8)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		core.LogFatal("failed to create window: %s", err)
		glfw.Terminate()
		return err
	}
	window.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	p.Window = window

	p.Window.SetKeyCallback(p.keyCallback)
	p.Window.SetCharCallback(p.charCallback)
	p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
	p.Window.SetScrollCallback(p.scrollCallback)
	p.Window.SetFramebufferSizeCallback(framebufferSizeCallback)
	p.Window.SetCloseCallback(closeCallback)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	startTime = glfw.GetTime()
	core.LogInfo("window %dx%d created with an OpenGL 4.1 core context", width, height)

	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

func (p *Platform) AddInputListener(l InputListener) {
	p.listeners = append(p.listeners, l)
}

// PumpMessages processes pending window events. It returns false once the
// window was asked to close.
func (p *Platform) PumpMessages() bool {
	glfw.PollEvents()
	return !p.Window.ShouldClose()
}

func (p *Platform) SwapBuffers() {
	p.Window.SwapBuffers()
}

// FramebufferSize is the drawable size in pixels.
func (p *Platform) FramebufferSize() (uint32, uint32) {
	w, h := p.Window.GetFramebufferSize()
	return uint32(w), uint32(h)
}

// GetAbsoluteTime returns seconds since the platform started.
func GetAbsoluteTime() float64 {
	return glfw.GetTime() - startTime
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key >= 0 && action != glfw.Repeat {
		core.InputProcessKey(core.KeyCode(key), action == glfw.Press)
	}
	for _, l := range p.listeners {
		l.OnKey(key, action, mods)
	}
}

func (p *Platform) charCallback(w *glfw.Window, char rune) {
	for _, l := range p.listeners {
		l.OnChar(char)
	}
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	for _, l := range p.listeners {
		l.OnMouseButton(button, action, mods)
	}
}

func (p *Platform) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	for _, l := range p.listeners {
		l.OnScroll(xoff, yoff)
	}
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.SystemEvent{
			WindowWidth:  uint32(width),
			WindowHeight: uint32(height),
		},
	})
}

func closeCallback(w *glfw.Window) {
	core.EventFire(core.EventContext{Type: core.EVENT_CODE_APPLICATION_QUIT})
}
