package gui

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/editor/text"
	"github.com/spaghettifunk/anima-editor/engine/platform"
)

// Context binds an imgui context to a GLFW window and renders it with
// OpenGL. It implements editor.Context.
type Context struct {
	imctx    *imgui.Context
	io       imgui.IO
	input    *input
	renderer *openGL3

	// typed runes held back from imgui while the text editor overwrites
	overwritten []rune
}

// SetupContext creates the imgui context for window. fontPath may be empty
// to use the built-in font.
func SetupContext(window *glfw.Window, fontPath string, fontSize float32) (*Context, error) {
	imctx := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("")
	imgui.StyleColorsClassic()

	if fontPath != "" {
		if font := io.Fonts().AddFontFromFileTTF(fontPath, fontSize); font == imgui.DefaultFont {
			core.LogWarn("could not load font %s, using the default one", fontPath)
		}
	}

	r, err := newOpenGL3(io)
	if err != nil {
		imctx.Destroy()
		return nil, fmt.Errorf("failed to create the ui renderer: %w", err)
	}

	c := &Context{
		imctx:    imctx,
		io:       io,
		input:    newInput(window, io),
		renderer: r,
	}
	core.LogInfo("imgui %s context created", imgui.Version())
	return c, nil
}

// InputListener is registered with the platform so the UI receives keys,
// characters and the mouse wheel.
func (c *Context) InputListener() platform.InputListener {
	return c.input
}

// Clipboard exposes the window clipboard to the text buffer.
func (c *Context) Clipboard() text.Clipboard {
	return clipboard{}
}

// WantsKeyboard is true while a widget has keyboard focus.
func (c *Context) WantsKeyboard() bool {
	return c.io.WantCaptureKeyboard()
}

func (c *Context) NewFrame(deltaTime float64) {
	c.input.newFrame(deltaTime)
	imgui.NewFrame()
}

func (c *Context) Render() {
	imgui.Render()
	c.renderer.render(c.input.displaySize(), c.input.framebufferSize(), imgui.RenderedDrawData())
}

func (c *Context) Shutdown() {
	c.renderer.dispose()
	c.imctx.Destroy()
}
