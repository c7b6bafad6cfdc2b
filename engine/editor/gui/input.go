package gui

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

var mouseButtons = []glfw.MouseButton{glfw.MouseButton1, glfw.MouseButton2, glfw.MouseButton3}

// input feeds GLFW window state into imgui.IO.
type input struct {
	window           *glfw.Window
	io               imgui.IO
	mouseJustPressed [3]bool
}

func newInput(window *glfw.Window, io imgui.IO) *input {
	in := &input{window: window, io: io}
	in.setKeyMapping()
	io.SetClipboard(imguiClipboard{})
	return in
}

func (in *input) setKeyMapping() {
	keys := map[int]glfw.Key{
		imgui.KeyTab:        glfw.KeyTab,
		imgui.KeyLeftArrow:  glfw.KeyLeft,
		imgui.KeyRightArrow: glfw.KeyRight,
		imgui.KeyUpArrow:    glfw.KeyUp,
		imgui.KeyDownArrow:  glfw.KeyDown,
		imgui.KeyPageUp:     glfw.KeyPageUp,
		imgui.KeyPageDown:   glfw.KeyPageDown,
		imgui.KeyHome:       glfw.KeyHome,
		imgui.KeyEnd:        glfw.KeyEnd,
		imgui.KeyInsert:     glfw.KeyInsert,
		imgui.KeyDelete:     glfw.KeyDelete,
		imgui.KeyBackspace:  glfw.KeyBackspace,
		imgui.KeySpace:      glfw.KeySpace,
		imgui.KeyEnter:      glfw.KeyEnter,
		imgui.KeyEscape:     glfw.KeyEscape,
		imgui.KeyA:          glfw.KeyA,
		imgui.KeyC:          glfw.KeyC,
		imgui.KeyV:          glfw.KeyV,
		imgui.KeyX:          glfw.KeyX,
		imgui.KeyY:          glfw.KeyY,
		imgui.KeyZ:          glfw.KeyZ,
	}
	for imguiKey, glfwKey := range keys {
		in.io.KeyMap(imguiKey, int(glfwKey))
	}
}

func (in *input) displaySize() [2]float32 {
	w, h := in.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

func (in *input) framebufferSize() [2]float32 {
	w, h := in.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

func (in *input) newFrame(deltaTime float64) {
	size := in.displaySize()
	in.io.SetDisplaySize(imgui.Vec2{X: size[0], Y: size[1]})
	if deltaTime > 0 {
		in.io.SetDeltaTime(float32(deltaTime))
	}

	if in.window.GetAttrib(glfw.Focused) != 0 {
		x, y := in.window.GetCursorPos()
		in.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		in.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for i, b := range mouseButtons {
		down := in.mouseJustPressed[i] || in.window.GetMouseButton(b) == glfw.Press
		in.io.SetMouseButtonDown(i, down)
		in.mouseJustPressed[i] = false
	}
}

func (in *input) OnKey(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
	if key < 0 {
		return
	}
	if action == glfw.Press {
		in.io.KeyPress(int(key))
	}
	if action == glfw.Release {
		in.io.KeyRelease(int(key))
	}
	in.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	in.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	in.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	in.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

func (in *input) OnChar(char rune) {
	in.io.AddInputCharacters(string(char))
}

func (in *input) OnMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	for i, b := range mouseButtons {
		if b == button {
			in.mouseJustPressed[i] = true
		}
	}
}

func (in *input) OnScroll(xoff, yoff float64) {
	in.io.AddMouseWheelDelta(float32(xoff), float32(yoff))
}
