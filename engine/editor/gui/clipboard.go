package gui

import "github.com/go-gl/glfw/v3.3/glfw"

// clipboard serves both imgui and the text buffer from the system clipboard.
type clipboard struct{}

func (clipboard) Text() (string, bool) {
	s := glfw.GetClipboardString()
	return s, s != ""
}

func (clipboard) SetText(value string) {
	glfw.SetClipboardString(value)
}

// imguiClipboard adapts the system clipboard to imgui.Clipboard.
type imguiClipboard struct{}

func (imguiClipboard) Text() (string, error) {
	return glfw.GetClipboardString(), nil
}

func (imguiClipboard) SetText(value string) {
	glfw.SetClipboardString(value)
}
