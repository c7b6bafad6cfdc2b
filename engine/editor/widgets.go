package editor

import "github.com/spaghettifunk/anima-editor/engine/editor/text"

type WindowFlags int

const (
	WindowFlagsNone                WindowFlags = 0
	WindowFlagsMenuBar             WindowFlags = 1 << 0
	WindowFlagsHorizontalScrollbar WindowFlags = 1 << 1
)

// Widgets is the immediate-mode call surface the editor panels draw with.
// Begin* calls returning false must not be followed by their End* call,
// except BeginWindow whose EndWindow is always required.
type Widgets interface {
	BeginMainMenuBar() bool
	EndMainMenuBar()

	SetNextWindowSize(width, height float32)
	BeginWindow(name string, flags WindowFlags) bool
	EndWindow()

	BeginMenuBar() bool
	EndMenuBar()
	BeginMenu(label string) bool
	EndMenu()
	MenuItem(label, shortcut string, selected, enabled bool) bool
	Separator()

	Button(label string) bool
	Text(s string)
	LabelText(label, value string)
	Selectable(label string, selected bool) bool

	// TextEditor draws buf and applies the user's edits to it.
	TextEditor(id string, buf *text.Editor)
}

// Context owns the widget library state for one window.
type Context interface {
	Widgets
	NewFrame(deltaTime float64)
	Render()
	Shutdown()
}

// FileDialog asks the user for a file to open. An empty path with a nil
// error means the user cancelled.
type FileDialog func(startDir string) (string, error)
