package editor

import (
	"fmt"

	"github.com/spaghettifunk/anima-editor/engine/editor/text"
)

// fakeContext records every widget call and reports clicks for the labels
// listed in clicks.
type fakeContext struct {
	calls  []string
	clicks map[string]bool
	// disabled collects menu items drawn with enabled=false.
	disabled map[string]bool
	closed   map[string]bool

	frames   int
	rendered int
	shutdown bool
}

func newFakeContext(clicks ...string) *fakeContext {
	f := &fakeContext{
		clicks:   map[string]bool{},
		disabled: map[string]bool{},
		closed:   map[string]bool{},
	}
	for _, c := range clicks {
		f.clicks[c] = true
	}
	return f
}

func (f *fakeContext) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeContext) has(call string) bool {
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeContext) BeginMainMenuBar() bool { f.record("main menu"); return true }
func (f *fakeContext) EndMainMenuBar()        {}
func (f *fakeContext) SetNextWindowSize(width, height float32) {
	f.record("size %.0fx%.0f", width, height)
}

func (f *fakeContext) BeginWindow(name string, flags WindowFlags) bool {
	f.record("window %s", name)
	return !f.closed[name]
}

func (f *fakeContext) EndWindow()         { f.record("end window") }
func (f *fakeContext) BeginMenuBar() bool { return true }
func (f *fakeContext) EndMenuBar()        {}

func (f *fakeContext) BeginMenu(label string) bool {
	f.record("menu %s", label)
	return !f.closed[label]
}

func (f *fakeContext) EndMenu() {}

func (f *fakeContext) MenuItem(label, shortcut string, selected, enabled bool) bool {
	f.record("item %s", label)
	if !enabled {
		f.disabled[label] = true
		return false
	}
	return f.clicks[label]
}

func (f *fakeContext) Separator() {}

func (f *fakeContext) Button(label string) bool {
	f.record("button %s", label)
	return f.clicks[label]
}

func (f *fakeContext) Text(s string) { f.record("text %s", s) }

func (f *fakeContext) LabelText(label, value string) {
	f.record("label %s = %s", label, value)
}

func (f *fakeContext) Selectable(label string, selected bool) bool {
	f.record("selectable %s %v", label, selected)
	return f.clicks[label]
}

func (f *fakeContext) TextEditor(id string, buf *text.Editor) {
	f.record("text editor %s", id)
}

func (f *fakeContext) NewFrame(deltaTime float64) { f.frames++ }
func (f *fakeContext) Render()                    { f.rendered++ }
func (f *fakeContext) Shutdown()                  { f.shutdown = true }
