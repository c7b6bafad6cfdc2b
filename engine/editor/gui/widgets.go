package gui

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/spaghettifunk/anima-editor/engine/editor"
	"github.com/spaghettifunk/anima-editor/engine/editor/text"
)

var _ editor.Context = (*Context)(nil)

func (c *Context) BeginMainMenuBar() bool { return imgui.BeginMainMenuBar() }
func (c *Context) EndMainMenuBar()        { imgui.EndMainMenuBar() }

func (c *Context) SetNextWindowSize(width, height float32) {
	imgui.SetNextWindowSizeV(imgui.Vec2{X: width, Y: height}, imgui.ConditionFirstUseEver)
}

func (c *Context) BeginWindow(name string, flags editor.WindowFlags) bool {
	return imgui.BeginV(name, nil, windowFlags(flags))
}

func (c *Context) EndWindow() { imgui.End() }

func windowFlags(flags editor.WindowFlags) imgui.WindowFlags {
	out := imgui.WindowFlagsNone
	if flags&editor.WindowFlagsMenuBar != 0 {
		out |= imgui.WindowFlagsMenuBar
	}
	if flags&editor.WindowFlagsHorizontalScrollbar != 0 {
		out |= imgui.WindowFlagsHorizontalScrollbar
	}
	return out
}

func (c *Context) BeginMenuBar() bool          { return imgui.BeginMenuBar() }
func (c *Context) EndMenuBar()                 { imgui.EndMenuBar() }
func (c *Context) BeginMenu(label string) bool { return imgui.BeginMenu(label) }
func (c *Context) EndMenu()                    { imgui.EndMenu() }

func (c *Context) MenuItem(label, shortcut string, selected, enabled bool) bool {
	return imgui.MenuItemV(label, shortcut, selected, enabled)
}

func (c *Context) Separator()               { imgui.Separator() }
func (c *Context) Button(label string) bool { return imgui.Button(label) }
func (c *Context) Text(s string)            { imgui.Text(s) }

func (c *Context) LabelText(label, value string) {
	imgui.LabelText(label, value)
}

func (c *Context) Selectable(label string, selected bool) bool {
	return imgui.SelectableV(label, selected, 0, imgui.Vec2{})
}

// TextEditor draws buf as a multiline input filling the window. The input
// owns the text while it is focused; edits are pushed back as one undo step
// per changed frame. In overwrite mode typed runes are filtered out of the
// input and applied through buf.InsertText instead.
func (c *Context) TextEditor(id string, buf *text.Editor) {
	bg, fg := buf.Palette().Colors()
	imgui.PushStyleColor(imgui.StyleColorFrameBg, imgui.Vec4{X: bg[0], Y: bg[1], Z: bg[2], W: bg[3]})
	imgui.PushStyleColor(imgui.StyleColorText, imgui.Vec4{X: fg[0], Y: fg[1], Z: fg[2], W: fg[3]})
	defer imgui.PopStyleColorV(2)

	flags := imgui.InputTextFlagsAllowTabInput | imgui.InputTextFlagsCallbackAlways | imgui.InputTextFlagsCallbackCharFilter
	if buf.IsReadOnly() {
		flags |= imgui.InputTextFlagsReadOnly
	}

	content := buf.Text()
	changed := imgui.InputTextMultilineV("##"+id, &content, imgui.Vec2{X: -1, Y: -1}, flags, func(data imgui.InputTextCallbackData) int32 {
		if data.EventFlag() == imgui.InputTextFlagsCallbackCharFilter {
			if !buf.IsOverwrite() {
				return 0
			}
			c.overwritten = append(c.overwritten, data.EventChar())
			data.SetEventChar(0)
			return 1
		}
		if start, end, ok := buf.TakeSelectionRequest(); ok {
			data.SetSelectionStart(buf.Offset(start))
			data.SetSelectionEnd(buf.Offset(end))
			data.SetCursorPos(buf.Offset(end))
			return 0
		}
		if len(c.overwritten) > 0 {
			c.overwrite(data, buf)
			return 0
		}
		cursor := buf.CoordinatesOf(data.CursorPos())
		buf.SyncSelection(buf.CoordinatesOf(data.SelectionStart()), buf.CoordinatesOf(data.SelectionEnd()))
		buf.SetCursorPosition(cursor)
		return 0
	})
	if changed {
		cursor := buf.CursorPosition()
		buf.ReplaceText(content)
		buf.SetCursorPosition(cursor)
	}
}

// overwrite applies the held back runes to buf and copies the result into
// the input's buffer.
func (c *Context) overwrite(data imgui.InputTextCallbackData, buf *text.Editor) {
	if edited := string(data.Buffer()); edited != buf.Text() {
		buf.ReplaceText(edited)
	}
	buf.SyncSelection(buf.CoordinatesOf(data.SelectionStart()), buf.CoordinatesOf(data.SelectionEnd()))
	buf.SetCursorPosition(buf.CoordinatesOf(data.CursorPos()))
	buf.InsertText(string(c.overwritten))
	c.overwritten = c.overwritten[:0]

	data.DeleteBytes(0, len(data.Buffer()))
	data.InsertBytes(0, []byte(buf.Text()))
	off := buf.Offset(buf.CursorPosition())
	data.SetCursorPos(off)
	data.SetSelectionStart(off)
	data.SetSelectionEnd(off)
}
