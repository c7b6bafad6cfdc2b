package text

import (
	"strings"
	"unicode/utf8"
)

const maxHistory = 256

// Coordinates is a zero based line/column position. Columns count bytes.
type Coordinates struct {
	Line   int
	Column int
}

func (c Coordinates) Less(o Coordinates) bool {
	if c.Line != o.Line {
		return c.Line < o.Line
	}
	return c.Column < o.Column
}

// Clipboard is where Copy and Cut put text and Paste reads it from.
type Clipboard interface {
	SetText(string)
	Text() (string, bool)
}

type memoryClipboard struct {
	text string
	set  bool
}

func (m *memoryClipboard) SetText(s string) {
	m.text = s
	m.set = true
}

func (m *memoryClipboard) Text() (string, bool) {
	return m.text, m.set
}

type snapshot struct {
	lines    []string
	cursor   Coordinates
	selStart Coordinates
	selEnd   Coordinates
}

// Editor is the text model behind the shader editor widget: lines, cursor,
// selection and an undo history of whole-buffer snapshots.
type Editor struct {
	lines     []string
	cursor    Coordinates
	selStart  Coordinates
	selEnd    Coordinates
	readOnly  bool
	overwrite bool
	palette   Palette
	language  LanguageDefinition
	clipboard Clipboard
	// newline is the line ending of the loaded text, "\n" or "\r\n".
	newline string

	undo []snapshot
	redo []snapshot

	selectionRequest bool
}

func New() *Editor {
	return &Editor{
		lines:     []string{""},
		clipboard: &memoryClipboard{},
		newline:   "\n",
	}
}

func (e *Editor) SetClipboard(c Clipboard) {
	if c == nil {
		c = &memoryClipboard{}
	}
	e.clipboard = c
}

// SetText replaces the whole buffer and clears the undo history. Text
// whose every line ends in "\r\n" is kept as lines and written back with
// the same ending by Contents; any other "\r" stays part of its line.
func (e *Editor) SetText(s string) {
	e.newline = detectNewline(s)
	e.lines = e.split(s)
	e.cursor = Coordinates{}
	e.selStart, e.selEnd = Coordinates{}, Coordinates{}
	e.undo = nil
	e.redo = nil
}

// Text returns the buffer with "\n" line breaks, the form the widget edits
// and offsets refer to.
func (e *Editor) Text() string {
	return strings.Join(e.lines, "\n")
}

// Contents returns the buffer with the line endings it was loaded with.
func (e *Editor) Contents() string {
	return strings.Join(e.lines, e.newline)
}

// LineEnding is "\r\n" for buffers loaded from CRLF text, "\n" otherwise.
func (e *Editor) LineEnding() string {
	return e.newline
}

// ReplaceText swaps in s as an undoable edit. Used when the widget edits
// the buffer as a whole.
func (e *Editor) ReplaceText(s string) {
	if e.readOnly || s == e.Text() {
		return
	}
	e.pushUndo()
	e.lines = e.split(s)
	e.cursor = e.clamp(e.cursor)
	e.selStart, e.selEnd = e.cursor, e.cursor
}

func (e *Editor) TotalLines() int {
	return len(e.lines)
}

func (e *Editor) CursorPosition() Coordinates {
	return e.cursor
}

func (e *Editor) SetCursorPosition(c Coordinates) {
	e.cursor = e.clamp(c)
}

func (e *Editor) IsReadOnly() bool                      { return e.readOnly }
func (e *Editor) SetReadOnly(ro bool)                   { e.readOnly = ro }
func (e *Editor) IsOverwrite() bool                     { return e.overwrite }
func (e *Editor) SetOverwrite(ovr bool)                 { e.overwrite = ovr }
func (e *Editor) Palette() Palette                      { return e.palette }
func (e *Editor) SetPalette(p Palette)                  { e.palette = p }
func (e *Editor) CanUndo() bool                         { return !e.readOnly && len(e.undo) > 0 }
func (e *Editor) CanRedo() bool                         { return !e.readOnly && len(e.redo) > 0 }
func (e *Editor) HasSelection() bool                    { return e.selStart != e.selEnd }
func (e *Editor) Selection() (Coordinates, Coordinates) { return e.selStart, e.selEnd }

func (e *Editor) LanguageDefinition() LanguageDefinition {
	return e.language
}

func (e *Editor) SetLanguageDefinition(l LanguageDefinition) {
	e.language = l
}

// SetSelection selects [start, end). Coordinates are clamped and ordered.
func (e *Editor) SetSelection(start, end Coordinates) {
	start, end = e.clamp(start), e.clamp(end)
	if end.Less(start) {
		start, end = end, start
	}
	e.selStart, e.selEnd = start, end
	e.cursor = end
	e.selectionRequest = true
}

// SyncSelection records the selection reported by the widget without
// asking the widget to apply it back.
func (e *Editor) SyncSelection(start, end Coordinates) {
	e.SetSelection(start, end)
	e.selectionRequest = false
}

// TakeSelectionRequest returns a selection set through the API since the
// last call, for the widget to apply.
func (e *Editor) TakeSelectionRequest() (Coordinates, Coordinates, bool) {
	if !e.selectionRequest {
		return Coordinates{}, Coordinates{}, false
	}
	e.selectionRequest = false
	return e.selStart, e.selEnd, true
}

func (e *Editor) SelectAll() {
	e.SetSelection(Coordinates{}, Coordinates{Line: e.TotalLines(), Column: 0})
}

func (e *Editor) SelectedText() string {
	if !e.HasSelection() {
		return ""
	}
	text := e.Text()
	return text[e.Offset(e.selStart):e.Offset(e.selEnd)]
}

func (e *Editor) Copy() {
	if e.HasSelection() {
		e.clipboard.SetText(e.SelectedText())
		return
	}
	// no selection copies the current line
	e.clipboard.SetText(e.lines[e.cursor.Line])
}

func (e *Editor) Cut() {
	if e.readOnly || !e.HasSelection() {
		return
	}
	e.clipboard.SetText(e.SelectedText())
	e.pushUndo()
	e.deleteSelection()
}

func (e *Editor) Paste() {
	if e.readOnly {
		return
	}
	s, ok := e.clipboard.Text()
	if !ok || s == "" {
		return
	}
	e.pushUndo()
	if e.HasSelection() {
		e.deleteSelection()
	}
	e.insert(s)
}

func (e *Editor) CanPaste() bool {
	if e.readOnly {
		return false
	}
	s, ok := e.clipboard.Text()
	return ok && s != ""
}

// Delete removes the selection, or the rune after the cursor.
func (e *Editor) Delete() {
	if e.readOnly {
		return
	}
	if e.HasSelection() {
		e.pushUndo()
		e.deleteSelection()
		return
	}
	off := e.Offset(e.cursor)
	text := e.Text()
	if off >= len(text) {
		return
	}
	_, size := utf8.DecodeRuneInString(text[off:])
	e.pushUndo()
	e.lines = e.split(text[:off] + text[off+size:])
}

// InsertText types s at the cursor, replacing the selection. In overwrite
// mode one rune after the cursor on the same line is replaced per rune of s.
func (e *Editor) InsertText(s string) {
	if e.readOnly || s == "" {
		return
	}
	e.pushUndo()
	if e.HasSelection() {
		e.deleteSelection()
	} else if e.overwrite && !strings.Contains(s, "\n") {
		line := e.lines[e.cursor.Line]
		end := e.cursor.Column
		for n := utf8.RuneCountInString(s); n > 0 && end < len(line); n-- {
			_, size := utf8.DecodeRuneInString(line[end:])
			end += size
		}
		e.lines[e.cursor.Line] = line[:e.cursor.Column] + line[end:]
	}
	e.insert(s)
}

func (e *Editor) Undo() {
	if !e.CanUndo() {
		return
	}
	e.redo = append(e.redo, e.snapshot())
	last := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.restore(last)
}

func (e *Editor) Redo() {
	if !e.CanRedo() {
		return
	}
	e.undo = append(e.undo, e.snapshot())
	last := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.restore(last)
}

// Offset converts coordinates to a byte offset into Text().
func (e *Editor) Offset(c Coordinates) int {
	c = e.clamp(c)
	off := 0
	for i := 0; i < c.Line; i++ {
		off += len(e.lines[i]) + 1
	}
	return off + c.Column
}

// CoordinatesOf converts a byte offset into Text() back to coordinates.
func (e *Editor) CoordinatesOf(offset int) Coordinates {
	if offset < 0 {
		return Coordinates{}
	}
	for i, l := range e.lines {
		if offset <= len(l) {
			return Coordinates{Line: i, Column: offset}
		}
		offset -= len(l) + 1
	}
	last := len(e.lines) - 1
	return Coordinates{Line: last, Column: len(e.lines[last])}
}

func (e *Editor) insert(s string) {
	text := e.Text()
	off := e.Offset(e.cursor)
	e.lines = e.split(text[:off] + s + text[off:])
	e.cursor = e.CoordinatesOf(off + len(s))
	e.selStart, e.selEnd = e.cursor, e.cursor
}

func (e *Editor) deleteSelection() {
	text := e.Text()
	start, end := e.Offset(e.selStart), e.Offset(e.selEnd)
	e.lines = e.split(text[:start] + text[end:])
	e.cursor = e.CoordinatesOf(start)
	e.selStart, e.selEnd = e.cursor, e.cursor
}

func (e *Editor) clamp(c Coordinates) Coordinates {
	if c.Line < 0 {
		return Coordinates{}
	}
	if c.Line >= len(e.lines) {
		last := len(e.lines) - 1
		return Coordinates{Line: last, Column: len(e.lines[last])}
	}
	c.Column = max(0, min(c.Column, len(e.lines[c.Line])))
	return c
}

func (e *Editor) snapshot() snapshot {
	return snapshot{
		lines:    append([]string(nil), e.lines...),
		cursor:   e.cursor,
		selStart: e.selStart,
		selEnd:   e.selEnd,
	}
}

func (e *Editor) restore(s snapshot) {
	e.lines = s.lines
	e.cursor = s.cursor
	e.selStart, e.selEnd = s.selStart, s.selEnd
}

func (e *Editor) pushUndo() {
	e.undo = append(e.undo, e.snapshot())
	if len(e.undo) > maxHistory {
		e.undo = e.undo[len(e.undo)-maxHistory:]
	}
	e.redo = nil
}

func (e *Editor) split(s string) []string {
	if e.newline == "\r\n" {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}
	return strings.Split(s, "\n")
}

func detectNewline(s string) string {
	lf := strings.Count(s, "\n")
	if lf > 0 && strings.Count(s, "\r\n") == lf {
		return "\r\n"
	}
	return "\n"
}
