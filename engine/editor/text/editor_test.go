package text

import (
	"testing"
	"unicode/utf8"
)

func TestSetTextResetsHistory(t *testing.T) {
	e := New()
	e.InsertText("abc")
	e.SetText("void main() {}\n")
	if e.CanUndo() {
		t.Fatal("SetText should clear the undo history")
	}
	if got := e.TotalLines(); got != 2 {
		t.Fatalf("TotalLines = %d, want 2", got)
	}
	if got := e.Text(); got != "void main() {}\n" {
		t.Fatalf("Text = %q", got)
	}
}

func TestUndoRedo(t *testing.T) {
	e := New()
	e.SetText("a")
	e.SetCursorPosition(Coordinates{Line: 0, Column: 1})
	e.InsertText("b")
	e.InsertText("c")
	if e.Text() != "abc" {
		t.Fatalf("Text = %q", e.Text())
	}
	e.Undo()
	if e.Text() != "ab" {
		t.Fatalf("after undo Text = %q", e.Text())
	}
	e.Undo()
	e.Undo()
	if e.Text() != "a" {
		t.Fatalf("after undo Text = %q", e.Text())
	}
	if !e.CanRedo() {
		t.Fatal("expected redo to be available")
	}
	e.Redo()
	e.Redo()
	if e.Text() != "abc" {
		t.Fatalf("after redo Text = %q", e.Text())
	}
	e.InsertText("d")
	if e.CanRedo() {
		t.Fatal("a new edit should drop the redo history")
	}
}

func TestCutPaste(t *testing.T) {
	e := New()
	e.SetText("uniform vec3 color;")
	e.SetSelection(Coordinates{0, 8}, Coordinates{0, 13})
	if got := e.SelectedText(); got != "vec3 " {
		t.Fatalf("SelectedText = %q", got)
	}
	e.Cut()
	if e.Text() != "uniform color;" {
		t.Fatalf("after cut Text = %q", e.Text())
	}
	if !e.CanPaste() {
		t.Fatal("clipboard should hold the cut text")
	}
	e.SetCursorPosition(Coordinates{0, 0})
	e.Paste()
	if e.Text() != "vec3 uniform color;" {
		t.Fatalf("after paste Text = %q", e.Text())
	}
}

func TestCopyWithoutSelectionTakesLine(t *testing.T) {
	e := New()
	e.SetText("first\nsecond")
	e.SetCursorPosition(Coordinates{1, 2})
	e.Copy()
	e.SetCursorPosition(Coordinates{0, 0})
	e.Paste()
	if e.Text() != "secondfirst\nsecond" {
		t.Fatalf("Text = %q", e.Text())
	}
}

func TestReadOnlyBlocksEdits(t *testing.T) {
	e := New()
	e.SetText("x")
	e.SetReadOnly(true)
	e.InsertText("y")
	e.SelectAll()
	e.Delete()
	e.Cut()
	e.ReplaceText("z")
	if e.Text() != "x" {
		t.Fatalf("read-only buffer changed: %q", e.Text())
	}
	if e.CanUndo() || e.CanPaste() {
		t.Fatal("undo and paste must be disabled when read-only")
	}
}

func TestDeleteAndSelectAll(t *testing.T) {
	e := New()
	e.SetText("ab\ncd")
	e.SetCursorPosition(Coordinates{0, 2})
	e.Delete()
	if e.Text() != "abcd" {
		t.Fatalf("Text = %q", e.Text())
	}
	e.SelectAll()
	if got := e.SelectedText(); got != "abcd" {
		t.Fatalf("SelectedText = %q", got)
	}
	e.Delete()
	if e.Text() != "" || e.TotalLines() != 1 {
		t.Fatalf("Text = %q lines = %d", e.Text(), e.TotalLines())
	}
}

func TestOverwrite(t *testing.T) {
	e := New()
	e.SetText("float x;")
	e.SetOverwrite(true)
	e.SetCursorPosition(Coordinates{0, 6})
	e.InsertText("y")
	if e.Text() != "float y;" {
		t.Fatalf("Text = %q", e.Text())
	}
}

func TestEditsKeepRunesWhole(t *testing.T) {
	tests := []struct {
		name string
		text string
		col  int
		edit func(e *Editor)
		want string
	}{
		{"delete", "// é\n", 3, func(e *Editor) { e.Delete() }, "// \n"},
		{"overwrite ascii over rune", "é!", 0, func(e *Editor) { e.InsertText("x") }, "x!"},
		{"overwrite rune over ascii", "ab", 0, func(e *Editor) { e.InsertText("ü") }, "üb"},
		{"overwrite past end", "é", 0, func(e *Editor) { e.InsertText("xyz") }, "xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			e.SetText(tt.text)
			e.SetOverwrite(true)
			e.SetCursorPosition(Coordinates{0, tt.col})
			tt.edit(e)
			if got := e.Text(); got != tt.want || !utf8.ValidString(got) {
				t.Fatalf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineEndings(t *testing.T) {
	e := New()
	e.SetText("a\r\nb\r\n")
	if e.LineEnding() != "\r\n" || e.TotalLines() != 3 {
		t.Fatalf("LineEnding = %q lines = %d", e.LineEnding(), e.TotalLines())
	}
	if e.Text() != "a\nb\n" {
		t.Fatalf("Text = %q", e.Text())
	}
	e.SetCursorPosition(Coordinates{1, 1})
	e.InsertText("\nc")
	if got := e.Contents(); got != "a\r\nb\r\nc\r\n" {
		t.Fatalf("Contents = %q", got)
	}

	e.SetText("a\nb\r\n")
	if e.LineEnding() != "\n" || e.Contents() != "a\nb\r\n" {
		t.Fatalf("mixed endings changed: %q %q", e.LineEnding(), e.Contents())
	}
}

func TestOffsetCoordinates(t *testing.T) {
	e := New()
	e.SetText("ab\n\ncde")
	tests := []struct {
		offset int
		coords Coordinates
	}{
		{0, Coordinates{0, 0}},
		{2, Coordinates{0, 2}},
		{3, Coordinates{1, 0}},
		{4, Coordinates{2, 0}},
		{7, Coordinates{2, 3}},
	}
	for _, tt := range tests {
		if got := e.CoordinatesOf(tt.offset); got != tt.coords {
			t.Errorf("CoordinatesOf(%d) = %v, want %v", tt.offset, got, tt.coords)
		}
		if got := e.Offset(tt.coords); got != tt.offset {
			t.Errorf("Offset(%v) = %d, want %d", tt.coords, got, tt.offset)
		}
	}
}

func TestSelectionRequest(t *testing.T) {
	e := New()
	e.SetText("abc")
	e.SyncSelection(Coordinates{0, 1}, Coordinates{0, 2})
	if _, _, ok := e.TakeSelectionRequest(); ok {
		t.Fatal("selection reported by the widget should not be sent back")
	}
	e.SelectAll()
	start, end, ok := e.TakeSelectionRequest()
	if !ok || start != (Coordinates{0, 0}) || end != (Coordinates{0, 3}) {
		t.Fatalf("TakeSelectionRequest = %v %v %v", start, end, ok)
	}
	if _, _, ok := e.TakeSelectionRequest(); ok {
		t.Fatal("request should be consumed")
	}
}

func TestGLSLKeywords(t *testing.T) {
	l := GLSL()
	if l.Name != "GLSL" || !l.IsKeyword("uniform") || l.IsKeyword("banana") {
		t.Fatalf("unexpected GLSL definition %+v", l.Name)
	}
}
