package editor

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/scene"
)

func TestOpenMissingFileKeepsBuffer(t *testing.T) {
	s := NewSession()
	s.Buffer.SetText("keep me")

	err := s.OpenFile(filepath.Join(t.TempDir(), "missing.frag"))
	if !errors.Is(err, core.ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
	if got := s.Buffer.Text(); got != "keep me" {
		t.Fatalf("buffer changed to %q", got)
	}
	if s.HasFile() {
		t.Fatal("a failed open must not set the current file")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lit.frag")
	src := "#version 410 core\nout vec4 color;\nvoid main() {\n\tcolor = vec4(1.0);\n}\n"

	if err := SaveFile(path, src); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got != src {
		t.Fatalf("round trip mismatch:\n%q\n%q", got, src)
	}

	s := NewSession()
	if err := s.OpenFile(path); err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if s.CurrentFile != path || s.Buffer.Text() != src {
		t.Fatalf("session = %q %q", s.CurrentFile, s.Buffer.Text())
	}
}

func TestSaveKeepsLineEndings(t *testing.T) {
	for name, src := range map[string]string{
		"crlf":  "void main() {\r\n}\r\n",
		"lf":    "void main() {\n}\n",
		"mixed": "void main() {\r\n\tgl_Position = vec4(0.0);\n}\r\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lit.vert")
			if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
				t.Fatal(err)
			}
			s := NewSession()
			if err := s.OpenFile(path); err != nil {
				t.Fatalf("OpenFile: %v", err)
			}
			if err := s.Save(); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != src {
				t.Fatalf("saved %q, want %q", got, src)
			}
		})
	}
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.vert")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewSession()
	if err := s.OpenFile(path); err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if !s.HasFile() || s.Buffer.Text() != "" {
		t.Fatalf("empty file should load as an empty buffer with a current file")
	}
}

func TestSaveWithoutFile(t *testing.T) {
	s := NewSession()
	if err := s.Save(); !errors.Is(err, core.ErrNoFileOpen) {
		t.Fatalf("err = %v, want ErrNoFileOpen", err)
	}
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "x.frag")
	if err := SaveFile(path, "x"); !errors.Is(err, core.ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestOpenUnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file modes are not enforced")
	}
	path := filepath.Join(t.TempDir(), "locked.frag")
	if err := os.WriteFile(path, []byte("x"), 0o000); err != nil {
		t.Fatal(err)
	}
	s := NewSession()
	if err := s.OpenFile(path); !errors.Is(err, core.ErrPermissionDenied) {
		t.Fatalf("err = %v, want ErrPermissionDenied", err)
	}
}

func newObjects(names ...string) []*scene.GameObject {
	objs := make([]*scene.GameObject, len(names))
	for i, n := range names {
		objs[i] = &scene.GameObject{ID: uint32(i), Name: n}
	}
	return objs
}

func TestToggleSelection(t *testing.T) {
	objs := newObjects("cube", "plane", "helmet")
	s := NewSession()

	s.ToggleSelection(objs, 1)
	if s.SelectedEntity != 1 || !scene.HasFlags(objs[1], scene.FLAG_SELECTED) {
		t.Fatalf("object 1 should be selected")
	}

	s.ToggleSelection(objs, 2)
	if s.SelectedEntity != 2 || scene.HasFlags(objs[1], scene.FLAG_SELECTED) || !scene.HasFlags(objs[2], scene.FLAG_SELECTED) {
		t.Fatalf("selection should move from 1 to 2")
	}

	s.ToggleSelection(objs, 2)
	if s.SelectedEntity != NoSelection {
		t.Fatalf("SelectedEntity = %d, want none", s.SelectedEntity)
	}
	for i, o := range objs {
		if scene.HasFlags(o, scene.FLAG_SELECTED) {
			t.Errorf("object %d still flagged", i)
		}
	}

	s.ToggleSelection(objs, 7)
	if s.SelectedEntity != NoSelection {
		t.Fatal("out of range index must be ignored")
	}
}

func TestSelectionFollowsRemovedObjects(t *testing.T) {
	sc := scene.New()
	for _, name := range []string{"cube", "plane", "helmet"} {
		sc.AddObject(name, nil, mgl32.Ident4())
	}
	objs := func() []*scene.GameObject { return sc.Data.GameObjects }
	s := NewSession()

	s.ToggleSelection(objs(), 2)
	helmet := objs()[2]
	sc.RemoveObject(0)

	s.ToggleSelection(objs(), 0)
	var flagged []string
	for _, o := range objs() {
		if scene.HasFlags(o, scene.FLAG_SELECTED) {
			flagged = append(flagged, o.Name)
		}
	}
	if len(flagged) != 1 || flagged[0] != "plane" || s.SelectedEntity != 0 {
		t.Fatalf("flagged %v, SelectedEntity %d", flagged, s.SelectedEntity)
	}
	if scene.HasFlags(helmet, scene.FLAG_SELECTED) {
		t.Fatal("previous selection kept its flag")
	}

	sc.RemoveObject(0)
	s.SyncSelection(objs())
	if s.SelectedEntity != NoSelection {
		t.Fatalf("removing the selected object should clear the selection, got %d", s.SelectedEntity)
	}
}
