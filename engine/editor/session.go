package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/editor/text"
	"github.com/spaghettifunk/anima-editor/engine/scene"
)

// NoSelection is the SelectedEntity value when nothing is selected.
const NoSelection = -1

// Session is the editor state carried from frame to frame.
type Session struct {
	// CurrentFile is empty until a file was opened successfully.
	CurrentFile string
	Buffer      *text.Editor
	// SelectedEntity indexes GameData.GameObjects, or NoSelection.
	SelectedEntity int
	// Notice is the last status message shown under the editor menu bar.
	Notice string
}

func NewSession() *Session {
	buf := text.New()
	buf.SetLanguageDefinition(text.GLSL())
	return &Session{
		Buffer:         buf,
		SelectedEntity: NoSelection,
	}
}

// HasFile tells a session that never opened a file apart from one whose
// file is empty.
func (s *Session) HasFile() bool {
	return s.CurrentFile != ""
}

// OpenFile loads path into the buffer. On error the buffer and the current
// file are left untouched.
func (s *Session) OpenFile(path string) error {
	content, err := LoadFile(path)
	if err != nil {
		return err
	}
	s.Buffer.SetText(content)
	s.CurrentFile = path
	s.Notice = ""
	core.LogInfo("opened %s in the shader editor", path)
	return nil
}

// Save writes the buffer back to the current file, keeping its line endings.
func (s *Session) Save() error {
	if !s.HasFile() {
		return core.ErrNoFileOpen
	}
	return SaveFile(s.CurrentFile, s.Buffer.Contents())
}

// ToggleSelection selects objects[i], or clears the selection when i is
// already selected. At most one object carries FLAG_SELECTED.
func (s *Session) ToggleSelection(objects []*scene.GameObject, i int) {
	if i < 0 || i >= len(objects) {
		return
	}
	s.SyncSelection(objects)
	if s.SelectedEntity == i {
		scene.UnsetFlags(objects[i], scene.FLAG_SELECTED)
		s.SelectedEntity = NoSelection
		return
	}
	if s.SelectedEntity >= 0 && s.SelectedEntity < len(objects) {
		scene.UnsetFlags(objects[s.SelectedEntity], scene.FLAG_SELECTED)
	}
	scene.SetFlags(objects[i], scene.FLAG_SELECTED)
	s.SelectedEntity = i
}

// SyncSelection points SelectedEntity back at the object carrying
// FLAG_SELECTED after objects were removed or reordered. Extra flagged
// objects are cleared.
func (s *Session) SyncSelection(objects []*scene.GameObject) {
	if s.SelectedEntity >= 0 && s.SelectedEntity < len(objects) &&
		scene.HasFlags(objects[s.SelectedEntity], scene.FLAG_SELECTED) {
		for i, obj := range objects {
			if i != s.SelectedEntity {
				scene.UnsetFlags(obj, scene.FLAG_SELECTED)
			}
		}
		return
	}
	s.SelectedEntity = NoSelection
	for i, obj := range objects {
		if !scene.HasFlags(obj, scene.FLAG_SELECTED) {
			continue
		}
		if s.SelectedEntity == NoSelection {
			s.SelectedEntity = i
			continue
		}
		scene.UnsetFlags(obj, scene.FLAG_SELECTED)
	}
}

// LoadFile reads the whole file as text.
func LoadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", classifyFileError(err)
	}
	return string(data), nil
}

// SaveFile writes text to path, creating or truncating it.
func SaveFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return classifyFileError(err)
	}
	return nil
}

func classifyFileError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", core.ErrFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", core.ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %w", core.ErrUnknown, err)
}
