package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-editor/engine/renderer"
)

type EntityFlags uint32

const (
	FLAG_NONE     EntityFlags = 0
	FLAG_SELECTED EntityFlags = 1 << 0
	FLAG_HIDDEN   EntityFlags = 1 << 1
)

// GameObject is an entity the editor can list and select.
type GameObject struct {
	// ID is the small display id shown in the entity browser.
	ID uint32
	// GUID stays stable across sessions and reloads.
	GUID      uuid.UUID
	Name      string
	Flags     EntityFlags
	Mesh      *renderer.Mesh
	Transform mgl32.Mat4
}

// GameData is the engine state the editor panels read and write.
type GameData struct {
	GameObjects []*GameObject
}

func SetFlags(obj *GameObject, flags EntityFlags) {
	obj.Flags |= flags
}

func UnsetFlags(obj *GameObject, flags EntityFlags) {
	obj.Flags &^= flags
}

func HasFlags(obj *GameObject, flags EntityFlags) bool {
	return obj.Flags&flags == flags
}
