package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-editor/engine/core"
	"github.com/spaghettifunk/anima-editor/engine/renderer"
	"github.com/spaghettifunk/anima-editor/engine/renderer/components"
	"github.com/spaghettifunk/anima-editor/engine/renderer/metadata"
)

// Scene owns the game objects and their meshes.
type Scene struct {
	Data   *GameData
	Camera *components.Camera

	ids *core.Identifiers
}

func New() *Scene {
	return &Scene{
		Data:   &GameData{},
		Camera: components.NewCamera(),
		ids:    core.NewIdentifiers(),
	}
}

func (s *Scene) AddObject(name string, mesh *renderer.Mesh, transform mgl32.Mat4) *GameObject {
	obj := &GameObject{
		GUID:      uuid.New(),
		Name:      name,
		Mesh:      mesh,
		Transform: transform,
	}
	obj.ID = s.ids.Acquire(obj)
	s.Data.GameObjects = append(s.Data.GameObjects, obj)
	core.LogDebug("added game object (%d) %s [%s]", obj.ID, obj.Name, obj.GUID)
	return obj
}

// RemoveObject drops the object at index i and destroys its mesh.
func (s *Scene) RemoveObject(i int) {
	if i < 0 || i >= len(s.Data.GameObjects) {
		return
	}
	obj := s.Data.GameObjects[i]
	if obj.Mesh != nil {
		obj.Mesh.Destroy()
	}
	if err := s.ids.Release(obj.ID); err != nil {
		core.LogWarn(err.Error())
	}
	s.Data.GameObjects = append(s.Data.GameObjects[:i], s.Data.GameObjects[i+1:]...)
}

// Draw renders every visible object. The selection flag drives the mesh
// outline so the entity browser and the viewport agree.
func (s *Scene) Draw(r *renderer.Renderer, shader, highlight *metadata.Shader, width, height uint32) error {
	view := s.Camera.View()
	projection := s.Camera.Projection(width, height)
	for _, sh := range []*metadata.Shader{shader, highlight} {
		if sh == nil {
			continue
		}
		if err := r.SetUniform(sh, "view", view); err != nil {
			return err
		}
		if err := r.SetUniform(sh, "projection", projection); err != nil {
			return err
		}
	}

	for _, obj := range s.Data.GameObjects {
		if obj.Mesh == nil || HasFlags(obj, FLAG_HIDDEN) {
			continue
		}
		if err := r.SetUniform(shader, "model", obj.Transform); err != nil {
			return err
		}
		if highlight != nil {
			if err := r.SetUniform(highlight, "model", obj.Transform); err != nil {
				return err
			}
		}
		obj.Mesh.Selected = HasFlags(obj, FLAG_SELECTED)
		if err := obj.Mesh.Draw(shader, highlight); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) Destroy() {
	for len(s.Data.GameObjects) > 0 {
		s.RemoveObject(len(s.Data.GameObjects) - 1)
	}
}
