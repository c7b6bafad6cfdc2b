package components

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraViewTranslation(t *testing.T) {
	c := NewCamera()
	c.SetPosition(mgl32.Vec3{0, 0, 5})

	// a point at the origin sits 5 units in front of the camera
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !p.Vec3().ApproxEqual(mgl32.Vec3{0, 0, -5}) {
		t.Errorf("origin in view space = %v", p)
	}
	if !c.Forward().ApproxEqual(mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Forward = %v", c.Forward())
	}
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera()
	c.Pitch(10)
	if got := c.EulerRotation().X(); got > mgl32.DegToRad(89.0)+1e-5 {
		t.Errorf("pitch not clamped: %v", got)
	}
}

func TestCameraMoveForward(t *testing.T) {
	c := NewCamera()
	c.MoveForward(2)
	if !c.Position().ApproxEqual(mgl32.Vec3{0, 0, -2}) {
		t.Errorf("Position = %v", c.Position())
	}
}
