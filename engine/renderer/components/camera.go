package components

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spaghettifunk/anima-editor/engine/math"
)

/**
 * @brief A perspective camera. Position and rotation go through the
 * setters so the view matrix is rebuilt lazily.
 */
type Camera struct {
	position mgl32.Vec3
	// pitch, yaw, roll in radians
	eulerRotation mgl32.Vec3
	isDirty       bool
	viewMatrix    mgl32.Mat4

	FovY float32
	Near float32
	Far  float32
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.eulerRotation = mgl32.Vec3{}
	c.position = mgl32.Vec3{}
	c.isDirty = false
	c.viewMatrix = mgl32.Ident4()
	c.FovY = mgl32.DegToRad(45.0)
	c.Near = 0.1
	c.Far = 1000.0
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) SetPosition(position mgl32.Vec3) {
	c.position = position
	c.isDirty = true
}

func (c *Camera) EulerRotation() mgl32.Vec3 {
	return c.eulerRotation
}

func (c *Camera) SetEulerRotation(rotation mgl32.Vec3) {
	c.eulerRotation = rotation
	c.isDirty = true
}

func (c *Camera) View() mgl32.Mat4 {
	if c.isDirty {
		rotation := mgl32.AnglesToQuat(c.eulerRotation.X(), c.eulerRotation.Y(), c.eulerRotation.Z(), mgl32.XYZ).Mat4()
		translation := mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z())
		c.viewMatrix = translation.Mul4(rotation).Inv()
		c.isDirty = false
	}
	return c.viewMatrix
}

func (c *Camera) Projection(width, height uint32) mgl32.Mat4 {
	aspect := float32(1)
	if height != 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Forward is the direction the camera looks along, in world space.
func (c *Camera) Forward() mgl32.Vec3 {
	inv := c.View().Inv()
	return inv.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3().Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	inv := c.View().Inv()
	return inv.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3().Normalize()
}

func (c *Camera) MoveForward(amount float32) {
	c.SetPosition(c.position.Add(c.Forward().Mul(amount)))
}

func (c *Camera) MoveRight(amount float32) {
	c.SetPosition(c.position.Add(c.Right().Mul(amount)))
}

func (c *Camera) MoveUp(amount float32) {
	c.SetPosition(c.position.Add(mgl32.Vec3{0, amount, 0}))
}

func (c *Camera) Yaw(amount float32) {
	c.eulerRotation[1] += amount
	c.isDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.eulerRotation[0] += amount

	// Clamp to avoid Gimbal lock.
	limit := mgl32.DegToRad(89.0)
	c.eulerRotation[0] = math.Clamp(c.eulerRotation[0], -limit, limit)

	c.isDirty = true
}
