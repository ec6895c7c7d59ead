package surfaces

import (
	"github.com/go-gl/mathgl/mgl32"
)

// minCameraDistance keeps Zoom from collapsing the eye onto the target.
const minCameraDistance = 0.1

// Camera is an orbit camera looking at Target.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
}

// NewCamera returns a camera at eye looking at target with +Y up.
func NewCamera(eye, target mgl32.Vec3) *Camera {
	return &Camera{Eye: eye, Target: target, Up: mgl32.Vec3{0, 1, 0}}
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Forward returns the unit direction from the eye to the target.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Eye).Normalize()
}

// Orbit rotates the eye around the target, yaw about the up vector and
// pitch about the camera's right axis. Both angles are in radians. Pitch
// stops short of the poles so the up vector stays valid.
func (c *Camera) Orbit(yaw, pitch float32) {
	offset := c.Eye.Sub(c.Target)
	up := c.Up.Normalize()

	offset = mgl32.HomogRotate3D(yaw, up).Mul4x1(offset.Vec4(0)).Vec3()

	if right := offset.Cross(up); right.Len() > 0 {
		pitched := mgl32.HomogRotate3D(pitch, right.Normalize()).Mul4x1(offset.Vec4(0)).Vec3()
		if cos := pitched.Normalize().Dot(up); cos < 0.999 && cos > -0.999 {
			offset = pitched
		}
	}

	c.Eye = c.Target.Add(offset)
}

// Zoom scales the eye-target distance by factor. Non-positive factors are
// ignored.
func (c *Camera) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	offset := c.Eye.Sub(c.Target).Mul(factor)
	if l := offset.Len(); l > 0 && l < minCameraDistance {
		offset = offset.Normalize().Mul(minCameraDistance)
	}
	c.Eye = c.Target.Add(offset)
}

// Apply pushes the camera basis and view transform into p.
func (c *Camera) Apply(p *Program) error {
	p.SetCameraBasis(c.Up, c.Eye)
	return p.SetViewTransform(c.ViewMatrix())
}
