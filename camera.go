package mirig

import "github.com/go-gl/mathgl/mgl64"

// The render camera driven by a [Rig]. The rig writes Position,
// LookAt and FOV once per update; the remaining fields belong to
// the host and are only read when building matrices.
type Camera struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
	Up       mgl64.Vec3
	FOV      float64 // vertical, in degrees
	Aspect   float64
	Near     float64
	Far      float64
}

// Returns the camera eye position. Together with [Camera.ViewProjection]()
// this makes the camera usable as a [field.Projector].
func (self *Camera) Eye() mgl64.Vec3 {
	return self.Position
}

func (self *Camera) View() mgl64.Mat4 {
	up := self.Up
	if up.Len() == 0 {
		up = mgl64.Vec3{0, 1, 0}
	}
	return mgl64.LookAtV(self.Position, self.LookAt, up)
}

func (self *Camera) Projection() mgl64.Mat4 {
	aspect := self.Aspect
	if aspect <= 0 {
		aspect = 1.0
	}
	return mgl64.Perspective(mgl64.DegToRad(self.FOV), aspect, self.Near, self.Far)
}

func (self *Camera) ViewProjection() mgl64.Mat4 {
	return self.Projection().Mul4(self.View())
}

// Projects a world point into normalized device coordinates.
// The second return value is false when the point is behind the
// camera or outside the near/far range.
func (self *Camera) Project(point mgl64.Vec3) (mgl64.Vec3, bool) {
	clip := self.ViewProjection().Mul4x1(point.Vec4(1))
	if clip[3] <= 0 {
		return mgl64.Vec3{}, false
	}
	ndc := clip.Vec3().Mul(1.0 / clip[3])
	return ndc, ndc[2] >= -1 && ndc[2] <= 1
}
