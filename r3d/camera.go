package r3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
	GetViewMatrix() mgl32.Mat4
}

type OrbitController struct {
	Target   mgl32.Vec3
	Distance float32
	Pitch    float32 // x rotation
	Yaw      float32 // y rotation
}

func NewOrbitController(target mgl32.Vec3, dist, pitch, yaw float32) *OrbitController {
	return &OrbitController{
		Target:   target,
		Distance: dist,
		Pitch:    pitch,
		Yaw:      yaw,
	}
}

func (c *OrbitController) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Target, mgl32.Vec3{0, 1, 0})
}

func (c *OrbitController) Position() mgl32.Vec3 {
	pitch := float64(mgl32.DegToRad(c.Pitch))
	yaw := float64(mgl32.DegToRad(c.Yaw))
	return mgl32.Vec3{
		c.Distance * float32(math.Cos(pitch)*math.Sin(yaw)),
		c.Distance * float32(math.Sin(pitch)),
		c.Distance * float32(math.Cos(pitch)*math.Cos(yaw)),
	}.Add(c.Target)
}

// Projection is a perspective projection with a vertical fov in degrees.
func Projection(fov, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}
