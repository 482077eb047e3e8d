package keyframe

import (
	"github.com/go-gl/mathgl/mgl32"
)

func Lerp(a, b float32, fraction float32) float32 {
	return a + (b-a)*fraction
}

func LerpVec3(a, b mgl32.Vec3, fraction float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(fraction))
}

// Slerp interpolates along the shorter arc between two rotations.
// mgl32.QuatSlerp does not flip hemispheres itself.
func Slerp(a, b mgl32.Quat, fraction float32) mgl32.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl32.QuatSlerp(a, b, fraction)
}
