package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// input in degrees, applied x first then y then z
func EulerToQuat(v mgl32.Vec3) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(v[0]), axisX)
	qy := mgl32.QuatRotate(mgl32.DegToRad(v[1]), axisY)
	qz := mgl32.QuatRotate(mgl32.DegToRad(v[2]), axisZ)
	return qz.Mul(qy).Mul(qx).Normalize()
}

// sin and cos of an angle in degrees
func SinCos(degrees float32) (float32, float32) {
	sin, cos := math.Sincos(float64(mgl32.DegToRad(degrees)))
	return float32(sin), float32(cos)
}
