package keyframe

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const nearDelta = 1e-4

func vecNear(t *testing.T, expected, actual mgl32.Vec3, msgAndArgs ...interface{}) bool {
	t.Helper()
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], nearDelta, msgAndArgs...) {
			return false
		}
	}
	return true
}

func matNear(t *testing.T, expected, actual mgl32.Mat4, msgAndArgs ...interface{}) bool {
	t.Helper()
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], nearDelta, msgAndArgs...) {
			return false
		}
	}
	return true
}
