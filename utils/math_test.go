package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var eulerTests = []struct {
	in    mgl32.Vec3
	point mgl32.Vec3
	out   mgl32.Vec3
}{
	{mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}},
	{mgl32.Vec3{90, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 90, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, 0, 90}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	// x first, then z
	{mgl32.Vec3{90, 0, 90}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, -45, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0.70710677, 0, 0.70710677}},
}

func TestEulerToQuat(t *testing.T) {
	for _, test := range eulerTests {
		q := EulerToQuat(test.in)
		assert.InDelta(t, 1, q.Len(), 1e-5)
		got := q.Rotate(test.point)
		vecNear(t, test.out, got, "EulerToQuat(%v) rotates %v to %v; expected %v", test.in, test.point, got, test.out)
	}
}

func TestSinCos(t *testing.T) {
	sin, cos := SinCos(30)
	assert.InDelta(t, 0.5, sin, 1e-6)
	assert.InDelta(t, 0.8660254, cos, 1e-6)
}

func TestRandomNameGeneratorUnique(t *testing.T) {
	var rng RandomNameGenerator
	rng.Reserve("fish_taken")
	seen := map[string]bool{"fish_taken": true}
	for i := 0; i < 50; i++ {
		name := rng.RandomName("fish")
		assert.False(t, seen[name], name)
		assert.Contains(t, name, "fish_")
		seen[name] = true
	}
}
