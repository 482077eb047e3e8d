package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Shape is a wireframe: vertices plus index pairs for edges.
type Shape struct {
	Vertices []mgl32.Vec3
	Edges    [][2]int
}

func (s Shape) Scaled(k float32) Shape {
	r := Shape{Vertices: make([]mgl32.Vec3, len(s.Vertices)), Edges: s.Edges}
	for i, v := range s.Vertices {
		r.Vertices[i] = v.Mul(k)
	}
	return r
}

// Cube is centered on the origin with the given edge length.
func Cube(size float32) Shape {
	h := size / 2
	s := Shape{}
	for i := 0; i < 8; i++ {
		v := mgl32.Vec3{-h, -h, -h}
		if i&1 != 0 {
			v[0] = h
		}
		if i&2 != 0 {
			v[1] = h
		}
		if i&4 != 0 {
			v[2] = h
		}
		s.Vertices = append(s.Vertices, v)
	}
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				s.Edges = append(s.Edges, [2]int{i, i | bit})
			}
		}
	}
	return s
}

func Axis(length float32) Shape {
	return Shape{
		Vertices: []mgl32.Vec3{{0, 0, 0}, {length, 0, 0}, {0, length, 0}, {0, 0, length}},
		Edges:    [][2]int{{0, 1}, {0, 2}, {0, 3}},
	}
}

// Cylinder along Y, unit height and radius scaled by size.
func Cylinder(size float32, segments int) Shape {
	if segments < 3 {
		segments = 3
	}
	s := Shape{}
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x, z := float32(math.Cos(a))*size, float32(math.Sin(a))*size
		s.Vertices = append(s.Vertices, mgl32.Vec3{x, -size, z}, mgl32.Vec3{x, size, z})
	}
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		s.Edges = append(s.Edges,
			[2]int{2 * i, 2 * j},
			[2]int{2*i + 1, 2*j + 1},
			[2]int{2 * i, 2*i + 1})
	}
	return s
}

// Fish swims along +X: a body diamond and a tail.
func Fish(length float32) Shape {
	l := length / 2
	return Shape{
		Vertices: []mgl32.Vec3{
			{l, 0, 0},        // 0 nose
			{0, l / 2, 0},    // 1 back
			{0, -l / 2, 0},   // 2 belly
			{0, 0, l / 4},    // 3 right
			{0, 0, -l / 4},   // 4 left
			{-l * 0.6, 0, 0}, // 5 tail root
			{-l, l / 2, 0},   // 6 tail top
			{-l, -l / 2, 0},  // 7 tail bottom
		},
		Edges: [][2]int{
			{0, 1}, {0, 2}, {0, 3}, {0, 4},
			{1, 5}, {2, 5}, {3, 5}, {4, 5},
			{1, 3}, {3, 2}, {2, 4}, {4, 1},
			{5, 6}, {5, 7}, {6, 7},
		},
	}
}

// Dolphin is a Fish with a dorsal fin and a horizontal fluke.
func Dolphin(length float32) Shape {
	s := Fish(length)
	l := length / 2
	base := len(s.Vertices)
	s.Vertices = append(s.Vertices,
		mgl32.Vec3{-l * 0.2, l, 0}, // fin tip
		mgl32.Vec3{-l, 0, l / 2},   // fluke right
		mgl32.Vec3{-l, 0, -l / 2},  // fluke left
	)
	s.Edges = append(s.Edges,
		[2]int{1, base}, [2]int{base, 5},
		[2]int{5, base + 1}, [2]int{5, base + 2}, [2]int{base + 1, base + 2},
	)
	return s
}

var shapes = map[string]func(size float32) Shape{
	"cube":     Cube,
	"axis":     Axis,
	"fish":     Fish,
	"dolphin":  Dolphin,
	"cylinder": func(size float32) Shape { return Cylinder(size, 12) },
}

// ShapeByName builds one of the built in shapes, size 0 means 1.
func ShapeByName(name string, size float32) (Shape, error) {
	f, ok := shapes[name]
	if !ok {
		return Shape{}, errors.Errorf("unknown shape %q", name)
	}
	if size == 0 {
		size = 1
	}
	return f(size), nil
}
