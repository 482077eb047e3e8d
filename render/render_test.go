package render

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCapturesModel(t *testing.T) {
	rec := &Recorder{}
	p := NewPrimitive("fish", Fish(1), 0, rec)
	model := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 2, 2))

	p.Draw(mgl32.Ident4(), mgl32.Ident4(), model)

	require.Len(t, rec.Submissions, 1)
	s, ok := rec.Find("fish")
	require.True(t, ok)
	assert.Equal(t, model, s.Model)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, s.Position)
	assert.Equal(t, '#', p.Glyph)

	rec.Reset()
	assert.Empty(t, rec.Submissions)
	_, ok = rec.Find("fish")
	assert.False(t, ok)
}

func TestTargetsFanOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	p := NewPrimitive("cube", Cube(1), 'o', Targets{a, b})
	p.Draw(mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4())
	assert.Len(t, a.Submissions, 1)
	assert.Len(t, b.Submissions, 1)

	// no target, nothing happens
	NewPrimitive("lost", Cube(1), 'o', nil).Draw(mgl32.Ident4(), mgl32.Ident4(), mgl32.Ident4())
}

var shapeTests = []struct {
	name     string
	vertices int
	edges    int
}{
	{"cube", 8, 12},
	{"axis", 4, 3},
	{"fish", 8, 15},
	{"dolphin", 11, 20},
	{"cylinder", 24, 36},
}

func TestShapes(t *testing.T) {
	for _, test := range shapeTests {
		s, err := ShapeByName(test.name, 0)
		require.NoError(t, err, test.name)
		assert.Len(t, s.Vertices, test.vertices, test.name)
		assert.Len(t, s.Edges, test.edges, test.name)
		for _, e := range s.Edges {
			assert.Less(t, e[0], len(s.Vertices), test.name)
			assert.Less(t, e[1], len(s.Vertices), test.name)
		}
	}

	_, err := ShapeByName("whale", 1)
	assert.Error(t, err)

	big := Cube(1).Scaled(4)
	assert.Equal(t, mgl32.Vec3{-2, -2, -2}, big.Vertices[0])
}

func TestCanvasOrthoPoint(t *testing.T) {
	c := NewCanvas(11, 11)
	c.Mode = ModePoints
	p := NewPrimitive("dot", Shape{Vertices: []mgl32.Vec3{{0, 0, 0}, {1, 1, 0}, {-1, -1, 0}}}, '*', c)

	p.Draw(mgl32.Ortho(-1, 1, -1, 1, -1, 1), mgl32.Ident4(), mgl32.Ident4())

	assert.Equal(t, '*', c.At(5, 5))
	assert.Equal(t, '*', c.At(10, 0))
	assert.Equal(t, '*', c.At(0, 10))
	assert.Equal(t, ' ', c.At(0, 0))
	assert.Equal(t, 3, strings.Count(c.String(), "*"))
	assert.Equal(t, 10, strings.Count(c.String(), "\n"))
}

func TestCanvasLinesAndDepth(t *testing.T) {
	c := NewCanvas(5, 5)
	projection := mgl32.Ortho(-1, 1, -1, 1, -1, 1)
	line := Shape{Vertices: []mgl32.Vec3{{-1, 0, 0}, {1, 0, 0}}, Edges: [][2]int{{0, 1}}}

	far := NewPrimitive("far", line, 'f', c)
	near := NewPrimitive("near", Shape{Vertices: []mgl32.Vec3{{0, 0, 0.5}}}, 'n', c)
	far.Draw(projection, mgl32.Ident4(), mgl32.Ident4())
	near.Draw(projection, mgl32.Ident4(), mgl32.Ident4())

	assert.Equal(t, "ffnff", c.String()[12:17])

	c.Clear()
	c.CycleMode()
	assert.Equal(t, ModePoints, c.Mode)
	far.Draw(projection, mgl32.Ident4(), mgl32.Ident4())
	assert.Equal(t, "f   f", c.String()[12:17])

	c.CycleMode()
	assert.Equal(t, ModeFill, c.Mode)
	c.CycleMode()
	assert.Equal(t, ModeLines, c.Mode)
	assert.Equal(t, "lines", c.Mode.String())
}

func TestCanvasFill(t *testing.T) {
	square := Shape{
		Vertices: []mgl32.Vec3{{-0.5, -0.5, 0}, {0.5, -0.5, 0}, {0.5, 0.5, 0}, {-0.5, 0.5, 0}, {0, 0, 0.9}},
		Edges:    [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	}
	projection := mgl32.Ortho(-1, 1, -1, 1, -1, 1)

	c := NewCanvas(5, 5)
	NewPrimitive("square", square, 's', c).Draw(projection, mgl32.Ident4(), mgl32.Ident4())
	assert.Equal(t, 9, strings.Count(c.String(), "s"))
	assert.Equal(t, " sss \n sss \n sss ", c.String()[6:23])

	c.Clear()
	c.Mode = ModeFill
	assert.Equal(t, "fill", c.Mode.String())
	outline := Shape{Vertices: square.Vertices[:4], Edges: square.Edges}
	NewPrimitive("outline", outline, 'o', c).Draw(projection, mgl32.Ident4(), mgl32.Ident4())
	assert.Equal(t, 9, strings.Count(c.String(), "o"))
	assert.Equal(t, 'o', c.At(2, 2))

	c.Clear()
	c.Mode = ModeLines
	NewPrimitive("outline", outline, 'o', c).Draw(projection, mgl32.Ident4(), mgl32.Ident4())
	assert.Equal(t, 8, strings.Count(c.String(), "o"))
	assert.Equal(t, ' ', c.At(2, 2))

	// a single point or a line has no area to fill
	c.Clear()
	c.Mode = ModeFill
	NewPrimitive("dot", Shape{Vertices: []mgl32.Vec3{{0, 0, 0}}}, '*', c).Draw(projection, mgl32.Ident4(), mgl32.Ident4())
	assert.Equal(t, 1, strings.Count(c.String(), "*"))
}

func TestCanvasSkipsBehindCamera(t *testing.T) {
	c := NewCanvas(20, 10)
	projection := mgl32.Perspective(mgl32.DegToRad(60), 2, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	NewPrimitive("behind", Cube(1), 'b', c).Draw(projection, view, mgl32.Translate3D(0, 0, 10))
	assert.Equal(t, 0, strings.Count(c.String(), "b"))

	NewPrimitive("front", Cube(3), 'c', c).Draw(projection, view, mgl32.Ident4())
	assert.Greater(t, strings.Count(c.String(), "c"), 8)
}
