package render

import (
	"math"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

type Mode int

const (
	ModeLines Mode = iota
	ModePoints
	// silhouette of the projected vertices filled, edges drawn on top
	ModeFill
	modeCount
)

func (m Mode) String() string {
	switch m {
	case ModeLines:
		return "lines"
	case ModePoints:
		return "points"
	case ModeFill:
		return "fill"
	}
	return "unknown"
}

// Canvas rasterizes primitives into a grid of runes with a depth test.
type Canvas struct {
	Width, Height int
	Mode          Mode
	Background    rune

	cells []rune
	depth []float32
}

type point struct {
	x, y    int
	z       float32
	visible bool
}

func NewCanvas(width, height int) *Canvas {
	c := &Canvas{Background: ' '}
	c.Resize(width, height)
	return c
}

func (c *Canvas) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c.Width, c.Height = width, height
	c.cells = make([]rune, width*height)
	c.depth = make([]float32, width*height)
	c.Clear()
}

func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = c.Background
		c.depth[i] = math.MaxFloat32
	}
}

func (c *Canvas) CycleMode() {
	c.Mode = (c.Mode + 1) % modeCount
}

// At returns the rune at column x, row y.
func (c *Canvas) At(x, y int) rune {
	return c.cells[y*c.Width+x]
}

func (c *Canvas) Submit(p *Primitive, projection, view, model mgl32.Mat4) {
	mvp := projection.Mul4(view).Mul4(model)

	points := make([]point, len(p.Shape.Vertices))
	for i, v := range p.Shape.Vertices {
		points[i] = c.project(mvp, v)
	}

	if c.Mode == ModeFill {
		c.fill(points, p.Glyph)
	}
	if c.Mode == ModeLines || c.Mode == ModeFill {
		for _, e := range p.Shape.Edges {
			a, b := points[e[0]], points[e[1]]
			if a.visible && b.visible {
				c.line(a, b, p.Glyph)
			}
		}
	}
	for _, pt := range points {
		if pt.visible {
			c.plot(pt.x, pt.y, pt.z, p.Glyph)
		}
	}
}

func (c *Canvas) project(mvp mgl32.Mat4, v mgl32.Vec3) point {
	clip := mvp.Mul4x1(v.Vec4(1))
	if clip.W() <= 1e-6 {
		return point{}
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	// far outside the viewport, not worth walking lines to
	if ndc.Z() < -1 || ndc.Z() > 1 || mgl32.Abs(ndc.X()) > 2 || mgl32.Abs(ndc.Y()) > 2 {
		return point{}
	}
	return point{
		x:       int(math.Round(float64((ndc.X() + 1) / 2 * float32(c.Width-1)))),
		y:       int(math.Round(float64((1 - ndc.Y()) / 2 * float32(c.Height-1)))),
		z:       ndc.Z(),
		visible: true,
	}
}

func (c *Canvas) plot(x, y int, z float32, glyph rune) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	i := y*c.Width + x
	if z <= c.depth[i] {
		c.depth[i] = z
		c.cells[i] = glyph
	}
}

// bresenham with linear depth
func (c *Canvas) line(a, b point, glyph rune) {
	dx, dy := abs(b.x-a.x), -abs(b.y-a.y)
	sx, sy := 1, 1
	if a.x > b.x {
		sx = -1
	}
	if a.y > b.y {
		sy = -1
	}
	steps := dx
	if -dy > steps {
		steps = -dy
	}

	x, y, err := a.x, a.y, dx+dy
	for i := 0; ; i++ {
		z := a.z
		if steps > 0 {
			z += (b.z - a.z) * float32(i) / float32(steps)
		}
		c.plot(x, y, z, glyph)
		if x == b.x && y == b.y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// fill paints the convex hull of the visible points at the depth of the
// farthest one.
func (c *Canvas) fill(points []point, glyph rune) {
	hull := convexHull(points)
	if len(hull) < 3 {
		return
	}

	minX, minY, maxX, maxY := hull[0].x, hull[0].y, hull[0].x, hull[0].y
	z := hull[0].z
	for _, p := range hull[1:] {
		minX, maxX = min(minX, p.x), max(maxX, p.x)
		minY, maxY = min(minY, p.y), max(maxY, p.y)
		z = max(z, p.z)
	}
	minX, minY = max(minX, 0), max(minY, 0)
	maxX, maxY = min(maxX, c.Width-1), min(maxY, c.Height-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if insideHull(hull, x, y) {
				c.plot(x, y, z, glyph)
			}
		}
	}
}

func cross(o, a, b point) int {
	return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
}

// monotone chain, counter clockwise in cell coordinates, collinear points dropped
func convexHull(points []point) []point {
	ps := make([]point, 0, len(points))
	for _, p := range points {
		if p.visible {
			ps = append(ps, p)
		}
	}
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].x != ps[j].x {
			return ps[i].x < ps[j].x
		}
		return ps[i].y < ps[j].y
	})
	if len(ps) < 3 {
		return ps
	}

	hull := make([]point, 0, 2*len(ps))
	for _, p := range ps {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(ps) - 2; i >= 0; i-- {
		p := ps[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func insideHull(hull []point, x, y int) bool {
	p := point{x: x, y: y}
	for i := range hull {
		if cross(hull[i], hull[(i+1)%len(hull)], p) < 0 {
			return false
		}
	}
	return true
}

func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow((c.Width + 1) * c.Height)
	for y := 0; y < c.Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(c.cells[y*c.Width : (y+1)*c.Width]))
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
