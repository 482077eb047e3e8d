// Package render holds the leaf drawables of the scene and the targets they
// submit to. A target only ever sees fully composed matrices.
package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Target interface {
	Submit(p *Primitive, projection, view, model mgl32.Mat4)
}

// Targets fans a submission out to every target in order.
type Targets []Target

func (ts Targets) Submit(p *Primitive, projection, view, model mgl32.Mat4) {
	for _, t := range ts {
		t.Submit(p, projection, view, model)
	}
}

// Primitive is a leaf drawable: a named shape drawn with a glyph.
type Primitive struct {
	Name  string
	Shape Shape
	Glyph rune

	target Target
}

func NewPrimitive(name string, shape Shape, glyph rune, target Target) *Primitive {
	if glyph == 0 {
		glyph = '#'
	}
	return &Primitive{Name: name, Shape: shape, Glyph: glyph, target: target}
}

func (p *Primitive) Draw(projection, view, model mgl32.Mat4) {
	if p.target != nil {
		p.target.Submit(p, projection, view, model)
	}
}
