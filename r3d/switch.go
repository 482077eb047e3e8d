package r3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Switch draws one of its childs at a time and advances to the next on Key.
type Switch struct {
	Name string
	Key  string

	childs []Drawable
	active int
}

func NewSwitch(name, key string, childs ...Drawable) *Switch {
	return &Switch{Name: name, Key: key, childs: append([]Drawable(nil), childs...)}
}

func (s *Switch) Active() int { return s.active }

// ActiveChild is the drawable currently drawn, nil for an empty switch.
func (s *Switch) ActiveChild() Drawable {
	if len(s.childs) == 0 {
		return nil
	}
	return s.childs[s.active]
}

func (s *Switch) Len() int { return len(s.childs) }

func (s *Switch) Draw(projection, view, model mgl32.Mat4) {
	if len(s.childs) == 0 {
		return
	}
	s.childs[s.active].Draw(projection, view, model)
}

// HandleKey cycles on Key, other keys go to the active child.
func (s *Switch) HandleKey(key string) {
	if len(s.childs) == 0 {
		return
	}
	if key == s.Key {
		s.active = (s.active + 1) % len(s.childs)
		return
	}
	if h, ok := s.childs[s.active].(InputHandler); ok {
		h.HandleKey(key)
	}
}
