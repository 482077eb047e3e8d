package r3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Drawable receives the projection, view and accumulated model matrix of its parent.
type Drawable interface {
	Draw(projection, view, model mgl32.Mat4)
}

// InputHandler is implemented by drawables that react to key events.
type InputHandler interface {
	HandleKey(key string)
}

// Updater refreshes a node transform right before the node is drawn.
type Updater interface {
	Update(n *Node)
}

/*
transform = local matrix, composed as parent * transform
initial   = transform at construction, restored by CommandOrigin
*/

type Node struct {
	Name      string
	Transform mgl32.Mat4

	initial  mgl32.Mat4
	childs   []Drawable
	yaw      float32
	updater  Updater
	handlers []InputHandler
	subnodes []*Node
}

func NewNode(name string, transform mgl32.Mat4, childs ...Drawable) *Node {
	n := &Node{
		Name:      name,
		Transform: transform,
		initial:   transform,
	}
	n.Add(childs...)
	return n
}

// Add appends drawables in draw order. Input capability is decided here, once,
// so Add is the only way to attach a child.
func (n *Node) Add(drawables ...Drawable) {
	for _, d := range drawables {
		n.childs = append(n.childs, d)
		if h, ok := d.(InputHandler); ok {
			n.handlers = append(n.handlers, h)
		}
		if sub, ok := d.(*Node); ok {
			n.subnodes = append(n.subnodes, sub)
		}
	}
}

func (n *Node) Draw(projection, view, model mgl32.Mat4) {
	if n.updater != nil {
		n.updater.Update(n)
	}
	model = model.Mul4(n.Transform)
	for _, child := range n.childs {
		child.Draw(projection, view, model)
	}
}

// HandleKey forwards key to input capable childs in child order.
func (n *Node) HandleKey(key string) {
	for _, h := range n.handlers {
		h.HandleKey(key)
	}
}

func (n *Node) ApplyIncrementalTransform(delta mgl32.Mat4) {
	n.Transform = n.Transform.Mul4(delta)
}

func (n *Node) InitialTransform() mgl32.Mat4 { return n.initial }

// Yaw is the accumulated left/right rotation in degrees.
func (n *Node) Yaw() float32 { return n.yaw }

// Childs returns a copy of the child list in draw order.
func (n *Node) Childs() []Drawable {
	return append([]Drawable(nil), n.childs...)
}
