package scene

import (
	"log"
	"path"
	"unicode/utf8"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/mogaika/aquarium_viewer/keyframe"
	"github.com/mogaika/aquarium_viewer/r3d"
	"github.com/mogaika/aquarium_viewer/render"
	"github.com/mogaika/aquarium_viewer/utils"
)

type Options struct {
	Target render.Target
	Clock  r3d.Clock
	// log and drop nodes that fail to build instead of failing the scene
	SkipInvalid bool
}

type builder struct {
	opts  Options
	names utils.RandomNameGenerator
}

// Build assembles desc under a root node with identity transform.
// Unnamed nodes get generated names, written back into desc.
func Build(desc *Desc, opts Options) (*r3d.Node, error) {
	if opts.Clock == nil {
		return nil, errors.New("scene: no clock")
	}

	b := &builder{opts: opts}
	var reserve func(nodes []*NodeDesc)
	reserve = func(nodes []*NodeDesc) {
		for _, nd := range nodes {
			if nd.Name != "" {
				b.names.Reserve(nd.Name)
			}
			reserve(nd.Children)
		}
	}
	reserve(desc.Nodes)

	name := desc.Name
	if name == "" {
		name = "scene"
	}
	root := r3d.NewNode(name, mgl32.Ident4())
	childs, err := b.buildList(desc.Nodes, name)
	if err != nil {
		return nil, err
	}
	root.Add(childs...)
	return root, nil
}

func (b *builder) buildList(nodes []*NodeDesc, parent string) ([]r3d.Drawable, error) {
	childs := make([]r3d.Drawable, 0, len(nodes))
	for _, nd := range nodes {
		if nd.Name == "" {
			nd.Name = b.names.RandomName("node")
		}
		nodePath := path.Join(parent, nd.Name)

		d, err := b.build(nd, nodePath)
		if err != nil {
			if b.opts.SkipInvalid {
				log.Printf("[scene] Skipping node %q: %v", nodePath, err)
				continue
			}
			return nil, err
		}
		childs = append(childs, d)
	}
	return childs, nil
}

func (b *builder) build(nd *NodeDesc, nodePath string) (r3d.Drawable, error) {
	childs, err := b.buildList(nd.Children, nodePath)
	if err != nil {
		return nil, err
	}

	transform, static := nd.transform()

	switch {
	case nd.Shape != nil:
		if len(nd.Children) != 0 {
			return nil, errors.Errorf("%s: shape node can not have children", nodePath)
		}
		shape, err := render.ShapeByName(nd.Shape.Kind, nd.Shape.Size)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", nodePath)
		}
		glyph, _ := utf8.DecodeRuneInString(nd.Shape.Glyph)
		if glyph == utf8.RuneError {
			glyph = 0
		}
		return wrap(nd.Name, transform, static, render.NewPrimitive(nd.Name, shape, glyph, b.opts.Target)), nil
	case nd.Switch != "":
		return wrap(nd.Name, transform, static, r3d.NewSwitch(nd.Name, nd.Switch, childs...)), nil
	case nd.Keys != nil:
		track, err := nd.Keys.track()
		if err != nil {
			return nil, errors.Wrapf(err, "%s", nodePath)
		}
		return wrap(nd.Name, transform, static, r3d.NewKeyFrameNode(nd.Name, track, nd.Loop, b.opts.Clock, childs...)), nil
	default:
		return r3d.NewNode(nd.Name, transform, childs...), nil
	}
}

func wrap(name string, transform mgl32.Mat4, static bool, d r3d.Drawable) r3d.Drawable {
	if !static {
		return d
	}
	return r3d.NewNode(name+"_transform", transform, d)
}

// translate * rotate * scale, false when none of them is set
func (nd *NodeDesc) transform() (mgl32.Mat4, bool) {
	m := mgl32.Ident4()
	if nd.Translate == nil && nd.Rotate == nil && nd.Scale == nil {
		return m, false
	}
	if nd.Translate != nil {
		t := nd.Translate
		m = m.Mul4(mgl32.Translate3D(t[0], t[1], t[2]))
	}
	if nd.Rotate != nil {
		m = m.Mul4(utils.EulerToQuat(mgl32.Vec3(*nd.Rotate)).Mat4())
	}
	if nd.Scale != nil {
		s := nd.Scale
		m = m.Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
	}
	return m, true
}

func (k *KeysDesc) track() (*keyframe.TransformTrack, error) {
	if len(k.Rotate) != 0 && len(k.RotateEuler) != 0 {
		return nil, errors.New("both rotate and rotate_euler keys given")
	}

	translate := make(map[float64]mgl32.Vec3, len(k.Translate))
	for time, v := range k.Translate {
		translate[time] = mgl32.Vec3(v)
	}

	rotate := make(map[float64]mgl32.Quat, len(k.Rotate)+len(k.RotateEuler))
	for time, v := range k.Rotate {
		q := mgl32.Quat{W: v[3], V: mgl32.Vec3{v[0], v[1], v[2]}}
		if q.Len() == 0 {
			return nil, errors.Errorf("zero rotation quaternion at %v", time)
		}
		rotate[time] = q.Normalize()
	}
	for time, v := range k.RotateEuler {
		rotate[time] = utils.EulerToQuat(mgl32.Vec3(v))
	}

	scale := make(map[float64]mgl32.Vec3, len(k.Scale))
	for time, v := range k.Scale {
		scale[time] = v.Vec3()
	}

	return keyframe.NewTransformTrack(translate, rotate, scale)
}
