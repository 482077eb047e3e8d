// Package scene describes scenes as plain data and assembles them into r3d trees.
package scene

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Desc struct {
	Name  string      `yaml:"name"`
	Nodes []*NodeDesc `yaml:"nodes"`
}

// NodeDesc becomes a primitive when Shape is set, a switch when Switch is set,
// an animated node when Keys is set and a plain group otherwise. The static
// transform wraps whatever was built.
type NodeDesc struct {
	Name      string      `yaml:"name,omitempty"`
	Translate *[3]float32 `yaml:"translate,omitempty"`
	// euler degrees
	Rotate *[3]float32 `yaml:"rotate,omitempty"`
	Scale  *ScaleValue `yaml:"scale,omitempty"`

	Keys *KeysDesc `yaml:"keys,omitempty"`
	Loop float64   `yaml:"loop,omitempty"`

	Shape  *ShapeDesc `yaml:"shape,omitempty"`
	Switch string     `yaml:"switch,omitempty"`

	Children []*NodeDesc `yaml:"children,omitempty"`
}

type KeysDesc struct {
	Translate map[float64][3]float32 `yaml:"translate"`
	// quaternions as x, y, z, w
	Rotate map[float64][4]float32 `yaml:"rotate,omitempty"`
	// euler degrees
	RotateEuler map[float64][3]float32 `yaml:"rotate_euler,omitempty"`
	Scale       map[float64]ScaleValue `yaml:"scale"`
}

type ShapeDesc struct {
	Kind  string  `yaml:"kind"`
	Size  float32 `yaml:"size,omitempty"`
	Glyph string  `yaml:"glyph,omitempty"`
}

// ScaleValue is written either as a scalar for uniform scale or as a 3-vector.
type ScaleValue [3]float32

func Uniform(s float32) ScaleValue { return ScaleValue{s, s, s} }

func (s ScaleValue) Vec3() mgl32.Vec3 { return mgl32.Vec3(s) }

func (s *ScaleValue) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var f float32
		if err := value.Decode(&f); err != nil {
			return err
		}
		*s = Uniform(f)
		return nil
	}
	var v [3]float32
	if err := value.Decode(&v); err != nil {
		return err
	}
	*s = ScaleValue(v)
	return nil
}

func (s ScaleValue) MarshalYAML() (interface{}, error) {
	if s[0] == s[1] && s[1] == s[2] {
		return s[0], nil
	}
	return [3]float32(s), nil
}

func Load(r io.Reader) (*Desc, error) {
	d := &Desc{}
	if err := yaml.NewDecoder(r).Decode(d); err != nil {
		return nil, errors.Wrapf(err, "Failed to unmarshal yaml")
	}
	return d, nil
}

func LoadFile(path string) (*Desc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open scene")
	}
	defer f.Close()
	return Load(f)
}

func (d *Desc) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(d); err != nil {
		return errors.Wrapf(err, "Failed to marshal yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "Failed to close yaml encoder")
	}
	return nil
}
