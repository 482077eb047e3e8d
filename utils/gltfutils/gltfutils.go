package gltfutils

import (
	"io"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/mogaika/aquarium_viewer/r3d"
	"github.com/mogaika/aquarium_viewer/render"
)

// Exporter turns a drawn scene graph into a gltf document. Node matrices are
// the transforms of the last drawn frame.
type Exporter struct {
	Doc    *gltf.Document
	meshes map[*render.Primitive]uint32
}

func NewExporter() *Exporter {
	return &Exporter{
		Doc:    gltf.NewDocument(),
		meshes: make(map[*render.Primitive]uint32),
	}
}

// ExportScene exports root into a new document with root as the only scene node.
func ExportScene(root *r3d.Node) (*gltf.Document, error) {
	if root == nil {
		return nil, errors.New("gltf: nothing to export")
	}
	e := NewExporter()
	index, ok := e.Add(root)
	if !ok {
		return nil, errors.Errorf("gltf: can't export node %q", root.Name)
	}
	e.Doc.Scenes[0].Nodes = append(e.Doc.Scenes[0].Nodes, index)
	return e.Doc, nil
}

// Add appends d and everything reachable from it. Drawables of unknown type are skipped.
func (e *Exporter) Add(d r3d.Drawable) (uint32, bool) {
	switch v := d.(type) {
	case *r3d.Node:
		index := e.addNode(v.Name, v.Transform)
		for _, child := range v.Childs() {
			e.addChild(index, child)
		}
		return index, true
	case *r3d.Switch:
		index := e.addNode(v.Name, mgl32.Ident4())
		if child := v.ActiveChild(); child != nil {
			e.addChild(index, child)
		}
		return index, true
	case *render.Primitive:
		index := e.addNode(v.Name, mgl32.Ident4())
		e.Doc.Nodes[index].Mesh = gltf.Index(e.mesh(v))
		return index, true
	default:
		log.Printf("[gltf] Skipping drawable of type %T", d)
		return 0, false
	}
}

func (e *Exporter) addChild(parent uint32, child r3d.Drawable) {
	if index, ok := e.Add(child); ok {
		e.Doc.Nodes[parent].Children = append(e.Doc.Nodes[parent].Children, index)
	}
}

func (e *Exporter) addNode(name string, transform mgl32.Mat4) uint32 {
	e.Doc.Nodes = append(e.Doc.Nodes, &gltf.Node{
		Name:     name,
		Matrix:   [16]float32(transform),
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	})
	return uint32(len(e.Doc.Nodes) - 1)
}

// mesh writes the shape edges as a line list, once per primitive.
func (e *Exporter) mesh(p *render.Primitive) uint32 {
	if index, ok := e.meshes[p]; ok {
		return index
	}

	positions := make([][3]float32, len(p.Shape.Vertices))
	for i, v := range p.Shape.Vertices {
		positions[i] = [3]float32(v)
	}
	indices := make([]uint32, 0, len(p.Shape.Edges)*2)
	for _, edge := range p.Shape.Edges {
		indices = append(indices, uint32(edge[0]), uint32(edge[1]))
	}

	doc := e.Doc
	positionAccessor := modeler.WritePosition(doc, positions)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: p.Name,
		Primitives: []*gltf.Primitive{
			&gltf.Primitive{
				Indices:    gltf.Index(indicesAccessor),
				Attributes: map[string]uint32{gltf.POSITION: positionAccessor},
				Mode:       gltf.PrimitiveLines,
			},
		},
	})
	index := uint32(len(doc.Meshes) - 1)
	e.meshes[p] = index
	return index
}

func ExportBinary(w io.Writer, doc *gltf.Document) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return errors.Wrapf(encoder.Encode(doc), "Failed to encode gltf")
}
