package scene

import (
	"fmt"

	"github.com/mogaika/aquarium_viewer/utils"
)

const (
	DolphinLoop   = 24
	ClownfishLoop = 400
	ModelKey      = "m"
)

func vec(x, y, z float32) *[3]float32 { return &[3]float32{x, y, z} }

// Aquarium is the demo scene: a dolphin circling inside the tank and four
// clownfish swimming through it.
func Aquarium() *Desc {
	poisson := &NodeDesc{
		Name:      "poisson",
		Translate: vec(0.3, 0, 0),
		Scale:     &ScaleValue{0.1, 0.1, 0.1},
	}
	poisson.Children = append(poisson.Children, dolphin())
	for k := 0; k < 4; k++ {
		poisson.Children = append(poisson.Children, clownfish(k))
	}

	skybox := &NodeDesc{
		Name:      "skybox",
		Translate: vec(0, 0, 1),
		Children: []*NodeDesc{
			{Name: "tank", Shape: &ShapeDesc{Kind: "cube", Size: 2, Glyph: "."}},
			poisson,
		},
	}

	return &Desc{Name: "aquarium", Nodes: []*NodeDesc{skybox}}
}

func dolphin() *NodeDesc {
	keys := &KeysDesc{
		Translate:   make(map[float64][3]float32),
		RotateEuler: make(map[float64][3]float32),
		Scale:       make(map[float64]ScaleValue),
	}
	for i := 0; i < 24; i++ {
		angle := float32(15 * i)
		sin, cos := utils.SinCos(angle)
		sin2, _ := utils.SinCos(2 * angle)

		t := float64(i)
		keys.Translate[t] = [3]float32{10 * cos, sin2, 10 * sin}
		keys.RotateEuler[t] = [3]float32{0, -angle, 0}
		keys.Scale[t] = Uniform(1)
	}

	return &NodeDesc{
		Name: "dolphin",
		Keys: keys,
		Loop: DolphinLoop,
		Children: []*NodeDesc{{
			Name:   "dolphin_model",
			Switch: ModelKey,
			Children: []*NodeDesc{
				{Name: "dolphin_body", Shape: &ShapeDesc{Kind: "dolphin", Size: 3, Glyph: "D"}},
				{Name: "dolphin_fish", Shape: &ShapeDesc{Kind: "fish", Size: 3, Glyph: "F"}},
				{Name: "dolphin_cylinder", Shape: &ShapeDesc{Kind: "cylinder", Size: 1, Glyph: "C"}},
			},
		}},
	}
}

func clownfish(k int) *NodeDesc {
	keys := &KeysDesc{
		Translate: make(map[float64][3]float32),
		Rotate:    make(map[float64][4]float32),
		Scale:     make(map[float64]ScaleValue),
	}
	for i := 0; i < 200; i++ {
		t := float64(i)
		switch {
		case i < 10:
			keys.Scale[t] = Uniform(float32(i) * 0.1)
		case i >= 190:
			keys.Scale[t] = Uniform(float32(199-i) * 0.1)
		default:
			keys.Scale[t] = Uniform(1)
		}
		keys.Translate[t] = [3]float32{float32(20 + k*3), float32(k*3 - 5), float32(10*i - 100)}
		keys.Rotate[t] = [4]float32{0, 0, 0, 1}
	}

	name := fmt.Sprintf("clownfish_%d", k)
	return &NodeDesc{
		Name: name,
		Keys: keys,
		Loop: ClownfishLoop,
		Children: []*NodeDesc{
			{Name: name + "_body", Shape: &ShapeDesc{Kind: "fish", Size: 2, Glyph: ">"}},
		},
	}
}
