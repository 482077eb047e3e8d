package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Camera struct {
	Target   [3]float32 `yaml:"target"`
	Distance float32    `yaml:"distance"`
	Pitch    float32    `yaml:"pitch"`
	Yaw      float32    `yaml:"yaw"`
}

type Viewer struct {
	Listen string `yaml:"listen"`
	FPS    int    `yaml:"fps"`
	// terminal canvas size in cells
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`

	// clock seconds per wall second
	TimeScale float64 `yaml:"time_scale"`

	Camera Camera `yaml:"camera"`
}

func Default() *Viewer {
	return &Viewer{
		Listen:    ":8000",
		FPS:       25,
		Width:     100,
		Height:    32,
		Fov:       35,
		Near:      0.1,
		Far:       100,
		TimeScale: 1,
		Camera: Camera{
			Target:   [3]float32{0, 0, 1},
			Distance: 6,
			Pitch:    20,
			Yaw:      0,
		},
	}
}

// Load reads a yaml file over the defaults, missing keys keep default values.
func Load(path string) (*Viewer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to open config")
	}
	defer f.Close()

	v := Default()
	if err := yaml.NewDecoder(f).Decode(v); err != nil {
		return nil, errors.Wrapf(err, "Failed to decode config %q", path)
	}
	if err := v.Validate(); err != nil {
		return nil, errors.Wrapf(err, "Invalid config %q", path)
	}
	return v, nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

func (v *Viewer) Validate() error {
	for name, f := range map[string]float64{
		"fov":             float64(v.Fov),
		"near":            float64(v.Near),
		"far":             float64(v.Far),
		"time_scale":      v.TimeScale,
		"camera.distance": float64(v.Camera.Distance),
		"camera.pitch":    float64(v.Camera.Pitch),
		"camera.yaw":      float64(v.Camera.Yaw),
		"camera.target.x": float64(v.Camera.Target[0]),
		"camera.target.y": float64(v.Camera.Target[1]),
		"camera.target.z": float64(v.Camera.Target[2]),
	} {
		if !finite(f) {
			return errors.Errorf("%s must be finite, got %v", name, f)
		}
	}
	if v.FPS <= 0 || v.FPS > 1000 {
		return errors.Errorf("fps must be in [1, 1000], got %d", v.FPS)
	}
	if v.Width <= 0 || v.Height <= 0 {
		return errors.Errorf("canvas size must be positive, got %dx%d", v.Width, v.Height)
	}
	if v.Near <= 0 || v.Far <= v.Near {
		return errors.Errorf("invalid clip planes near %v far %v", v.Near, v.Far)
	}
	if v.Fov <= 0 || v.Fov >= 180 {
		return errors.Errorf("fov must be in (0, 180), got %v", v.Fov)
	}
	if v.TimeScale < 0 {
		return errors.Errorf("time_scale must not be negative, got %v", v.TimeScale)
	}
	return nil
}

var currentViewer = Default()

func GetViewer() *Viewer {
	return currentViewer
}

func SetViewer(v *Viewer) {
	currentViewer = v
}
