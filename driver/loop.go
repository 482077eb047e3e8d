// Package driver runs frames over a scene graph and feeds it input.
package driver

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/aquarium_viewer/config"
	"github.com/mogaika/aquarium_viewer/r3d"
	"github.com/mogaika/aquarium_viewer/render"
)

type Snapshot struct {
	Frame      uint64              `json:"frame"`
	Time       float64             `json:"time"`
	Yaw        float32             `json:"yaw"`
	Primitives []render.Submission `json:"primitives"`
}

// KeyCommands maps key names to rotation commands of the root node.
var KeyCommands = map[string]r3d.Command{
	"right": r3d.CommandRight,
	"left":  r3d.CommandLeft,
	"up":    r3d.CommandUp,
	"down":  r3d.CommandDown,
	" ":     r3d.CommandOrigin,
	"space": r3d.CommandOrigin,
}

// Loop draws the scene once per Frame call. It is both the render target and
// the clock handed to the scene, so every node of a frame sees the same time.
// Loop is not safe for concurrent use, see Runner.
type Loop struct {
	Root   *r3d.Node
	Camera r3d.Camera
	Clock  r3d.Clock
	Canvas *render.Canvas

	cfg        *config.Viewer
	projection mgl32.Mat4
	recorder   render.Recorder
	now        float64
	frames     uint64
	last       Snapshot
}

func NewLoop(cfg *config.Viewer, clock r3d.Clock) *Loop {
	c := cfg.Camera
	l := &Loop{
		Camera: r3d.NewOrbitController(mgl32.Vec3(c.Target), c.Distance, c.Pitch, c.Yaw),
		Clock:  clock,
		cfg:    cfg,
	}
	// terminal cells are about twice as high as wide
	l.SetAspect(float32(cfg.Width) / float32(2*cfg.Height))
	return l
}

func (l *Loop) SetAspect(aspect float32) {
	if aspect <= 0 {
		aspect = 1
	}
	l.projection = r3d.Projection(l.cfg.Fov, aspect, l.cfg.Near, l.cfg.Far)
}

// Now is the time of the frame being drawn.
func (l *Loop) Now() float64 { return l.now }

func (l *Loop) Submit(p *render.Primitive, projection, view, model mgl32.Mat4) {
	l.recorder.Submit(p, projection, view, model)
	if l.Canvas != nil {
		l.Canvas.Submit(p, projection, view, model)
	}
}

func (l *Loop) Frame() Snapshot {
	l.recorder.Reset()
	if l.Canvas != nil {
		l.Canvas.Clear()
	}
	l.now = l.Clock.Now()

	if l.Root != nil {
		l.Root.Draw(l.projection, l.Camera.GetViewMatrix(), mgl32.Ident4())
	}
	l.frames++

	l.last = Snapshot{
		Frame:      l.frames,
		Time:       l.now,
		Primitives: append([]render.Submission(nil), l.recorder.Submissions...),
	}
	if l.Root != nil {
		l.last.Yaw = l.Root.Yaw()
	}
	return l.last
}

// Snapshot returns the result of the latest Frame.
func (l *Loop) Snapshot() Snapshot { return l.last }

// Input turns the root for command keys or command names, then hands every
// key to the scene.
func (l *Loop) Input(key string) {
	if l.Root == nil {
		return
	}
	cmd, ok := KeyCommands[key]
	if !ok {
		cmd, ok = r3d.ParseCommand(key)
	}
	if ok {
		l.Root.Turn(cmd)
	}
	l.Root.HandleKey(key)
}
