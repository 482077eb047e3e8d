package r3d

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/mogaika/aquarium_viewer/keyframe"
)

// Clock reports time in keyframe units, never decreasing.
type Clock interface {
	Now() float64
}

type ClockFunc func() float64

func (f ClockFunc) Now() float64 { return f() }

// KeyFrameControl resamples the node transform from Track on every draw.
type KeyFrameControl struct {
	Track *keyframe.TransformTrack
	// Loop period, 0 plays once and holds the last key
	Loop  float64
	Clock Clock
}

func (k *KeyFrameControl) Update(n *Node) {
	n.Transform = k.Track.Value(k.Clock.Now(), k.Loop)
}

// NewKeyFrameNode places an animated transform above childs.
func NewKeyFrameNode(name string, track *keyframe.TransformTrack, loop float64, clock Clock, childs ...Drawable) *Node {
	n := NewNode(name, mgl32.Ident4(), childs...)
	n.updater = &KeyFrameControl{Track: track, Loop: loop, Clock: clock}
	return n
}
