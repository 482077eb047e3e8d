package keyframe

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// TransformTrack animates translation, rotation and scale, each keyed independently.
type TransformTrack struct {
	Translation *Track[mgl32.Vec3]
	Rotation    *Track[mgl32.Quat]
	Scale       *Track[mgl32.Vec3]
}

func NewTransformTrack(translate map[float64]mgl32.Vec3, rotate map[float64]mgl32.Quat, scale map[float64]mgl32.Vec3) (*TransformTrack, error) {
	var err error
	tt := &TransformTrack{}
	if tt.Translation, err = NewTrackFromKeys(translate, LerpVec3); err != nil {
		return nil, errors.Wrapf(err, "translate track")
	}
	if tt.Rotation, err = NewTrackFromKeys(rotate, Slerp); err != nil {
		return nil, errors.Wrapf(err, "rotate track")
	}
	if tt.Scale, err = NewTrackFromKeys(scale, LerpVec3); err != nil {
		return nil, errors.Wrapf(err, "scale track")
	}
	return tt, nil
}

// Value samples all three tracks and composes Translate * Rotate * Scale.
// Non zero loopPeriod wraps time into [0, loopPeriod).
func (tt *TransformTrack) Value(time, loopPeriod float64) mgl32.Mat4 {
	if loopPeriod != 0 {
		// no phase for an infinite time, start the loop over
		if math.IsInf(time, 0) {
			time = 0
		}
		time = math.Mod(time, loopPeriod)
		if time < 0 {
			time += math.Abs(loopPeriod)
		}
	}

	t := tt.Translation.Value(time)
	r := tt.Rotation.Value(time).Normalize()
	s := tt.Scale.Value(time)

	return mgl32.Translate3D(t.X(), t.Y(), t.Z()).Mul4(r.Mat4()).Mul4(mgl32.Scale3D(s.X(), s.Y(), s.Z()))
}

// Duration is the latest key time over the three tracks.
func (tt *TransformTrack) Duration() float64 {
	return math.Max(tt.Translation.End(), math.Max(tt.Rotation.End(), tt.Scale.End()))
}
