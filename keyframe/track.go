// Package keyframe samples values from time-indexed keyframes.
//
// A Track pairs strictly increasing timestamps with values and blends the two
// neighbours of a query time with a pluggable Interpolator. Queries outside the
// keyed range clamp to the first or last value.
package keyframe

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

var (
	ErrEmptyTrack     = errors.New("keyframe: track has no keys")
	ErrLengthMismatch = errors.New("keyframe: times and values length mismatch")
	ErrUnsortedTimes  = errors.New("keyframe: times are not strictly increasing")
	ErrNoInterpolator = errors.New("keyframe: nil interpolator")
	ErrNonFiniteTime  = errors.New("keyframe: key time is not finite")
)

// Interpolator blends a and b, fraction is in [0, 1].
type Interpolator[V any] func(a, b V, fraction float32) V

type Track[V any] struct {
	times       []float64
	values      []V
	interpolate Interpolator[V]
}

// NewTrack copies times and values, so the track stays immutable.
func NewTrack[V any](times []float64, values []V, interpolate Interpolator[V]) (*Track[V], error) {
	if len(times) == 0 {
		return nil, ErrEmptyTrack
	}
	if len(times) != len(values) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d times, %d values", len(times), len(values))
	}
	if interpolate == nil {
		return nil, ErrNoInterpolator
	}
	for i, time := range times {
		if math.IsNaN(time) || math.IsInf(time, 0) {
			return nil, errors.Wrapf(ErrNonFiniteTime, "key %d at %v", i, time)
		}
	}
	for i := 1; i < len(times); i++ {
		if !(times[i] > times[i-1]) {
			return nil, errors.Wrapf(ErrUnsortedTimes, "key %d at %v after %v", i, times[i], times[i-1])
		}
	}

	t := &Track[V]{
		times:       make([]float64, len(times)),
		values:      make([]V, len(values)),
		interpolate: interpolate,
	}
	copy(t.times, times)
	copy(t.values, values)
	return t, nil
}

// NewTrackFromKeys builds a track from a time->value mapping, ordered by time.
func NewTrackFromKeys[V any](keys map[float64]V, interpolate Interpolator[V]) (*Track[V], error) {
	times := make([]float64, 0, len(keys))
	for time := range keys {
		times = append(times, time)
	}
	sort.Float64s(times)

	values := make([]V, len(times))
	for i, time := range times {
		values[i] = keys[time]
	}
	return NewTrack(times, values, interpolate)
}

// Value never panics: NaN samples the first key, infinities clamp.
func (t *Track[V]) Value(time float64) V {
	last := len(t.times) - 1
	if math.IsNaN(time) || time <= t.times[0] {
		return t.values[0]
	}
	if time >= t.times[last] {
		return t.values[last]
	}

	// smallest i with times[i] >= time, 0 < i <= last here
	i := sort.SearchFloat64s(t.times, time)
	fraction := (time - t.times[i-1]) / (t.times[i] - t.times[i-1])
	return t.interpolate(t.values[i-1], t.values[i], float32(fraction))
}

func (t *Track[V]) Len() int { return len(t.times) }

// Start and End bound the keyed time range.
func (t *Track[V]) Start() float64 { return t.times[0] }
func (t *Track[V]) End() float64   { return t.times[len(t.times)-1] }

// Key returns the i-th keyframe.
func (t *Track[V]) Key(i int) (float64, V) { return t.times[i], t.values[i] }
