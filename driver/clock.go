package driver

import (
	"time"
)

// WallClock counts scaled seconds since it was created.
type WallClock struct {
	Scale float64
	start time.Time
}

func NewWallClock(scale float64) *WallClock {
	return &WallClock{Scale: scale, start: time.Now()}
}

func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds() * c.Scale
}

// StepClock only moves on Advance.
type StepClock struct {
	Time float64
	Step float64
}

func (c *StepClock) Now() float64 { return c.Time }

func (c *StepClock) Advance() { c.Time += c.Step }
