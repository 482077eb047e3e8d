package r3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

type Command int

const (
	CommandNone Command = iota
	CommandRight
	CommandLeft
	CommandUp
	CommandDown
	CommandOrigin
)

// TurnStep is the angle in degrees of one directional command.
const TurnStep = 5

var commandNames = map[Command]string{
	CommandNone:   "none",
	CommandRight:  "right",
	CommandLeft:   "left",
	CommandUp:     "up",
	CommandDown:   "down",
	CommandOrigin: "origin",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

func ParseCommand(name string) (Command, bool) {
	for c, n := range commandNames {
		if c != CommandNone && n == name {
			return c, true
		}
	}
	return CommandNone, false
}

// Turn rotates every direct child node by TurnStep degrees, or restores their
// initial transforms on CommandOrigin. Up and down pitch around an axis that
// follows the accumulated yaw, they do not change the yaw itself.
func (n *Node) Turn(cmd Command) {
	var delta mgl32.Mat4

	switch cmd {
	case CommandRight:
		delta = mgl32.HomogRotate3D(mgl32.DegToRad(TurnStep), mgl32.Vec3{0, 1, 0})
		n.yaw += TurnStep
	case CommandLeft:
		delta = mgl32.HomogRotate3D(mgl32.DegToRad(-TurnStep), mgl32.Vec3{0, 1, 0})
		n.yaw -= TurnStep
	case CommandUp:
		delta = mgl32.HomogRotate3D(mgl32.DegToRad(TurnStep), n.pitchAxis())
	case CommandDown:
		delta = mgl32.HomogRotate3D(mgl32.DegToRad(-TurnStep), n.pitchAxis())
	case CommandOrigin:
		for _, sub := range n.subnodes {
			sub.Transform = sub.initial
		}
		n.yaw = 0
		return
	default:
		return
	}

	for _, sub := range n.subnodes {
		sub.ApplyIncrementalTransform(delta)
	}
}

func (n *Node) pitchAxis() mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(n.yaw))
	return mgl32.Vec3{float32(-math.Cos(rad)), 0, float32(math.Sin(rad))}
}
