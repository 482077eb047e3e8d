// Package r3d is a scene graph of transform carrying nodes.
//
// Every Node composes the incoming model matrix with its own Transform and
// passes the result to its childs, so a leaf at depth n receives
// model * A1 * ... * An. Animated nodes refresh Transform from a keyframe
// track before drawing, and Turn rotates the direct child nodes in fixed steps.
package r3d
