package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/doorsim/ecs"
)

// Pose is a 2D placement: a position and a heading angle in radians.
type Pose struct {
	Position cp.Vector
	Angle    float64
}

// Translated returns the pose moved by dist along its local width axis.
func (p Pose) Translated(dist float64) Pose {
	p.Position = p.Position.Add(cp.ForAngle(p.Angle).Mult(dist))
	return p
}

// Rotated returns the pose with its heading turned by angle.
func (p Pose) Rotated(angle float64) Pose {
	p.Angle += angle
	return p
}

// Transform places a leaf in the world. Base is the leaf's
// closed-position pose (the owning door's pose composed with the leaf's
// spatial offset at spawn time). The motion integrator only ever writes
// Offset and Angle.
type Transform struct {
	Base   Pose
	Offset float64 // sliding travel along the local width axis
	Angle  float64 // swing rotation about the hinge, radians
}

var TransformComponent = ecs.NewComponent[Transform]()
