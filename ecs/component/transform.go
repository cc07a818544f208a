package component

import "github.com/go-gl/mathgl/mgl64"

// Transform places a scene node. RotationY is in radians about the up axis.
type Transform struct {
	Position  mgl64.Vec3
	RotationY float64
}

var TransformComponent = NewComponent[Transform]()
