package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is solid geometry centered on its transform. A zero Y size is a plane.
type Box struct {
	Size mgl64.Vec3
}

var BoxComponent = NewComponent[Box]()

// Bounds returns the world-space axis-aligned bounds of the box under t.
func (b Box) Bounds(t Transform) (mgl64.Vec3, mgl64.Vec3) {
	hx, hy, hz := b.Size.X()/2, b.Size.Y()/2, b.Size.Z()/2
	c := math.Abs(math.Cos(t.RotationY))
	s := math.Abs(math.Sin(t.RotationY))
	half := mgl64.Vec3{c*hx + s*hz, hy, s*hx + c*hz}
	return t.Position.Sub(half), t.Position.Add(half)
}
