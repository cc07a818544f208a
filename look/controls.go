// Package look implements pointer-lock style first-person look controls.
package look

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const DefaultSensitivity = 0.002

var (
	upAxis      = mgl64.Vec3{0, 1, 0}
	forwardAxis = mgl64.Vec3{0, 0, -1}
	rightAxis   = mgl64.Vec3{1, 0, 0}
)

// Controls owns the player's position and view angles. Yaw turns about the
// up axis; pitch tilts the view only and never affects movement.
type Controls struct {
	position    mgl64.Vec3
	yaw         float64
	pitch       float64
	locked      bool
	sensitivity float64
}

func NewControls(pos mgl64.Vec3, sensitivity float64) *Controls {
	if sensitivity <= 0 {
		sensitivity = DefaultSensitivity
	}
	return &Controls{position: pos, sensitivity: sensitivity}
}

func (c *Controls) Lock() { c.locked = true }
func (c *Controls) Unlock() { c.locked = false }
func (c *Controls) IsLocked() bool { return c.locked }

func (c *Controls) SetSensitivity(s float64) {
	if s > 0 {
		c.sensitivity = s
	}
}

// Look applies a mouse movement in pixels. Ignored while unlocked.
func (c *Controls) Look(dx, dy float64) {
	if !c.locked {
		return
	}
	c.yaw -= dx * c.sensitivity
	c.pitch -= dy * c.sensitivity
	c.pitch = mgl64.Clamp(c.pitch, -math.Pi/2, math.Pi/2)
}

func (c *Controls) Yaw() float64 { return c.yaw }
func (c *Controls) Pitch() float64 { return c.pitch }

func (c *Controls) SetYaw(yaw float64) { c.yaw = yaw }

func (c *Controls) orientation() mgl64.Quat {
	return mgl64.QuatRotate(c.yaw, upAxis)
}

// Forward returns the unit facing direction on the horizontal plane.
func (c *Controls) Forward() mgl64.Vec3 {
	return c.orientation().Rotate(forwardAxis)
}

// MoveForward translates along the facing direction.
func (c *Controls) MoveForward(distance float64) {
	c.position = c.position.Add(c.orientation().Rotate(forwardAxis).Mul(distance))
}

// MoveRight translates along the facing direction's right hand side.
func (c *Controls) MoveRight(distance float64) {
	c.position = c.position.Add(c.orientation().Rotate(rightAxis).Mul(distance))
}

func (c *Controls) Position() mgl64.Vec3 { return c.position }
func (c *Controls) SetPosition(pos mgl64.Vec3) { c.position = pos }
