package look

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// vecNear compares component-wise with an absolute tolerance, so rotation
// noise around an expected zero does not fail the check.
func vecNear(t *testing.T, got, want mgl64.Vec3, field string) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("%s = %v, want %v", field, got, want)
		}
	}
}

func TestMoveRelativeToYaw(t *testing.T) {
	tests := []struct {
		name         string
		yaw          float64
		forward      float64
		right        float64
		wantPosition mgl64.Vec3
	}{
		{"forward_at_zero_yaw_is_negative_z", 0, 2, 0, mgl64.Vec3{0, 0, -2}},
		{"right_at_zero_yaw_is_positive_x", 0, 0, 3, mgl64.Vec3{3, 0, 0}},
		{"quarter_turn_left_faces_negative_x", math.Pi / 2, 1, 0, mgl64.Vec3{-1, 0, 0}},
		{"quarter_turn_left_right_is_negative_z", math.Pi / 2, 0, 1, mgl64.Vec3{0, 0, -1}},
		{"half_turn_backwards", math.Pi, 1, 0, mgl64.Vec3{0, 0, 1}},
		{"quarter_turn_right_faces_positive_x", -math.Pi / 2, 1, 0, mgl64.Vec3{1, 0, 0}},
		{"half_turn_strafe_is_negative_x", math.Pi, 0, 2, mgl64.Vec3{-2, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewControls(mgl64.Vec3{}, 0)
			c.SetYaw(tc.yaw)
			c.MoveForward(tc.forward)
			c.MoveRight(tc.right)
			vecNear(t, c.Position(), tc.wantPosition, "position")
		})
	}
}

func TestMoveKeepsHeight(t *testing.T) {
	c := NewControls(mgl64.Vec3{0, 5, 0}, 0)
	c.Lock()
	c.Look(0, -500)
	c.MoveForward(1)
	if math.Abs(c.Position().Y()-5) > 1e-9 {
		t.Fatalf("pitch should not move the player vertically, y = %g", c.Position().Y())
	}
}

func TestLookRequiresLock(t *testing.T) {
	c := NewControls(mgl64.Vec3{}, 0.01)
	c.Look(100, 0)
	if c.Yaw() != 0 {
		t.Fatalf("yaw changed while unlocked: %g", c.Yaw())
	}

	c.Lock()
	c.Look(100, 0)
	if math.Abs(c.Yaw()+1) > 1e-9 {
		t.Fatalf("yaw = %g, want -1", c.Yaw())
	}

	c.Unlock()
	if c.IsLocked() {
		t.Fatalf("expected unlocked")
	}
}

func TestPitchClamped(t *testing.T) {
	c := NewControls(mgl64.Vec3{}, DefaultSensitivity)
	c.Lock()

	c.Look(0, -1e6)
	if c.Pitch() != math.Pi/2 {
		t.Fatalf("pitch = %g, want %g", c.Pitch(), math.Pi/2)
	}
	c.Look(0, 2e6)
	if c.Pitch() != -math.Pi/2 {
		t.Fatalf("pitch = %g, want %g", c.Pitch(), -math.Pi/2)
	}
}

func TestForwardIsUnitAndHorizontal(t *testing.T) {
	c := NewControls(mgl64.Vec3{}, 0)
	c.SetYaw(0.7)
	f := c.Forward()
	if math.Abs(f.Len()-1) > 1e-9 || math.Abs(f.Y()) > 1e-12 {
		t.Fatalf("forward = %v", f)
	}
}

func TestForwardAtQuarterTurns(t *testing.T) {
	tests := []struct {
		yaw  float64
		want mgl64.Vec3
	}{
		{0, mgl64.Vec3{0, 0, -1}},
		{math.Pi / 2, mgl64.Vec3{-1, 0, 0}},
		{math.Pi, mgl64.Vec3{0, 0, 1}},
		{-math.Pi / 2, mgl64.Vec3{1, 0, 0}},
	}

	for _, tc := range tests {
		c := NewControls(mgl64.Vec3{}, 0)
		c.SetYaw(tc.yaw)
		vecNear(t, c.Forward(), tc.want, "forward")
	}
}
