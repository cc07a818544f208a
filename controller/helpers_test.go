package controller

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/venge/ecs"
	"github.com/milk9111/venge/ecs/entity"
)

const tick = 1.0 / 60.0

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

// fakeMover stands in for the look controls with yaw fixed at zero, so
// forward is -Z and right is +X.
type fakeMover struct {
	locked  bool
	pos     mgl64.Vec3
	forward float64
	right   float64
}

func (m *fakeMover) IsLocked() bool { return m.locked }

func (m *fakeMover) MoveForward(d float64) {
	m.forward += d
	m.pos[2] -= d
}

func (m *fakeMover) MoveRight(d float64) {
	m.right += d
	m.pos[0] += d
}

func (m *fakeMover) Position() mgl64.Vec3 { return m.pos }

func (m *fakeMover) SetPosition(p mgl64.Vec3) { m.pos = p }

func addBlock(t *testing.T, w *ecs.World, center, size mgl64.Vec3) ecs.Entity {
	t.Helper()
	e, err := entity.BuildBlock(w, "block", center, size, color.RGBA{A: 0xff})
	if err != nil {
		t.Fatalf("BuildBlock: %v", err)
	}
	return e
}

// floorWorld returns a world holding one 100x100 floor plane at y=0.
func floorWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	addBlock(t, w, mgl64.Vec3{}, mgl64.Vec3{100, 0, 100})
	return w
}
