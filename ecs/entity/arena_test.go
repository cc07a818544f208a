package entity

import (
	"image/color"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/venge/ecs"
	"github.com/milk9111/venge/ecs/component"
	"github.com/milk9111/venge/prefabs"
)

func testArenaSpec() prefabs.ArenaSpec {
	return prefabs.ArenaSpec{
		Size:          100,
		WallHeight:    10,
		WallThickness: 2,
		Lights: []prefabs.LightSpec{
			{Kind: "ambient", Intensity: 0.3},
			{Kind: "directional", Intensity: 0.8, Position: prefabs.Vec3Spec{X: 50, Y: 50, Z: 50}, CastShadow: true},
		},
	}
}

func TestBuildArenaCollidables(t *testing.T) {
	w := ecs.NewWorld()
	arena, err := BuildArena(w, testArenaSpec())
	if err != nil {
		t.Fatalf("BuildArena: %v", err)
	}

	collidable := w.Query(component.CollidableTagComponent.Kind())
	if len(collidable) != 5 {
		t.Fatalf("expected floor + 4 walls collidable, got %d", len(collidable))
	}
	if ecs.Has(w, arena.Grid, component.CollidableTagComponent) {
		t.Fatalf("grid must not be collidable")
	}
	for _, l := range arena.Lights {
		if ecs.Has(w, l, component.CollidableTagComponent) {
			t.Fatalf("light %s must not be collidable", l)
		}
	}
	if len(arena.Lights) != 2 {
		t.Fatalf("expected 2 lights, got %d", len(arena.Lights))
	}
}

func TestBuildArenaWallBounds(t *testing.T) {
	w := ecs.NewWorld()
	arena, err := BuildArena(w, testArenaSpec())
	if err != nil {
		t.Fatalf("BuildArena: %v", err)
	}

	tests := []struct {
		name     string
		e        ecs.Entity
		min, max mgl64.Vec3
	}{
		{"floor", arena.Floor, mgl64.Vec3{-50, 0, -50}, mgl64.Vec3{50, 0, 50}},
		{"back", arena.Walls[0], mgl64.Vec3{-50, 0, -51}, mgl64.Vec3{50, 10, -49}},
		{"front", arena.Walls[1], mgl64.Vec3{-50, 0, 49}, mgl64.Vec3{50, 10, 51}},
		{"left", arena.Walls[2], mgl64.Vec3{-51, 0, -50}, mgl64.Vec3{-49, 10, 50}},
		{"right", arena.Walls[3], mgl64.Vec3{49, 0, -50}, mgl64.Vec3{51, 10, 50}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr, ok := ecs.Get(w, tc.e, component.TransformComponent)
			if !ok {
				t.Fatalf("missing transform")
			}
			box, ok := ecs.Get(w, tc.e, component.BoxComponent)
			if !ok {
				t.Fatalf("missing box")
			}
			lo, hi := box.Bounds(tr)
			if !vecNear(lo, tc.min) || !vecNear(hi, tc.max) {
				t.Fatalf("bounds = %v..%v, want %v..%v", lo, hi, tc.min, tc.max)
			}
		})
	}
}

func TestBuildArenaRejectsBadSpec(t *testing.T) {
	spec := testArenaSpec()
	spec.Size = 0
	if _, err := BuildArena(ecs.NewWorld(), spec); err == nil {
		t.Fatalf("expected error for zero size")
	}
	if _, err := BuildArena(nil, testArenaSpec()); err == nil {
		t.Fatalf("expected error for nil world")
	}
}

func TestBuildBlock(t *testing.T) {
	w := ecs.NewWorld()
	e, err := BuildBlock(w, "platform", mgl64.Vec3{5, 1, 5}, mgl64.Vec3{4, 2, 4}, color.RGBA{A: 255})
	if err != nil {
		t.Fatalf("BuildBlock: %v", err)
	}
	if !ecs.Has(w, e, component.CollidableTagComponent) {
		t.Fatalf("block should be collidable")
	}
	name, _ := ecs.Get(w, e, component.NameComponent)
	if name != "platform" {
		t.Fatalf("name = %q", name)
	}
}

func vecNear(got, want mgl64.Vec3) bool {
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			return false
		}
	}
	return true
}
