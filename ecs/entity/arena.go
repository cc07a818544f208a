package entity

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/venge/ecs"
	"github.com/milk9111/venge/ecs/component"
	"github.com/milk9111/venge/prefabs"
)

// gridLift keeps the grid helper just above the floor plane.
const gridLift = 0.01

// Arena lists the entities BuildArena created.
type Arena struct {
	Floor  ecs.Entity
	Grid   ecs.Entity
	Walls  [4]ecs.Entity
	Lights []ecs.Entity
}

// BuildArena fills w with a square floor, a grid overlay, four perimeter
// walls and the configured lights. Floor and walls are collidable.
func BuildArena(w *ecs.World, spec prefabs.ArenaSpec) (*Arena, error) {
	if w == nil {
		return nil, fmt.Errorf("entity: build arena: nil world")
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("entity: build arena: %w", err)
	}

	size := spec.Size
	arena := &Arena{}

	floor, err := buildSolid(w, "floor",
		component.Transform{},
		component.Box{Size: mgl64.Vec3{size, 0, size}},
		component.Material{Color: spec.FloorColor.RGBA, Roughness: 0.9},
	)
	if err != nil {
		return nil, err
	}
	arena.Floor = floor

	grid := w.CreateEntity()
	if err := addAll(w, grid,
		add(component.NameComponent, component.Name("grid")),
		add(component.GridTagComponent, component.GridTag{}),
		add(component.TransformComponent, component.Transform{Position: mgl64.Vec3{0, gridLift, 0}}),
		add(component.BoxComponent, component.Box{Size: mgl64.Vec3{size, 0, size}}),
		add(component.MaterialComponent, component.Material{Color: spec.GridColor.RGBA}),
	); err != nil {
		return nil, err
	}
	arena.Grid = grid

	h := spec.WallHeight
	wallBox := component.Box{Size: mgl64.Vec3{size, h, spec.WallThickness}}
	wallMat := component.Material{Color: spec.WallColor.RGBA, Roughness: 0.8}
	walls := []struct {
		name string
		t    component.Transform
	}{
		{"wall_back", component.Transform{Position: mgl64.Vec3{0, h / 2, -size / 2}}},
		{"wall_front", component.Transform{Position: mgl64.Vec3{0, h / 2, size / 2}}},
		{"wall_left", component.Transform{Position: mgl64.Vec3{-size / 2, h / 2, 0}, RotationY: math.Pi / 2}},
		{"wall_right", component.Transform{Position: mgl64.Vec3{size / 2, h / 2, 0}, RotationY: math.Pi / 2}},
	}
	for i, wall := range walls {
		e, err := buildSolid(w, wall.name, wall.t, wallBox, wallMat)
		if err != nil {
			return nil, err
		}
		arena.Walls[i] = e
	}

	for _, ls := range spec.Lights {
		e := w.CreateEntity()
		kind := component.LightAmbient
		if ls.Kind == "directional" {
			kind = component.LightDirectional
		}
		if err := addAll(w, e,
			add(component.NameComponent, component.Name(ls.Kind+"_light")),
			add(component.TransformComponent, component.Transform{Position: ls.Position.Vec3()}),
			add(component.LightComponent, component.Light{
				Kind:       kind,
				Color:      ls.Color.RGBA,
				Intensity:  ls.Intensity,
				CastShadow: ls.CastShadow,
			}),
		); err != nil {
			return nil, err
		}
		arena.Lights = append(arena.Lights, e)
	}

	return arena, nil
}

// BuildBlock adds a free-standing collidable box, e.g. a platform.
func BuildBlock(w *ecs.World, name string, center, size mgl64.Vec3, clr color.RGBA) (ecs.Entity, error) {
	return buildSolid(w, name,
		component.Transform{Position: center},
		component.Box{Size: size},
		component.Material{Color: clr},
	)
}

func buildSolid(w *ecs.World, name string, t component.Transform, b component.Box, m component.Material) (ecs.Entity, error) {
	e := w.CreateEntity()
	err := addAll(w, e,
		add(component.NameComponent, component.Name(name)),
		add(component.TransformComponent, t),
		add(component.BoxComponent, b),
		add(component.MaterialComponent, m),
		add(component.CollidableTagComponent, component.CollidableTag{}),
	)
	return e, err
}

type adder func(*ecs.World, ecs.Entity) error

func add[T any](handle component.ComponentHandle[T], value T) adder {
	return func(w *ecs.World, e ecs.Entity) error {
		return ecs.Add(w, e, handle, value)
	}
}

func addAll(w *ecs.World, e ecs.Entity, adders ...adder) error {
	for _, a := range adders {
		if err := a(w, e); err != nil {
			return fmt.Errorf("entity: add component to %s: %w", e, err)
		}
	}
	return nil
}
